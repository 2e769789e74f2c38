package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/orvane/Gemstore_Go/internal/domain"
	"github.com/orvane/Gemstore_Go/internal/repository"
)

// EquipmentRepository implements the equipped item repository for PostgreSQL
type EquipmentRepository struct {
	db *pgxpool.Pool
}

// NewEquipmentRepository creates a new EquipmentRepository
func NewEquipmentRepository(db *pgxpool.Pool) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

// EquipmentTx implements repository.EquipmentTx
type EquipmentTx struct {
	tx pgx.Tx
}

// BeginTx starts a new equipment transaction
func (r *EquipmentRepository) BeginTx(ctx context.Context) (repository.EquipmentTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &EquipmentTx{tx: tx}, nil
}

// Commit commits the transaction
func (t *EquipmentTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction
func (t *EquipmentTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// ListEquipped returns the profile's equipped items
func (r *EquipmentRepository) ListEquipped(ctx context.Context, profileID string) ([]domain.EquippedItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT profile_id, item_id, slot, equipped_at
		FROM equipped_items WHERE profile_id = $1
		ORDER BY slot`, profileID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryEquipped, err)
	}
	defer rows.Close()

	equipped := []domain.EquippedItem{}
	for rows.Next() {
		var e domain.EquippedItem
		if err := rows.Scan(&e.ProfileID, &e.ItemID, &e.Slot, &e.EquippedAt); err != nil {
			return nil, err
		}
		equipped = append(equipped, e)
	}
	return equipped, rows.Err()
}

// GetUsableEntry loads and locks the inventory entry backing an equip
func (t *EquipmentTx) GetUsableEntry(ctx context.Context, accountID, itemID string) (*domain.InventoryEntry, error) {
	entry, err := scanInventoryEntry(t.tx.QueryRow(ctx,
		`SELECT `+inventoryColumns+` FROM inventory_entries WHERE account_id = $1 AND item_id = $2 FOR UPDATE`,
		accountID, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotInInventory
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetInventory, err)
	}
	return entry, nil
}

// ClearSlot empties the slot on the profile
func (t *EquipmentTx) ClearSlot(ctx context.Context, profileID string, slot domain.EquipSlot) error {
	_, err := t.tx.Exec(ctx,
		`DELETE FROM equipped_items WHERE profile_id = $1 AND slot = $2`, profileID, slot)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToClearEquipped, err)
	}
	return nil
}

// ClearItem removes the item from whichever slot holds it
func (t *EquipmentTx) ClearItem(ctx context.Context, profileID, itemID string) error {
	_, err := t.tx.Exec(ctx,
		`DELETE FROM equipped_items WHERE profile_id = $1 AND item_id = $2`, profileID, itemID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToClearEquipped, err)
	}
	return nil
}

// Insert equips the item into its slot
func (t *EquipmentTx) Insert(ctx context.Context, equipped domain.EquippedItem) error {
	_, err := t.tx.Exec(ctx, `
		INSERT INTO equipped_items (profile_id, item_id, slot)
		VALUES ($1, $2, $3)`,
		equipped.ProfileID, equipped.ItemID, equipped.Slot)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertEquipped, err)
	}
	return nil
}

// RemoveItem unequips the item, reporting whether a row was removed
func (t *EquipmentTx) RemoveItem(ctx context.Context, profileID, itemID string) (bool, error) {
	tag, err := t.tx.Exec(ctx,
		`DELETE FROM equipped_items WHERE profile_id = $1 AND item_id = $2`, profileID, itemID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToClearEquipped, err)
	}
	return tag.RowsAffected() > 0, nil
}

// RemoveSlot empties the slot, reporting whether a row was removed
func (t *EquipmentTx) RemoveSlot(ctx context.Context, profileID string, slot domain.EquipSlot) (bool, error) {
	tag, err := t.tx.Exec(ctx,
		`DELETE FROM equipped_items WHERE profile_id = $1 AND slot = $2`, profileID, slot)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToClearEquipped, err)
	}
	return tag.RowsAffected() > 0, nil
}
