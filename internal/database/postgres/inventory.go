package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/orvane/Gemstore_Go/internal/domain"
	"github.com/orvane/Gemstore_Go/internal/repository"
)

const inventoryColumns = `account_id, item_id, quantity, is_exhausted, acquired_at, last_used_at`

// InventoryRepository implements the inventory repository for PostgreSQL
type InventoryRepository struct {
	db *pgxpool.Pool
}

// NewInventoryRepository creates a new InventoryRepository
func NewInventoryRepository(db *pgxpool.Pool) *InventoryRepository {
	return &InventoryRepository{db: db}
}

// InventoryTx implements repository.InventoryTx
type InventoryTx struct {
	tx pgx.Tx
}

// BeginTx starts a new inventory transaction
func (r *InventoryRepository) BeginTx(ctx context.Context) (repository.InventoryTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &InventoryTx{tx: tx}, nil
}

// Commit commits the transaction
func (t *InventoryTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction
func (t *InventoryTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// ListByAccount returns all inventory entries for the account
func (r *InventoryRepository) ListByAccount(ctx context.Context, accountID string) ([]domain.InventoryEntry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+inventoryColumns+` FROM inventory_entries WHERE account_id = $1 ORDER BY acquired_at`, accountID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryInventory, err)
	}
	defer rows.Close()

	entries := []domain.InventoryEntry{}
	for rows.Next() {
		entry, err := scanInventoryEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}
	return entries, rows.Err()
}

// GetEntry retrieves one (account, item) entry
func (r *InventoryRepository) GetEntry(ctx context.Context, accountID, itemID string) (*domain.InventoryEntry, error) {
	entry, err := scanInventoryEntry(r.db.QueryRow(ctx,
		`SELECT `+inventoryColumns+` FROM inventory_entries WHERE account_id = $1 AND item_id = $2`,
		accountID, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotInInventory
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetInventory, err)
	}
	return entry, nil
}

// GetEntryForUpdate retrieves the entry with a row lock held for the transaction
func (t *InventoryTx) GetEntryForUpdate(ctx context.Context, accountID, itemID string) (*domain.InventoryEntry, error) {
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

// SetUsage records the outcome of a use in one write
func (t *InventoryTx) SetUsage(ctx context.Context, accountID, itemID string, quantity int, exhausted bool, usedAt time.Time) error {
	tag, err := t.tx.Exec(ctx, `
		UPDATE inventory_entries
		SET quantity = $3, is_exhausted = $4, last_used_at = $5
		WHERE account_id = $1 AND item_id = $2`,
		accountID, itemID, quantity, exhausted, usedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToRecordUsage, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotInInventory
	}
	return nil
}

func scanInventoryEntry(row pgx.Row) (*domain.InventoryEntry, error) {
	var entry domain.InventoryEntry
	err := row.Scan(&entry.AccountID, &entry.ItemID, &entry.Quantity,
		&entry.IsExhausted, &entry.AcquiredAt, &entry.LastUsedAt)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}
