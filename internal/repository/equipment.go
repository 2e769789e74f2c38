package repository

import (
	"context"

	"github.com/orvane/Gemstore_Go/internal/domain"
)

// Equipment defines the interface for equipped item persistence
type Equipment interface {
	ListEquipped(ctx context.Context, profileID string) ([]domain.EquippedItem, error)
	BeginTx(ctx context.Context) (EquipmentTx, error)
}

// EquipmentTx defines the interface for equip/unequip transactions. An equip
// clears both the target slot and any slot the item already occupies before
// inserting, keeping slot and item exclusivity in one transaction.
type EquipmentTx interface {
	Tx
	// GetUsableEntry loads the inventory entry backing an equip, locked for
	// the duration of the transaction.
	GetUsableEntry(ctx context.Context, accountID, itemID string) (*domain.InventoryEntry, error)
	ClearSlot(ctx context.Context, profileID string, slot domain.EquipSlot) error
	ClearItem(ctx context.Context, profileID, itemID string) error
	Insert(ctx context.Context, equipped domain.EquippedItem) error
	// RemoveItem unequips the item, reporting whether a row was removed.
	RemoveItem(ctx context.Context, profileID, itemID string) (bool, error)
	// RemoveSlot empties the slot, reporting whether a row was removed.
	RemoveSlot(ctx context.Context, profileID string, slot domain.EquipSlot) (bool, error)
}
