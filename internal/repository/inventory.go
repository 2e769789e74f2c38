package repository

import (
	"context"
	"time"

	"github.com/orvane/Gemstore_Go/internal/domain"
)

// Inventory defines the interface for inventory persistence
type Inventory interface {
	ListByAccount(ctx context.Context, accountID string) ([]domain.InventoryEntry, error)
	GetEntry(ctx context.Context, accountID, itemID string) (*domain.InventoryEntry, error)
	BeginTx(ctx context.Context) (InventoryTx, error)
}

// InventoryTx defines the interface for inventory transactions (item use)
type InventoryTx interface {
	Tx
	GetEntryForUpdate(ctx context.Context, accountID, itemID string) (*domain.InventoryEntry, error)
	// SetUsage records a use: the remaining quantity, exhaustion flag and
	// use timestamp in one write.
	SetUsage(ctx context.Context, accountID, itemID string, quantity int, exhausted bool, usedAt time.Time) error
}
