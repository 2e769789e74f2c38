package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/orvane/Gemstore_Go/internal/catalog"
	"github.com/orvane/Gemstore_Go/internal/domain"
	"github.com/orvane/Gemstore_Go/internal/logger"
	"github.com/orvane/Gemstore_Go/internal/repository"
)

// OwnedItem is an inventory entry hydrated with its catalog row. Item is nil
// when the catalog row has been removed out-of-band; the entry still lists.
type OwnedItem struct {
	domain.InventoryEntry
	Item *domain.CatalogItem `json:"item,omitempty"`
}

// Service defines the interface for inventory operations
type Service interface {
	ListInventory(ctx context.Context, accountID string) ([]OwnedItem, error)
	GetEntry(ctx context.Context, accountID, itemID string) (*domain.InventoryEntry, error)
	// UseItem consumes count units of the entry. The quantity never goes
	// negative; the entry that reaches zero is marked exhausted, not deleted.
	UseItem(ctx context.Context, accountID, itemID string, count int) (*domain.InventoryEntry, error)
}

type service struct {
	repo    repository.Inventory
	catalog catalog.Service
	now     func() time.Time
}

// NewService creates a new inventory service
func NewService(repo repository.Inventory, catalogSvc catalog.Service) Service {
	return &service{
		repo:    repo,
		catalog: catalogSvc,
		now:     time.Now,
	}
}

func (s *service) ListInventory(ctx context.Context, accountID string) ([]OwnedItem, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgListInventoryCalled, "account_id", accountID)

	if accountID == "" {
		return nil, fmt.Errorf("%s: %w", ErrMsgAccountRequired, domain.ErrInvalidRequest)
	}

	entries, err := s.repo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	owned := make([]OwnedItem, 0, len(entries))
	for _, entry := range entries {
		item, err := s.catalog.GetItem(ctx, entry.ItemID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		if err != nil {
			log.Warn(LogMsgHydrationFailed, "account_id", accountID, "item_id", entry.ItemID)
		}
		owned = append(owned, OwnedItem{InventoryEntry: entry, Item: item})
	}
	return owned, nil
}

func (s *service) GetEntry(ctx context.Context, accountID, itemID string) (*domain.InventoryEntry, error) {
	logger.FromContext(ctx).Debug(LogMsgGetEntryCalled, "account_id", accountID, "item_id", itemID)
	return s.repo.GetEntry(ctx, accountID, itemID)
}

func (s *service) UseItem(ctx context.Context, accountID, itemID string, count int) (*domain.InventoryEntry, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgUseItemCalled, "account_id", accountID, "item_id", itemID, "count", count)

	if accountID == "" {
		return nil, fmt.Errorf("%s: %w", ErrMsgAccountRequired, domain.ErrInvalidRequest)
	}
	if itemID == "" {
		return nil, fmt.Errorf("%s: %w", ErrMsgItemRequired, domain.ErrInvalidRequest)
	}
	if count < 1 {
		return nil, fmt.Errorf(ErrMsgInvalidUseCountFmt, count, domain.ErrInvalidRequest)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	entry, err := tx.GetEntryForUpdate(ctx, accountID, itemID)
	if err != nil {
		return nil, err
	}
	if !entry.Usable() {
		return nil, fmt.Errorf("item %s: %w", itemID, domain.ErrItemExhausted)
	}
	if count > entry.Quantity {
		return nil, fmt.Errorf("item %s has %d, requested %d: %w",
			itemID, entry.Quantity, count, domain.ErrInsufficientQuantity)
	}

	usedAt := s.now()
	remaining := entry.Quantity - count
	exhausted := remaining == 0

	if err := tx.SetUsage(ctx, accountID, itemID, remaining, exhausted, usedAt); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	entry.Quantity = remaining
	entry.IsExhausted = exhausted
	entry.LastUsedAt = &usedAt

	if exhausted {
		log.Info(LogMsgItemExhausted, "account_id", accountID, "item_id", itemID)
	} else {
		log.Info(LogMsgItemUsed, "account_id", accountID, "item_id", itemID, "remaining", remaining)
	}
	return entry, nil
}
