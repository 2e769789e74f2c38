package catalog

import (
	"context"
	"time"

	"github.com/orvane/Gemstore_Go/internal/domain"
	"github.com/orvane/Gemstore_Go/internal/logger"
	"github.com/orvane/Gemstore_Go/internal/repository"
)

// Service defines the interface for catalog reads
type Service interface {
	GetItem(ctx context.Context, itemID string) (*domain.CatalogItem, error)
	// GetPurchasable resolves an item for a purchase: the item must exist and
	// be active.
	GetPurchasable(ctx context.Context, itemID string) (*domain.CatalogItem, error)
	ListItems(ctx context.Context, activeOnly bool, scope string) ([]domain.CatalogItem, error)
	// Invalidate drops an item from the cache after an out-of-band catalog change.
	Invalidate(itemID string)
}

type service struct {
	repo  repository.Catalog
	cache *itemCache
}

// NewService creates a new catalog service
func NewService(repo repository.Catalog, cacheSize int, cacheTTL time.Duration) Service {
	return &service{
		repo:  repo,
		cache: newItemCache(cacheSize, cacheTTL),
	}
}

func (s *service) GetItem(ctx context.Context, itemID string) (*domain.CatalogItem, error) {
	if item, ok := s.cache.Get(itemID); ok {
		return item, nil
	}

	item, err := s.repo.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	s.cache.Set(item)
	return item, nil
}

func (s *service) GetPurchasable(ctx context.Context, itemID string) (*domain.CatalogItem, error) {
	item, err := s.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !item.Active {
		return nil, domain.ErrItemInactive
	}
	return item, nil
}

func (s *service) ListItems(ctx context.Context, activeOnly bool, scope string) ([]domain.CatalogItem, error) {
	logger.FromContext(ctx).Debug(LogMsgListItemsCalled, "active_only", activeOnly, "scope", scope)

	// Listings bypass the cache: they are rare relative to item lookups and
	// filtering cached entries would duplicate repository logic.
	items, err := s.repo.ListItems(ctx, activeOnly, scope)
	if err != nil {
		return nil, err
	}

	for i := range items {
		s.cache.Set(&items[i])
	}
	return items, nil
}

func (s *service) Invalidate(itemID string) {
	s.cache.Invalidate(itemID)
}
