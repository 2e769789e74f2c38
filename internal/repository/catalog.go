package repository

import (
	"context"

	"github.com/orvane/Gemstore_Go/internal/domain"
)

// Catalog defines the read interface over the catalog collaborator's rows.
// The core never writes these.
type Catalog interface {
	GetItem(ctx context.Context, itemID string) (*domain.CatalogItem, error)
	GetItemsByIDs(ctx context.Context, itemIDs []string) ([]domain.CatalogItem, error)
	ListItems(ctx context.Context, activeOnly bool, scope string) ([]domain.CatalogItem, error)
}
