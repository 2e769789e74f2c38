package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/orvane/Gemstore_Go/internal/domain"
)

const catalogColumns = `item_id, name, COALESCE(description, ''), category, price, stacking, delivery_channel, scope, active, effect`

// CatalogRepository implements the read-only catalog repository for PostgreSQL
type CatalogRepository struct {
	db *pgxpool.Pool
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// GetItem retrieves a catalog item by ID
func (r *CatalogRepository) GetItem(ctx context.Context, itemID string) (*domain.CatalogItem, error) {
	item, err := scanCatalogItem(r.db.QueryRow(ctx,
		`SELECT `+catalogColumns+` FROM catalog_items WHERE item_id = $1`, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetItem, err)
	}
	return item, nil
}

// GetItemsByIDs retrieves multiple catalog items. Missing IDs are simply
// absent from the result; the caller decides whether that is an error.
func (r *CatalogRepository) GetItemsByIDs(ctx context.Context, itemIDs []string) ([]domain.CatalogItem, error) {
	if len(itemIDs) == 0 {
		return []domain.CatalogItem{}, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+catalogColumns+` FROM catalog_items WHERE item_id = ANY($1)`, itemIDs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryItems, err)
	}
	defer rows.Close()

	return collectCatalogItems(rows)
}

// ListItems returns catalog items, optionally restricted to active rows and
// a scope (scoped listings include platform-wide items)
func (r *CatalogRepository) ListItems(ctx context.Context, activeOnly bool, scope string) ([]domain.CatalogItem, error) {
	query := `SELECT ` + catalogColumns + ` FROM catalog_items WHERE 1=1`
	args := []interface{}{}

	if activeOnly {
		query += ` AND active`
	}
	if scope != "" {
		query += fmt.Sprintf(` AND (scope = $%d OR scope = '')`, len(args)+1)
		args = append(args, scope)
	}
	query += ` ORDER BY category, name`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryItems, err)
	}
	defer rows.Close()

	return collectCatalogItems(rows)
}

func collectCatalogItems(rows pgx.Rows) ([]domain.CatalogItem, error) {
	items := []domain.CatalogItem{}
	for rows.Next() {
		item, err := scanCatalogItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

func scanCatalogItem(row pgx.Row) (*domain.CatalogItem, error) {
	var item domain.CatalogItem
	var effectRaw []byte
	err := row.Scan(&item.ID, &item.Name, &item.Description, &item.Category,
		&item.Price, &item.Stacking, &item.DeliveryChannel, &item.Scope,
		&item.Active, &effectRaw)
	if err != nil {
		return nil, err
	}

	item.Effect, err = domain.DecodeEffectMetadata(effectRaw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToDecodeEffect, err)
	}
	return &item, nil
}
