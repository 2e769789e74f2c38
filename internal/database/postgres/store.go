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

// StoreRepository implements the purchase store repository for PostgreSQL
type StoreRepository struct {
	db *pgxpool.Pool
}

// NewStoreRepository creates a new StoreRepository
func NewStoreRepository(db *pgxpool.Pool) *StoreRepository {
	return &StoreRepository{db: db}
}

// StoreTx implements repository.StoreTx
type StoreTx struct {
	tx pgx.Tx
}

// BeginTx starts a new purchase transaction
func (r *StoreRepository) BeginTx(ctx context.Context) (repository.StoreTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &StoreTx{tx: tx}, nil
}

// Commit commits the transaction
func (t *StoreTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction
func (t *StoreTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// DebitWallet applies a conditional debit: the row only changes when the
// balance covers the amount, so a concurrent spend can never drive the
// balance negative.
func (t *StoreTx) DebitWallet(ctx context.Context, accountID string, amount int64) (*domain.Wallet, error) {
	return debitWallet(ctx, t.tx, accountID, amount)
}

// CreditWallet adds to the wallet balance
func (t *StoreTx) CreditWallet(ctx context.Context, accountID string, amount int64) (*domain.Wallet, error) {
	return creditWallet(ctx, t.tx, accountID, amount)
}

// InsertWalletTransaction appends one ledger row
func (t *StoreTx) InsertWalletTransaction(ctx context.Context, entry domain.WalletTransaction) (*domain.WalletTransaction, error) {
	return insertWalletTransaction(ctx, t.tx, entry)
}

// SetTransactionReference backfills the reference on a ledger row
func (t *StoreTx) SetTransactionReference(ctx context.Context, transactionID, referenceID string) error {
	tag, err := t.tx.Exec(ctx,
		`UPDATE wallet_transactions SET reference_id = $2 WHERE transaction_id = $1`,
		transactionID, referenceID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSetLedgerReference, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// FindOwnedUnique returns the subset of itemIDs with a usable entry for the account
func (t *StoreTx) FindOwnedUnique(ctx context.Context, accountID string, itemIDs []string) ([]string, error) {
	if len(itemIDs) == 0 {
		return nil, nil
	}

	rows, err := t.tx.Query(ctx, `
		SELECT item_id FROM inventory_entries
		WHERE account_id = $1 AND item_id = ANY($2)
		  AND NOT is_exhausted AND quantity > 0`,
		accountID, itemIDs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryOwnership, err)
	}
	defer rows.Close()

	var owned []string
	for rows.Next() {
		var itemID string
		if err := rows.Scan(&itemID); err != nil {
			return nil, err
		}
		owned = append(owned, itemID)
	}
	return owned, rows.Err()
}

// InsertOrder creates the order row
func (t *StoreTx) InsertOrder(ctx context.Context, accountID string, totalAmount int64, idempotencyKey string) (*domain.Order, error) {
	order := domain.Order{
		AccountID:   accountID,
		TotalAmount: totalAmount,
	}
	err := t.tx.QueryRow(ctx, `
		INSERT INTO orders (account_id, total_amount, status, idempotency_key)
		VALUES ($1, $2, $3, $4)
		RETURNING order_id, status, created_at`,
		accountID, totalAmount, domain.OrderCompleted, strToText(idempotencyKey),
	).Scan(&order.ID, &order.Status, &order.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToInsertOrder, err)
	}
	return &order, nil
}

// InsertOrderLines writes all line rows for the order
func (t *StoreTx) InsertOrderLines(ctx context.Context, orderID string, lines []domain.OrderLine) error {
	for _, line := range lines {
		_, err := t.tx.Exec(ctx, `
			INSERT INTO order_lines (order_id, item_id, quantity, unit_price, line_total)
			VALUES ($1, $2, $3, $4, $5)`,
			orderID, line.ItemID, line.Quantity, line.UnitPrice, line.LineTotal)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToInsertOrderLine, err)
		}
	}
	return nil
}

// GrantInventory writes the (account, item) entry. A stackable grant
// accumulates quantity and re-granting an exhausted entry revives it. A
// unique grant only takes the conflict arm when the existing entry is spent:
// a usable entry returns no row, which is how a duplicate bought concurrently
// with the ownership precheck still fails. The conflicting insert serializes
// on the primary key, so of two racing purchases exactly one commits.
func (t *StoreTx) GrantInventory(ctx context.Context, accountID, itemID string, quantity int, stacking domain.Stacking) (*domain.InventoryEntry, error) {
	query := `
		INSERT INTO inventory_entries (account_id, item_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (account_id, item_id) DO UPDATE
		SET quantity = inventory_entries.quantity + EXCLUDED.quantity,
		    is_exhausted = FALSE
		RETURNING account_id, item_id, quantity, is_exhausted, acquired_at, last_used_at`
	if stacking == domain.StackingUnique {
		query = `
		INSERT INTO inventory_entries (account_id, item_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (account_id, item_id) DO UPDATE
		SET quantity = EXCLUDED.quantity,
		    is_exhausted = FALSE
		WHERE inventory_entries.is_exhausted OR inventory_entries.quantity = 0
		RETURNING account_id, item_id, quantity, is_exhausted, acquired_at, last_used_at`
	}

	var entry domain.InventoryEntry
	var lastUsed *time.Time
	err := t.tx.QueryRow(ctx, query, accountID, itemID, quantity,
	).Scan(&entry.AccountID, &entry.ItemID, &entry.Quantity, &entry.IsExhausted, &entry.AcquiredAt, &lastUsed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("item %s: %w", itemID, domain.ErrAlreadyOwned)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGrantInventory, err)
	}
	entry.LastUsedAt = lastUsed
	return &entry, nil
}

// InsertFulfillment creates the per-line delivery record
func (t *StoreTx) InsertFulfillment(ctx context.Context, fulfillment domain.Fulfillment) (*domain.Fulfillment, error) {
	err := t.tx.QueryRow(ctx, `
		INSERT INTO fulfillments (order_id, account_id, item_id, status, delivery_channel, attempts, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING fulfillment_id, created_at`,
		fulfillment.OrderID, fulfillment.AccountID, fulfillment.ItemID,
		fulfillment.Status, fulfillment.DeliveryChannel, fulfillment.Attempts,
		timeToTz(fulfillment.CompletedAt),
	).Scan(&fulfillment.ID, &fulfillment.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToInsertFulfillment, err)
	}
	return &fulfillment, nil
}

// GetOrder retrieves an order by ID
func (r *StoreRepository) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := scanOrder(r.db.QueryRow(ctx, `
		SELECT order_id, account_id, total_amount, status, created_at
		FROM orders WHERE order_id = $1`, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetOrder, err)
	}
	return order, nil
}

// GetOrderWithLines retrieves an order hydrated with its lines and fulfillments
func (r *StoreRepository) GetOrderWithLines(ctx context.Context, orderID string) (*domain.OrderWithLines, error) {
	order, err := r.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	lines, err := r.linesForOrders(ctx, []string{orderID})
	if err != nil {
		return nil, err
	}
	fulfillments, err := r.fulfillmentsForOrders(ctx, []string{orderID})
	if err != nil {
		return nil, err
	}

	return &domain.OrderWithLines{
		Order:        *order,
		Lines:        lines[orderID],
		Fulfillments: fulfillments[orderID],
	}, nil
}

// ListOrders returns a page of the account's orders, newest first
func (r *StoreRepository) ListOrders(ctx context.Context, accountID string, filter domain.OrderHistoryFilter) ([]domain.OrderWithLines, error) {
	query := `
		SELECT order_id, account_id, total_amount, status, created_at
		FROM orders WHERE account_id = $1`
	args := []interface{}{accountID}

	if filter.Status != nil {
		query += ` AND status = $2`
		args = append(args, *filter.Status)
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryOrders, err)
	}
	defer rows.Close()

	var orders []domain.Order
	var orderIDs []string
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
		orderIDs = append(orderIDs, order.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return []domain.OrderWithLines{}, nil
	}

	lines, err := r.linesForOrders(ctx, orderIDs)
	if err != nil {
		return nil, err
	}
	fulfillments, err := r.fulfillmentsForOrders(ctx, orderIDs)
	if err != nil {
		return nil, err
	}

	result := make([]domain.OrderWithLines, 0, len(orders))
	for _, order := range orders {
		result = append(result, domain.OrderWithLines{
			Order:        order,
			Lines:        lines[order.ID],
			Fulfillments: fulfillments[order.ID],
		})
	}
	return result, nil
}

// FindRecentOrderByKey returns the newest order with the idempotency key
// inside the dedup window, or nil
func (r *StoreRepository) FindRecentOrderByKey(ctx context.Context, accountID, idempotencyKey string, window time.Duration) (*domain.Order, error) {
	order, err := scanOrder(r.db.QueryRow(ctx, `
		SELECT order_id, account_id, total_amount, status, created_at
		FROM orders
		WHERE account_id = $1 AND idempotency_key = $2 AND created_at > $3
		ORDER BY created_at DESC
		LIMIT 1`,
		accountID, idempotencyKey, time.Now().Add(-window)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryOrders, err)
	}
	return order, nil
}

func (r *StoreRepository) linesForOrders(ctx context.Context, orderIDs []string) (map[string][]domain.OrderLine, error) {
	rows, err := r.db.Query(ctx, `
		SELECT order_id, item_id, quantity, unit_price, line_total
		FROM order_lines WHERE order_id = ANY($1)`, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryOrderLines, err)
	}
	defer rows.Close()

	lines := make(map[string][]domain.OrderLine)
	for rows.Next() {
		var line domain.OrderLine
		if err := rows.Scan(&line.OrderID, &line.ItemID, &line.Quantity, &line.UnitPrice, &line.LineTotal); err != nil {
			return nil, err
		}
		lines[line.OrderID] = append(lines[line.OrderID], line)
	}
	return lines, rows.Err()
}

func (r *StoreRepository) fulfillmentsForOrders(ctx context.Context, orderIDs []string) (map[string][]domain.Fulfillment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+fulfillmentColumns+`
		FROM fulfillments WHERE order_id = ANY($1)
		ORDER BY created_at`, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryFulfillments, err)
	}
	defer rows.Close()

	fulfillments := make(map[string][]domain.Fulfillment)
	for rows.Next() {
		f, err := scanFulfillment(rows)
		if err != nil {
			return nil, err
		}
		fulfillments[f.OrderID] = append(fulfillments[f.OrderID], *f)
	}
	return fulfillments, rows.Err()
}

// scanOrder scans one order row from either a Row or Rows
func scanOrder(row pgx.Row) (*domain.Order, error) {
	var order domain.Order
	err := row.Scan(&order.ID, &order.AccountID, &order.TotalAmount, &order.Status, &order.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &order, nil
}
