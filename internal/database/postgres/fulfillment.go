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

const fulfillmentColumns = `fulfillment_id, order_id, account_id, item_id, status, delivery_channel, attempts, last_attempt_at, completed_at, created_at`

// FulfillmentRepository implements the fulfillment repository for PostgreSQL
type FulfillmentRepository struct {
	db *pgxpool.Pool
}

// NewFulfillmentRepository creates a new FulfillmentRepository
func NewFulfillmentRepository(db *pgxpool.Pool) *FulfillmentRepository {
	return &FulfillmentRepository{db: db}
}

// FulfillmentTx implements repository.FulfillmentTx
type FulfillmentTx struct {
	tx pgx.Tx
}

// BeginTx starts a new fulfillment transaction
func (r *FulfillmentRepository) BeginTx(ctx context.Context) (repository.FulfillmentTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &FulfillmentTx{tx: tx}, nil
}

// Commit commits the transaction
func (t *FulfillmentTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction
func (t *FulfillmentTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// GetByID retrieves a fulfillment by ID
func (r *FulfillmentRepository) GetByID(ctx context.Context, fulfillmentID string) (*domain.Fulfillment, error) {
	f, err := scanFulfillment(r.db.QueryRow(ctx,
		`SELECT `+fulfillmentColumns+` FROM fulfillments WHERE fulfillment_id = $1`, fulfillmentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrFulfillmentNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetFulfillment, err)
	}
	return f, nil
}

// ListByOrder returns all fulfillments on the order
func (r *FulfillmentRepository) ListByOrder(ctx context.Context, orderID string) ([]domain.Fulfillment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+fulfillmentColumns+` FROM fulfillments WHERE order_id = $1 ORDER BY created_at`, orderID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryFulfillments, err)
	}
	defer rows.Close()

	fulfillments := []domain.Fulfillment{}
	for rows.Next() {
		f, err := scanFulfillment(rows)
		if err != nil {
			return nil, err
		}
		fulfillments = append(fulfillments, *f)
	}
	return fulfillments, rows.Err()
}

// GetForUpdate retrieves the fulfillment with a row lock held for the transaction
func (t *FulfillmentTx) GetForUpdate(ctx context.Context, fulfillmentID string) (*domain.Fulfillment, error) {
	f, err := scanFulfillment(t.tx.QueryRow(ctx,
		`SELECT `+fulfillmentColumns+` FROM fulfillments WHERE fulfillment_id = $1 FOR UPDATE`, fulfillmentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrFulfillmentNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetFulfillment, err)
	}
	return f, nil
}

// UpdateStatus writes the status, attempt count and completion timestamp
func (t *FulfillmentTx) UpdateStatus(ctx context.Context, fulfillmentID string, status domain.FulfillmentStatus, attempts int, completedAt *time.Time) error {
	tag, err := t.tx.Exec(ctx, `
		UPDATE fulfillments
		SET status = $2, attempts = $3, last_attempt_at = NOW(), completed_at = $4
		WHERE fulfillment_id = $1`,
		fulfillmentID, status, attempts, timeToTz(completedAt))
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateFulfillment, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrFulfillmentNotFound
	}
	return nil
}

// RequeueFailed flips every FAILED fulfillment on the order to RETRY and
// counts the new delivery attempt
func (t *FulfillmentTx) RequeueFailed(ctx context.Context, orderID string) ([]string, error) {
	rows, err := t.tx.Query(ctx, `
		UPDATE fulfillments
		SET status = $2, attempts = attempts + 1, last_attempt_at = NOW()
		WHERE order_id = $1 AND status = $3
		RETURNING fulfillment_id`,
		orderID, domain.FulfillmentRetry, domain.FulfillmentFailed)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToRequeueFailed, err)
	}
	defer rows.Close()

	var retried []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		retried = append(retried, id)
	}
	return retried, rows.Err()
}

func scanFulfillment(row pgx.Row) (*domain.Fulfillment, error) {
	var f domain.Fulfillment
	err := row.Scan(&f.ID, &f.OrderID, &f.AccountID, &f.ItemID, &f.Status,
		&f.DeliveryChannel, &f.Attempts, &f.LastAttemptAt, &f.CompletedAt, &f.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &f, nil
}
