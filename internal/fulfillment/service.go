package fulfillment

import (
	"context"
	"fmt"
	"time"

	"github.com/orvane/Gemstore_Go/internal/domain"
	"github.com/orvane/Gemstore_Go/internal/event"
	"github.com/orvane/Gemstore_Go/internal/logger"
	"github.com/orvane/Gemstore_Go/internal/repository"
)

// Publisher is the event publishing surface the service needs
type Publisher interface {
	PublishWithRetry(ctx context.Context, event event.Event)
}

// Service defines the interface for fulfillment tracking
type Service interface {
	GetFulfillment(ctx context.Context, fulfillmentID string) (*domain.Fulfillment, error)
	ListByOrder(ctx context.Context, orderID string) ([]domain.Fulfillment, error)
	// RetryFailed re-queues every FAILED fulfillment on the account's order.
	// Only a COMPLETED order qualifies; an order with nothing to retry
	// returns domain.ErrNothingToRetry.
	RetryFailed(ctx context.Context, accountID, orderID string) ([]string, error)
	// Resolve is the completion callback for the external delivery worker.
	// COMPLETED is terminal; resolving a terminal fulfillment returns
	// domain.ErrFulfillmentFinalized.
	Resolve(ctx context.Context, fulfillmentID string, status domain.FulfillmentStatus) (*domain.Fulfillment, error)
}

type service struct {
	repo      repository.Fulfillment
	orders    repository.Store
	publisher Publisher
	now       func() time.Time
}

// NewService creates a new fulfillment service
func NewService(repo repository.Fulfillment, orders repository.Store, publisher Publisher) Service {
	return &service{
		repo:      repo,
		orders:    orders,
		publisher: publisher,
		now:       time.Now,
	}
}

func (s *service) GetFulfillment(ctx context.Context, fulfillmentID string) (*domain.Fulfillment, error) {
	logger.FromContext(ctx).Debug(LogMsgGetFulfillmentCalled, "fulfillment_id", fulfillmentID)
	return s.repo.GetByID(ctx, fulfillmentID)
}

func (s *service) ListByOrder(ctx context.Context, orderID string) ([]domain.Fulfillment, error) {
	logger.FromContext(ctx).Debug(LogMsgListByOrderCalled, "order_id", orderID)
	if orderID == "" {
		return nil, fmt.Errorf("%s: %w", ErrMsgOrderRequired, domain.ErrInvalidRequest)
	}
	return s.repo.ListByOrder(ctx, orderID)
}

func (s *service) RetryFailed(ctx context.Context, accountID, orderID string) ([]string, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgRetryFailedCalled, "account_id", accountID, "order_id", orderID)

	if accountID == "" {
		return nil, fmt.Errorf("%s: %w", ErrMsgAccountRequired, domain.ErrInvalidRequest)
	}
	if orderID == "" {
		return nil, fmt.Errorf("%s: %w", ErrMsgOrderRequired, domain.ErrInvalidRequest)
	}

	// Resolve the order first so a bad order ID is a not-found, not an empty
	// retry set.
	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	// Another account's order looks like no order at all
	if order.AccountID != accountID {
		return nil, fmt.Errorf("order %s: %w", orderID, domain.ErrOrderNotFound)
	}
	if order.Status != domain.OrderCompleted {
		return nil, fmt.Errorf("order %s status %s: %w", orderID, order.Status, domain.ErrOrderNotRetryable)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	retried, err := tx.RequeueFailed(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if len(retried) == 0 {
		return nil, fmt.Errorf("order %s: %w", orderID, domain.ErrNothingToRetry)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	if s.publisher != nil {
		s.publisher.PublishWithRetry(ctx, event.NewFulfillmentRetriedEvent(order.AccountID, orderID, retried))
	}

	log.Info(LogMsgFulfillmentsRequeued, "order_id", orderID, "count", len(retried))
	return retried, nil
}

func (s *service) Resolve(ctx context.Context, fulfillmentID string, status domain.FulfillmentStatus) (*domain.Fulfillment, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgResolveCalled, "fulfillment_id", fulfillmentID, "status", status)

	if fulfillmentID == "" {
		return nil, fmt.Errorf("%s: %w", ErrMsgFulfillmentRequired, domain.ErrInvalidRequest)
	}
	if !resolvableStatuses[status] {
		return nil, fmt.Errorf(ErrMsgInvalidTargetStatusFmt, status, domain.ErrInvalidRequest)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	current, err := tx.GetForUpdate(ctx, fulfillmentID)
	if err != nil {
		return nil, err
	}
	if current.Terminal() {
		return nil, fmt.Errorf("fulfillment %s: %w", fulfillmentID, domain.ErrFulfillmentFinalized)
	}

	attempts := current.Attempts + 1
	var completedAt *time.Time
	if status == domain.FulfillmentCompleted {
		now := s.now()
		completedAt = &now
	}

	if err := tx.UpdateStatus(ctx, fulfillmentID, status, attempts, completedAt); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	current.Status = status
	current.Attempts = attempts
	current.CompletedAt = completedAt

	if s.publisher != nil {
		s.publisher.PublishWithRetry(ctx, event.NewFulfillmentResolvedEvent(fulfillmentID, current.OrderID, status))
	}

	log.Info(LogMsgFulfillmentResolved, "fulfillment_id", fulfillmentID, "status", status, "attempts", attempts)
	return current, nil
}
