package repository

import (
	"context"
	"time"

	"github.com/orvane/Gemstore_Go/internal/domain"
)

// Fulfillment defines the interface for fulfillment persistence
type Fulfillment interface {
	GetByID(ctx context.Context, fulfillmentID string) (*domain.Fulfillment, error)
	ListByOrder(ctx context.Context, orderID string) ([]domain.Fulfillment, error)
	BeginTx(ctx context.Context) (FulfillmentTx, error)
}

// FulfillmentTx defines the interface for fulfillment state transitions
type FulfillmentTx interface {
	Tx
	GetForUpdate(ctx context.Context, fulfillmentID string) (*domain.Fulfillment, error)
	UpdateStatus(ctx context.Context, fulfillmentID string, status domain.FulfillmentStatus, attempts int, completedAt *time.Time) error
	// RequeueFailed flips every FAILED fulfillment on the order to RETRY,
	// incrementing each one's attempt count, and returns their IDs.
	RequeueFailed(ctx context.Context, orderID string) ([]string, error)
}
