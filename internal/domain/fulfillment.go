package domain

import "time"

// FulfillmentStatus tracks a line item through its delivery channel.
type FulfillmentStatus string

const (
	FulfillmentPending    FulfillmentStatus = "PENDING"
	FulfillmentProcessing FulfillmentStatus = "PROCESSING"
	FulfillmentCompleted  FulfillmentStatus = "COMPLETED"
	FulfillmentFailed     FulfillmentStatus = "FAILED"
	FulfillmentRetry      FulfillmentStatus = "RETRY"
)

// Fulfillment is the per-line delivery record. Exactly one row exists per
// order line. INSTANT and FUNCTIONAL lines are born COMPLETED; EMAIL and
// EXTERNAL_SHIP lines are born PENDING and resolved by the external worker
// through the completion callback.
type Fulfillment struct {
	ID              string            `json:"fulfillment_id"`
	OrderID         string            `json:"order_id"`
	AccountID       string            `json:"account_id"`
	ItemID          string            `json:"item_id"`
	Status          FulfillmentStatus `json:"status"`
	DeliveryChannel DeliveryChannel   `json:"delivery_channel"`
	Attempts        int               `json:"attempts"`
	LastAttemptAt   *time.Time        `json:"last_attempt_at,omitempty"`
	CompletedAt     *time.Time        `json:"completed_at,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
}

// Terminal reports whether the fulfillment has reached an end state the
// worker callback may not move it out of.
func (f Fulfillment) Terminal() bool {
	return f.Status == FulfillmentCompleted
}

// InitialFulfillmentStatus derives the status a new fulfillment is created
// with from the item's delivery channel. The switch is exhaustive on purpose:
// a new channel must pick a starting status here before it can ship.
func InitialFulfillmentStatus(channel DeliveryChannel) FulfillmentStatus {
	switch channel {
	case DeliveryInstant, DeliveryFunctional:
		return FulfillmentCompleted
	case DeliveryEmail, DeliveryExternalShip:
		return FulfillmentPending
	}
	// Unknown channels never reach here: catalog rows are validated on load.
	return FulfillmentPending
}
