package domain

// Typed event payloads shared across packages

// PurchaseCompletedPayload is emitted after a purchase transaction commits.
type PurchaseCompletedPayload struct {
	AccountID   string `json:"account_id"`
	OrderID     string `json:"order_id"`
	TotalAmount int64  `json:"total_amount"`
	LineCount   int    `json:"line_count"`
	Timestamp   int64  `json:"timestamp"`
}

// EffectAppliedPayload is the normalized effect-applied record the external
// game-systems collaborator consumes. Instant gem grants are already settled
// when this is published; delegated effects are executed by the consumer.
type EffectAppliedPayload struct {
	AccountID       string     `json:"account_id"`
	OrderID         string     `json:"order_id"`
	ItemID          string     `json:"item_id"`
	Effect          EffectKind `json:"effect"`
	Quantity        int        `json:"quantity"`
	GrantedAmount   int64      `json:"granted_amount,omitempty"`
	Modifier        string     `json:"modifier,omitempty"`
	DurationSeconds int64      `json:"duration_seconds,omitempty"`
	Settled         bool       `json:"settled"`
	Timestamp       int64      `json:"timestamp"`
}

// FulfillmentRetriedPayload is emitted when a caller re-queues failed
// fulfillments on an order.
type FulfillmentRetriedPayload struct {
	AccountID string   `json:"account_id"`
	OrderID   string   `json:"order_id"`
	Retried   []string `json:"retried_fulfillment_ids"`
	Timestamp int64    `json:"timestamp"`
}

// FulfillmentResolvedPayload is emitted when the external delivery worker
// reports a terminal outcome through the completion callback.
type FulfillmentResolvedPayload struct {
	FulfillmentID string            `json:"fulfillment_id"`
	OrderID       string            `json:"order_id"`
	Status        FulfillmentStatus `json:"status"`
	Timestamp     int64             `json:"timestamp"`
}

// ItemEquippedPayload is emitted after a successful equip.
type ItemEquippedPayload struct {
	AccountID string `json:"account_id"`
	ProfileID string `json:"profile_id"`
	ItemID    string `json:"item_id"`
	Slot      string `json:"slot"`
	Timestamp int64  `json:"timestamp"`
}

// ProfileActivatedPayload is emitted after an activation flips a partition.
type ProfileActivatedPayload struct {
	AccountID string `json:"account_id"`
	ProfileID string `json:"profile_id"`
	Scope     string `json:"scope,omitempty"`
	Timestamp int64  `json:"timestamp"`
}
