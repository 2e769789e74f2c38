package domain

import "time"

// OrderStatus is the terminal state of a purchase. There is no PENDING state:
// the purchase transaction either commits a COMPLETED order or persists
// nothing at all. FAILED exists only for operator-recorded post-commit
// failures reported by external collaborators.
type OrderStatus string

const (
	OrderCompleted OrderStatus = "COMPLETED"
	OrderFailed    OrderStatus = "FAILED"
)

// Order is created exactly once per accepted purchase and immutable after.
type Order struct {
	ID          string      `json:"order_id"`
	AccountID   string      `json:"account_id"`
	TotalAmount int64       `json:"total_amount"`
	Status      OrderStatus `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
}

// OrderLine is one purchased line item. Sum of LineTotal across an order
// equals Order.TotalAmount equals the wallet debit.
type OrderLine struct {
	OrderID   string `json:"order_id"`
	ItemID    string `json:"item_id"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
	LineTotal int64  `json:"line_total"`
}

// PurchaseLine is a requested line in a createPurchase call.
type PurchaseLine struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// PurchaseResult is the hydrated response for a committed purchase.
type PurchaseResult struct {
	Order        Order         `json:"order"`
	Lines        []OrderLine   `json:"lines"`
	Fulfillments []Fulfillment `json:"fulfillments"`
	// NewBalance is the wallet balance after the debit and any in-transaction
	// effect credits.
	NewBalance int64 `json:"new_balance"`
}

// OrderHistoryFilter selects a page of an account's orders.
type OrderHistoryFilter struct {
	Status *OrderStatus
	Limit  int
	Offset int
}

// OrderWithLines is an order hydrated for history listings.
type OrderWithLines struct {
	Order        Order         `json:"order"`
	Lines        []OrderLine   `json:"lines"`
	Fulfillments []Fulfillment `json:"fulfillments"`
}
