package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/orvane/Gemstore_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}

	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}

	return nil
}

// Common event types
const (
	PurchaseCompleted   Type = Type(domain.EventTypePurchaseCompleted)
	EffectApplied       Type = Type(domain.EventTypeEffectApplied)
	FulfillmentRetried  Type = Type(domain.EventTypeFulfillmentRetried)
	FulfillmentResolved Type = Type(domain.EventTypeFulfillmentResolved)
	ItemEquipped        Type = Type(domain.EventTypeItemEquipped)
	ProfileActivated    Type = Type(domain.EventTypeProfileActivated)
)

// Type-safe event constructors

// NewPurchaseCompletedEvent creates a new purchase completed event
func NewPurchaseCompletedEvent(accountID, orderID string, totalAmount int64, lineCount int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PurchaseCompleted,
		Payload: domain.PurchaseCompletedPayload{
			AccountID:   accountID,
			OrderID:     orderID,
			TotalAmount: totalAmount,
			LineCount:   lineCount,
			Timestamp:   time.Now().Unix(),
		},
		Metadata: map[string]interface{}{
			"order_id": orderID,
		},
	}
}

// NewEffectAppliedEvent creates a new effect applied event carrying the
// normalized effect record for downstream game systems
func NewEffectAppliedEvent(payload domain.EffectAppliedPayload) Event {
	if payload.Timestamp == 0 {
		payload.Timestamp = time.Now().Unix()
	}
	return Event{
		Version:  EventSchemaVersion,
		Type:     EffectApplied,
		Payload:  payload,
		Metadata: nil,
	}
}

// NewFulfillmentRetriedEvent creates a new fulfillment retried event
func NewFulfillmentRetriedEvent(accountID, orderID string, retried []string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    FulfillmentRetried,
		Payload: domain.FulfillmentRetriedPayload{
			AccountID: accountID,
			OrderID:   orderID,
			Retried:   retried,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewFulfillmentResolvedEvent creates a new fulfillment resolved event
func NewFulfillmentResolvedEvent(fulfillmentID, orderID string, status domain.FulfillmentStatus) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    FulfillmentResolved,
		Payload: domain.FulfillmentResolvedPayload{
			FulfillmentID: fulfillmentID,
			OrderID:       orderID,
			Status:        status,
			Timestamp:     time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewItemEquippedEvent creates a new item equipped event
func NewItemEquippedEvent(accountID, profileID, itemID string, slot domain.EquipSlot) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemEquipped,
		Payload: domain.ItemEquippedPayload{
			AccountID: accountID,
			ProfileID: profileID,
			ItemID:    itemID,
			Slot:      string(slot),
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewProfileActivatedEvent creates a new profile activated event
func NewProfileActivatedEvent(accountID, profileID, scope string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ProfileActivated,
		Payload: domain.ProfileActivatedPayload{
			AccountID: accountID,
			ProfileID: profileID,
			Scope:     scope,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	// For now, we execute handlers synchronously.
	// In the future, or with configuration, we could dispatch these to a worker pool
	// or run them in goroutines.
	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
