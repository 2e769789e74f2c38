package metrics

import (
	"context"

	"github.com/orvane/Gemstore_Go/internal/domain"
	"github.com/orvane/Gemstore_Go/internal/event"
	"github.com/orvane/Gemstore_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.PurchaseCompleted,
		event.EffectApplied,
		event.FulfillmentRetried,
		event.FulfillmentResolved,
		event.ItemEquipped,
		event.ProfileActivated,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch payload := evt.Payload.(type) {
	case domain.PurchaseCompletedPayload:
		PurchasesCompleted.Inc()
		GemsSpent.Add(float64(payload.TotalAmount))

	case domain.EffectAppliedPayload:
		EffectsApplied.WithLabelValues(string(payload.Effect)).Inc()
		if payload.Effect == domain.EffectGemGrant {
			GemsGranted.Add(float64(payload.GrantedAmount))
		}

	case domain.FulfillmentRetriedPayload:
		FulfillmentsRetried.Add(float64(len(payload.Retried)))

	case domain.FulfillmentResolvedPayload:
		FulfillmentsResolved.WithLabelValues(string(payload.Status)).Inc()

	case domain.ItemEquippedPayload:
		ItemsEquipped.WithLabelValues(payload.Slot).Inc()

	case domain.ProfileActivatedPayload:
		ProfilesActivated.Inc()

	default:
		log.Debug(LogMsgUnhandledPayload, "type", evt.Type)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
