package domain

// Purchase request limits
const (
	// MinLineQuantity is the smallest quantity a purchase line may request.
	MinLineQuantity = 1

	// MaxLineQuantity is the largest quantity a purchase line may request.
	MaxLineQuantity = 100

	// MaxPurchaseLines bounds the number of lines in a single purchase.
	MaxPurchaseLines = 25
)

// StartingBalance is the gem balance a wallet is created with.
const StartingBalance int64 = 500

// Event type names shared between publishers and subscribers
const (
	EventTypePurchaseCompleted   = "purchase.completed"
	EventTypeEffectApplied       = "effect.applied"
	EventTypeFulfillmentRetried  = "fulfillment.retried"
	EventTypeFulfillmentResolved = "fulfillment.resolved"
	EventTypeItemEquipped        = "item.equipped"
	EventTypeProfileActivated    = "profile.activated"
)
