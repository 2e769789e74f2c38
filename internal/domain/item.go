package domain

import "encoding/json"

// Stacking determines how ownership accumulates.
type Stacking string

const (
	// StackingStackable items accumulate quantity on a single inventory entry.
	StackingStackable Stacking = "STACKABLE"
	// StackingUnique items may be owned at most once per account.
	StackingUnique Stacking = "UNIQUE"
)

// DeliveryChannel describes how a purchased item reaches the buyer.
type DeliveryChannel string

const (
	// DeliveryInstant items are granted in-place; fulfillment resolves immediately.
	DeliveryInstant DeliveryChannel = "INSTANT"
	// DeliveryEmail items are delivered by the external mail worker.
	DeliveryEmail DeliveryChannel = "EMAIL"
	// DeliveryExternalShip items are physically shipped by the external worker.
	DeliveryExternalShip DeliveryChannel = "EXTERNAL_SHIP"
	// DeliveryFunctional items apply an effect at purchase time.
	DeliveryFunctional DeliveryChannel = "FUNCTIONAL"
)

// EffectKind identifies an in-transaction or delegated item effect.
type EffectKind string

const (
	// EffectGemGrant credits the buyer's wallet inside the purchase transaction.
	EffectGemGrant EffectKind = "GEM_GRANT"
	// EffectGameplayModifier is recorded and delegated to the game-systems
	// collaborator; the store never executes it.
	EffectGameplayModifier EffectKind = "GAMEPLAY_MODIFIER"
)

// EffectMetadata declares what a FUNCTIONAL item does when purchased.
type EffectMetadata struct {
	Kind EffectKind `json:"kind"`
	// GrantAmount is the gem amount credited per unit for GEM_GRANT effects.
	GrantAmount int64 `json:"grant_amount,omitempty"`
	// Modifier names the gameplay modifier for GAMEPLAY_MODIFIER effects.
	Modifier string `json:"modifier,omitempty"`
	// DurationSeconds bounds a timed modifier; zero means permanent.
	DurationSeconds int64 `json:"duration_seconds,omitempty"`
	// NoInventoryFootprint marks instant-apply-only items that never
	// materialize as an inventory entry.
	NoInventoryFootprint bool `json:"no_inventory_footprint,omitempty"`
	// SlotOverride forces a specific equip slot regardless of category.
	SlotOverride string `json:"slot_override,omitempty"`
}

// CatalogItem is a purchasable catalog entry. The catalog collaborator owns
// these rows; the core treats them as read-only.
type CatalogItem struct {
	ID              string          `json:"item_id"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	Category        string          `json:"category"`
	Price           int64           `json:"price"`
	Stacking        Stacking        `json:"stacking"`
	DeliveryChannel DeliveryChannel `json:"delivery_channel"`
	// Scope is the game identifier the item belongs to; empty means the item
	// is usable platform-wide.
	Scope  string          `json:"scope,omitempty"`
	Active bool            `json:"active"`
	Effect *EffectMetadata `json:"effect,omitempty"`
}

// HasInstantEffect reports whether purchasing the item mutates the wallet
// inside the purchase transaction.
func (i CatalogItem) HasInstantEffect() bool {
	return i.Effect != nil && i.Effect.Kind == EffectGemGrant
}

// SkipsInventory reports whether the item leaves no inventory footprint.
func (i CatalogItem) SkipsInventory() bool {
	return i.DeliveryChannel == DeliveryFunctional && i.Effect != nil && i.Effect.NoInventoryFootprint
}

// DecodeEffectMetadata parses the JSONB effect column.
func DecodeEffectMetadata(raw []byte) (*EffectMetadata, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var meta EffectMetadata
	if err := json.Unmarshal(raw, &meta); err != nil {
		return nil, err
	}
	if meta.Kind == "" {
		return nil, nil
	}
	return &meta, nil
}
