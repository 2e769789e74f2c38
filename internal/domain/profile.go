package domain

import "time"

// CharacterProfile is a named loadout an account maintains per game scope.
// Scope empty means platform-wide. At most one profile per (account, scope)
// partition is active at a time.
type CharacterProfile struct {
	ID        string            `json:"profile_id"`
	AccountID string            `json:"account_id"`
	// Scope is the game identifier the profile belongs to; empty is the
	// platform-wide partition.
	Scope    string            `json:"scope,omitempty"`
	Name     string            `json:"name"`
	IsActive bool              `json:"is_active"`
	Metadata map[string]string `json:"metadata,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}

// EquipSlot is a named attachment point on a profile.
type EquipSlot string

const (
	SlotWeapon  EquipSlot = "weapon"
	SlotBody    EquipSlot = "body"
	SlotHead    EquipSlot = "head"
	SlotTrinket EquipSlot = "trinket"
)

// EquippedItem pairs an owned item with a slot on a profile. At most one row
// per (profile, slot) and at most one per (profile, item).
type EquippedItem struct {
	ProfileID  string    `json:"profile_id"`
	ItemID     string    `json:"item_id"`
	Slot       EquipSlot `json:"slot"`
	EquippedAt time.Time `json:"equipped_at"`
}

// slotByCategory maps item categories to their default slot. Items may
// override this through EffectMetadata.SlotOverride.
var slotByCategory = map[string]EquipSlot{
	"weapon":    SlotWeapon,
	"outfit":    SlotBody,
	"headgear":  SlotHead,
	"accessory": SlotTrinket,
}

// SlotForItem resolves the equip slot for an item: an explicit request wins,
// then an item-declared override, then the category default.
func SlotForItem(item CatalogItem, requested EquipSlot) (EquipSlot, bool) {
	if requested != "" {
		return requested, true
	}
	if item.Effect != nil && item.Effect.SlotOverride != "" {
		return EquipSlot(item.Effect.SlotOverride), true
	}
	slot, ok := slotByCategory[item.Category]
	return slot, ok
}
