package domain

import "time"

// InventoryEntry records ownership of one item by one account. The
// (account, item) pair is unique; stackable items accumulate quantity on the
// single entry, unique items are pinned at quantity 1. Entries are never
// deleted - a consumed entry is marked exhausted instead.
type InventoryEntry struct {
	AccountID   string     `json:"account_id"`
	ItemID      string     `json:"item_id"`
	Quantity    int        `json:"quantity"`
	IsExhausted bool       `json:"is_exhausted"`
	AcquiredAt  time.Time  `json:"acquired_at"`
	LastUsedAt  *time.Time `json:"last_used_at,omitempty"`
}

// Usable reports whether the entry can back an equip or a use operation.
func (e InventoryEntry) Usable() bool {
	return !e.IsExhausted && e.Quantity > 0
}
