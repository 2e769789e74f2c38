package config

import "time"

// Default values for tunable knobs
const (
	// DefaultPurchaseDedupWindow is the trailing duplicate-suppression window
	// applied to purchases carrying an idempotency key.
	DefaultPurchaseDedupWindow = 10 * time.Second

	// DefaultCatalogCacheSize is the maximum number of cached catalog items.
	DefaultCatalogCacheSize = 1024

	// DefaultCatalogCacheTTL bounds catalog staleness. Ledger and inventory
	// state are never cached.
	DefaultCatalogCacheTTL = 5 * time.Minute
)
