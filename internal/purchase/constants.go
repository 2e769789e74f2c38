package purchase

// ==================== Error Messages ====================

const (
	ErrMsgNoLines                 = "purchase has no lines"
	ErrMsgTooManyLinesFmt         = "purchase has %d lines, maximum is %d: %w"
	ErrMsgInvalidQuantityFmt      = "invalid quantity %d for item %s: %w"
	ErrMsgUniqueQuantityFmt       = "unique item %s cannot be purchased with quantity %d: %w"
	ErrMsgAccountRequired         = "account id is required"
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
	ErrMsgEffectMissing           = "functional item has no effect metadata"
	ErrMsgEffectGrantInvalid      = "gem grant amount must be positive"
	ErrMsgEffectUnknown           = "unknown effect kind"
)

// ==================== Log Messages ====================

const (
	LogMsgCreatePurchaseCalled = "CreatePurchase called"
	LogMsgPurchaseCompleted    = "Purchase completed"
	LogMsgPurchaseDeduplicated = "Purchase deduplicated by idempotency key"
	LogMsgGetOrderCalled       = "GetOrder called"
	LogMsgListOrdersCalled     = "ListOrders called"
	LogMsgEffectApplied        = "Functional effect handled"
)

// Ledger descriptions
const (
	DescriptionPurchase   = "store purchase"
	DescriptionGemGrant   = "gem pack grant"
)

// Order history paging defaults
const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)
