package inventory

// ==================== Error Messages ====================

const (
	ErrMsgAccountRequired         = "account id is required"
	ErrMsgItemRequired            = "item id is required"
	ErrMsgInvalidUseCountFmt      = "invalid use count %d: %w"
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgListInventoryCalled = "ListInventory called"
	LogMsgGetEntryCalled      = "GetEntry called"
	LogMsgUseItemCalled       = "UseItem called"
	LogMsgItemUsed            = "Item used"
	LogMsgItemExhausted       = "Inventory entry exhausted"
	LogMsgHydrationFailed     = "Catalog hydration failed for inventory entry"
)
