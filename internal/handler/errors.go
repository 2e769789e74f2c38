package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidLimit      = "Invalid limit parameter"
	ErrMsgInvalidOffset     = "Invalid offset parameter"
	ErrMsgInvalidStatus     = "Invalid status filter"

	// Wallet operation error messages
	ErrMsgRegisterFailed  = "Failed to register account"
	ErrMsgGetWalletFailed = "Failed to get wallet"
	ErrMsgGetLedgerFailed = "Failed to get ledger"
	ErrMsgAdjustFailed    = "Failed to adjust balance"

	// Purchase operation error messages
	ErrMsgPurchaseFailed   = "Failed to create purchase"
	ErrMsgGetOrderFailed   = "Failed to get order"
	ErrMsgListOrdersFailed = "Failed to list orders"

	// Inventory operation error messages
	ErrMsgGetInventoryFailed = "Failed to get inventory"
	ErrMsgUseItemFailed      = "Failed to use item"

	// Fulfillment operation error messages
	ErrMsgGetFulfillmentFailed = "Failed to get fulfillment"
	ErrMsgRetryFailed          = "Failed to retry fulfillments"
	ErrMsgResolveFailed        = "Failed to resolve fulfillment"

	// Profile operation error messages
	ErrMsgCreateProfileFailed   = "Failed to create profile"
	ErrMsgListProfilesFailed    = "Failed to list profiles"
	ErrMsgActivateProfileFailed = "Failed to activate profile"
	ErrMsgDeleteProfileFailed   = "Failed to delete profile"

	// Equipment operation error messages
	ErrMsgEquipFailed   = "Failed to equip item"
	ErrMsgUnequipFailed = "Failed to unequip"

	// Catalog operation error messages
	ErrMsgListCatalogFailed = "Failed to list catalog"
)

// Success messages for API responses
const (
	MsgAccountRegistered = "Account registered"
	MsgItemUsed          = "Item used"
	MsgProfileDeleted    = "Profile deleted"
	MsgItemUnequipped    = "Item unequipped"
	MsgSlotCleared       = "Slot cleared"
)
