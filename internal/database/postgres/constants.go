package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - Wallet Operations
const (
	ErrMsgFailedToGetWallet          = "failed to get wallet"
	ErrMsgFailedToCreateWallet       = "failed to create wallet"
	ErrMsgFailedToDebitWallet        = "failed to debit wallet"
	ErrMsgFailedToCreditWallet       = "failed to credit wallet"
	ErrMsgFailedToInsertLedgerRow    = "failed to insert wallet transaction"
	ErrMsgFailedToQueryLedger        = "failed to query wallet transactions"
	ErrMsgFailedToSetLedgerReference = "failed to set wallet transaction reference"
)

// Error Messages - Catalog Operations
const (
	ErrMsgFailedToGetItem     = "failed to get catalog item"
	ErrMsgFailedToQueryItems  = "failed to query catalog items"
	ErrMsgFailedToDecodeEffect = "failed to decode effect metadata"
)

// Error Messages - Order Operations
const (
	ErrMsgFailedToInsertOrder     = "failed to insert order"
	ErrMsgFailedToInsertOrderLine = "failed to insert order line"
	ErrMsgFailedToGetOrder        = "failed to get order"
	ErrMsgFailedToQueryOrders     = "failed to query orders"
	ErrMsgFailedToQueryOrderLines = "failed to query order lines"
)

// Error Messages - Inventory Operations
const (
	ErrMsgFailedToGetInventory   = "failed to get inventory entry"
	ErrMsgFailedToQueryInventory = "failed to query inventory"
	ErrMsgFailedToGrantInventory = "failed to grant inventory"
	ErrMsgFailedToRecordUsage    = "failed to record item usage"
	ErrMsgFailedToQueryOwnership = "failed to query unique ownership"
)

// Error Messages - Fulfillment Operations
const (
	ErrMsgFailedToInsertFulfillment = "failed to insert fulfillment"
	ErrMsgFailedToGetFulfillment    = "failed to get fulfillment"
	ErrMsgFailedToQueryFulfillments = "failed to query fulfillments"
	ErrMsgFailedToUpdateFulfillment = "failed to update fulfillment"
	ErrMsgFailedToRequeueFailed     = "failed to requeue failed fulfillments"
)

// Error Messages - Profile Operations
const (
	ErrMsgFailedToInsertProfile  = "failed to insert profile"
	ErrMsgFailedToGetProfile     = "failed to get profile"
	ErrMsgFailedToQueryProfiles  = "failed to query profiles"
	ErrMsgFailedToDeleteProfile  = "failed to delete profile"
	ErrMsgFailedToSetActive      = "failed to set active profile"
	ErrMsgFailedToClearActive    = "failed to clear active profile"
	ErrMsgFailedToMarshalProfile = "failed to marshal profile metadata"
)

// Error Messages - Equipment Operations
const (
	ErrMsgFailedToQueryEquipped  = "failed to query equipped items"
	ErrMsgFailedToInsertEquipped = "failed to insert equipped item"
	ErrMsgFailedToClearEquipped  = "failed to clear equipped item"
)
