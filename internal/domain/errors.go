package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Taxonomy roots
	ErrMsgNotFound          = "not found"
	ErrMsgConflict          = "conflict"
	ErrMsgInvalidRequest    = "invalid request"
	ErrMsgInsufficientFunds = "insufficient funds"

	// Account / wallet errors
	ErrMsgWalletNotFound = "wallet not found"
	ErrMsgWalletExists   = "account already has a wallet"

	// Catalog / item errors
	ErrMsgItemNotFound = "item not found"
	ErrMsgItemInactive = "item is not available"

	// Inventory errors
	ErrMsgNotInInventory      = "item not in inventory"
	ErrMsgItemExhausted       = "item is exhausted"
	ErrMsgAlreadyOwned        = "unique item already owned"
	ErrMsgInsufficientQuantity = "insufficient quantity"

	// Order / fulfillment errors
	ErrMsgOrderNotFound        = "order not found"
	ErrMsgDuplicatePurchase    = "duplicate purchase"
	ErrMsgNothingToRetry       = "no failed fulfillments to retry"
	ErrMsgOrderNotRetryable    = "order is not completed"
	ErrMsgFulfillmentNotFound  = "fulfillment not found"
	ErrMsgFulfillmentFinalized = "fulfillment already finalized"

	// Profile / equipment errors
	ErrMsgProfileNotFound   = "profile not found"
	ErrMsgProfileNameTaken  = "profile name already used in this scope"
	ErrMsgNotEquippable     = "item is not equippable"
	ErrMsgScopeMismatch     = "item scope does not match profile scope"
	ErrMsgNotEquipped       = "item is not equipped"
	ErrMsgSlotEmpty         = "slot is empty"
	ErrMsgUnknownSlot       = "no equip slot for item category"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
	ErrMsgTxClosed      = "tx is closed"
)

// Taxonomy sentinels. Every error a service returns wraps exactly one of
// these four (or is an unclassified storage error surfaced as-is and mapped
// to a generic internal failure at the edge).
var (
	ErrNotFound          = errors.New(ErrMsgNotFound)
	ErrConflict          = errors.New(ErrMsgConflict)
	ErrInvalidRequest    = errors.New(ErrMsgInvalidRequest)
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
)

// Entity-specific errors. These wrap the taxonomy sentinels so callers can
// match either the broad class (errors.Is(err, domain.ErrConflict)) or the
// precise condition (errors.Is(err, domain.ErrAlreadyOwned)).
var (
	ErrWalletNotFound = wrap(ErrNotFound, ErrMsgWalletNotFound)
	ErrWalletExists   = wrap(ErrConflict, ErrMsgWalletExists)

	ErrItemNotFound = wrap(ErrNotFound, ErrMsgItemNotFound)
	ErrItemInactive = wrap(ErrNotFound, ErrMsgItemInactive)

	ErrNotInInventory       = wrap(ErrNotFound, ErrMsgNotInInventory)
	ErrItemExhausted        = wrap(ErrInvalidRequest, ErrMsgItemExhausted)
	ErrAlreadyOwned         = wrap(ErrConflict, ErrMsgAlreadyOwned)
	ErrInsufficientQuantity = wrap(ErrInvalidRequest, ErrMsgInsufficientQuantity)

	ErrOrderNotFound        = wrap(ErrNotFound, ErrMsgOrderNotFound)
	ErrDuplicatePurchase    = wrap(ErrConflict, ErrMsgDuplicatePurchase)
	ErrNothingToRetry       = wrap(ErrInvalidRequest, ErrMsgNothingToRetry)
	ErrOrderNotRetryable    = wrap(ErrInvalidRequest, ErrMsgOrderNotRetryable)
	ErrFulfillmentNotFound  = wrap(ErrNotFound, ErrMsgFulfillmentNotFound)
	ErrFulfillmentFinalized = wrap(ErrConflict, ErrMsgFulfillmentFinalized)

	ErrProfileNotFound  = wrap(ErrNotFound, ErrMsgProfileNotFound)
	ErrProfileNameTaken = wrap(ErrConflict, ErrMsgProfileNameTaken)
	ErrNotEquippable    = wrap(ErrInvalidRequest, ErrMsgNotEquippable)
	ErrScopeMismatch    = wrap(ErrInvalidRequest, ErrMsgScopeMismatch)
	ErrNotEquipped      = wrap(ErrNotFound, ErrMsgNotEquipped)
	ErrSlotEmpty        = wrap(ErrNotFound, ErrMsgSlotEmpty)
	ErrUnknownSlot      = wrap(ErrInvalidRequest, ErrMsgUnknownSlot)
)

// wrap builds a sentinel that carries its own message but unwraps to the
// taxonomy root, so a single errors.Is covers the whole class.
func wrap(root error, msg string) error {
	return &taggedError{root: root, msg: msg}
}

type taggedError struct {
	root error
	msg  string
}

func (e *taggedError) Error() string { return e.msg }

func (e *taggedError) Unwrap() error { return e.root }
