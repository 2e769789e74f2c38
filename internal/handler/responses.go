package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/orvane/Gemstore_Go/internal/domain"
	"github.com/orvane/Gemstore_Go/internal/logger"
)

// encodeBuffers recycles the buffers respondJSON encodes into. Store
// responses are small, so 512 bytes covers nearly all of them without a
// second allocation.
var encodeBuffers = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := encodeBuffers.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		encodeBuffers.Put(buf)
	}()

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent at this point
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."

	// Wallet messages
	ErrMsgWalletNotFoundError = "Wallet not found. Register the account first."
	ErrMsgNotEnoughGemsError  = "Not enough gems"
	ErrMsgWalletExistsError   = "Account already has a wallet"

	// Catalog / purchase messages
	ErrMsgItemNotFoundError      = "Item not found"
	ErrMsgItemUnavailableError   = "Item is not available for purchase"
	ErrMsgAlreadyOwnedError      = "You already own that item"
	ErrMsgDuplicatePurchaseError = "This purchase was already processed"
	ErrMsgOrderNotFoundError     = "Order not found"

	// Inventory messages
	ErrMsgNotInInventoryError = "You don't have that item"
	ErrMsgItemExhaustedError  = "That item is used up"
	ErrMsgNotEnoughItemsError = "Not enough items"

	// Fulfillment messages
	ErrMsgFulfillmentNotFound     = "Fulfillment not found"
	ErrMsgFulfillmentFinalizedErr = "Fulfillment is already finalized"
	ErrMsgNothingToRetryError     = "No failed fulfillments to retry"

	// Profile / equipment messages
	ErrMsgProfileNotFoundError = "Profile not found"
	ErrMsgNameTakenError       = "That profile name is already used in this scope"
	ErrMsgNotEquippableError   = "That item cannot be equipped"
	ErrMsgScopeMismatchError   = "That item belongs to a different game"
	ErrMsgNotEquippedError     = "That item is not equipped"
	ErrMsgSlotEmptyError       = "That slot is empty"
	ErrMsgUnknownSlotError     = "That item has no equip slot"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP
// responses. Specific sentinels are checked first, then the taxonomy roots,
// so every classified service error ends up with a sensible status.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusPaymentRequired, ErrMsgNotEnoughGemsError
	case errors.Is(err, domain.ErrWalletNotFound):
		return http.StatusNotFound, ErrMsgWalletNotFoundError
	case errors.Is(err, domain.ErrWalletExists):
		return http.StatusConflict, ErrMsgWalletExistsError
	case errors.Is(err, domain.ErrItemInactive):
		return http.StatusNotFound, ErrMsgItemUnavailableError
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrOrderNotFound):
		return http.StatusNotFound, ErrMsgOrderNotFoundError
	case errors.Is(err, domain.ErrAlreadyOwned):
		return http.StatusConflict, ErrMsgAlreadyOwnedError
	case errors.Is(err, domain.ErrDuplicatePurchase):
		return http.StatusConflict, ErrMsgDuplicatePurchaseError
	case errors.Is(err, domain.ErrNotInInventory):
		return http.StatusNotFound, ErrMsgNotInInventoryError
	case errors.Is(err, domain.ErrItemExhausted):
		return http.StatusBadRequest, ErrMsgItemExhaustedError
	case errors.Is(err, domain.ErrInsufficientQuantity):
		return http.StatusBadRequest, ErrMsgNotEnoughItemsError
	case errors.Is(err, domain.ErrFulfillmentNotFound):
		return http.StatusNotFound, ErrMsgFulfillmentNotFound
	case errors.Is(err, domain.ErrFulfillmentFinalized):
		return http.StatusConflict, ErrMsgFulfillmentFinalizedErr
	case errors.Is(err, domain.ErrNothingToRetry):
		return http.StatusBadRequest, ErrMsgNothingToRetryError
	case errors.Is(err, domain.ErrProfileNotFound):
		return http.StatusNotFound, ErrMsgProfileNotFoundError
	case errors.Is(err, domain.ErrProfileNameTaken):
		return http.StatusConflict, ErrMsgNameTakenError
	case errors.Is(err, domain.ErrNotEquippable):
		return http.StatusBadRequest, ErrMsgNotEquippableError
	case errors.Is(err, domain.ErrScopeMismatch):
		return http.StatusBadRequest, ErrMsgScopeMismatchError
	case errors.Is(err, domain.ErrNotEquipped):
		return http.StatusNotFound, ErrMsgNotEquippedError
	case errors.Is(err, domain.ErrSlotEmpty):
		return http.StatusNotFound, ErrMsgSlotEmptyError
	case errors.Is(err, domain.ErrUnknownSlot):
		return http.StatusBadRequest, ErrMsgUnknownSlotError
	}

	// Taxonomy roots, for sentinels without a dedicated message
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, err.Error()
	case errors.Is(err, domain.ErrInvalidRequest):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	}

	// Unclassified errors are internal; never leak their text
	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// respondServiceError logs a failed service call and writes the mapped
// user-facing response.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	log := logger.FromContext(r.Context())
	status, message := mapServiceErrorToUserMessage(err)
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Warn(opName+" rejected", "error", err, "status", status)
	}
	respondError(w, status, message)
}
