package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/orvane/Gemstore_Go/internal/domain"
	"github.com/orvane/Gemstore_Go/internal/logger"
	"github.com/orvane/Gemstore_Go/internal/purchase"
)

// CreatePurchaseRequest is a multi-line purchase submission. The idempotency
// key dedupes client retries within the purchase service's window.
type CreatePurchaseRequest struct {
	AccountID      string                `json:"account_id" validate:"required,max=128"`
	Lines          []domain.PurchaseLine `json:"lines" validate:"required,min=1,dive"`
	IdempotencyKey string                `json:"idempotency_key" validate:"omitempty,max=128"`
}

// HandleCreatePurchase runs the atomic purchase transaction.
//
//	@Summary		Create a purchase
//	@Description	Debits the wallet, creates the order, grants inventory, applies functional effects, and records fulfillments in a single transaction.
//	@Tags			purchase
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreatePurchaseRequest	true	"Purchase lines"
//	@Success		201		{object}	domain.PurchaseResult
//	@Failure		400		{object}	ValidationErrorResponse
//	@Failure		402		{object}	ErrorResponse	"Insufficient funds"
//	@Failure		404		{object}	ErrorResponse	"Unknown item or wallet"
//	@Failure		409		{object}	ErrorResponse	"Already owned or duplicate purchase"
//	@Router			/purchases [post]
func HandleCreatePurchase(purchaseService purchase.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreatePurchaseRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create purchase"); err != nil {
			return
		}

		result, err := purchaseService.CreatePurchase(r.Context(), req.AccountID, req.Lines, req.IdempotencyKey)
		if err != nil {
			respondServiceError(w, r, "Create purchase", err)
			return
		}

		logger.FromContext(r.Context()).Info("Purchase created",
			"account_id", req.AccountID,
			"order_id", result.Order.ID,
			"total", result.Order.TotalAmount)
		respondJSON(w, http.StatusCreated, result)
	}
}

// HandleGetOrder returns one order with its lines and fulfillments.
//
//	@Summary		Get order
//	@Tags			purchase
//	@Produce		json
//	@Param			orderID	path		string	true	"Order ID"
//	@Success		200		{object}	domain.OrderWithLines
//	@Failure		404		{object}	ErrorResponse
//	@Router			/orders/{orderID} [get]
func HandleGetOrder(purchaseService purchase.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID := chi.URLParam(r, "orderID")

		order, err := purchaseService.GetOrder(r.Context(), orderID)
		if err != nil {
			respondServiceError(w, r, "Get order", err)
			return
		}

		respondJSON(w, http.StatusOK, order)
	}
}

// OrderHistoryResponse wraps a page of an account's orders.
type OrderHistoryResponse struct {
	AccountID string                  `json:"account_id"`
	Orders    []domain.OrderWithLines `json:"orders"`
}

// HandleListOrders returns the account's purchase history, newest first.
//
//	@Summary		List orders
//	@Tags			purchase
//	@Produce		json
//	@Param			account_id	query		string	true	"Account ID"
//	@Param			status		query		string	false	"Filter by order status (COMPLETED or FAILED)"
//	@Param			limit		query		int		false	"Page size (default 20, max 100)"
//	@Param			offset		query		int		false	"Page offset"
//	@Success		200			{object}	OrderHistoryResponse
//	@Failure		400			{object}	ErrorResponse
//	@Router			/orders [get]
func HandleListOrders(purchaseService purchase.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, ok := GetQueryParam(r, w, "account_id")
		if !ok {
			return
		}
		limit, offset, ok := GetPagingParams(r, w)
		if !ok {
			return
		}

		filter := domain.OrderHistoryFilter{Limit: limit, Offset: offset}
		if raw := r.URL.Query().Get("status"); raw != "" {
			status := domain.OrderStatus(raw)
			if status != domain.OrderCompleted && status != domain.OrderFailed {
				http.Error(w, ErrMsgInvalidStatus, http.StatusBadRequest)
				return
			}
			filter.Status = &status
		}

		orders, err := purchaseService.ListOrders(r.Context(), accountID, filter)
		if err != nil {
			respondServiceError(w, r, "List orders", err)
			return
		}

		respondJSON(w, http.StatusOK, OrderHistoryResponse{
			AccountID: accountID,
			Orders:    orders,
		})
	}
}
