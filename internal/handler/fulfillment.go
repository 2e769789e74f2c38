package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/orvane/Gemstore_Go/internal/domain"
	"github.com/orvane/Gemstore_Go/internal/fulfillment"
	"github.com/orvane/Gemstore_Go/internal/logger"
)

// HandleGetFulfillment returns one fulfillment record.
//
//	@Summary		Get fulfillment
//	@Tags			fulfillment
//	@Produce		json
//	@Param			fulfillmentID	path		string	true	"Fulfillment ID"
//	@Success		200				{object}	domain.Fulfillment
//	@Failure		404				{object}	ErrorResponse
//	@Router			/fulfillments/{fulfillmentID} [get]
func HandleGetFulfillment(fulfillmentService fulfillment.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fulfillmentID := chi.URLParam(r, "fulfillmentID")

		f, err := fulfillmentService.GetFulfillment(r.Context(), fulfillmentID)
		if err != nil {
			respondServiceError(w, r, "Get fulfillment", err)
			return
		}

		respondJSON(w, http.StatusOK, f)
	}
}

// FulfillmentListResponse wraps an order's fulfillment records.
type FulfillmentListResponse struct {
	OrderID      string               `json:"order_id"`
	Fulfillments []domain.Fulfillment `json:"fulfillments"`
}

// HandleListOrderFulfillments returns the fulfillments of one order.
//
//	@Summary		List order fulfillments
//	@Tags			fulfillment
//	@Produce		json
//	@Param			orderID	path		string	true	"Order ID"
//	@Success		200		{object}	FulfillmentListResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/orders/{orderID}/fulfillments [get]
func HandleListOrderFulfillments(fulfillmentService fulfillment.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID := chi.URLParam(r, "orderID")

		fulfillments, err := fulfillmentService.ListByOrder(r.Context(), orderID)
		if err != nil {
			respondServiceError(w, r, "List order fulfillments", err)
			return
		}

		respondJSON(w, http.StatusOK, FulfillmentListResponse{
			OrderID:      orderID,
			Fulfillments: fulfillments,
		})
	}
}

// RetryFulfillmentsResponse lists the fulfillments moved back to RETRY.
type RetryFulfillmentsResponse struct {
	OrderID string   `json:"order_id"`
	Retried []string `json:"retried"`
}

// HandleRetryFulfillments re-queues an order's FAILED fulfillments.
//
//	@Summary		Retry failed fulfillments
//	@Description	Moves every FAILED fulfillment on a COMPLETED order back to RETRY for the delivery worker to pick up.
//	@Tags			fulfillment
//	@Produce		json
//	@Param			orderID		path		string	true	"Order ID"
//	@Param			account_id	query		string	true	"Account ID"
//	@Success		200			{object}	RetryFulfillmentsResponse
//	@Failure		400			{object}	ErrorResponse	"Nothing to retry"
//	@Failure		404			{object}	ErrorResponse
//	@Router			/orders/{orderID}/fulfillments/retry [post]
func HandleRetryFulfillments(fulfillmentService fulfillment.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID := chi.URLParam(r, "orderID")
		accountID, ok := GetQueryParam(r, w, "account_id")
		if !ok {
			return
		}

		retried, err := fulfillmentService.RetryFailed(r.Context(), accountID, orderID)
		if err != nil {
			respondServiceError(w, r, "Retry fulfillments", err)
			return
		}

		logger.FromContext(r.Context()).Info("Fulfillments re-queued",
			"order_id", orderID,
			"count", len(retried))
		respondJSON(w, http.StatusOK, RetryFulfillmentsResponse{
			OrderID: orderID,
			Retried: retried,
		})
	}
}

// ResolveFulfillmentRequest is the delivery worker's completion callback body.
type ResolveFulfillmentRequest struct {
	Status string `json:"status" validate:"required,oneof=PROCESSING COMPLETED FAILED"`
}

// HandleResolveFulfillment records a delivery worker status transition.
//
//	@Summary		Resolve fulfillment
//	@Description	Completion callback for the external delivery worker. COMPLETED is terminal.
//	@Tags			fulfillment
//	@Accept			json
//	@Produce		json
//	@Param			fulfillmentID	path		string						true	"Fulfillment ID"
//	@Param			request			body		ResolveFulfillmentRequest	true	"New status"
//	@Success		200				{object}	domain.Fulfillment
//	@Failure		400				{object}	ValidationErrorResponse
//	@Failure		404				{object}	ErrorResponse
//	@Failure		409				{object}	ErrorResponse	"Already finalized"
//	@Router			/fulfillments/{fulfillmentID}/resolve [post]
func HandleResolveFulfillment(fulfillmentService fulfillment.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fulfillmentID := chi.URLParam(r, "fulfillmentID")

		var req ResolveFulfillmentRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Resolve fulfillment"); err != nil {
			return
		}

		f, err := fulfillmentService.Resolve(r.Context(), fulfillmentID, domain.FulfillmentStatus(req.Status))
		if err != nil {
			respondServiceError(w, r, "Resolve fulfillment", err)
			return
		}

		logger.FromContext(r.Context()).Info("Fulfillment resolved",
			"fulfillment_id", fulfillmentID,
			"status", req.Status)
		respondJSON(w, http.StatusOK, f)
	}
}
