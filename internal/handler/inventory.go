package handler

import (
	"net/http"

	"github.com/orvane/Gemstore_Go/internal/inventory"
	"github.com/orvane/Gemstore_Go/internal/logger"
)

// InventoryResponse wraps an account's owned items.
type InventoryResponse struct {
	AccountID string                `json:"account_id"`
	Items     []inventory.OwnedItem `json:"items"`
}

// HandleGetInventory returns the account's inventory with catalog details.
//
//	@Summary		Get inventory
//	@Description	Lists the account's owned items, hydrated with catalog details where available.
//	@Tags			inventory
//	@Produce		json
//	@Param			account_id	query		string	true	"Account ID"
//	@Success		200			{object}	InventoryResponse
//	@Failure		400			{object}	ErrorResponse
//	@Router			/inventory [get]
func HandleGetInventory(inventoryService inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, ok := GetQueryParam(r, w, "account_id")
		if !ok {
			return
		}

		items, err := inventoryService.ListInventory(r.Context(), accountID)
		if err != nil {
			respondServiceError(w, r, "Get inventory", err)
			return
		}

		respondJSON(w, http.StatusOK, InventoryResponse{
			AccountID: accountID,
			Items:     items,
		})
	}
}

// UseItemRequest consumes units of an owned consumable item.
type UseItemRequest struct {
	AccountID string `json:"account_id" validate:"required,max=128"`
	ItemID    string `json:"item_id" validate:"required,max=128"`
	Count     int    `json:"count" validate:"required,gt=0"`
}

// HandleUseItem consumes units of an owned item.
//
//	@Summary		Use an item
//	@Description	Consumes count units of an owned item. The quantity never goes negative; the last unit marks the entry exhausted.
//	@Tags			inventory
//	@Accept			json
//	@Produce		json
//	@Param			request	body		UseItemRequest	true	"Item usage"
//	@Success		200		{object}	domain.InventoryEntry
//	@Failure		400		{object}	ErrorResponse	"Exhausted or insufficient quantity"
//	@Failure		404		{object}	ErrorResponse	"Not in inventory"
//	@Router			/inventory/use [post]
func HandleUseItem(inventoryService inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UseItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Use item"); err != nil {
			return
		}

		entry, err := inventoryService.UseItem(r.Context(), req.AccountID, req.ItemID, req.Count)
		if err != nil {
			respondServiceError(w, r, "Use item", err)
			return
		}

		logger.FromContext(r.Context()).Info("Item used",
			"account_id", req.AccountID,
			"item_id", req.ItemID,
			"count", req.Count,
			"remaining", entry.Quantity)
		respondJSON(w, http.StatusOK, entry)
	}
}
