package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/orvane/Gemstore_Go/internal/domain"
	"github.com/orvane/Gemstore_Go/internal/equipment"
	"github.com/orvane/Gemstore_Go/internal/logger"
)

// EquipItemRequest attaches an owned item to a slot on a profile. Slot is
// optional; when empty the slot is resolved from the item.
type EquipItemRequest struct {
	AccountID string `json:"account_id" validate:"required,max=128"`
	ItemID    string `json:"item_id" validate:"required,max=128"`
	Slot      string `json:"slot" validate:"equipslot"`
}

// HandleEquipItem equips an owned item on a profile.
//
//	@Summary		Equip item
//	@Description	Attaches an owned item to a slot. The target slot and any slot the item already occupies are vacated atomically.
//	@Tags			equipment
//	@Accept			json
//	@Produce		json
//	@Param			profileID	path		string				true	"Profile ID"
//	@Param			request		body		EquipItemRequest	true	"Item and slot"
//	@Success		200			{object}	domain.EquippedItem
//	@Failure		400			{object}	ErrorResponse	"Not equippable, wrong scope, or no slot"
//	@Failure		404			{object}	ErrorResponse	"Profile or item not found"
//	@Router			/profiles/{profileID}/equipment [post]
func HandleEquipItem(equipmentService equipment.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profileID := chi.URLParam(r, "profileID")

		var req EquipItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Equip item"); err != nil {
			return
		}

		equipped, err := equipmentService.Equip(r.Context(), req.AccountID, profileID, req.ItemID, domain.EquipSlot(req.Slot))
		if err != nil {
			respondServiceError(w, r, "Equip item", err)
			return
		}

		logger.FromContext(r.Context()).Info("Item equipped",
			"account_id", req.AccountID,
			"profile_id", profileID,
			"item_id", req.ItemID,
			"slot", equipped.Slot)
		respondJSON(w, http.StatusOK, equipped)
	}
}

// HandleUnequipItem removes an item from whatever slot it occupies.
//
//	@Summary		Unequip item
//	@Tags			equipment
//	@Produce		json
//	@Param			profileID	path		string	true	"Profile ID"
//	@Param			itemID		path		string	true	"Item ID"
//	@Param			account_id	query		string	true	"Account ID"
//	@Success		200			{object}	SuccessResponse
//	@Failure		404			{object}	ErrorResponse
//	@Router			/profiles/{profileID}/equipment/item/{itemID} [delete]
func HandleUnequipItem(equipmentService equipment.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profileID := chi.URLParam(r, "profileID")
		itemID := chi.URLParam(r, "itemID")
		accountID, ok := GetQueryParam(r, w, "account_id")
		if !ok {
			return
		}

		if err := equipmentService.UnequipItem(r.Context(), accountID, profileID, itemID); err != nil {
			respondServiceError(w, r, "Unequip item", err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgItemUnequipped})
	}
}

// HandleUnequipSlot vacates a slot on a profile.
//
//	@Summary		Clear equipment slot
//	@Tags			equipment
//	@Produce		json
//	@Param			profileID	path		string	true	"Profile ID"
//	@Param			slot		path		string	true	"Slot name"
//	@Param			account_id	query		string	true	"Account ID"
//	@Success		200			{object}	SuccessResponse
//	@Failure		404			{object}	ErrorResponse	"Profile not found or slot empty"
//	@Router			/profiles/{profileID}/equipment/slot/{slot} [delete]
func HandleUnequipSlot(equipmentService equipment.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profileID := chi.URLParam(r, "profileID")
		slot := chi.URLParam(r, "slot")
		accountID, ok := GetQueryParam(r, w, "account_id")
		if !ok {
			return
		}

		if err := equipmentService.UnequipSlot(r.Context(), accountID, profileID, domain.EquipSlot(slot)); err != nil {
			respondServiceError(w, r, "Clear slot", err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgSlotCleared})
	}
}

// EquipmentResponse wraps a profile's equipped items.
type EquipmentResponse struct {
	ProfileID string               `json:"profile_id"`
	Equipped  []domain.EquippedItem `json:"equipped"`
}

// HandleListEquipped returns everything equipped on a profile.
//
//	@Summary		List equipped items
//	@Tags			equipment
//	@Produce		json
//	@Param			profileID	path		string	true	"Profile ID"
//	@Param			account_id	query		string	true	"Account ID"
//	@Success		200			{object}	EquipmentResponse
//	@Failure		404			{object}	ErrorResponse
//	@Router			/profiles/{profileID}/equipment [get]
func HandleListEquipped(equipmentService equipment.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profileID := chi.URLParam(r, "profileID")
		accountID, ok := GetQueryParam(r, w, "account_id")
		if !ok {
			return
		}

		equipped, err := equipmentService.ListEquipped(r.Context(), accountID, profileID)
		if err != nil {
			respondServiceError(w, r, "List equipped", err)
			return
		}

		respondJSON(w, http.StatusOK, EquipmentResponse{
			ProfileID: profileID,
			Equipped:  equipped,
		})
	}
}
