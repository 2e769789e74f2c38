package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/orvane/Gemstore_Go/internal/domain"
)

func TestHandleEquipItem(t *testing.T) {
	InitValidator()

	newRouter := func(svc *MockEquipmentService) *chi.Mux {
		r := chi.NewRouter()
		r.Post("/profiles/{profileID}/equipment", HandleEquipItem(svc))
		return r
	}

	t.Run("Success with explicit slot", func(t *testing.T) {
		mockSvc := new(MockEquipmentService)
		mockSvc.On("Equip", mock.Anything, "acct-1", "profile-1", "iron-sword", domain.SlotWeapon).
			Return(&domain.EquippedItem{
				ProfileID:  "profile-1",
				ItemID:     "iron-sword",
				Slot:       domain.SlotWeapon,
				EquippedAt: time.Now(),
			}, nil)

		body, _ := json.Marshal(EquipItemRequest{AccountID: "acct-1", ItemID: "iron-sword", Slot: "weapon"})
		req := httptest.NewRequest("POST", "/profiles/profile-1/equipment", bytes.NewBuffer(body))
		w := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"weapon"`)
	})

	t.Run("Empty slot resolved by service", func(t *testing.T) {
		mockSvc := new(MockEquipmentService)
		mockSvc.On("Equip", mock.Anything, "acct-1", "profile-1", "iron-sword", domain.EquipSlot("")).
			Return(&domain.EquippedItem{ProfileID: "profile-1", ItemID: "iron-sword", Slot: domain.SlotWeapon}, nil)

		body, _ := json.Marshal(EquipItemRequest{AccountID: "acct-1", ItemID: "iron-sword"})
		req := httptest.NewRequest("POST", "/profiles/profile-1/equipment", bytes.NewBuffer(body))
		w := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Bad slot name rejected by validation", func(t *testing.T) {
		mockSvc := new(MockEquipmentService)

		body, _ := json.Marshal(EquipItemRequest{AccountID: "acct-1", ItemID: "iron-sword", Slot: "backpack"})
		req := httptest.NewRequest("POST", "/profiles/profile-1/equipment", bytes.NewBuffer(body))
		w := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockSvc.AssertNotCalled(t, "Equip")
	})

	t.Run("Scope mismatch", func(t *testing.T) {
		mockSvc := new(MockEquipmentService)
		mockSvc.On("Equip", mock.Anything, "acct-1", "profile-1", "fps-rifle", domain.EquipSlot("")).
			Return(nil, domain.ErrScopeMismatch)

		body, _ := json.Marshal(EquipItemRequest{AccountID: "acct-1", ItemID: "fps-rifle"})
		req := httptest.NewRequest("POST", "/profiles/profile-1/equipment", bytes.NewBuffer(body))
		w := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgScopeMismatchError)
	})
}

func TestHandleUnequipSlot(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockSvc := new(MockEquipmentService)
		mockSvc.On("UnequipSlot", mock.Anything, "acct-1", "profile-1", domain.SlotHead).Return(nil)

		r := chi.NewRouter()
		r.Delete("/profiles/{profileID}/equipment/slot/{slot}", HandleUnequipSlot(mockSvc))

		req := httptest.NewRequest("DELETE", "/profiles/profile-1/equipment/slot/head?account_id=acct-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), MsgSlotCleared)
	})

	t.Run("Empty slot", func(t *testing.T) {
		mockSvc := new(MockEquipmentService)
		mockSvc.On("UnequipSlot", mock.Anything, "acct-1", "profile-1", domain.SlotTrinket).
			Return(domain.ErrSlotEmpty)

		r := chi.NewRouter()
		r.Delete("/profiles/{profileID}/equipment/slot/{slot}", HandleUnequipSlot(mockSvc))

		req := httptest.NewRequest("DELETE", "/profiles/profile-1/equipment/slot/trinket?account_id=acct-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgSlotEmptyError)
	})
}

func TestHandleListEquipped(t *testing.T) {
	mockSvc := new(MockEquipmentService)
	mockSvc.On("ListEquipped", mock.Anything, "acct-1", "profile-1").Return([]domain.EquippedItem{
		{ProfileID: "profile-1", ItemID: "iron-sword", Slot: domain.SlotWeapon},
		{ProfileID: "profile-1", ItemID: "lucky-coin", Slot: domain.SlotTrinket},
	}, nil)

	r := chi.NewRouter()
	r.Get("/profiles/{profileID}/equipment", HandleListEquipped(mockSvc))

	req := httptest.NewRequest("GET", "/profiles/profile-1/equipment?account_id=acct-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"iron-sword"`)
	assert.Contains(t, w.Body.String(), `"lucky-coin"`)
}
