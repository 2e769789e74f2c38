package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/orvane/Gemstore_Go/internal/domain"
)

func TestHandleRegisterAccount(t *testing.T) {
	InitValidator()

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*MockWalletService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			requestBody: RegisterAccountRequest{AccountID: "acct-1"},
			setupMock: func(m *MockWalletService) {
				m.On("RegisterAccount", mock.Anything, "acct-1").Return(&domain.Wallet{
					ID:        "wallet-1",
					AccountID: "acct-1",
					Balance:   500,
				}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"balance":500`,
		},
		{
			name:           "Missing account ID",
			requestBody:    RegisterAccountRequest{},
			setupMock:      func(m *MockWalletService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequestSummary,
		},
		{
			name:        "Already registered",
			requestBody: RegisterAccountRequest{AccountID: "acct-1"},
			setupMock: func(m *MockWalletService) {
				m.On("RegisterAccount", mock.Anything, "acct-1").Return(nil, domain.ErrWalletExists)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   ErrMsgWalletExistsError,
		},
		{
			name:        "Service error",
			requestBody: RegisterAccountRequest{AccountID: "acct-1"},
			setupMock: func(m *MockWalletService) {
				m.On("RegisterAccount", mock.Anything, "acct-1").Return(nil, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   ErrMsgGenericServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockWalletService)
			tt.setupMock(mockSvc)

			handler := HandleRegisterAccount(mockSvc)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/wallet/register", bytes.NewBuffer(body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestHandleGetWallet(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockSvc := new(MockWalletService)
		mockSvc.On("GetWallet", mock.Anything, "acct-1").Return(&domain.Wallet{
			ID:        "wallet-1",
			AccountID: "acct-1",
			Balance:   275,
		}, nil)

		req := httptest.NewRequest("GET", "/wallet?account_id=acct-1", nil)
		w := httptest.NewRecorder()
		HandleGetWallet(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"balance":275`)
	})

	t.Run("Missing account_id", func(t *testing.T) {
		mockSvc := new(MockWalletService)
		req := httptest.NewRequest("GET", "/wallet", nil)
		w := httptest.NewRecorder()
		HandleGetWallet(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockSvc.AssertNotCalled(t, "GetWallet")
	})

	t.Run("Wallet not found", func(t *testing.T) {
		mockSvc := new(MockWalletService)
		mockSvc.On("GetWallet", mock.Anything, "ghost").Return(nil, domain.ErrWalletNotFound)

		req := httptest.NewRequest("GET", "/wallet?account_id=ghost", nil)
		w := httptest.NewRecorder()
		HandleGetWallet(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgWalletNotFoundError)
	})
}

func TestHandleGetLedger(t *testing.T) {
	t.Run("Success with paging", func(t *testing.T) {
		mockSvc := new(MockWalletService)
		mockSvc.On("GetLedger", mock.Anything, "acct-1", 10, 20).Return([]domain.WalletTransaction{
			{ID: "tx-1", Kind: domain.TransactionDebit, Amount: 50},
		}, nil)

		req := httptest.NewRequest("GET", "/wallet/ledger?account_id=acct-1&limit=10&offset=20", nil)
		w := httptest.NewRecorder()
		HandleGetLedger(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"tx-1"`)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Malformed limit", func(t *testing.T) {
		mockSvc := new(MockWalletService)
		req := httptest.NewRequest("GET", "/wallet/ledger?account_id=acct-1&limit=abc", nil)
		w := httptest.NewRecorder()
		HandleGetLedger(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockSvc.AssertNotCalled(t, "GetLedger")
	})
}

func TestHandleAdjustBalance(t *testing.T) {
	InitValidator()

	t.Run("Credit succeeds", func(t *testing.T) {
		mockSvc := new(MockWalletService)
		mockSvc.On("AdjustBalance", mock.Anything, "acct-1", domain.TransactionCredit, int64(100), "support credit").
			Return(&domain.Wallet{ID: "wallet-1", AccountID: "acct-1", Balance: 600}, nil)

		body, _ := json.Marshal(AdjustBalanceRequest{
			AccountID:   "acct-1",
			Kind:        "CREDIT",
			Amount:      100,
			Description: "support credit",
		})
		req := httptest.NewRequest("POST", "/wallet/adjust", bytes.NewBuffer(body))
		w := httptest.NewRecorder()
		HandleAdjustBalance(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"balance":600`)
	})

	t.Run("Invalid kind rejected by validation", func(t *testing.T) {
		mockSvc := new(MockWalletService)
		body, _ := json.Marshal(AdjustBalanceRequest{
			AccountID:   "acct-1",
			Kind:        "TRANSFER",
			Amount:      100,
			Description: "nope",
		})
		req := httptest.NewRequest("POST", "/wallet/adjust", bytes.NewBuffer(body))
		w := httptest.NewRecorder()
		HandleAdjustBalance(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockSvc.AssertNotCalled(t, "AdjustBalance")
	})

	t.Run("Insufficient funds", func(t *testing.T) {
		mockSvc := new(MockWalletService)
		mockSvc.On("AdjustBalance", mock.Anything, "acct-1", domain.TransactionDebit, int64(999), "clawback").
			Return(nil, domain.ErrInsufficientFunds)

		body, _ := json.Marshal(AdjustBalanceRequest{
			AccountID:   "acct-1",
			Kind:        "DEBIT",
			Amount:      999,
			Description: "clawback",
		})
		req := httptest.NewRequest("POST", "/wallet/adjust", bytes.NewBuffer(body))
		w := httptest.NewRecorder()
		HandleAdjustBalance(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusPaymentRequired, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgNotEnoughGemsError)
	})
}
