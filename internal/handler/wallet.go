package handler

import (
	"net/http"

	"github.com/orvane/Gemstore_Go/internal/domain"
	"github.com/orvane/Gemstore_Go/internal/logger"
	"github.com/orvane/Gemstore_Go/internal/wallet"
)

// RegisterAccountRequest provisions a wallet for a new account.
type RegisterAccountRequest struct {
	AccountID string `json:"account_id" validate:"required,max=128"`
}

// HandleRegisterAccount creates the account's wallet with the starting balance.
//
//	@Summary		Register an account
//	@Description	Provisions a wallet with the starting gem balance. Idempotency is not provided: registering twice is a conflict.
//	@Tags			wallet
//	@Accept			json
//	@Produce		json
//	@Param			request	body		RegisterAccountRequest	true	"Account to register"
//	@Success		201		{object}	domain.Wallet
//	@Failure		400		{object}	ValidationErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Router			/wallet/register [post]
func HandleRegisterAccount(walletService wallet.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterAccountRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Register account"); err != nil {
			return
		}

		created, err := walletService.RegisterAccount(r.Context(), req.AccountID)
		if err != nil {
			respondServiceError(w, r, "Register account", err)
			return
		}

		logger.FromContext(r.Context()).Info("Account registered", "account_id", req.AccountID)
		respondJSON(w, http.StatusCreated, created)
	}
}

// HandleGetWallet returns the account's wallet and current balance.
//
//	@Summary		Get wallet
//	@Tags			wallet
//	@Produce		json
//	@Param			account_id	query		string	true	"Account ID"
//	@Success		200			{object}	domain.Wallet
//	@Failure		404			{object}	ErrorResponse
//	@Router			/wallet [get]
func HandleGetWallet(walletService wallet.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, ok := GetQueryParam(r, w, "account_id")
		if !ok {
			return
		}

		wlt, err := walletService.GetWallet(r.Context(), accountID)
		if err != nil {
			respondServiceError(w, r, "Get wallet", err)
			return
		}

		respondJSON(w, http.StatusOK, wlt)
	}
}

// LedgerResponse wraps a page of wallet transactions.
type LedgerResponse struct {
	AccountID    string                     `json:"account_id"`
	Transactions []domain.WalletTransaction `json:"transactions"`
}

// HandleGetLedger returns the account's transaction history, newest first.
//
//	@Summary		Get wallet ledger
//	@Description	Returns the append-only transaction history for the account's wallet, newest first.
//	@Tags			wallet
//	@Produce		json
//	@Param			account_id	query		string	true	"Account ID"
//	@Param			limit		query		int		false	"Page size (default 50, max 200)"
//	@Param			offset		query		int		false	"Page offset"
//	@Success		200			{object}	LedgerResponse
//	@Failure		404			{object}	ErrorResponse
//	@Router			/wallet/ledger [get]
func HandleGetLedger(walletService wallet.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, ok := GetQueryParam(r, w, "account_id")
		if !ok {
			return
		}
		limit, offset, ok := GetPagingParams(r, w)
		if !ok {
			return
		}

		transactions, err := walletService.GetLedger(r.Context(), accountID, limit, offset)
		if err != nil {
			respondServiceError(w, r, "Get ledger", err)
			return
		}

		respondJSON(w, http.StatusOK, LedgerResponse{
			AccountID:    accountID,
			Transactions: transactions,
		})
	}
}

// AdjustBalanceRequest applies an operator credit or debit to a wallet.
type AdjustBalanceRequest struct {
	AccountID   string `json:"account_id" validate:"required,max=128"`
	Kind        string `json:"kind" validate:"required,txkind"`
	Amount      int64  `json:"amount" validate:"required,gt=0"`
	Description string `json:"description" validate:"required,max=256"`
}

// HandleAdjustBalance applies an out-of-band credit or debit to a wallet.
//
//	@Summary		Adjust wallet balance
//	@Description	Operator endpoint for credits/debits outside the purchase flow. Debits fail rather than overdraw.
//	@Tags			wallet
//	@Accept			json
//	@Produce		json
//	@Param			request	body		AdjustBalanceRequest	true	"Adjustment"
//	@Success		200		{object}	domain.Wallet
//	@Failure		400		{object}	ValidationErrorResponse
//	@Failure		402		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/wallet/adjust [post]
func HandleAdjustBalance(walletService wallet.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AdjustBalanceRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Adjust balance"); err != nil {
			return
		}

		wlt, err := walletService.AdjustBalance(r.Context(), req.AccountID, domain.TransactionKind(req.Kind), req.Amount, req.Description)
		if err != nil {
			respondServiceError(w, r, "Adjust balance", err)
			return
		}

		logger.FromContext(r.Context()).Info("Balance adjusted",
			"account_id", req.AccountID,
			"kind", req.Kind,
			"amount", req.Amount)
		respondJSON(w, http.StatusOK, wlt)
	}
}
