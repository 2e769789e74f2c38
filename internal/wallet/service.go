package wallet

import (
	"context"
	"fmt"

	"github.com/orvane/Gemstore_Go/internal/domain"
	"github.com/orvane/Gemstore_Go/internal/logger"
	"github.com/orvane/Gemstore_Go/internal/repository"
)

// Service defines the interface for wallet operations
type Service interface {
	// RegisterAccount provisions a wallet with the starting balance. The
	// opening credit is the wallet's first ledger row.
	RegisterAccount(ctx context.Context, accountID string) (*domain.Wallet, error)
	GetWallet(ctx context.Context, accountID string) (*domain.Wallet, error)
	GetLedger(ctx context.Context, accountID string, limit, offset int) ([]domain.WalletTransaction, error)
	// AdjustBalance applies an operator credit or debit outside the purchase
	// flow. Debits are conditional: they fail rather than overdraw.
	AdjustBalance(ctx context.Context, accountID string, kind domain.TransactionKind, amount int64, description string) (*domain.Wallet, error)
}

type service struct {
	repo repository.Wallet
}

// NewService creates a new wallet service
func NewService(repo repository.Wallet) Service {
	return &service{repo: repo}
}

func (s *service) RegisterAccount(ctx context.Context, accountID string) (*domain.Wallet, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgRegisterCalled, "account_id", accountID)

	if accountID == "" {
		return nil, fmt.Errorf("%s: %w", ErrMsgAccountRequired, domain.ErrInvalidRequest)
	}

	wallet, err := s.repo.Create(ctx, accountID, domain.StartingBalance)
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgWalletCreated, "account_id", accountID, "wallet_id", wallet.ID, "balance", wallet.Balance)
	return wallet, nil
}

func (s *service) GetWallet(ctx context.Context, accountID string) (*domain.Wallet, error) {
	logger.FromContext(ctx).Debug(LogMsgGetWalletCalled, "account_id", accountID)
	return s.repo.GetByAccount(ctx, accountID)
}

func (s *service) GetLedger(ctx context.Context, accountID string, limit, offset int) ([]domain.WalletTransaction, error) {
	logger.FromContext(ctx).Debug(LogMsgGetLedgerCalled, "account_id", accountID, "limit", limit, "offset", offset)

	if limit <= 0 {
		limit = DefaultLedgerLimit
	}
	if limit > MaxLedgerLimit {
		limit = MaxLedgerLimit
	}
	if offset < 0 {
		offset = 0
	}

	// Resolve the wallet first so a missing account reports not-found rather
	// than an empty page.
	if _, err := s.repo.GetByAccount(ctx, accountID); err != nil {
		return nil, err
	}

	return s.repo.ListTransactions(ctx, accountID, limit, offset)
}

func (s *service) AdjustBalance(ctx context.Context, accountID string, kind domain.TransactionKind, amount int64, description string) (*domain.Wallet, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgAdjustCalled, "account_id", accountID, "kind", kind, "amount", amount)

	if amount <= 0 {
		return nil, fmt.Errorf(ErrMsgInvalidAmountFmt, amount, domain.ErrInvalidRequest)
	}
	if kind != domain.TransactionCredit && kind != domain.TransactionDebit {
		return nil, fmt.Errorf("unknown transaction kind %q: %w", kind, domain.ErrInvalidRequest)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	var wallet *domain.Wallet
	if kind == domain.TransactionCredit {
		wallet, err = tx.CreditWallet(ctx, accountID, amount)
	} else {
		wallet, err = tx.DebitWallet(ctx, accountID, amount)
	}
	if err != nil {
		return nil, err
	}

	if _, err := tx.InsertWalletTransaction(ctx, domain.WalletTransaction{
		WalletID:    wallet.ID,
		Kind:        kind,
		Amount:      amount,
		Description: description,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	log.Info(LogMsgBalanceAdjusted, "account_id", accountID, "kind", kind, "amount", amount, "balance", wallet.Balance)
	return wallet, nil
}
