package repository

import (
	"context"

	"github.com/orvane/Gemstore_Go/internal/domain"
)

// Wallet defines the interface for wallet persistence outside the purchase
// transaction: registration, balance reads and ledger history.
type Wallet interface {
	GetByAccount(ctx context.Context, accountID string) (*domain.Wallet, error)
	// Create provisions a wallet with the starting balance and writes the
	// opening CREDIT ledger row. Creating a wallet that already exists returns
	// domain.ErrConflict.
	Create(ctx context.Context, accountID string, startingBalance int64) (*domain.Wallet, error)
	ListTransactions(ctx context.Context, accountID string, limit, offset int) ([]domain.WalletTransaction, error)
	BeginTx(ctx context.Context) (WalletTx, error)
}

// WalletTx defines the interface for standalone ledger mutations (admin
// adjustments, effect credits settled outside a purchase).
type WalletTx interface {
	Tx
	DebitWallet(ctx context.Context, accountID string, amount int64) (*domain.Wallet, error)
	CreditWallet(ctx context.Context, accountID string, amount int64) (*domain.Wallet, error)
	InsertWalletTransaction(ctx context.Context, entry domain.WalletTransaction) (*domain.WalletTransaction, error)
}
