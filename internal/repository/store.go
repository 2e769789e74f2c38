package repository

import (
	"context"
	"time"

	"github.com/orvane/Gemstore_Go/internal/domain"
)

// Store defines the interface for purchase persistence. All mutation happens
// through StoreTx so a purchase commits atomically or not at all.
type Store interface {
	GetOrder(ctx context.Context, orderID string) (*domain.Order, error)
	GetOrderWithLines(ctx context.Context, orderID string) (*domain.OrderWithLines, error)
	ListOrders(ctx context.Context, accountID string, filter domain.OrderHistoryFilter) ([]domain.OrderWithLines, error)
	// FindRecentOrderByKey returns the most recent order the account placed
	// with the given idempotency key inside the window, or nil.
	FindRecentOrderByKey(ctx context.Context, accountID, idempotencyKey string, window time.Duration) (*domain.Order, error)
	BeginTx(ctx context.Context) (StoreTx, error)
}

// StoreTx defines the interface for purchase transactions
type StoreTx interface {
	Tx
	// DebitWallet conditionally debits the account's wallet. The debit only
	// applies when the balance covers the amount; otherwise
	// domain.ErrInsufficientFunds is returned and the row is untouched.
	DebitWallet(ctx context.Context, accountID string, amount int64) (*domain.Wallet, error)
	// CreditWallet adds to the account's wallet balance.
	CreditWallet(ctx context.Context, accountID string, amount int64) (*domain.Wallet, error)
	InsertWalletTransaction(ctx context.Context, entry domain.WalletTransaction) (*domain.WalletTransaction, error)
	// SetTransactionReference backfills the reference on a ledger row once the
	// order it belongs to has an identifier.
	SetTransactionReference(ctx context.Context, transactionID, referenceID string) error
	// FindOwnedUnique returns the subset of itemIDs the account already owns
	// with a usable entry.
	FindOwnedUnique(ctx context.Context, accountID string, itemIDs []string) ([]string, error)
	InsertOrder(ctx context.Context, accountID string, totalAmount int64, idempotencyKey string) (*domain.Order, error)
	InsertOrderLines(ctx context.Context, orderID string, lines []domain.OrderLine) error
	// GrantInventory writes an inventory entry. STACKABLE grants accumulate
	// quantity; UNIQUE grants insert the row or revive an exhausted one, and
	// fail with domain.ErrAlreadyOwned when a usable entry already exists —
	// including one committed by a concurrent purchase after the
	// FindOwnedUnique precheck.
	GrantInventory(ctx context.Context, accountID, itemID string, quantity int, stacking domain.Stacking) (*domain.InventoryEntry, error)
	InsertFulfillment(ctx context.Context, fulfillment domain.Fulfillment) (*domain.Fulfillment, error)
}
