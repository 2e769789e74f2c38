package domain

import "time"

// Wallet holds an account's spendable gem balance. One wallet per account,
// created at registration with a fixed starting balance and never deleted.
// The balance is mutated only through the ledger; it can never go negative.
type Wallet struct {
	ID        string    `json:"wallet_id"`
	AccountID string    `json:"account_id"`
	Balance   int64     `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TransactionKind distinguishes ledger mutations.
type TransactionKind string

const (
	TransactionCredit TransactionKind = "CREDIT"
	TransactionDebit  TransactionKind = "DEBIT"
)

// WalletTransaction is one row of the append-only audit trail. Every
// successful ledger mutation writes exactly one.
type WalletTransaction struct {
	ID          string          `json:"transaction_id"`
	WalletID    string          `json:"wallet_id"`
	Kind        TransactionKind `json:"kind"`
	Amount      int64           `json:"amount"`
	Description string          `json:"description"`
	ReferenceID string          `json:"reference_id,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Ledger reference prefixes, used to tell a purchase debit apart from a
// bundled-currency credit produced inside the same purchase.
const (
	ReferencePrefixOrder  = "order:"
	ReferencePrefixEffect = "effect:"
)
