package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/orvane/Gemstore_Go/internal/domain"
	"github.com/orvane/Gemstore_Go/internal/repository"
)

// querier is the subset of pgx operations shared by pools and transactions,
// letting the ledger helpers run in either context.
type querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// WalletRepository implements the wallet repository for PostgreSQL
type WalletRepository struct {
	db *pgxpool.Pool
}

// NewWalletRepository creates a new WalletRepository
func NewWalletRepository(db *pgxpool.Pool) *WalletRepository {
	return &WalletRepository{db: db}
}

// WalletTx implements repository.WalletTx
type WalletTx struct {
	tx pgx.Tx
}

// BeginTx starts a new ledger transaction
func (r *WalletRepository) BeginTx(ctx context.Context) (repository.WalletTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &WalletTx{tx: tx}, nil
}

// Commit commits the transaction
func (t *WalletTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction
func (t *WalletTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// DebitWallet conditionally debits the wallet
func (t *WalletTx) DebitWallet(ctx context.Context, accountID string, amount int64) (*domain.Wallet, error) {
	return debitWallet(ctx, t.tx, accountID, amount)
}

// CreditWallet adds to the wallet balance
func (t *WalletTx) CreditWallet(ctx context.Context, accountID string, amount int64) (*domain.Wallet, error) {
	return creditWallet(ctx, t.tx, accountID, amount)
}

// InsertWalletTransaction appends one ledger row
func (t *WalletTx) InsertWalletTransaction(ctx context.Context, entry domain.WalletTransaction) (*domain.WalletTransaction, error) {
	return insertWalletTransaction(ctx, t.tx, entry)
}

// GetByAccount retrieves the account's wallet
func (r *WalletRepository) GetByAccount(ctx context.Context, accountID string) (*domain.Wallet, error) {
	wallet, err := scanWallet(r.db.QueryRow(ctx, `
		SELECT wallet_id, account_id, balance, created_at, updated_at
		FROM wallets WHERE account_id = $1`, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrWalletNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetWallet, err)
	}
	return wallet, nil
}

// Create provisions a wallet with its starting balance and the opening
// CREDIT ledger row in one transaction
func (r *WalletRepository) Create(ctx context.Context, accountID string, startingBalance int64) (*domain.Wallet, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	var wallet domain.Wallet
	err = tx.QueryRow(ctx, `
		INSERT INTO wallets (account_id, balance)
		VALUES ($1, $2)
		RETURNING wallet_id, account_id, balance, created_at, updated_at`,
		accountID, startingBalance,
	).Scan(&wallet.ID, &wallet.AccountID, &wallet.Balance, &wallet.CreatedAt, &wallet.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrWalletExists
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreateWallet, err)
	}

	if startingBalance > 0 {
		_, err = insertWalletTransaction(ctx, tx, domain.WalletTransaction{
			WalletID:    wallet.ID,
			Kind:        domain.TransactionCredit,
			Amount:      startingBalance,
			Description: "starting balance",
		})
		if err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return &wallet, nil
}

// ListTransactions returns the account's ledger rows, newest first
func (r *WalletRepository) ListTransactions(ctx context.Context, accountID string, limit, offset int) ([]domain.WalletTransaction, error) {
	rows, err := r.db.Query(ctx, `
		SELECT t.transaction_id, t.wallet_id, t.kind, t.amount, t.description, COALESCE(t.reference_id, ''), t.created_at
		FROM wallet_transactions t
		JOIN wallets w ON w.wallet_id = t.wallet_id
		WHERE w.account_id = $1
		ORDER BY t.created_at DESC
		LIMIT $2 OFFSET $3`,
		accountID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryLedger, err)
	}
	defer rows.Close()

	entries := []domain.WalletTransaction{}
	for rows.Next() {
		var entry domain.WalletTransaction
		err := rows.Scan(&entry.ID, &entry.WalletID, &entry.Kind, &entry.Amount,
			&entry.Description, &entry.ReferenceID, &entry.CreatedAt)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// ---- shared ledger helpers ----

// debitWallet applies the conditional debit. The predicate makes the debit
// atomic: a row comes back only when the balance covered the amount.
func debitWallet(ctx context.Context, q querier, accountID string, amount int64) (*domain.Wallet, error) {
	wallet, err := scanWallet(q.QueryRow(ctx, `
		UPDATE wallets
		SET balance = balance - $2, updated_at = NOW()
		WHERE account_id = $1 AND balance >= $2
		RETURNING wallet_id, account_id, balance, created_at, updated_at`,
		accountID, amount))
	if err == nil {
		return wallet, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToDebitWallet, err)
	}

	// No row updated: missing wallet and insufficient balance look the same,
	// so check existence to report the right error.
	var exists bool
	if err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM wallets WHERE account_id = $1)`, accountID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetWallet, err)
	}
	if !exists {
		return nil, domain.ErrWalletNotFound
	}
	return nil, domain.ErrInsufficientFunds
}

func creditWallet(ctx context.Context, q querier, accountID string, amount int64) (*domain.Wallet, error) {
	wallet, err := scanWallet(q.QueryRow(ctx, `
		UPDATE wallets
		SET balance = balance + $2, updated_at = NOW()
		WHERE account_id = $1
		RETURNING wallet_id, account_id, balance, created_at, updated_at`,
		accountID, amount))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrWalletNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreditWallet, err)
	}
	return wallet, nil
}

func insertWalletTransaction(ctx context.Context, q querier, entry domain.WalletTransaction) (*domain.WalletTransaction, error) {
	err := q.QueryRow(ctx, `
		INSERT INTO wallet_transactions (wallet_id, kind, amount, description, reference_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING transaction_id, created_at`,
		entry.WalletID, entry.Kind, entry.Amount, entry.Description, strToText(entry.ReferenceID),
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToInsertLedgerRow, err)
	}
	return &entry, nil
}

func scanWallet(row pgx.Row) (*domain.Wallet, error) {
	var wallet domain.Wallet
	err := row.Scan(&wallet.ID, &wallet.AccountID, &wallet.Balance, &wallet.CreatedAt, &wallet.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &wallet, nil
}
