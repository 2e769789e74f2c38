package wallet

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/orvane/Gemstore_Go/internal/domain"
	"github.com/orvane/Gemstore_Go/internal/repository"
)

// MockRepository implements repository.Wallet for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetByAccount(ctx context.Context, accountID string) (*domain.Wallet, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, accountID string, startingBalance int64) (*domain.Wallet, error) {
	args := m.Called(ctx, accountID, startingBalance)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockRepository) ListTransactions(ctx context.Context, accountID string, limit, offset int) ([]domain.WalletTransaction, error) {
	args := m.Called(ctx, accountID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WalletTransaction), args.Error(1)
}

func (m *MockRepository) BeginTx(ctx context.Context) (repository.WalletTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.WalletTx), args.Error(1)
}

// MockTx implements repository.WalletTx for testing
type MockTx struct {
	mock.Mock
}

func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) DebitWallet(ctx context.Context, accountID string, amount int64) (*domain.Wallet, error) {
	args := m.Called(ctx, accountID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockTx) CreditWallet(ctx context.Context, accountID string, amount int64) (*domain.Wallet, error) {
	args := m.Called(ctx, accountID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockTx) InsertWalletTransaction(ctx context.Context, entry domain.WalletTransaction) (*domain.WalletTransaction, error) {
	args := m.Called(ctx, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WalletTransaction), args.Error(1)
}

func TestRegisterAccount(t *testing.T) {
	ctx := context.Background()
	repo := &MockRepository{}

	created := &domain.Wallet{ID: "wallet-1", AccountID: "acct-1", Balance: domain.StartingBalance}
	repo.On("Create", ctx, "acct-1", domain.StartingBalance).Return(created, nil)

	svc := NewService(repo)
	wallet, err := svc.RegisterAccount(ctx, "acct-1")

	require.NoError(t, err)
	assert.Equal(t, domain.StartingBalance, wallet.Balance)
	repo.AssertExpectations(t)
}

func TestRegisterAccount_Duplicate(t *testing.T) {
	ctx := context.Background()
	repo := &MockRepository{}

	repo.On("Create", ctx, "acct-1", domain.StartingBalance).Return(nil, domain.ErrConflict)

	svc := NewService(repo)
	_, err := svc.RegisterAccount(ctx, "acct-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestRegisterAccount_EmptyAccount(t *testing.T) {
	svc := NewService(&MockRepository{})
	_, err := svc.RegisterAccount(context.Background(), "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestGetLedger_ClampsPaging(t *testing.T) {
	ctx := context.Background()
	repo := &MockRepository{}

	wallet := &domain.Wallet{ID: "wallet-1", AccountID: "acct-1", Balance: 500}
	repo.On("GetByAccount", ctx, "acct-1").Return(wallet, nil)
	repo.On("ListTransactions", ctx, "acct-1", DefaultLedgerLimit, 0).Return([]domain.WalletTransaction{}, nil).Once()
	repo.On("ListTransactions", ctx, "acct-1", MaxLedgerLimit, 0).Return([]domain.WalletTransaction{}, nil).Once()

	svc := NewService(repo)

	_, err := svc.GetLedger(ctx, "acct-1", 0, -5)
	require.NoError(t, err)

	_, err = svc.GetLedger(ctx, "acct-1", 100000, 0)
	require.NoError(t, err)

	repo.AssertExpectations(t)
}

func TestGetLedger_MissingWallet(t *testing.T) {
	ctx := context.Background()
	repo := &MockRepository{}

	repo.On("GetByAccount", ctx, "ghost").Return(nil, domain.ErrWalletNotFound)

	svc := NewService(repo)
	_, err := svc.GetLedger(ctx, "ghost", 10, 0)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrWalletNotFound)
	repo.AssertNotCalled(t, "ListTransactions", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAdjustBalance_Credit(t *testing.T) {
	ctx := context.Background()
	repo := &MockRepository{}
	tx := &MockTx{}

	repo.On("BeginTx", ctx).Return(tx, nil)
	tx.On("CreditWallet", ctx, "acct-1", int64(250)).Return(&domain.Wallet{ID: "wallet-1", Balance: 750}, nil)
	tx.On("InsertWalletTransaction", ctx, mock.MatchedBy(func(e domain.WalletTransaction) bool {
		return e.Kind == domain.TransactionCredit && e.Amount == 250 && e.Description == "promo grant"
	})).Return(&domain.WalletTransaction{ID: "txn-1"}, nil)
	tx.On("Commit", ctx).Return(nil)
	tx.On("Rollback", ctx).Return(nil)

	svc := NewService(repo)
	wallet, err := svc.AdjustBalance(ctx, "acct-1", domain.TransactionCredit, 250, "promo grant")

	require.NoError(t, err)
	assert.Equal(t, int64(750), wallet.Balance)
	tx.AssertExpectations(t)
}

func TestAdjustBalance_DebitInsufficient(t *testing.T) {
	ctx := context.Background()
	repo := &MockRepository{}
	tx := &MockTx{}

	repo.On("BeginTx", ctx).Return(tx, nil)
	tx.On("DebitWallet", ctx, "acct-1", int64(9999)).Return(nil, domain.ErrInsufficientFunds)
	tx.On("Rollback", ctx).Return(nil)

	svc := NewService(repo)
	_, err := svc.AdjustBalance(ctx, "acct-1", domain.TransactionDebit, 9999, "correction")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	tx.AssertNotCalled(t, "InsertWalletTransaction", mock.Anything, mock.Anything)
	tx.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestAdjustBalance_Validation(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&MockRepository{})

	_, err := svc.AdjustBalance(ctx, "acct-1", domain.TransactionCredit, 0, "noop")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)

	_, err = svc.AdjustBalance(ctx, "acct-1", "TRANSFER", 10, "bad kind")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}
