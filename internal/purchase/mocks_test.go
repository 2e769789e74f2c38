package purchase

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/orvane/Gemstore_Go/internal/domain"
	"github.com/orvane/Gemstore_Go/internal/event"
	"github.com/orvane/Gemstore_Go/internal/repository"
)

// MockStore implements repository.Store for testing
type MockStore struct {
	mock.Mock
}

func (m *MockStore) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockStore) GetOrderWithLines(ctx context.Context, orderID string) (*domain.OrderWithLines, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrderWithLines), args.Error(1)
}

func (m *MockStore) ListOrders(ctx context.Context, accountID string, filter domain.OrderHistoryFilter) ([]domain.OrderWithLines, error) {
	args := m.Called(ctx, accountID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OrderWithLines), args.Error(1)
}

func (m *MockStore) FindRecentOrderByKey(ctx context.Context, accountID, idempotencyKey string, window time.Duration) (*domain.Order, error) {
	args := m.Called(ctx, accountID, idempotencyKey, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockStore) BeginTx(ctx context.Context) (repository.StoreTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.StoreTx), args.Error(1)
}

// MockStoreTx implements repository.StoreTx for testing
type MockStoreTx struct {
	mock.Mock
}

func (m *MockStoreTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStoreTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStoreTx) DebitWallet(ctx context.Context, accountID string, amount int64) (*domain.Wallet, error) {
	args := m.Called(ctx, accountID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockStoreTx) CreditWallet(ctx context.Context, accountID string, amount int64) (*domain.Wallet, error) {
	args := m.Called(ctx, accountID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockStoreTx) InsertWalletTransaction(ctx context.Context, entry domain.WalletTransaction) (*domain.WalletTransaction, error) {
	args := m.Called(ctx, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WalletTransaction), args.Error(1)
}

func (m *MockStoreTx) SetTransactionReference(ctx context.Context, transactionID, referenceID string) error {
	args := m.Called(ctx, transactionID, referenceID)
	return args.Error(0)
}

func (m *MockStoreTx) FindOwnedUnique(ctx context.Context, accountID string, itemIDs []string) ([]string, error) {
	args := m.Called(ctx, accountID, itemIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockStoreTx) InsertOrder(ctx context.Context, accountID string, totalAmount int64, idempotencyKey string) (*domain.Order, error) {
	args := m.Called(ctx, accountID, totalAmount, idempotencyKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockStoreTx) InsertOrderLines(ctx context.Context, orderID string, lines []domain.OrderLine) error {
	args := m.Called(ctx, orderID, lines)
	return args.Error(0)
}

func (m *MockStoreTx) GrantInventory(ctx context.Context, accountID, itemID string, quantity int, stacking domain.Stacking) (*domain.InventoryEntry, error) {
	args := m.Called(ctx, accountID, itemID, quantity, stacking)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryEntry), args.Error(1)
}

func (m *MockStoreTx) InsertFulfillment(ctx context.Context, fulfillment domain.Fulfillment) (*domain.Fulfillment, error) {
	args := m.Called(ctx, fulfillment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Fulfillment), args.Error(1)
}

// MockWalletRepo implements repository.Wallet for testing
type MockWalletRepo struct {
	mock.Mock
}

func (m *MockWalletRepo) GetByAccount(ctx context.Context, accountID string) (*domain.Wallet, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockWalletRepo) Create(ctx context.Context, accountID string, startingBalance int64) (*domain.Wallet, error) {
	args := m.Called(ctx, accountID, startingBalance)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockWalletRepo) ListTransactions(ctx context.Context, accountID string, limit, offset int) ([]domain.WalletTransaction, error) {
	args := m.Called(ctx, accountID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WalletTransaction), args.Error(1)
}

func (m *MockWalletRepo) BeginTx(ctx context.Context) (repository.WalletTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.WalletTx), args.Error(1)
}

// MockCatalog implements catalog.Service for testing
type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) GetItem(ctx context.Context, itemID string) (*domain.CatalogItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CatalogItem), args.Error(1)
}

func (m *MockCatalog) GetPurchasable(ctx context.Context, itemID string) (*domain.CatalogItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CatalogItem), args.Error(1)
}

func (m *MockCatalog) ListItems(ctx context.Context, activeOnly bool, scope string) ([]domain.CatalogItem, error) {
	args := m.Called(ctx, activeOnly, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CatalogItem), args.Error(1)
}

func (m *MockCatalog) Invalidate(itemID string) {
	m.Called(itemID)
}

// MockPublisher implements Publisher for testing
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishWithRetry(ctx context.Context, evt event.Event) {
	m.Called(ctx, evt)
}
