package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/orvane/Gemstore_Go/internal/domain"
	"github.com/orvane/Gemstore_Go/internal/inventory"
)

type MockWalletService struct {
	mock.Mock
}

func (m *MockWalletService) RegisterAccount(ctx context.Context, accountID string) (*domain.Wallet, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockWalletService) GetWallet(ctx context.Context, accountID string) (*domain.Wallet, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockWalletService) GetLedger(ctx context.Context, accountID string, limit, offset int) ([]domain.WalletTransaction, error) {
	args := m.Called(ctx, accountID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WalletTransaction), args.Error(1)
}

func (m *MockWalletService) AdjustBalance(ctx context.Context, accountID string, kind domain.TransactionKind, amount int64, description string) (*domain.Wallet, error) {
	args := m.Called(ctx, accountID, kind, amount, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

type MockPurchaseService struct {
	mock.Mock
}

func (m *MockPurchaseService) CreatePurchase(ctx context.Context, accountID string, lines []domain.PurchaseLine, idempotencyKey string) (*domain.PurchaseResult, error) {
	args := m.Called(ctx, accountID, lines, idempotencyKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseResult), args.Error(1)
}

func (m *MockPurchaseService) GetOrder(ctx context.Context, orderID string) (*domain.OrderWithLines, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrderWithLines), args.Error(1)
}

func (m *MockPurchaseService) ListOrders(ctx context.Context, accountID string, filter domain.OrderHistoryFilter) ([]domain.OrderWithLines, error) {
	args := m.Called(ctx, accountID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OrderWithLines), args.Error(1)
}

type MockInventoryService struct {
	mock.Mock
}

func (m *MockInventoryService) ListInventory(ctx context.Context, accountID string) ([]inventory.OwnedItem, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventory.OwnedItem), args.Error(1)
}

func (m *MockInventoryService) GetEntry(ctx context.Context, accountID, itemID string) (*domain.InventoryEntry, error) {
	args := m.Called(ctx, accountID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryEntry), args.Error(1)
}

func (m *MockInventoryService) UseItem(ctx context.Context, accountID, itemID string, count int) (*domain.InventoryEntry, error) {
	args := m.Called(ctx, accountID, itemID, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryEntry), args.Error(1)
}

type MockFulfillmentService struct {
	mock.Mock
}

func (m *MockFulfillmentService) GetFulfillment(ctx context.Context, fulfillmentID string) (*domain.Fulfillment, error) {
	args := m.Called(ctx, fulfillmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Fulfillment), args.Error(1)
}

func (m *MockFulfillmentService) ListByOrder(ctx context.Context, orderID string) ([]domain.Fulfillment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Fulfillment), args.Error(1)
}

func (m *MockFulfillmentService) RetryFailed(ctx context.Context, accountID, orderID string) ([]string, error) {
	args := m.Called(ctx, accountID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockFulfillmentService) Resolve(ctx context.Context, fulfillmentID string, status domain.FulfillmentStatus) (*domain.Fulfillment, error) {
	args := m.Called(ctx, fulfillmentID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Fulfillment), args.Error(1)
}

type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) CreateProfile(ctx context.Context, accountID, scope, name string, metadata map[string]string) (*domain.CharacterProfile, error) {
	args := m.Called(ctx, accountID, scope, name, metadata)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CharacterProfile), args.Error(1)
}

func (m *MockProfileService) GetProfile(ctx context.Context, accountID, profileID string) (*domain.CharacterProfile, error) {
	args := m.Called(ctx, accountID, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CharacterProfile), args.Error(1)
}

func (m *MockProfileService) ListProfiles(ctx context.Context, accountID string) ([]domain.CharacterProfile, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CharacterProfile), args.Error(1)
}

func (m *MockProfileService) GetActive(ctx context.Context, accountID, scope string) (*domain.CharacterProfile, error) {
	args := m.Called(ctx, accountID, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CharacterProfile), args.Error(1)
}

func (m *MockProfileService) Activate(ctx context.Context, accountID, profileID string) (*domain.CharacterProfile, error) {
	args := m.Called(ctx, accountID, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CharacterProfile), args.Error(1)
}

func (m *MockProfileService) DeleteProfile(ctx context.Context, accountID, profileID string) error {
	args := m.Called(ctx, accountID, profileID)
	return args.Error(0)
}

type MockEquipmentService struct {
	mock.Mock
}

func (m *MockEquipmentService) Equip(ctx context.Context, accountID, profileID, itemID string, slot domain.EquipSlot) (*domain.EquippedItem, error) {
	args := m.Called(ctx, accountID, profileID, itemID, slot)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EquippedItem), args.Error(1)
}

func (m *MockEquipmentService) UnequipItem(ctx context.Context, accountID, profileID, itemID string) error {
	args := m.Called(ctx, accountID, profileID, itemID)
	return args.Error(0)
}

func (m *MockEquipmentService) UnequipSlot(ctx context.Context, accountID, profileID string, slot domain.EquipSlot) error {
	args := m.Called(ctx, accountID, profileID, slot)
	return args.Error(0)
}

func (m *MockEquipmentService) ListEquipped(ctx context.Context, accountID, profileID string) ([]domain.EquippedItem, error) {
	args := m.Called(ctx, accountID, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EquippedItem), args.Error(1)
}

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) GetItem(ctx context.Context, itemID string) (*domain.CatalogItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CatalogItem), args.Error(1)
}

func (m *MockCatalogService) GetPurchasable(ctx context.Context, itemID string) (*domain.CatalogItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CatalogItem), args.Error(1)
}

func (m *MockCatalogService) ListItems(ctx context.Context, activeOnly bool, scope string) ([]domain.CatalogItem, error) {
	args := m.Called(ctx, activeOnly, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CatalogItem), args.Error(1)
}

func (m *MockCatalogService) Invalidate(itemID string) {
	m.Called(itemID)
}
