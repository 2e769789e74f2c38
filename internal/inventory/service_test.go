package inventory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/orvane/Gemstore_Go/internal/domain"
	"github.com/orvane/Gemstore_Go/internal/repository"
)

// MockRepository implements repository.Inventory for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListByAccount(ctx context.Context, accountID string) ([]domain.InventoryEntry, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryEntry), args.Error(1)
}

func (m *MockRepository) GetEntry(ctx context.Context, accountID, itemID string) (*domain.InventoryEntry, error) {
	args := m.Called(ctx, accountID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryEntry), args.Error(1)
}

func (m *MockRepository) BeginTx(ctx context.Context) (repository.InventoryTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.InventoryTx), args.Error(1)
}

// MockTx implements repository.InventoryTx for testing
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

func (m *MockTx) GetEntryForUpdate(ctx context.Context, accountID, itemID string) (*domain.InventoryEntry, error) {
	args := m.Called(ctx, accountID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryEntry), args.Error(1)
}

func (m *MockTx) SetUsage(ctx context.Context, accountID, itemID string, quantity int, exhausted bool, usedAt time.Time) error {
	args := m.Called(ctx, accountID, itemID, quantity, exhausted, usedAt)
	return args.Error(0)
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

func TestUseItem_DecrementsQuantity(t *testing.T) {
	ctx := context.Background()
	repo := &MockRepository{}
	tx := &MockTx{}

	entry := &domain.InventoryEntry{AccountID: "acct-1", ItemID: "health-potion", Quantity: 5}
	repo.On("BeginTx", ctx).Return(tx, nil)
	tx.On("GetEntryForUpdate", ctx, "acct-1", "health-potion").Return(entry, nil)
	tx.On("SetUsage", ctx, "acct-1", "health-potion", 3, false, mock.AnythingOfType("time.Time")).Return(nil)
	tx.On("Commit", ctx).Return(nil)
	tx.On("Rollback", ctx).Return(nil)

	svc := NewService(repo, &MockCatalog{})
	updated, err := svc.UseItem(ctx, "acct-1", "health-potion", 2)

	require.NoError(t, err)
	assert.Equal(t, 3, updated.Quantity)
	assert.False(t, updated.IsExhausted)
	require.NotNil(t, updated.LastUsedAt)
	tx.AssertExpectations(t)
}

func TestUseItem_ExhaustsAtZero(t *testing.T) {
	ctx := context.Background()
	repo := &MockRepository{}
	tx := &MockTx{}

	entry := &domain.InventoryEntry{AccountID: "acct-1", ItemID: "health-potion", Quantity: 2}
	repo.On("BeginTx", ctx).Return(tx, nil)
	tx.On("GetEntryForUpdate", ctx, "acct-1", "health-potion").Return(entry, nil)
	tx.On("SetUsage", ctx, "acct-1", "health-potion", 0, true, mock.AnythingOfType("time.Time")).Return(nil)
	tx.On("Commit", ctx).Return(nil)
	tx.On("Rollback", ctx).Return(nil)

	svc := NewService(repo, &MockCatalog{})
	updated, err := svc.UseItem(ctx, "acct-1", "health-potion", 2)

	require.NoError(t, err)
	assert.Equal(t, 0, updated.Quantity)
	assert.True(t, updated.IsExhausted)
}

func TestUseItem_ExhaustedEntry(t *testing.T) {
	ctx := context.Background()
	repo := &MockRepository{}
	tx := &MockTx{}

	entry := &domain.InventoryEntry{AccountID: "acct-1", ItemID: "health-potion", Quantity: 0, IsExhausted: true}
	repo.On("BeginTx", ctx).Return(tx, nil)
	tx.On("GetEntryForUpdate", ctx, "acct-1", "health-potion").Return(entry, nil)
	tx.On("Rollback", ctx).Return(nil)

	svc := NewService(repo, &MockCatalog{})
	_, err := svc.UseItem(ctx, "acct-1", "health-potion", 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrItemExhausted)
	tx.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestUseItem_InsufficientQuantity(t *testing.T) {
	ctx := context.Background()
	repo := &MockRepository{}
	tx := &MockTx{}

	entry := &domain.InventoryEntry{AccountID: "acct-1", ItemID: "health-potion", Quantity: 1}
	repo.On("BeginTx", ctx).Return(tx, nil)
	tx.On("GetEntryForUpdate", ctx, "acct-1", "health-potion").Return(entry, nil)
	tx.On("Rollback", ctx).Return(nil)

	svc := NewService(repo, &MockCatalog{})
	_, err := svc.UseItem(ctx, "acct-1", "health-potion", 3)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientQuantity)
}

func TestUseItem_NotInInventory(t *testing.T) {
	ctx := context.Background()
	repo := &MockRepository{}
	tx := &MockTx{}

	repo.On("BeginTx", ctx).Return(tx, nil)
	tx.On("GetEntryForUpdate", ctx, "acct-1", "ghost-item").Return(nil, domain.ErrNotInInventory)
	tx.On("Rollback", ctx).Return(nil)

	svc := NewService(repo, &MockCatalog{})
	_, err := svc.UseItem(ctx, "acct-1", "ghost-item", 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotInInventory)
}

func TestUseItem_InvalidCount(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&MockRepository{}, &MockCatalog{})

	_, err := svc.UseItem(ctx, "acct-1", "health-potion", 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)

	_, err = svc.UseItem(ctx, "acct-1", "health-potion", -1)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestListInventory_HydratesCatalog(t *testing.T) {
	ctx := context.Background()
	repo := &MockRepository{}
	cat := &MockCatalog{}

	entries := []domain.InventoryEntry{
		{AccountID: "acct-1", ItemID: "health-potion", Quantity: 3},
		{AccountID: "acct-1", ItemID: "removed-item", Quantity: 1},
	}
	repo.On("ListByAccount", ctx, "acct-1").Return(entries, nil)
	cat.On("GetItem", ctx, "health-potion").Return(&domain.CatalogItem{ID: "health-potion", Name: "Health Potion"}, nil)
	cat.On("GetItem", ctx, "removed-item").Return(nil, domain.ErrItemNotFound)

	svc := NewService(repo, cat)
	owned, err := svc.ListInventory(ctx, "acct-1")

	require.NoError(t, err)
	require.Len(t, owned, 2)
	require.NotNil(t, owned[0].Item)
	assert.Equal(t, "Health Potion", owned[0].Item.Name)
	// Entries with a missing catalog row still list, unhydrated
	assert.Nil(t, owned[1].Item)
}
