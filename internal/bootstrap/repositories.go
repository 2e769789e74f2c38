package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/orvane/Gemstore_Go/internal/database/postgres"
	"github.com/orvane/Gemstore_Go/internal/repository"
)

// Repositories holds all repository implementations used by the application.
// This provides a centralized location for repository initialization and
// makes dependency injection clearer.
type Repositories struct {
	Wallet      repository.Wallet
	Catalog     repository.Catalog
	Store       repository.Store
	Inventory   repository.Inventory
	Fulfillment repository.Fulfillment
	Profile     repository.Profile
	Equipment   repository.Equipment
}

// InitializeRepositories creates all repository implementations.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Wallet:      postgres.NewWalletRepository(dbPool),
		Catalog:     postgres.NewCatalogRepository(dbPool),
		Store:       postgres.NewStoreRepository(dbPool),
		Inventory:   postgres.NewInventoryRepository(dbPool),
		Fulfillment: postgres.NewFulfillmentRepository(dbPool),
		Profile:     postgres.NewProfileRepository(dbPool),
		Equipment:   postgres.NewEquipmentRepository(dbPool),
	}
}
