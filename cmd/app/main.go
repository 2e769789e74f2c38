package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/orvane/Gemstore_Go/internal/bootstrap"
	"github.com/orvane/Gemstore_Go/internal/catalog"
	"github.com/orvane/Gemstore_Go/internal/config"
	"github.com/orvane/Gemstore_Go/internal/database"
	"github.com/orvane/Gemstore_Go/internal/equipment"
	"github.com/orvane/Gemstore_Go/internal/event"
	"github.com/orvane/Gemstore_Go/internal/fulfillment"
	"github.com/orvane/Gemstore_Go/internal/handler"
	"github.com/orvane/Gemstore_Go/internal/inventory"
	"github.com/orvane/Gemstore_Go/internal/profile"
	"github.com/orvane/Gemstore_Go/internal/purchase"
	"github.com/orvane/Gemstore_Go/internal/server"
	"github.com/orvane/Gemstore_Go/internal/wallet"
)

const (
	dbMaxConns = 10
	dbMaxIdle  = 30 * time.Minute
	dbMaxLife  = time.Hour
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	// Warn about missing optional env vars before logging is redirected
	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	}
	for _, w := range warnings {
		slog.Warn(w)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Logger setup failed", "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	handler.InitValidator()

	dbPool, err := database.NewPool(cfg.GetDBConnString(), dbMaxConns, dbMaxIdle, dbMaxLife)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if cfg.DBAutoInit {
		if err := database.InitSchema(context.Background(), dbPool); err != nil {
			slog.Error("Schema initialization failed", "error", err)
			os.Exit(1)
		}
	}

	_, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		slog.Error("Event system initialization failed", "error", err)
		os.Exit(1)
	}

	repos := bootstrap.InitializeRepositories(dbPool)

	walletService := wallet.NewService(repos.Wallet)
	catalogService := catalog.NewService(repos.Catalog, cfg.CatalogCacheSize, cfg.CatalogCacheTTL)
	purchaseService := purchase.NewService(repos.Store, repos.Wallet, catalogService, publisher, cfg.PurchaseDedupWindow)
	inventoryService := inventory.NewService(repos.Inventory, catalogService)
	fulfillmentService := fulfillment.NewService(repos.Fulfillment, repos.Store, publisher)
	profileService := profile.NewService(repos.Profile, publisher)
	equipmentService := equipment.NewService(repos.Equipment, repos.Profile, catalogService, publisher)

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, dbPool,
		walletService, catalogService, purchaseService, inventoryService,
		fulfillmentService, profileService, equipmentService)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	case sig := <-quit:
		slog.Info("Shutdown signal received", "signal", sig.String())
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), event.ShutdownDrainTimeout)
	defer shutdownCancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		ResilientPublisher: publisher,
	})
}
