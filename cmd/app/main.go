package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/osse101/InventoryTracker_Go/docs"
	"github.com/osse101/InventoryTracker_Go/internal/bootstrap"
	"github.com/osse101/InventoryTracker_Go/internal/config"
	"github.com/osse101/InventoryTracker_Go/internal/inventory"
	"github.com/osse101/InventoryTracker_Go/internal/server"
)

// @title Inventory Tracker API
// @version 1.0
// @description REST API for entering and searching equipment inventory records.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	warnings, err := cfg.ValidateWithWarnings()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	bootstrap.SetupLogger(cfg)
	bootstrap.LogWarnings(warnings)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if cfg.AutoMigrate {
		if err := store.Migrate(ctx); err != nil {
			store.Close()
			log.Fatalf("%v", err)
		}
	}

	inventoryService := inventory.NewService(store.Inventory, cfg.SearchCacheSize, cfg.SearchCacheTTL)

	srv := server.NewServer(server.Options{
		Port:               cfg.Port,
		ServiceName:        cfg.ServiceName,
		Version:            cfg.Version,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RequestTimeout:     cfg.RequestTimeout,
	}, inventoryService)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
	case err := <-serverErr:
		if err != nil {
			store.Close()
			log.Fatalf("Server failed to start: %v", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server: srv,
		Store:  store,
	})
}
