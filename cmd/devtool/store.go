package main

import (
	"context"
	"fmt"

	"github.com/osse101/InventoryTracker_Go/internal/bootstrap"
	"github.com/osse101/InventoryTracker_Go/internal/config"
	"github.com/osse101/InventoryTracker_Go/internal/logger"
)

// openStore loads the same configuration the server uses and opens its store
func openStore(ctx context.Context) (*bootstrap.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.InitLogger(logger.NewConfig(cfg.LogLevel, "text", cfg.ServiceName+"-devtool", cfg.Version, cfg.Environment, false))

	PrintInfo("Opening %s store", cfg.StoreDriver)
	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	return store, nil
}
