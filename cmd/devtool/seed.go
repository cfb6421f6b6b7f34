package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/osse101/InventoryTracker_Go/internal/seed"
)

type SeedCommand struct{}

func (c *SeedCommand) Name() string {
	return "seed"
}

func (c *SeedCommand) Description() string {
	return "Clear the inventory and load reference records (-file to override)"
}

func (c *SeedCommand) Run(args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	file := fs.String("file", "", "JSON array of records; defaults to the bundled reference set")
	migrate := fs.Bool("migrate", true, "apply pending migrations first")
	if err := fs.Parse(args); err != nil {
		return err
	}

	records, err := seed.Load(*file)
	if err != nil {
		return fmt.Errorf("invalid seed data: %w", err)
	}

	ctx := context.Background()
	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	if *migrate {
		if err := store.Migrate(ctx); err != nil {
			return err
		}
	}

	PrintHeader("Seeding inventory")
	n, err := seed.Run(ctx, store.Inventory, records, time.Now())
	if err != nil {
		return err
	}

	PrintSuccess("Seeded %d records", n)
	return nil
}
