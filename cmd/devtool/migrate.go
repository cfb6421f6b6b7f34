package main

import (
	"context"
	"fmt"
	"time"
)

type MigrateCommand struct{}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

func (c *MigrateCommand) Description() string {
	return "Manage database migrations (up, down, status, version)"
}

func (c *MigrateCommand) Run(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("subcommand required: up, down, status, version")
	}
	subcmd := args[0]

	switch subcmd {
	case "up", "down", "status", "version":
	default:
		return fmt.Errorf("unknown subcommand: %s", subcmd)
	}

	ctx := context.Background()
	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	migrator, err := store.Migrator()
	if err != nil {
		return err
	}

	switch subcmd {
	case "up":
		PrintHeader("Applying migrations")
		if err := migrator.Up(ctx); err != nil {
			return err
		}
		PrintSuccess("Migrations applied")
	case "down":
		PrintHeader("Rolling back one migration")
		if err := migrator.Down(ctx); err != nil {
			return err
		}
		PrintSuccess("Rolled back")
	case "status":
		statuses, err := migrator.Status(ctx)
		if err != nil {
			return err
		}
		PrintHeader(fmt.Sprintf("Migration status (%s)", store.Driver))
		for _, s := range statuses {
			applied := "pending"
			if !s.AppliedAt.IsZero() {
				applied = s.AppliedAt.Format(time.RFC3339)
			}
			fmt.Printf("  %05d  %-45s %s\n", s.Source.Version, s.Source.Path, applied)
		}
	case "version":
		version, err := migrator.Version(ctx)
		if err != nil {
			return err
		}
		PrintInfo("Schema version: %d", version)
	}
	return nil
}
