package main

import (
	"context"
	"flag"
	"fmt"
	"time"
)

type WaitForDBCommand struct{}

func (c *WaitForDBCommand) Name() string {
	return "wait-for-db"
}

func (c *WaitForDBCommand) Description() string {
	return "Wait for the record store to be ready (with retries)"
}

func (c *WaitForDBCommand) Run(args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	maxRetries := fs.Int("retries", 30, "attempts before giving up")
	retryInterval := fs.Duration("interval", 2*time.Second, "delay between attempts")
	if err := fs.Parse(args); err != nil {
		return err
	}

	PrintHeader("Waiting for database...")

	ctx := context.Background()
	var lastErr error
	for i := 0; i < *maxRetries; i++ {
		store, err := openStore(ctx)
		if err == nil {
			err = store.Inventory.Ping(ctx)
			store.Close()
			if err == nil {
				PrintSuccess("Database is ready")
				return nil
			}
		}
		lastErr = err

		fmt.Printf("Database not ready (%d/%d): %v\n", i+1, *maxRetries, err)
		time.Sleep(*retryInterval)
	}

	return fmt.Errorf("database failed to become ready after %d attempts: %w", *maxRetries, lastErr)
}
