// Package seed resets the record store to a known set of records.
package seed

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/osse101/InventoryTracker_Go/internal/domain"
	"github.com/osse101/InventoryTracker_Go/internal/repository"
	"github.com/osse101/InventoryTracker_Go/internal/utils"
	"github.com/osse101/InventoryTracker_Go/internal/validation"
)

//go:embed data/inventory.json
var defaultData embed.FS

const defaultDataFile = "data/inventory.json"

// Log messages
const (
	LogMsgStoreCleared = "Cleared existing inventory data"
	LogMsgSeeded       = "Seeded inventory records"
)

// Load returns the records to seed. An empty path selects the bundled
// reference set. Either source must satisfy the seed schema.
func Load(path string) ([]domain.RecordInput, error) {
	schemas := validation.NewSchemaValidator()
	var records []domain.RecordInput

	if path == "" {
		data, err := fs.ReadFile(defaultData, defaultDataFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read bundled seed data: %w", err)
		}
		if err := schemas.ValidateBytes(data, validation.SchemaInventorySeed); err != nil {
			return nil, err
		}
		if err := utils.LoadJSONFS(defaultData, defaultDataFile, &records); err != nil {
			return nil, err
		}
		return records, nil
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("seed file: %w", err)
	}
	if err := schemas.ValidateFile(path, validation.SchemaInventorySeed); err != nil {
		return nil, err
	}
	if err := utils.LoadJSON(path, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Run clears the store and inserts records in order. Each record gets a
// fresh ID; added times step by one millisecond from now so that the
// newest-first order is the reverse of the input order.
func Run(ctx context.Context, repo repository.Inventory, records []domain.RecordInput, now time.Time) (int, error) {
	if err := repo.Clear(ctx); err != nil {
		return 0, fmt.Errorf("failed to clear inventory: %w", err)
	}
	slog.Info(LogMsgStoreCleared)

	for i, input := range records {
		rec := domain.NewRecord(input)
		rec.ID = domain.NewRecordID()
		rec.AddedTime = now.Add(time.Duration(i) * time.Millisecond)

		if _, err := repo.Insert(ctx, rec); err != nil {
			return i, fmt.Errorf("failed to insert %s/%s: %w", input.SerialNumber, input.Type, err)
		}
	}

	slog.Info(LogMsgSeeded, "count", len(records))
	return len(records), nil
}
