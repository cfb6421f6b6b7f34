package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/osse101/InventoryTracker_Go/internal/database"
	"github.com/osse101/InventoryTracker_Go/internal/domain"
)

// openTestDB opens a migrated database in a temp dir
func openTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	ctx := context.Background()

	db, err := Open(ctx, filepath.Join(t.TempDir(), "nested", "inventory.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	migrator, err := database.NewMigrator(database.DriverSQLite, db.DB)
	require.NoError(t, err)
	require.NoError(t, migrator.Up(ctx))
	return db
}

func newTestRepository(t *testing.T) *InventoryRepository {
	t.Helper()
	return &InventoryRepository{db: openTestDB(t)}
}

func sampleInput(serial, recordType string) domain.RecordInput {
	return domain.RecordInput{
		Description:  "55 inch 4K QLED TV",
		Manufacturer: "Samsung",
		Model:        "QN55Q80B",
		SerialNumber: serial,
		Type:         recordType,
		Owner:        "Marketing",
		CurrentUser:  "Alice",
		Status:       "In use",
	}
}

func insert(t *testing.T, repo *InventoryRepository, in domain.RecordInput, added time.Time) *domain.InventoryRecord {
	t.Helper()
	rec := domain.NewRecord(in)
	rec.AddedTime = added
	saved, err := repo.Insert(context.Background(), rec)
	require.NoError(t, err)
	return saved
}

func ids(records []domain.InventoryRecord) []string {
	if len(records) == 0 {
		return nil
	}
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}
