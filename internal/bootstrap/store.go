package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/osse101/InventoryTracker_Go/internal/config"
	"github.com/osse101/InventoryTracker_Go/internal/database"
	"github.com/osse101/InventoryTracker_Go/internal/database/postgres"
	"github.com/osse101/InventoryTracker_Go/internal/database/sqlite"
	"github.com/osse101/InventoryTracker_Go/internal/repository"
)

// Store is the opened record store for the configured driver.
// Every binary opens it once and passes Inventory down explicitly.
type Store struct {
	Driver    string
	Inventory repository.Inventory

	// sqlDB backs goose; for postgres it wraps the pool
	sqlDB  *sql.DB
	pool   *pgxpool.Pool
	sqlxDB *sqlx.DB
}

// OpenStore connects to the store selected by cfg.StoreDriver
func OpenStore(ctx context.Context, cfg *config.Config) (*Store, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverPostgres:
		pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdle, cfg.DBMaxConnLife)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStore, err)
		}
		slog.Info(LogMsgStoreOpened, "driver", cfg.StoreDriver, "max_conns", cfg.DBMaxConns)
		return &Store{
			Driver:    database.DriverPostgres,
			Inventory: postgres.NewInventoryRepository(pool),
			sqlDB:     stdlib.OpenDBFromPool(pool),
			pool:      pool,
		}, nil

	case config.StoreDriverSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStore, err)
		}
		slog.Info(LogMsgStoreOpened, "driver", cfg.StoreDriver, "path", cfg.SQLitePath)
		return &Store{
			Driver:    database.DriverSQLite,
			Inventory: sqlite.NewInventoryRepository(db),
			sqlDB:     db.DB,
			sqlxDB:    db,
		}, nil

	default:
		return nil, fmt.Errorf("%s: %s %q", ErrMsgFailedOpenStore, database.ErrMsgUnsupportedDriver, cfg.StoreDriver)
	}
}

// Migrator returns a goose migrator bound to this store
func (s *Store) Migrator() (*database.Migrator, error) {
	return database.NewMigrator(s.Driver, s.sqlDB)
}

// Migrate applies every pending migration
func (s *Store) Migrate(ctx context.Context) error {
	slog.Info(LogMsgAutoMigrate, "driver", s.Driver)
	m, err := s.Migrator()
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedMigrateStore, err)
	}
	if err := m.Up(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedMigrateStore, err)
	}
	return nil
}

// Close releases every connection held by the store
func (s *Store) Close() {
	if s.sqlxDB != nil {
		if err := s.sqlxDB.Close(); err != nil {
			slog.Error("Failed to close SQLite database", "error", err)
		}
		return
	}
	if s.sqlDB != nil {
		_ = s.sqlDB.Close()
	}
	if s.pool != nil {
		s.pool.Close()
	}
}
