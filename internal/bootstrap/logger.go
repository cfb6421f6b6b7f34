package bootstrap

import (
	"log/slog"

	"github.com/osse101/InventoryTracker_Go/internal/config"
	"github.com/osse101/InventoryTracker_Go/internal/logger"
)

// SetupLogger initializes slog from the application configuration and logs
// the startup banner. Source locations are only added in development.
func SetupLogger(cfg *config.Config) {
	logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		cfg.IsDevelopment(),
	))

	slog.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "format", cfg.LogFormat)
	slog.Info(LogMsgStartingService,
		"environment", cfg.Environment,
		"version", cfg.Version,
		"store_driver", cfg.StoreDriver)

	slog.Debug(LogMsgConfigurationLoaded,
		"db_host", cfg.DBHost,
		"db_port", cfg.DBPort,
		"db_name", cfg.DBName,
		"sqlite_path", cfg.SQLitePath,
		"port", cfg.Port,
		"auto_migrate", cfg.AutoMigrate,
		"search_cache_size", cfg.SearchCacheSize)
}

// LogWarnings reports non-fatal configuration problems
func LogWarnings(warnings []string) {
	for _, w := range warnings {
		slog.Warn(LogMsgConfigWarning, "warning", w)
	}
}
