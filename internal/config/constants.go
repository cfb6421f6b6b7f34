package config

import "time"

// Environment variable names
const (
	EnvPort               = "PORT"
	EnvLogLevel           = "LOG_LEVEL"
	EnvLogFormat          = "LOG_FORMAT"
	EnvEnvironment        = "ENVIRONMENT"
	EnvServiceName        = "SERVICE_NAME"
	EnvVersion            = "VERSION"
	EnvStoreDriver        = "STORE_DRIVER"
	EnvDBURL              = "DB_URL"
	EnvDBUser             = "DB_USER"
	EnvDBPassword         = "DB_PASSWORD"
	EnvDBHost             = "DB_HOST"
	EnvDBPort             = "DB_PORT"
	EnvDBName             = "DB_NAME"
	EnvDBMaxConns         = "DB_MAX_CONNS"
	EnvDBMaxConnIdle      = "DB_MAX_CONN_IDLE"
	EnvDBMaxConnLife      = "DB_MAX_CONN_LIFE"
	EnvSQLitePath         = "SQLITE_PATH"
	EnvAutoMigrate        = "AUTO_MIGRATE"
	EnvCORSAllowedOrigins = "CORS_ALLOWED_ORIGINS"
	EnvRequestTimeout     = "REQUEST_TIMEOUT"
	EnvShutdownTimeout    = "SHUTDOWN_TIMEOUT"
	EnvSearchCacheSize    = "SEARCH_CACHE_SIZE"
	EnvSearchCacheTTL     = "SEARCH_CACHE_TTL"
)

// Store drivers
const (
	StoreDriverPostgres = "postgres"
	StoreDriverSQLite   = "sqlite"
)

// Defaults
const (
	DefaultPort            = "8080"
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
	DefaultEnvironment     = "dev"
	DefaultServiceName     = "inventory-tracker"
	DefaultVersion         = "dev"
	DefaultSQLitePath      = "data/inventory.db"
	DefaultDBMaxConns      = 10
	DefaultDBMaxConnIdle   = 5 * time.Minute
	DefaultDBMaxConnLife   = time.Hour
	DefaultRequestTimeout  = 15 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
	DefaultSearchCacheSize = 256
	DefaultSearchCacheTTL  = 30 * time.Second
)

// Values flagged by ValidateWithWarnings
const (
	InsecureDBPassword = "postgres"
)
