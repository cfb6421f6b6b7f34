package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	ServiceName string
	Version     string

	// Store selection: "postgres" or "sqlite"
	StoreDriver string

	DBURL         string // full connection string, overrides the DB_* parts
	DBUser        string
	DBPassword    string
	DBHost        string
	DBPort        string
	DBName        string
	DBMaxConns    int
	DBMaxConnIdle time.Duration
	DBMaxConnLife time.Duration

	SQLitePath  string
	AutoMigrate bool

	CORSAllowedOrigins []string
	RequestTimeout     time.Duration
	ShutdownTimeout    time.Duration

	SearchCacheSize int // 0 disables the search cache
	SearchCacheTTL  time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:   getEnv(EnvLogFormat, DefaultLogFormat),
		Environment: getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName: getEnv(EnvServiceName, DefaultServiceName),
		Version:     getEnv(EnvVersion, DefaultVersion),

		StoreDriver: strings.ToLower(getEnv(EnvStoreDriver, StoreDriverPostgres)),

		DBURL:         getEnv(EnvDBURL, ""),
		DBUser:        getEnv(EnvDBUser, "postgres"),
		DBPassword:    getEnv(EnvDBPassword, "postgres"),
		DBHost:        getEnv(EnvDBHost, "localhost"),
		DBPort:        getEnv(EnvDBPort, "5432"),
		DBName:        getEnv(EnvDBName, "inventory"),
		DBMaxConns:    getEnvAsInt(EnvDBMaxConns, DefaultDBMaxConns),
		DBMaxConnIdle: getEnvAsDuration(EnvDBMaxConnIdle, DefaultDBMaxConnIdle),
		DBMaxConnLife: getEnvAsDuration(EnvDBMaxConnLife, DefaultDBMaxConnLife),

		SQLitePath:  getEnv(EnvSQLitePath, DefaultSQLitePath),
		AutoMigrate: getEnvAsBool(EnvAutoMigrate, true),

		CORSAllowedOrigins: getEnvAsList(EnvCORSAllowedOrigins, []string{"*"}),
		RequestTimeout:     getEnvAsDuration(EnvRequestTimeout, DefaultRequestTimeout),
		ShutdownTimeout:    getEnvAsDuration(EnvShutdownTimeout, DefaultShutdownTimeout),

		SearchCacheSize: getEnvAsInt(EnvSearchCacheSize, DefaultSearchCacheSize),
		SearchCacheTTL:  getEnvAsDuration(EnvSearchCacheTTL, DefaultSearchCacheTTL),
	}

	portStr := getEnv(EnvPort, DefaultPort)
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back to the default when unset or invalid
func getEnvAsInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

// getEnvAsDuration parses a time.Duration variable ("30s", "5m"), falling back to the default
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}

// getEnvAsList splits a comma separated variable, dropping empty entries
func getEnvAsList(key string, defaultValue []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(value) == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	if c.DBURL != "" {
		return c.DBURL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// IsDevelopment reports whether the service runs in a dev environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == DefaultEnvironment || c.Environment == "development"
}
