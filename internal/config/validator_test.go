package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Port:               8080,
		Environment:        "dev",
		StoreDriver:        StoreDriverPostgres,
		DBUser:             "postgres",
		DBPassword:         "postgres",
		DBHost:             "localhost",
		DBPort:             "5432",
		DBName:             "inventory",
		DBMaxConns:         10,
		CORSAllowedOrigins: []string{"*"},
		RequestTimeout:     time.Second,
		SearchCacheSize:    10,
		SearchCacheTTL:     time.Second,
	}
}

func TestValidate(t *testing.T) {
	t.Run("accepts a complete postgres config", func(t *testing.T) {
		require.NoError(t, validConfig().Validate())
	})

	t.Run("accepts sqlite with a path", func(t *testing.T) {
		cfg := validConfig()
		cfg.StoreDriver = StoreDriverSQLite
		cfg.SQLitePath = "inv.db"
		require.NoError(t, cfg.Validate())
	})

	t.Run("rejects unknown driver", func(t *testing.T) {
		cfg := validConfig()
		cfg.StoreDriver = "mongodb"

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown STORE_DRIVER "mongodb"`)
	})

	t.Run("rejects out of range port", func(t *testing.T) {
		for _, port := range []int{0, -1, 65536} {
			cfg := validConfig()
			cfg.Port = port
			assert.Error(t, cfg.Validate(), "port %d", port)
		}
	})

	t.Run("lists missing database settings", func(t *testing.T) {
		cfg := validConfig()
		cfg.DBHost = ""
		cfg.DBName = ""

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing database settings: DB_HOST, DB_NAME")
	})

	t.Run("DB_URL makes the parts optional", func(t *testing.T) {
		cfg := validConfig()
		cfg.DBHost = ""
		cfg.DBURL = "postgres://x"
		assert.NoError(t, cfg.Validate())
	})

	t.Run("rejects sqlite without a path", func(t *testing.T) {
		cfg := validConfig()
		cfg.StoreDriver = StoreDriverSQLite
		cfg.SQLitePath = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("rejects negative cache size", func(t *testing.T) {
		cfg := validConfig()
		cfg.SearchCacheSize = -1
		assert.Error(t, cfg.Validate())
	})
}

func TestValidateWithWarnings(t *testing.T) {
	t.Run("no warnings in dev", func(t *testing.T) {
		warnings, err := validConfig().ValidateWithWarnings()
		require.NoError(t, err)
		assert.Empty(t, warnings)
	})

	t.Run("insecure defaults outside dev", func(t *testing.T) {
		cfg := validConfig()
		cfg.Environment = "prod"

		warnings, err := cfg.ValidateWithWarnings()
		require.NoError(t, err)
		assert.Len(t, warnings, 2)
	})

	t.Run("propagates validation errors", func(t *testing.T) {
		cfg := validConfig()
		cfg.StoreDriver = ""

		warnings, err := cfg.ValidateWithWarnings()
		assert.Error(t, err)
		assert.Nil(t, warnings)
	})
}
