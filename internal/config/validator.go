package config

import (
	"fmt"
	"sort"
	"strings"
)

// Validate checks the loaded configuration for values the server cannot start with
func (c *Config) Validate() error {
	var problems []string

	if c.Port < 1 || c.Port > 65535 {
		problems = append(problems, fmt.Sprintf("PORT must be between 1 and 65535, got %d", c.Port))
	}

	switch c.StoreDriver {
	case StoreDriverPostgres:
		if c.DBURL == "" {
			var missing []string
			for name, value := range map[string]string{
				EnvDBUser: c.DBUser,
				EnvDBHost: c.DBHost,
				EnvDBPort: c.DBPort,
				EnvDBName: c.DBName,
			} {
				if value == "" {
					missing = append(missing, name)
				}
			}
			if len(missing) > 0 {
				sort.Strings(missing)
				problems = append(problems, fmt.Sprintf("missing database settings: %s", strings.Join(missing, ", ")))
			}
		}
		if c.DBMaxConns < 1 {
			problems = append(problems, "DB_MAX_CONNS must be positive")
		}
	case StoreDriverSQLite:
		if c.SQLitePath == "" {
			problems = append(problems, "SQLITE_PATH must be set when STORE_DRIVER=sqlite")
		}
	default:
		problems = append(problems, fmt.Sprintf("unknown STORE_DRIVER %q (expected %s or %s)", c.StoreDriver, StoreDriverPostgres, StoreDriverSQLite))
	}

	if c.SearchCacheSize < 0 {
		problems = append(problems, "SEARCH_CACHE_SIZE must not be negative")
	}
	if c.RequestTimeout <= 0 {
		problems = append(problems, "REQUEST_TIMEOUT must be positive")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

// ValidateWithWarnings validates the configuration and returns warnings
// for non-critical issues (like using default values)
func (c *Config) ValidateWithWarnings() ([]string, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	var warnings []string

	if c.StoreDriver == StoreDriverPostgres && c.DBURL == "" && c.DBPassword == InsecureDBPassword && !c.IsDevelopment() {
		warnings = append(warnings, "DB_PASSWORD is using the default value - set a secure password outside dev")
	}

	for _, origin := range c.CORSAllowedOrigins {
		if origin == "*" && !c.IsDevelopment() {
			warnings = append(warnings, "CORS_ALLOWED_ORIGINS allows any origin outside dev")
			break
		}
	}

	if c.SearchCacheSize > 0 && c.SearchCacheTTL <= 0 {
		warnings = append(warnings, "SEARCH_CACHE_TTL is not positive - cached searches will not expire")
	}

	return warnings, nil
}
