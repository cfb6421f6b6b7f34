package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	r := newRegistry()

	names := make([]string, 0)
	for _, cmd := range r.List() {
		names = append(names, cmd.Name())
	}
	assert.Equal(t, []string{"health-check", "migrate", "seed", "wait-for-db"}, names)

	cmd, ok := r.Get("migrate")
	require.True(t, ok)
	assert.NotEmpty(t, cmd.Description())

	_, ok = r.Get("deploy")
	assert.False(t, ok)
}

func TestMigrateCommand_RejectsUnknownSubcommand(t *testing.T) {
	cmd := &MigrateCommand{}

	assert.Error(t, cmd.Run(nil))
	assert.Error(t, cmd.Run([]string{"create"}))
}

func TestMigrateAndSeed_SQLite(t *testing.T) {
	t.Setenv("STORE_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", t.TempDir()+"/devtool.db")

	require.NoError(t, (&MigrateCommand{}).Run([]string{"up"}))
	require.NoError(t, (&MigrateCommand{}).Run([]string{"version"}))
	require.NoError(t, (&MigrateCommand{}).Run([]string{"status"}))
	require.NoError(t, (&SeedCommand{}).Run([]string{"-migrate=false"}))
	require.NoError(t, (&WaitForDBCommand{}).Run([]string{"-retries", "1"}))
}

func TestHealthCheckCommand(t *testing.T) {
	healthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer healthy.Close()

	unready := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/readyz" {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer unready.Close()

	assert.NoError(t, (&HealthCheckCommand{}).Run([]string{"-url", healthy.URL}))
	assert.Error(t, (&HealthCheckCommand{}).Run([]string{"-url", unready.URL}))
}
