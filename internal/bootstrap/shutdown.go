package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/InventoryTracker_Go/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server *server.Server
	Store  *Store
}

// GracefulShutdown stops the HTTP server first so no new request reaches
// the store, then closes the store. Errors are logged and do not stop the
// sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Store != nil {
		slog.Info(LogMsgClosingStore)
		components.Store.Close()
	}

	slog.Info(LogMsgServerStopped)
}
