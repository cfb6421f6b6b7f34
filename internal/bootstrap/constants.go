package bootstrap

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingService     = "Starting inventory tracker"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"
)

// Store messages
const (
	LogMsgStoreOpened        = "Record store opened"
	LogMsgAutoMigrate        = "Applying pending migrations"
	ErrMsgFailedOpenStore    = "failed to open record store"
	ErrMsgFailedMigrateStore = "failed to migrate record store"
)

// Shutdown messages
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgClosingStore         = "Closing record store..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
)
