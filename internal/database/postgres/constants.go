package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// likeEscape is the escape character used in ILIKE patterns built by likePattern
const likeEscape = `\`

// Error Messages - Inventory Operations
const (
	ErrMsgFailedToInsertRecord = "failed to insert inventory record"
	ErrMsgFailedToFindRecord   = "failed to find inventory record"
	ErrMsgFailedToUpdateRecord = "failed to update inventory record"
	ErrMsgFailedToListRecords  = "failed to list inventory records"
	ErrMsgFailedToSearch       = "failed to search inventory records"
	ErrMsgFailedToClear        = "failed to clear inventory records"
)
