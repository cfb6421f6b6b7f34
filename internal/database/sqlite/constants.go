package sqlite

// DefaultBusyTimeoutMillis bounds how long a writer waits on a locked database
const DefaultBusyTimeoutMillis = 5000

// casefoldFunc is the SQL scalar function registered for case-insensitive search
const casefoldFunc = "casefold"

// Error Messages
const (
	ErrMsgFailedToCreateDir    = "failed to create database directory"
	ErrMsgFailedToOpenDatabase = "failed to open sqlite database"
	ErrMsgFailedToPingDatabase = "failed to ping sqlite database"
	ErrMsgFailedToInsertRecord = "failed to insert inventory record"
	ErrMsgFailedToFindRecord   = "failed to find inventory record"
	ErrMsgFailedToUpdateRecord = "failed to update inventory record"
	ErrMsgFailedToListRecords  = "failed to list inventory records"
	ErrMsgFailedToSearch       = "failed to search inventory records"
	ErrMsgFailedToClear        = "failed to clear inventory records"
)
