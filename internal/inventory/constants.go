package inventory

import "time"

// Search cache defaults
const (
	DefaultSearchCacheSize = 256
	DefaultSearchCacheTTL  = 30 * time.Second
)

// Store operation names used as metric labels
const (
	OpFindByKey       = "find_by_key"
	OpInsert          = "insert"
	OpUpdate          = "update"
	OpList            = "list"
	OpListNewestFirst = "list_newest_first"
	OpSearch          = "search"
)

// Validation messages, shaped like the messages the web client already shows
const (
	MsgFieldRequired   = "Path `%s` is required."
	MsgFieldTooLong    = "Path `%s` is longer than the maximum allowed length (%s)."
	MsgFieldInvalid    = "Path `%s` contains invalid characters."
	MsgFieldMalformed  = "Path `%s` is invalid."
	MsgFieldWrongType  = "Cast to string failed for value at path `%s`."
	MsgBodyNotAnObject = "Request body must be a JSON object."
)

// FieldBody keys errors about the request body as a whole
const FieldBody = "body"

// Log messages
const (
	LogMsgRecordCreated      = "Inventory record created"
	LogMsgRecordUpdated      = "Inventory record updated"
	LogMsgValidationRejected = "Inventory payload rejected"
	LogMsgDuplicateRejected  = "Duplicate serial number and type rejected"
	LogMsgStoreFailure       = "Inventory store call failed"
	LogMsgSearchCacheHit     = "Search served from cache"
	LogMsgSearchCachePurged  = "Search cache purged"
)
