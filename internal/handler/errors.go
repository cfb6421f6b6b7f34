package handler

import (
	"errors"
	"net/http"

	"github.com/osse101/InventoryTracker_Go/internal/domain"
	"github.com/osse101/InventoryTracker_Go/internal/logger"
)

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
const (
	ErrMsgRouteNotFound   = "Route not found"
	ErrMsgRequestTooLarge = "Request body too large"
	ErrMsgReadBodyFailed  = "Failed to read request body"
	ErrMsgServerError     = domain.ErrMsgInternal
)

// Health messages
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
	MsgStoreUnavailable     = "store connection failed"
)

// mapServiceErrorToUserMessage maps domain errors to an HTTP status and the
// message the client sees. Anything unrecognised becomes a generic 500.
func mapServiceErrorToUserMessage(err error) (int, string) {
	var vErr *domain.ValidationError

	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrMsgServerError
	case errors.As(err, &vErr):
		return http.StatusBadRequest, vErr.Error()
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrDuplicateKey):
		return http.StatusBadRequest, domain.ErrMsgDuplicateKey
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, domain.ErrMsgNotFound
	case errors.Is(err, domain.ErrMalformedID):
		// Existing clients expect 500 for a malformed id
		return http.StatusInternalServerError, domain.ErrMsgMalformedID
	default:
		return http.StatusInternalServerError, ErrMsgServerError
	}
}

// respondServiceError writes the mapped error, logging anything unexpected
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := mapServiceErrorToUserMessage(err)
	if status == http.StatusInternalServerError && !errors.Is(err, domain.ErrMalformedID) {
		logger.FromContext(r.Context()).Error("Request failed", "error", err, "path", r.URL.Path)
	}
	respondError(w, status, message)
}
