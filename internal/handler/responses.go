package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// ErrorResponse is the body of every error reply
type ErrorResponse struct {
	Message string `json:"message"`
}

// respondJSON encodes payload first so an encoding failure can still become a 500
func respondJSON(w http.ResponseWriter, status int, payload any) {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"` + ErrMsgServerError + `"}` + "\n"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Message: message})
}

// RespondError is respondError for middleware outside this package
func RespondError(w http.ResponseWriter, status int, message string) {
	respondError(w, status, message)
}

// HandleRouteNotFound answers every unmatched route and unsupported method
func HandleRouteNotFound() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusNotFound, ErrMsgRouteNotFound)
	}
}
