package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/osse101/InventoryTracker_Go/internal/domain"
	"github.com/osse101/InventoryTracker_Go/internal/inventory"
	"github.com/osse101/InventoryTracker_Go/internal/logger"
)

// decodeRecordInput reads and decodes the request body into a RecordInput.
// If it returns false the response has already been written.
func decodeRecordInput(w http.ResponseWriter, r *http.Request) (domain.RecordInput, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, http.StatusRequestEntityTooLarge, ErrMsgRequestTooLarge)
			return domain.RecordInput{}, false
		}
		logger.FromContext(r.Context()).Warn(ErrMsgReadBodyFailed, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgReadBodyFailed)
		return domain.RecordInput{}, false
	}

	input, err := inventory.DecodeInput(body)
	if err != nil {
		respondServiceError(w, r, err)
		return domain.RecordInput{}, false
	}
	return input, true
}

// orEmpty keeps an empty result encoded as [] rather than null
func orEmpty(records []domain.InventoryRecord) []domain.InventoryRecord {
	if records == nil {
		return []domain.InventoryRecord{}
	}
	return records
}
