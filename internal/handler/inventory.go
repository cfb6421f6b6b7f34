package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/InventoryTracker_Go/internal/domain"
	"github.com/osse101/InventoryTracker_Go/internal/inventory"
)

// HandleCreateRecord handles creating an inventory record
// @Summary Create inventory record
// @Description Adds a record. The (serialNumber, type) pair must be unique.
// @Tags inventory
// @Accept json
// @Produce json
// @Param record body domain.RecordInput true "Record fields"
// @Success 201 {object} domain.InventoryRecord
// @Failure 400 {object} ErrorResponse "Validation failed or duplicate serial number and type"
// @Failure 413 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/inventory [post]
func HandleCreateRecord(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		input, ok := decodeRecordInput(w, r)
		if !ok {
			return
		}

		record, err := svc.Create(r.Context(), input)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}

		respondJSON(w, http.StatusCreated, record)
	}
}

// HandleListRecords handles listing every record
// @Summary List inventory records
// @Tags inventory
// @Produce json
// @Success 200 {array} domain.InventoryRecord
// @Failure 500 {object} ErrorResponse
// @Router /api/inventory [get]
func HandleListRecords(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := svc.List(r.Context())
		if err != nil {
			respondServiceError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, orEmpty(records))
	}
}

// HandleUpdateRecord handles replacing a record's fields
// @Summary Update inventory record
// @Description Replaces every mutable field. The id and addedTime never change.
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path string true "Record ID"
// @Param record body domain.RecordInput true "Record fields"
// @Success 200 {object} domain.InventoryRecord
// @Failure 400 {object} ErrorResponse "Validation failed or duplicate serial number and type"
// @Failure 404 {object} ErrorResponse "Item not found"
// @Failure 500 {object} ErrorResponse "Invalid ID format or server error"
// @Router /api/inventory/{id} [put]
func HandleUpdateRecord(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		// A malformed id is reported before the body is looked at
		if _, err := domain.ParseRecordID(id); err != nil {
			respondServiceError(w, r, err)
			return
		}

		input, ok := decodeRecordInput(w, r)
		if !ok {
			return
		}

		record, err := svc.Update(r.Context(), id, input)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, record)
	}
}
