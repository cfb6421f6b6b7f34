package handler

import (
	"net/http"

	"github.com/osse101/InventoryTracker_Go/internal/inventory"
	"github.com/osse101/InventoryTracker_Go/internal/logger"
)

const (
	// QueryParamSearch is the search term parameter
	QueryParamSearch = "query"

	LogMsgSearchRequested = "Search requested"
)

// HandleSearchRecords handles free-text search
// @Summary Search inventory records
// @Description Case-insensitive substring match on any text field, newest first. An empty query returns every record.
// @Tags inventory
// @Produce json
// @Param query query string false "Search term"
// @Success 200 {array} domain.InventoryRecord
// @Failure 500 {object} ErrorResponse
// @Router /api/inventory/search [get]
func HandleSearchRecords(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get(QueryParamSearch)
		logger.FromContext(r.Context()).Debug(LogMsgSearchRequested, "query", query)

		records, err := svc.Search(r.Context(), query)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, orEmpty(records))
	}
}
