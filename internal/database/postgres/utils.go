package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/osse101/InventoryTracker_Go/internal/domain"
)

// isUniqueViolation reports whether err is a unique index violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation
}

// parseRecordUUID parses a record ID with a consistent error.
func parseRecordUUID(id string) (uuid.UUID, error) {
	u, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q", domain.ErrMalformedID, id)
	}
	return u, nil
}

var likeReplacer = strings.NewReplacer(
	likeEscape, likeEscape+likeEscape,
	"%", likeEscape+"%",
	"_", likeEscape+"_",
)

// likePattern turns a literal search term into an unanchored ILIKE pattern.
func likePattern(term string) string {
	return "%" + likeReplacer.Replace(term) + "%"
}
