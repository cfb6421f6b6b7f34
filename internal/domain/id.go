package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// NewRecordID returns a fresh record identifier.
func NewRecordID() string {
	return uuid.NewString()
}

// ParseRecordID checks that id has the store's identifier shape and returns
// its canonical form.
func ParseRecordID(id string) (string, error) {
	u, err := uuid.Parse(id)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrMalformedID, id)
	}
	return u.String(), nil
}
