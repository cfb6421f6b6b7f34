package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecordID(t *testing.T) {
	t.Run("accepts generated ids", func(t *testing.T) {
		id := NewRecordID()
		parsed, err := ParseRecordID(id)
		require.NoError(t, err)
		assert.Equal(t, id, parsed)
	})

	t.Run("canonicalizes upper case", func(t *testing.T) {
		id := NewRecordID()
		parsed, err := ParseRecordID(strings.ToUpper(id))
		require.NoError(t, err)
		assert.Equal(t, id, parsed)
	})

	for _, bad := range []string{"", "invalid-id", "zzzzzzzz-zzzz-zzzz-zzzz-zzzzzzzzzzzz", "507f1f77bcf86cd79943901"} {
		t.Run("rejects "+bad, func(t *testing.T) {
			_, err := ParseRecordID(bad)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedID))
		})
	}
}

func TestRecordInputRoundTrip(t *testing.T) {
	in := RecordInput{
		Description:  "Test Laptop",
		Manufacturer: "Test Manufacturer",
		Model:        "Test Model",
		SerialNumber: "TEST123",
		Type:         "Laptop",
		Owner:        "Test Owner",
		CurrentUser:  "Test User",
		Status:       "Available",
	}

	rec := NewRecord(in)
	assert.Empty(t, rec.ID)
	assert.True(t, rec.AddedTime.IsZero())
	assert.Equal(t, in, rec.Input())
	assert.Len(t, rec.SearchableValues(), len(SearchFields))
}
