package inventory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/InventoryTracker_Go/internal/domain"
)

func TestSearchCache_Disabled(t *testing.T) {
	c := newSearchCache(0, time.Minute)
	assert.Nil(t, c)

	// A nil cache is usable and never hits
	c.Add("q", c.Generation(), []domain.InventoryRecord{{ID: "1"}})
	_, ok := c.Get("q")
	assert.False(t, ok)
	c.Purge()
	assert.Zero(t, c.Len())
}

func TestSearchCache_KeysAreExact(t *testing.T) {
	c := newSearchCache(8, time.Minute)

	c.Add("Samsung", c.Generation(), []domain.InventoryRecord{{ID: "1"}})

	got, ok := c.Get("Samsung")
	assert.True(t, ok)
	assert.Equal(t, "1", got[0].ID)

	// Case variants can match differently per backend, e.g. ILIKE treats
	// "straße" and "STRASSE" as distinct while a Unicode fold does not
	c.Add("straße", c.Generation(), []domain.InventoryRecord{{ID: "2"}})
	_, ok = c.Get("STRASSE")
	assert.False(t, ok)
	_, ok = c.Get("SAMSUNG")
	assert.False(t, ok)
}

func TestSearchCache_ReturnsCopies(t *testing.T) {
	c := newSearchCache(8, time.Minute)
	c.Add("q", c.Generation(), []domain.InventoryRecord{{ID: "1"}})

	got, _ := c.Get("q")
	got[0].ID = "mutated"

	again, _ := c.Get("q")
	assert.Equal(t, "1", again[0].ID)
}

func TestSearchCache_StaleGenerationDropped(t *testing.T) {
	c := newSearchCache(8, time.Minute)

	gen := c.Generation()
	c.Purge() // a write lands while the search is running
	c.Add("q", gen, []domain.InventoryRecord{{ID: "stale"}})

	_, ok := c.Get("q")
	assert.False(t, ok)
	assert.Zero(t, c.Len())
}

func TestSearchCache_Expiry(t *testing.T) {
	c := newSearchCache(8, 20*time.Millisecond)
	c.Add("q", c.Generation(), []domain.InventoryRecord{{ID: "1"}})

	assert.Eventually(t, func() bool {
		_, ok := c.Get("q")
		return !ok
	}, time.Second, 10*time.Millisecond)
}
