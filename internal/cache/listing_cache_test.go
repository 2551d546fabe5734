package cache_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carrylink/carrylink/internal/cache"
	"github.com/carrylink/carrylink/internal/lifecycle"
)

func TestListingCache(t *testing.T) {
	buyerID := uuid.MustParse("7f9b6a1e-44d2-4fcb-a6b1-0d8f4f2e9c01")
	otherID := uuid.MustParse("f1b2c3d4-5e6f-4a7b-8c9d-0e1f2a3b4c5d")
	pending := []lifecycle.Request{{ID: 42, Status: lifecycle.StatusPending}}

	t.Run("miss before set", func(t *testing.T) {
		c := cache.NewListingCache()
		_, found := c.Get(buyerID, lifecycle.StatusPending)
		assert.False(t, found)
	})

	t.Run("hit after set, keyed by status", func(t *testing.T) {
		c := cache.NewListingCache()
		c.Set(buyerID, lifecycle.StatusPending, pending)

		got, found := c.Get(buyerID, lifecycle.StatusPending)
		require.True(t, found)
		assert.Equal(t, pending, got)

		_, found = c.Get(buyerID, lifecycle.StatusMatched)
		assert.False(t, found)
		_, found = c.Get(otherID, lifecycle.StatusPending)
		assert.False(t, found)
	})

	t.Run("invalidate drops only that buyer", func(t *testing.T) {
		c := cache.NewListingCache()
		c.Set(buyerID, lifecycle.StatusPending, pending)
		c.Set(buyerID, "", pending)
		c.Set(otherID, lifecycle.StatusPending, pending)

		c.Invalidate(buyerID)

		_, found := c.Get(buyerID, lifecycle.StatusPending)
		assert.False(t, found)
		_, found = c.Get(buyerID, "")
		assert.False(t, found)
		_, found = c.Get(otherID, lifecycle.StatusPending)
		assert.True(t, found)
	})

	t.Run("stored slice is isolated from the caller", func(t *testing.T) {
		c := cache.NewListingCache()
		source := []lifecycle.Request{{ID: 42, Status: lifecycle.StatusPending}}
		c.Set(buyerID, lifecycle.StatusPending, source)

		source[0].Status = lifecycle.StatusMatched

		got, found := c.Get(buyerID, lifecycle.StatusPending)
		require.True(t, found)
		assert.Equal(t, lifecycle.StatusPending, got[0].Status)

		got[0].Status = lifecycle.StatusDeleted
		again, _ := c.Get(buyerID, lifecycle.StatusPending)
		assert.Equal(t, lifecycle.StatusPending, again[0].Status)
	})

	t.Run("invalidating an unknown buyer is a no-op", func(t *testing.T) {
		c := cache.NewListingCache()
		c.Invalidate(buyerID)
	})
}
