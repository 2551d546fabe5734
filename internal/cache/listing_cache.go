package cache

import (
	"sync"

	"github.com/google/uuid"

	"github.com/carrylink/carrylink/internal/lifecycle"
	"github.com/carrylink/carrylink/internal/metrics"
)

// ListingCache keeps each buyer's request listings in memory so that a
// mutation only forces a re-fetch for the buyer it touched.
type ListingCache struct {
	mu       sync.RWMutex
	listings map[uuid.UUID]map[lifecycle.Status][]lifecycle.Request
}

func NewListingCache() *ListingCache {
	return &ListingCache{
		listings: make(map[uuid.UUID]map[lifecycle.Status][]lifecycle.Request),
	}
}

func (c *ListingCache) Get(buyerID uuid.UUID, status lifecycle.Status) ([]lifecycle.Request, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	byStatus, found := c.listings[buyerID]
	if !found {
		return nil, false
	}
	requests, found := byStatus[status]
	if !found {
		return nil, false
	}

	out := make([]lifecycle.Request, len(requests))
	copy(out, requests)
	return out, true
}

func (c *ListingCache) Set(buyerID uuid.UUID, status lifecycle.Status, requests []lifecycle.Request) {
	c.mu.Lock()
	defer c.mu.Unlock()

	byStatus, found := c.listings[buyerID]
	if !found {
		byStatus = make(map[lifecycle.Status][]lifecycle.Request)
		c.listings[buyerID] = byStatus
		metrics.ListingCacheBuyers.Inc()
	}

	stored := make([]lifecycle.Request, len(requests))
	copy(stored, requests)
	byStatus[status] = stored
}

func (c *ListingCache) Invalidate(buyerID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, found := c.listings[buyerID]; found {
		delete(c.listings, buyerID)
		metrics.ListingCacheBuyers.Dec()
	}
}
