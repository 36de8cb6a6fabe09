package simco

import (
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/noxustrader/simco-optimizer/business/market/domain"
)

// cacheKey identifies a cached orderbook.
type cacheKey struct {
	Realm      int
	ResourceID int
}

// cacheEntry holds one fetched orderbook and its fetch time.
type cacheEntry struct {
	listings  []domain.Listing
	fetchedAt time.Time
}

// listingCache is a thread-safe in-memory cache for orderbooks with a
// fixed TTL. A singleflight.Group coalesces concurrent fetches for the
// same resource so at most one request per key is in flight.
type listingCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[cacheKey]*cacheEntry
	group   singleflight.Group
	now     func() time.Time
}

// newListingCache creates an empty cache with the given TTL.
func newListingCache(ttl time.Duration) *listingCache {
	return &listingCache{
		ttl:     ttl,
		entries: make(map[cacheKey]*cacheEntry),
		now:     time.Now,
	}
}

// Get returns cached listings if they exist and have not expired.
func (lc *listingCache) Get(realm, resourceID int) ([]domain.Listing, bool) {
	lc.mu.RLock()
	defer lc.mu.RUnlock()

	e, ok := lc.entries[cacheKey{realm, resourceID}]
	if !ok {
		return nil, false
	}
	if lc.now().Sub(e.fetchedAt) >= lc.ttl {
		return nil, false
	}
	return e.listings, true
}

// Put stores listings in the cache, stamped with the current time.
func (lc *listingCache) Put(realm, resourceID int, listings []domain.Listing) {
	lc.mu.Lock()
	defer lc.mu.Unlock()

	lc.entries[cacheKey{realm, resourceID}] = &cacheEntry{
		listings:  listings,
		fetchedAt: lc.now(),
	}
}

// Invalidate drops the entry for a resource, forcing the next read to fetch.
func (lc *listingCache) Invalidate(realm, resourceID int) {
	lc.mu.Lock()
	defer lc.mu.Unlock()

	delete(lc.entries, cacheKey{realm, resourceID})
}

// Len reports the number of entries, expired or not.
func (lc *listingCache) Len() int {
	lc.mu.RLock()
	defer lc.mu.RUnlock()
	return len(lc.entries)
}
