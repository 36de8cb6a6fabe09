package simco

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/noxustrader/simco-optimizer/business/market/domain"
)

func cachedListing(price string) []domain.Listing {
	return []domain.Listing{{
		Price:    decimal.RequireFromString(price),
		Quality:  1,
		Quantity: 100,
		Seller:   "someone",
		PostedAt: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
	}}
}

func TestListingCache(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	lc := newListingCache(5 * time.Minute)
	lc.now = func() time.Time { return now }

	if _, ok := lc.Get(0, 66); ok {
		t.Fatal("empty cache reported a hit")
	}

	lc.Put(0, 66, cachedListing("9.50"))

	got, ok := lc.Get(0, 66)
	if !ok {
		t.Fatal("cache miss right after Put")
	}
	if len(got) != 1 || !got[0].Price.Equal(decimal.RequireFromString("9.50")) {
		t.Errorf("cached listings = %+v", got)
	}

	// Different realm and resource are separate entries.
	if _, ok := lc.Get(1, 66); ok {
		t.Error("realm 1 hit on a realm 0 entry")
	}
	if _, ok := lc.Get(0, 67); ok {
		t.Error("resource 67 hit on a resource 66 entry")
	}

	// Just inside the TTL still hits.
	now = now.Add(5*time.Minute - time.Second)
	if _, ok := lc.Get(0, 66); !ok {
		t.Error("cache miss inside TTL")
	}

	// At the TTL boundary the entry is stale.
	now = now.Add(time.Second)
	if _, ok := lc.Get(0, 66); ok {
		t.Error("cache hit at TTL boundary")
	}
}

func TestListingCache_Invalidate(t *testing.T) {
	lc := newListingCache(5 * time.Minute)
	lc.Put(0, 66, cachedListing("9.50"))

	lc.Invalidate(0, 66)

	if _, ok := lc.Get(0, 66); ok {
		t.Error("cache hit after invalidation")
	}
	if lc.Len() != 0 {
		t.Errorf("len = %d, want 0", lc.Len())
	}
}
