package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/noxustrader/simco-optimizer/internal/apperror"
)

var baseTime = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func makeListing(price string, quality int, seller string, postedOffset time.Duration) Listing {
	return Listing{
		Price:    decimal.RequireFromString(price),
		Quality:  quality,
		Quantity: 1000,
		Seller:   seller,
		PostedAt: baseTime.Add(postedOffset),
	}
}

func TestNewOwnListing(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.FixedZone("CET", 3600))

	own := NewOwnListing(decimal.RequireFromString("9.50"), 2, 500, now)

	if own.Seller != OwnSeller {
		t.Errorf("seller = %q, want %q", own.Seller, OwnSeller)
	}
	if !own.Own {
		t.Error("own flag not set")
	}
	wantPosted := now.Add(-time.Minute).UTC()
	if !own.PostedAt.Equal(wantPosted) {
		t.Errorf("posted at = %v, want %v", own.PostedAt, wantPosted)
	}
	if own.PostedAt.Location() != time.UTC {
		t.Errorf("posted at location = %v, want UTC", own.PostedAt.Location())
	}
}

func TestSortListings(t *testing.T) {
	tests := []struct {
		name        string
		listings    []Listing
		wantSellers []string
	}{
		{
			name: "cheapest_first",
			listings: []Listing{
				makeListing("9.70", 0, "b", 0),
				makeListing("9.50", 0, "a", 0),
				makeListing("10.20", 0, "c", 0),
			},
			wantSellers: []string{"a", "b", "c"},
		},
		{
			name: "quality_breaks_price_tie_highest_first",
			listings: []Listing{
				makeListing("9.50", 1, "low", 0),
				makeListing("9.50", 5, "high", 0),
				makeListing("9.50", 3, "mid", 0),
			},
			wantSellers: []string{"high", "mid", "low"},
		},
		{
			name: "posted_breaks_full_tie_earliest_first",
			listings: []Listing{
				makeListing("9.50", 2, "late", 2*time.Hour),
				makeListing("9.50", 2, "early", -time.Hour),
				makeListing("9.50", 2, "middle", 0),
			},
			wantSellers: []string{"early", "middle", "late"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SortListings(tt.listings)
			for i, want := range tt.wantSellers {
				if got := tt.listings[i].Seller; got != want {
					t.Errorf("position %d: seller = %q, want %q", i+1, got, want)
				}
			}

			// Sorting again must not change anything.
			before := make([]Listing, len(tt.listings))
			copy(before, tt.listings)
			SortListings(tt.listings)
			for i := range before {
				if tt.listings[i].Seller != before[i].Seller {
					t.Errorf("sort not idempotent at position %d", i+1)
				}
			}
		})
	}
}

func TestFilterQuality(t *testing.T) {
	listings := []Listing{
		makeListing("9.50", 0, "q0", 0),
		makeListing("9.40", 2, "q2", 0),
		makeListing("9.30", 5, "q5", 0),
	}

	filtered := FilterQuality(listings, 2)

	if len(filtered) != 2 {
		t.Fatalf("kept %d listings, want 2", len(filtered))
	}
	for _, l := range filtered {
		if l.Quality < 2 {
			t.Errorf("listing %q with quality %d survived a min-quality-2 filter", l.Seller, l.Quality)
		}
	}

	// min 0 keeps everything
	if got := len(FilterQuality(listings, 0)); got != 3 {
		t.Errorf("min 0 kept %d listings, want 3", got)
	}
}

func TestRank(t *testing.T) {
	own := NewOwnListing(decimal.RequireFromString("9.50"), 2, 500, baseTime)

	market := []Listing{
		makeListing("9.30", 2, "cheaper", 0),
		makeListing("9.80", 2, "pricier", 0),
	}
	merged := append(market, own)
	SortListings(merged)

	position, total, err := Rank(merged, own)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	if position != 2 {
		t.Errorf("position = %d, want 2", position)
	}
	if total != 3 {
		t.Errorf("total = %d, want 3", total)
	}
}

func TestRank_OwnMissing(t *testing.T) {
	own := NewOwnListing(decimal.RequireFromString("9.50"), 2, 500, baseTime)
	market := []Listing{makeListing("9.30", 2, "other", 0)}

	_, total, err := Rank(market, own)
	if err == nil {
		t.Fatal("Rank: expected error for missing own listing")
	}
	if got := apperror.GetCode(err); got != apperror.CodeOwnListingMissing {
		t.Errorf("error code = %s, want %s", got, apperror.CodeOwnListingMissing)
	}
	if total != 1 {
		t.Errorf("total = %d, want 1", total)
	}
}

func TestSuggestPrice(t *testing.T) {
	tests := []struct {
		name     string
		required string
		lowest   string
		want     string
	}{
		{"undercut_when_profitable", "9.00", "9.50", "9.49"},
		{"floored_at_required", "9.94", "9.50", "9.94"},
		{"exact_boundary_keeps_required", "9.49", "9.50", "9.49"},
		{"undercut_one_cent_above_floor", "9.48", "9.50", "9.49"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SuggestPrice(
				decimal.RequireFromString(tt.required),
				decimal.RequireFromString(tt.lowest),
			)
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("SuggestPrice(%s, %s) = %s, want %s", tt.required, tt.lowest, got, tt.want)
			}
		})
	}
}
