// Package domain contains the core domain types for the market context.
package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/noxustrader/simco-optimizer/internal/apperror"
)

// OwnSeller is the seller name given to the user's synthesized listing.
const OwnSeller = "Your Listing"

// undercutStep is the amount by which a suggested price undercuts the
// cheapest competing listing.
var undercutStep = decimal.NewFromFloat(0.01)

// Listing is a single sell offer on the exchange.
type Listing struct {
	Price    decimal.Decimal
	Quality  int
	Quantity int64
	Seller   string
	PostedAt time.Time
	Own      bool // true for the user's synthesized row, used for highlighting
}

// NewOwnListing synthesizes the user's hypothetical listing. Its timestamp
// is set one minute before now so it sorts deterministically among
// listings at the same price and quality.
func NewOwnListing(price decimal.Decimal, quality int, quantity int64, now time.Time) Listing {
	return Listing{
		Price:    price,
		Quality:  quality,
		Quantity: quantity,
		Seller:   OwnSeller,
		PostedAt: now.Add(-time.Minute).UTC(),
		Own:      true,
	}
}

// Less is the market ordering: cheapest first, then highest quality, then
// earliest posted ("first come" tie-break). It is a strict weak order over
// (price, -quality, postedAt).
func Less(a, b Listing) bool {
	if !a.Price.Equal(b.Price) {
		return a.Price.LessThan(b.Price)
	}
	if a.Quality != b.Quality {
		return a.Quality > b.Quality
	}
	return a.PostedAt.Before(b.PostedAt)
}

// SortListings sorts listings in market order. The sort is stable with
// respect to listings not distinguished by the ordering key.
func SortListings(listings []Listing) {
	sort.SliceStable(listings, func(i, j int) bool {
		return Less(listings[i], listings[j])
	})
}

// FilterQuality returns the listings whose quality is at least min.
// Lower-quality listings do not compete with the user's offer.
func FilterQuality(listings []Listing, min int) []Listing {
	filtered := make([]Listing, 0, len(listings))
	for _, l := range listings {
		if l.Quality >= min {
			filtered = append(filtered, l)
		}
	}
	return filtered
}

// Rank locates the own listing in a sorted sequence by exact match on
// (price, quality, quantity, seller) and returns its 1-based position and
// the total listing count. The own listing is present by construction;
// its absence is a defect, not a recoverable condition.
func Rank(sorted []Listing, own Listing) (position, total int, err error) {
	for i, l := range sorted {
		if l.Seller == own.Seller &&
			l.Quality == own.Quality &&
			l.Quantity == own.Quantity &&
			l.Price.Equal(own.Price) {
			return i + 1, len(sorted), nil
		}
	}
	return 0, len(sorted), apperror.New(apperror.CodeOwnListingMissing)
}

// SuggestPrice returns a competitive price that never dips below the
// contract-breakeven price: the cheapest listing undercut by one cent,
// floored at required.
func SuggestPrice(required, lowestPrice decimal.Decimal) decimal.Decimal {
	undercut := lowestPrice.Sub(undercutStep)
	if undercut.GreaterThan(required) {
		return undercut
	}
	return required
}
