// Package domain contains the core domain types for the market context.
package domain

import "github.com/shopspring/decimal"

// Standing describes where the user's listing sits in the current market:
// the full sorted book (own row flagged), the 1-based rank, and the
// suggested competitive price.
type Standing struct {
	Listings       []Listing
	Position       int
	Total          int
	SuggestedPrice decimal.Decimal

	// MarketAvailable is false when the listing fetch failed or returned
	// nothing, in which case the standing covers the own listing alone.
	MarketAvailable bool
}
