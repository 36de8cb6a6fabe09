// Package app contains application services and port definitions for the market context.
package app

import (
	"context"

	"github.com/noxustrader/simco-optimizer/business/market/domain"
)

// ListingSource fetches the current sell listings for a product.
type ListingSource interface {
	// Listings returns the current listings for a resource ID, cheapest
	// first or in any order. Implementations are best-effort: transient
	// failures should surface as errors, which the caller degrades to an
	// empty market.
	Listings(ctx context.Context, resourceID int) ([]domain.Listing, error)
}
