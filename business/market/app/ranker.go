// Package app contains application services and port definitions for the market context.
package app

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/noxustrader/simco-optimizer/business/market/domain"
	"github.com/noxustrader/simco-optimizer/internal/logger"
)

// RankRequest describes the hypothetical listing to place in the market.
type RankRequest struct {
	ResourceID    int
	Price         decimal.Decimal
	Quality       int
	Quantity      int64
	RequiredPrice decimal.Decimal // contract-breakeven floor for the suggestion
}

// Ranker places a hypothetical user listing among live market listings.
type Ranker struct {
	source ListingSource
	logger logger.LoggerInterface
	now    func() time.Time
}

// NewRanker creates a Ranker backed by a listing source.
func NewRanker(source ListingSource, log logger.LoggerInterface) *Ranker {
	return &Ranker{
		source: source,
		logger: log,
		now:    time.Now,
	}
}

// Rank fetches the market, filters it to competing quality, merges in the
// synthesized own listing, and computes the user's standing.
//
// A fetch failure is not fatal: the standing degrades to the own listing
// alone (rank 1 of 1) with the suggestion floored at the required price.
func (r *Ranker) Rank(ctx context.Context, req RankRequest) (*domain.Standing, error) {
	own := domain.NewOwnListing(req.Price, req.Quality, req.Quantity, r.now())

	listings, err := r.source.Listings(ctx, req.ResourceID)
	if err != nil {
		r.logger.Warn(ctx, "market fetch failed, ranking against empty market",
			"resource_id", req.ResourceID,
			"error", err)
		listings = nil
	}

	competing := domain.FilterQuality(listings, req.Quality)

	merged := make([]domain.Listing, 0, len(competing)+1)
	merged = append(merged, competing...)
	merged = append(merged, own)
	domain.SortListings(merged)

	position, total, err := domain.Rank(merged, own)
	if err != nil {
		// The own listing is appended above; not finding it is a defect.
		return nil, err
	}

	// Cheapest row of the merged book drives the undercut suggestion.
	suggested := domain.SuggestPrice(req.RequiredPrice, merged[0].Price)

	return &domain.Standing{
		Listings:        merged,
		Position:        position,
		Total:           total,
		SuggestedPrice:  suggested,
		MarketAvailable: len(competing) > 0,
	}, nil
}
