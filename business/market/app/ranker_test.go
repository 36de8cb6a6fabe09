package app

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/noxustrader/simco-optimizer/business/market/domain"
	"github.com/noxustrader/simco-optimizer/internal/logger"
)

type stubSource struct {
	listings []domain.Listing
	err      error
}

func (s *stubSource) Listings(ctx context.Context, resourceID int) ([]domain.Listing, error) {
	return s.listings, s.err
}

func testLogger() logger.LoggerInterface {
	return logger.New(io.Discard, logger.LevelError, "test", nil)
}

func marketListing(price string, quality int, seller string) domain.Listing {
	return domain.Listing{
		Price:    decimal.RequireFromString(price),
		Quality:  quality,
		Quantity: 2000,
		Seller:   seller,
		PostedAt: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
	}
}

func TestRanker_Rank(t *testing.T) {
	req := RankRequest{
		ResourceID:    66,
		Price:         decimal.RequireFromString("9.50"),
		Quality:       2,
		Quantity:      500,
		RequiredPrice: decimal.RequireFromString("9.00"),
	}

	source := &stubSource{listings: []domain.Listing{
		marketListing("9.30", 2, "alpha"),
		marketListing("9.80", 3, "beta"),
		marketListing("9.10", 0, "gamma"), // below quality, must not compete
	}}

	standing, err := NewRanker(source, testLogger()).Rank(context.Background(), req)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}

	if !standing.MarketAvailable {
		t.Error("market available = false, want true")
	}
	// gamma filtered out: alpha, own, beta
	if standing.Total != 3 {
		t.Errorf("total = %d, want 3", standing.Total)
	}
	if standing.Position != 2 {
		t.Errorf("position = %d, want 2", standing.Position)
	}
	for _, l := range standing.Listings {
		if l.Seller == "gamma" {
			t.Error("lower-quality listing ranked as a competitor")
		}
	}
	// cheapest is alpha at 9.30; undercut 9.29 beats the 9.00 floor
	if want := decimal.RequireFromString("9.29"); !standing.SuggestedPrice.Equal(want) {
		t.Errorf("suggested price = %s, want %s", standing.SuggestedPrice, want)
	}
}

func TestRanker_Rank_OwnListingHighlighted(t *testing.T) {
	req := RankRequest{
		ResourceID:    66,
		Price:         decimal.RequireFromString("9.50"),
		Quality:       0,
		Quantity:      500,
		RequiredPrice: decimal.RequireFromString("9.00"),
	}
	source := &stubSource{listings: []domain.Listing{marketListing("9.40", 0, "alpha")}}

	standing, err := NewRanker(source, testLogger()).Rank(context.Background(), req)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}

	ownRows := 0
	for _, l := range standing.Listings {
		if l.Own {
			ownRows++
			if l.Seller != domain.OwnSeller {
				t.Errorf("own row seller = %q, want %q", l.Seller, domain.OwnSeller)
			}
		}
	}
	if ownRows != 1 {
		t.Errorf("own rows = %d, want exactly 1", ownRows)
	}
}

func TestRanker_Rank_FetchFailure(t *testing.T) {
	req := RankRequest{
		ResourceID:    66,
		Price:         decimal.RequireFromString("9.50"),
		Quality:       2,
		Quantity:      500,
		RequiredPrice: decimal.RequireFromString("9.94"),
	}
	source := &stubSource{err: errors.New("connection refused")}

	standing, err := NewRanker(source, testLogger()).Rank(context.Background(), req)
	if err != nil {
		t.Fatalf("Rank should degrade on fetch failure, got: %v", err)
	}

	if standing.MarketAvailable {
		t.Error("market available = true after fetch failure")
	}
	if standing.Position != 1 || standing.Total != 1 {
		t.Errorf("standing = %d of %d, want 1 of 1", standing.Position, standing.Total)
	}
	// Own price 9.50 undercut to 9.49 is below the 9.94 floor.
	if want := decimal.RequireFromString("9.94"); !standing.SuggestedPrice.Equal(want) {
		t.Errorf("suggested price = %s, want %s", standing.SuggestedPrice, want)
	}
}

func TestRanker_Rank_EmptyMarket(t *testing.T) {
	req := RankRequest{
		ResourceID:    66,
		Price:         decimal.RequireFromString("9.50"),
		Quality:       2,
		Quantity:      500,
		RequiredPrice: decimal.RequireFromString("9.00"),
	}
	source := &stubSource{listings: nil}

	standing, err := NewRanker(source, testLogger()).Rank(context.Background(), req)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}

	if standing.MarketAvailable {
		t.Error("market available = true for empty book")
	}
	if standing.Position != 1 || standing.Total != 1 {
		t.Errorf("standing = %d of %d, want 1 of 1", standing.Position, standing.Total)
	}
}
