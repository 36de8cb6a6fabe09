package app

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	marketApp "github.com/noxustrader/simco-optimizer/business/market/app"
	marketDomain "github.com/noxustrader/simco-optimizer/business/market/domain"
	"github.com/noxustrader/simco-optimizer/business/profit/domain"
	"github.com/noxustrader/simco-optimizer/internal/logger"
	"github.com/noxustrader/simco-optimizer/internal/product"
)

type stubSource struct {
	listings []marketDomain.Listing
	err      error
}

func (s *stubSource) Listings(ctx context.Context, resourceID int) ([]marketDomain.Listing, error) {
	return s.listings, s.err
}

type captureReporter struct {
	mu       sync.Mutex
	started  bool
	stopped  bool
	analyses []*Analysis
	statuses []bool
}

func (r *captureReporter) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.started = true
	return nil
}

func (r *captureReporter) Report(a *Analysis) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.analyses = append(r.analyses, a)
}

func (r *captureReporter) UpdateMarketStatus(available bool, detail string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.statuses = append(r.statuses, available)
}

func (r *captureReporter) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopped = true
	return nil
}

func testOptimizer(source marketApp.ListingSource, reporter Reporter) *Optimizer {
	log := logger.New(io.Discard, logger.LevelError, "test", nil)
	return NewOptimizer(
		marketApp.NewRanker(source, log),
		reporter,
		OptimizerConfig{RefreshInterval: time.Hour},
		log,
	)
}

func testScenario() domain.Scenario {
	return domain.Scenario{
		Product:          product.New(3, "Apples", 1),
		Quantity:         10000,
		Quality:          0,
		ContractPrice:    decimal.RequireFromString("9.30"),
		ExchangePrice:    decimal.RequireFromString("9.70"),
		TransportPerUnit: decimal.RequireFromString("0.49"),
		SourcePerUnit:    decimal.RequireFromString("5.00"),
	}
}

func TestOptimizer_Analyze(t *testing.T) {
	source := &stubSource{listings: []marketDomain.Listing{{
		Price:    decimal.RequireFromString("9.40"),
		Quality:  1,
		Quantity: 2000,
		Seller:   "alpha",
		PostedAt: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
	}}}
	optimizer := testOptimizer(source, &captureReporter{})

	analysis, err := optimizer.Analyze(context.Background(), testScenario())
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if analysis.Breakdown.ExchangeBeatsContract {
		t.Error("exchange should not beat contract at 9.70 vs breakeven ~9.94")
	}
	if analysis.BetterChannel() != "contract" {
		t.Errorf("better channel = %q, want contract", analysis.BetterChannel())
	}
	if analysis.Standing == nil {
		t.Fatal("standing is nil")
	}
	// alpha at 9.40 sorts ahead of the own 9.70 listing
	if analysis.Standing.Position != 2 || analysis.Standing.Total != 2 {
		t.Errorf("standing = %d of %d, want 2 of 2",
			analysis.Standing.Position, analysis.Standing.Total)
	}
	if analysis.GeneratedAt.IsZero() {
		t.Error("generated at not stamped")
	}
}

func TestOptimizer_Analyze_InvalidScenario(t *testing.T) {
	optimizer := testOptimizer(&stubSource{}, &captureReporter{})

	s := testScenario()
	s.Quantity = 0

	if _, err := optimizer.Analyze(context.Background(), s); err == nil {
		t.Fatal("Analyze accepted a zero-quantity scenario")
	}
}

func TestOptimizer_RefreshReports(t *testing.T) {
	reporter := &captureReporter{}
	optimizer := testOptimizer(&stubSource{}, reporter)

	optimizer.SetScenario(testScenario())
	optimizer.Refresh(context.Background())

	reporter.mu.Lock()
	defer reporter.mu.Unlock()
	if len(reporter.analyses) != 1 {
		t.Fatalf("reported analyses = %d, want 1", len(reporter.analyses))
	}
	if len(reporter.statuses) != 1 || reporter.statuses[0] {
		t.Errorf("market statuses = %v, want one unavailable", reporter.statuses)
	}
}

func TestOptimizer_SetScenario(t *testing.T) {
	optimizer := testOptimizer(&stubSource{}, &captureReporter{})

	s := testScenario()
	optimizer.SetScenario(s)

	got := optimizer.Scenario()
	if got.Quantity != s.Quantity || !got.ExchangePrice.Equal(s.ExchangePrice) {
		t.Errorf("scenario round trip mismatch: %+v", got)
	}
}
