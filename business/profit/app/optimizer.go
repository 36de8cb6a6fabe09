package app

import (
	"context"
	"sync"
	"time"

	marketApp "github.com/noxustrader/simco-optimizer/business/market/app"
	"github.com/noxustrader/simco-optimizer/business/profit/domain"
	"github.com/noxustrader/simco-optimizer/internal/logger"
)

// DefaultRefreshInterval controls how often a running optimizer
// re-evaluates the current scenario against the market.
const DefaultRefreshInterval = 1 * time.Minute

// OptimizerConfig holds configuration for the optimizer service.
type OptimizerConfig struct {
	RefreshInterval time.Duration
}

// Optimizer orchestrates profit analysis: it computes the contract vs.
// exchange breakdown for a scenario, ranks the implied exchange listing
// against the live orderbook, and pushes the result to a reporter.
type Optimizer struct {
	ranker   *marketApp.Ranker
	reporter Reporter
	config   OptimizerConfig
	logger   logger.LoggerInterface

	mu       sync.RWMutex
	scenario domain.Scenario
}

// NewOptimizer creates a new profit optimizer.
func NewOptimizer(
	ranker *marketApp.Ranker,
	reporter Reporter,
	config OptimizerConfig,
	log logger.LoggerInterface,
) *Optimizer {
	if config.RefreshInterval <= 0 {
		config.RefreshInterval = DefaultRefreshInterval
	}
	return &Optimizer{
		ranker:   ranker,
		reporter: reporter,
		config:   config,
		logger:   log,
	}
}

// Analyze evaluates a single scenario and returns the full analysis.
func (o *Optimizer) Analyze(ctx context.Context, s domain.Scenario) (*Analysis, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	breakdown, err := domain.Compute(s)
	if err != nil {
		return nil, err
	}

	standing, err := o.ranker.Rank(ctx, marketApp.RankRequest{
		ResourceID:    s.Product.ID(),
		Price:         s.ExchangePrice,
		Quality:       s.Quality,
		Quantity:      s.Quantity,
		RequiredPrice: breakdown.RequiredExchangePrice,
	})
	if err != nil {
		return nil, err
	}

	return &Analysis{
		Scenario:    s,
		Breakdown:   breakdown,
		Standing:    standing,
		GeneratedAt: time.Now().UTC(),
	}, nil
}

// SetScenario replaces the scenario the refresh loop evaluates and
// triggers an immediate re-analysis on the next tick.
func (o *Optimizer) SetScenario(s domain.Scenario) {
	o.mu.Lock()
	o.scenario = s
	o.mu.Unlock()
}

// Scenario returns the scenario currently under evaluation.
func (o *Optimizer) Scenario() domain.Scenario {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.scenario
}

// Start begins the periodic analysis loop with the given initial scenario.
func (o *Optimizer) Start(ctx context.Context, initial domain.Scenario) error {
	o.logger.Info(ctx, "starting profit optimizer",
		"product", initial.Product.Name(),
		"refresh_interval", o.config.RefreshInterval.String())

	o.SetScenario(initial)

	if err := o.reporter.Start(ctx); err != nil {
		return err
	}

	go o.run(ctx)

	return nil
}

func (o *Optimizer) run(ctx context.Context) {
	o.evaluate(ctx)

	ticker := time.NewTicker(o.config.RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			o.logger.Info(ctx, "optimizer stopping", "reason", ctx.Err().Error())
			return
		case <-ticker.C:
			o.evaluate(ctx)
		}
	}
}

func (o *Optimizer) evaluate(ctx context.Context) {
	s := o.Scenario()

	analysis, err := o.Analyze(ctx, s)
	if err != nil {
		o.logger.Error(ctx, "analysis failed", "error", err)
		return
	}

	o.reporter.UpdateMarketStatus(analysis.Standing.MarketAvailable, marketStatusDetail(analysis))
	o.reporter.Report(analysis)
}

func marketStatusDetail(a *Analysis) string {
	if a.Standing.MarketAvailable {
		return "live"
	}
	return "market data unavailable"
}

// Refresh runs one evaluation outside the periodic loop, typically in
// response to user input.
func (o *Optimizer) Refresh(ctx context.Context) {
	o.evaluate(ctx)
}

// Stop gracefully shuts down the optimizer.
func (o *Optimizer) Stop() error {
	o.logger.Info(context.Background(), "stopping profit optimizer")
	return o.reporter.Stop()
}
