// Package profit implements the profit bounded context: comparing a
// contract sale against an exchange sale for one production scenario.
package profit

import (
	"context"
	"fmt"

	marketDI "github.com/noxustrader/simco-optimizer/business/market/di"
	"github.com/noxustrader/simco-optimizer/business/profit/app"
	profitDI "github.com/noxustrader/simco-optimizer/business/profit/di"
	"github.com/noxustrader/simco-optimizer/business/profit/domain"
	"github.com/noxustrader/simco-optimizer/business/profit/infra"
	"github.com/noxustrader/simco-optimizer/internal/config"
	"github.com/noxustrader/simco-optimizer/internal/di"
	"github.com/noxustrader/simco-optimizer/internal/logger"
	"github.com/noxustrader/simco-optimizer/internal/monolith"
	"github.com/noxustrader/simco-optimizer/internal/product"
)

// Module implements the profit bounded context.
type Module struct{}

// RegisterServices registers all profit services with the DI container.
func (m *Module) RegisterServices(c di.Container) error {
	// Register Reporter - private dependency, picked by run mode
	di.RegisterToken(c, profitDI.Reporter, func(sr di.ServiceRegistry) app.Reporter {
		cfg := sr.Get("config").(*config.Config)
		if cfg.App.TUIMode {
			return infra.NewTUIReporter()
		}
		return infra.NewConsoleReporter()
	})

	// Register Optimizer (public - exposed to other modules)
	di.RegisterToken(c, profitDI.Optimizer, func(sr di.ServiceRegistry) *app.Optimizer {
		cfg := sr.Get("config").(*config.Config)
		log := sr.Get("logger").(logger.LoggerInterface)

		return app.NewOptimizer(
			marketDI.GetRanker(sr),
			profitDI.GetReporter(sr),
			app.OptimizerConfig{RefreshInterval: cfg.App.RefreshInterval},
			log,
		)
	})

	return nil
}

// Startup builds the initial scenario from config and starts the
// optimizer's analysis loop.
func (m *Module) Startup(ctx context.Context, mono monolith.Monolith) error {
	log := mono.Logger()
	cfg := mono.Config()

	scenario, err := ScenarioFromConfig(&cfg.Scenario, mono.ProductRegistry())
	if err != nil {
		return err
	}

	optimizer := profitDI.GetOptimizer(mono.Services())
	if err := optimizer.Start(ctx, scenario); err != nil {
		return err
	}

	log.Info(ctx, "profit module started", "product", scenario.Product.Name())
	return nil
}

// ScenarioFromConfig resolves the configured product name and assembles
// the startup scenario.
func ScenarioFromConfig(sc *config.ScenarioConfig, registry *product.Registry) (domain.Scenario, error) {
	p, ok := registry.GetByName(sc.Product)
	if !ok {
		return domain.Scenario{}, fmt.Errorf("unknown product %q", sc.Product)
	}

	s := domain.Scenario{
		Product:          p,
		Quantity:         sc.Quantity,
		Quality:          sc.Quality,
		ContractPrice:    sc.ContractPriceDecimal(),
		ExchangePrice:    sc.ExchangePriceDecimal(),
		TransportPerUnit: sc.TransportPerUnitDecimal(),
		SourcePerUnit:    sc.SourcePerUnitDecimal(),
	}
	if err := s.Validate(); err != nil {
		return domain.Scenario{}, err
	}
	return s, nil
}
