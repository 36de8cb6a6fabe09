// Package market implements the market bounded context: fetching the
// exchange orderbook and ranking listings against it.
package market

import (
	"context"

	"github.com/noxustrader/simco-optimizer/business/market/app"
	marketDI "github.com/noxustrader/simco-optimizer/business/market/di"
	"github.com/noxustrader/simco-optimizer/business/market/infra/simco"
	"github.com/noxustrader/simco-optimizer/internal/config"
	"github.com/noxustrader/simco-optimizer/internal/di"
	"github.com/noxustrader/simco-optimizer/internal/logger"
	"github.com/noxustrader/simco-optimizer/internal/monolith"
)

// Module implements the market bounded context.
type Module struct{}

// RegisterServices registers all market services with the DI container.
func (m *Module) RegisterServices(c di.Container) error {
	// Register the exchange provider - private dependency
	di.RegisterToken(c, marketDI.Provider, func(sr di.ServiceRegistry) *simco.Provider {
		cfg := sr.Get("config").(*config.Config)
		log := sr.Get("logger").(logger.LoggerInterface)

		clientCfg := simco.ClientConfig{
			BaseURL: cfg.Market.BaseURL,
			Realm:   cfg.Market.Realm,
			Timeout: cfg.Market.RequestTimeout,
		}
		client, err := simco.NewClient(clientCfg, log)
		if err != nil {
			panic("failed to create simcompanies client: " + err.Error())
		}

		providerCfg := simco.ProviderConfig{
			CacheTTL:          cfg.Market.CacheTTL,
			RequestsPerMinute: cfg.Market.RequestsPerMinute,
		}
		return simco.NewProvider(client, providerCfg, log)
	})

	// The listing source port resolves to the exchange provider
	di.RegisterToken(c, marketDI.ListingSource, func(sr di.ServiceRegistry) app.ListingSource {
		return marketDI.GetProvider(sr)
	})

	// Register Ranker (public - exposed to other modules)
	di.RegisterToken(c, marketDI.Ranker, func(sr di.ServiceRegistry) *app.Ranker {
		log := sr.Get("logger").(logger.LoggerInterface)
		return app.NewRanker(marketDI.GetListingSource(sr), log)
	})

	return nil
}

// Startup initializes the market module.
func (m *Module) Startup(ctx context.Context, mono monolith.Monolith) error {
	log := mono.Logger()

	// Force lazy construction so config errors surface at startup
	// instead of on the first analysis.
	marketDI.GetRanker(mono.Services())

	log.Info(ctx, "market module started")
	return nil
}
