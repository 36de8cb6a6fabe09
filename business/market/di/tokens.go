// Package di contains dependency injection tokens for the market context.
package di

import (
	"github.com/noxustrader/simco-optimizer/business/market/app"
	"github.com/noxustrader/simco-optimizer/business/market/infra/simco"
	"github.com/noxustrader/simco-optimizer/internal/di"
)

// Public service tokens - exposed to other modules
var (
	Ranker = di.NewToken[*app.Ranker]("market.Ranker")
)

// Private dependency tokens - internal to market module
var (
	ListingSource = di.NewToken[app.ListingSource]("market:listingSource")
	Provider      = di.NewToken[*simco.Provider]("market:simcoProvider")
)

// Helper functions for type-safe access
func GetRanker(c di.ServiceRegistry) *app.Ranker {
	return di.GetToken(c, Ranker)
}

func GetListingSource(c di.ServiceRegistry) app.ListingSource {
	return di.GetToken(c, ListingSource)
}

func GetProvider(c di.ServiceRegistry) *simco.Provider {
	return di.GetToken(c, Provider)
}
