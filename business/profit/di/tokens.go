// Package di contains dependency injection tokens for the profit context.
package di

import (
	"github.com/noxustrader/simco-optimizer/business/profit/app"
	"github.com/noxustrader/simco-optimizer/internal/di"
)

// Public service tokens - exposed to other modules
var (
	Optimizer = di.NewToken[*app.Optimizer]("profit.Optimizer")
)

// Private dependency tokens - internal to profit module
var (
	Reporter = di.NewToken[app.Reporter]("profit:reporter")
)

// Helper functions for type-safe access
func GetOptimizer(c di.ServiceRegistry) *app.Optimizer {
	return di.GetToken(c, Optimizer)
}

func GetReporter(c di.ServiceRegistry) app.Reporter {
	return di.GetToken(c, Reporter)
}
