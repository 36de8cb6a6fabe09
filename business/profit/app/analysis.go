package app

import (
	"time"

	marketDomain "github.com/noxustrader/simco-optimizer/business/market/domain"
	"github.com/noxustrader/simco-optimizer/business/profit/domain"
)

// Analysis bundles everything one evaluation of a sale scenario produced:
// the scenario itself, the per-channel profit breakdown, and where the
// hypothetical exchange listing would sit in the live orderbook.
type Analysis struct {
	Scenario    domain.Scenario
	Breakdown   domain.Breakdown
	Standing    *marketDomain.Standing
	GeneratedAt time.Time
}

// BetterChannel names the sale channel the breakdown favors.
func (a *Analysis) BetterChannel() string {
	if a.Breakdown.ExchangeBeatsContract {
		return "exchange"
	}
	return "contract"
}
