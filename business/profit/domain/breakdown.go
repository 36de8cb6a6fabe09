// Package domain contains the core domain types for the profit context.
package domain

import "github.com/shopspring/decimal"

// ExchangeFeePercent is the fixed fee the exchange takes on revenue.
var ExchangeFeePercent = decimal.NewFromInt(4)

// feeRate is ExchangeFeePercent expressed as a fraction (0.04).
var feeRate = ExchangeFeePercent.Div(decimal.NewFromInt(100))

var (
	one = decimal.NewFromInt(1)
	two = decimal.NewFromInt(2)
)

// ChannelBreakdown holds the profit figures for one sale channel.
type ChannelBreakdown struct {
	Revenue          decimal.Decimal
	TransportCost    decimal.Decimal
	ProductionCost   decimal.Decimal
	Fee              decimal.Decimal // zero for contract sales
	NetProfit        decimal.Decimal
	NetProfitPerUnit decimal.Decimal
	InHand           decimal.Decimal // revenue minus transport and fee, production cost excluded
}

// Breakdown is the immutable result of a profit comparison between the
// contract and exchange channels for one scenario.
type Breakdown struct {
	Contract ChannelBreakdown
	Exchange ChannelBreakdown

	// RequiredExchangePrice is the minimum per-unit exchange price whose
	// net profit matches the contract channel's.
	RequiredExchangePrice decimal.Decimal

	// ExchangeBeatsContract is true when the intended exchange price
	// meets or exceeds RequiredExchangePrice.
	ExchangeBeatsContract bool
}

// Compute produces the profit breakdown for a scenario.
//
// Contract sales bear half the per-unit transport cost (transport is split
// between buyer and seller); exchange sales bear it in full and pay the
// exchange fee on revenue. This asymmetry is a game rule, not a bug.
func Compute(s Scenario) (Breakdown, error) {
	if err := s.Validate(); err != nil {
		return Breakdown{}, err
	}

	qty := s.QuantityDecimal()
	production := qty.Mul(s.SourcePerUnit)

	// Contract channel
	contract := ChannelBreakdown{
		Revenue:        qty.Mul(s.ContractPrice),
		TransportCost:  qty.Div(two).Mul(s.TransportPerUnit),
		ProductionCost: production,
		Fee:            decimal.Zero,
	}
	contract.NetProfit = contract.Revenue.Sub(contract.TransportCost).Sub(contract.ProductionCost)
	contract.NetProfitPerUnit = contract.NetProfit.Div(qty)
	contract.InHand = contract.Revenue.Sub(contract.TransportCost)

	// Exchange channel
	exchange := ChannelBreakdown{
		Revenue:        qty.Mul(s.ExchangePrice),
		TransportCost:  qty.Mul(s.TransportPerUnit),
		ProductionCost: production,
	}
	exchange.Fee = exchange.Revenue.Mul(feeRate)
	exchange.NetProfit = exchange.Revenue.
		Sub(exchange.TransportCost).
		Sub(exchange.Fee).
		Sub(exchange.ProductionCost)
	exchange.NetProfitPerUnit = exchange.NetProfit.Div(qty)
	exchange.InHand = exchange.Revenue.Sub(exchange.TransportCost).Sub(exchange.Fee)

	required := RequiredExchangePrice(contract.NetProfitPerUnit, s.TransportPerUnit, s.SourcePerUnit)

	return Breakdown{
		Contract:              contract,
		Exchange:              exchange,
		RequiredExchangePrice: required,
		ExchangeBeatsContract: s.ExchangePrice.GreaterThanOrEqual(required),
	}, nil
}

// RequiredExchangePrice computes the minimum per-unit exchange price that
// matches a given contract net profit per unit:
//
//	price - transport - source - price*feeRate = contractNetPerUnit
//	price = (contractNetPerUnit + transport + source) / (1 - feeRate)
func RequiredExchangePrice(contractNetPerUnit, transportPerUnit, sourcePerUnit decimal.Decimal) decimal.Decimal {
	return contractNetPerUnit.
		Add(transportPerUnit).
		Add(sourcePerUnit).
		Div(one.Sub(feeRate))
}

// ExchangeNetPerUnit computes the exchange channel's net profit per unit
// directly from a candidate price.
func ExchangeNetPerUnit(price, transportPerUnit, sourcePerUnit decimal.Decimal) decimal.Decimal {
	return price.
		Sub(transportPerUnit).
		Sub(sourcePerUnit).
		Sub(price.Mul(feeRate))
}
