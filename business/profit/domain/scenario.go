// Package domain contains the core domain types for the profit context.
package domain

import (
	"github.com/shopspring/decimal"

	"github.com/noxustrader/simco-optimizer/internal/apperror"
	"github.com/noxustrader/simco-optimizer/internal/product"
)

// Quality bounds for SimCompanies products.
const (
	MinQuality = 0
	MaxQuality = 12
)

// Scenario describes a planned sale of a single product: the quantity on
// hand, the contract price on offer, the intended exchange price, and the
// per-unit transport and source (production) costs.
type Scenario struct {
	Product          *product.Product
	Quantity         int64
	Quality          int
	ContractPrice    decimal.Decimal
	ExchangePrice    decimal.Decimal
	TransportPerUnit decimal.Decimal
	SourcePerUnit    decimal.Decimal
}

// Validate checks the scenario preconditions: quantity must be positive
// (it is divided by), monetary values must not be negative, and quality
// must be in range.
func (s Scenario) Validate() error {
	if s.Quantity <= 0 {
		return apperror.Validation(apperror.CodeInvalidQuantity, "quantity must be > 0")
	}

	for _, price := range []decimal.Decimal{
		s.ContractPrice, s.ExchangePrice, s.TransportPerUnit, s.SourcePerUnit,
	} {
		if price.IsNegative() {
			return apperror.Validation(apperror.CodeNegativePrice, "monetary inputs must be >= 0")
		}
	}

	if s.Quality < MinQuality || s.Quality > MaxQuality {
		return apperror.Validation(apperror.CodeInvalidQuality, "quality out of range")
	}

	return nil
}

// QuantityDecimal returns the quantity as a decimal for money math.
func (s Scenario) QuantityDecimal() decimal.Decimal {
	return decimal.NewFromInt(s.Quantity)
}
