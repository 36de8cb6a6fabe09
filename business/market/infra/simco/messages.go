package simco

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/noxustrader/simco-optimizer/business/market/domain"
)

// marketListing is one entry in the exchange orderbook response for
// GET /api/v3/market/{realm}/{resourceID}/.
type marketListing struct {
	ID       int64      `json:"id"`
	Price    float64    `json:"price"`
	Quality  int        `json:"quality"`
	Quantity int64      `json:"quantity"`
	Seller   sellerInfo `json:"seller"`
	Posted   time.Time  `json:"posted"`
}

// sellerInfo identifies the company behind a listing.
type sellerInfo struct {
	ID      int64  `json:"id"`
	Company string `json:"company"`
}

// toDomain converts an API listing into the domain representation.
func (m marketListing) toDomain() (domain.Listing, error) {
	if m.Price < 0 {
		return domain.Listing{}, fmt.Errorf("listing %d: negative price %v", m.ID, m.Price)
	}
	if m.Quantity < 0 {
		return domain.Listing{}, fmt.Errorf("listing %d: negative quantity %d", m.ID, m.Quantity)
	}
	return domain.Listing{
		Price:    decimal.NewFromFloat(m.Price),
		Quality:  m.Quality,
		Quantity: m.Quantity,
		Seller:   m.Seller.Company,
		PostedAt: m.Posted.UTC(),
	}, nil
}

// APIError is the error payload the exchange API returns on 4xx/5xx.
type APIError struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("simcompanies API error (HTTP %d): %s", e.Status, e.Message)
}
