package domain

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/noxustrader/simco-optimizer/internal/apperror"
	"github.com/noxustrader/simco-optimizer/internal/product"
)

func makeScenario(quantity int64, contract, exchange, transport, source string) Scenario {
	return Scenario{
		Product:          product.New(66, "Apples", 1),
		Quantity:         quantity,
		Quality:          0,
		ContractPrice:    decimal.RequireFromString(contract),
		ExchangePrice:    decimal.RequireFromString(exchange),
		TransportPerUnit: decimal.RequireFromString(transport),
		SourcePerUnit:    decimal.RequireFromString(source),
	}
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name             string
		quantity         int64
		contractPrice    string
		exchangePrice    string
		transport        string
		source           string
		wantContractNet  string // revenue - qty/2*transport - production
		wantContractUnit string
		wantExchangeNet  string // revenue - qty*transport - 4% fee - production
		wantExchangeUnit string
		wantRequired     string // (contractUnit + transport + source) / 0.96, 10dp
		wantExchangeWins bool
	}{
		{
			name:             "contract_wins_at_small_spread",
			quantity:         10000,
			contractPrice:    "9.30",
			exchangePrice:    "9.70",
			transport:        "0.49",
			source:           "5.00",
			wantContractNet:  "40550",        // 93000 - 2450 - 50000
			wantContractUnit: "4.055",
			wantExchangeNet:  "38220",        // 97000 - 4900 - 3880 - 50000
			wantExchangeUnit: "3.822",
			wantRequired:     "9.9427083333", // (4.055 + 0.49 + 5.00) / 0.96
			wantExchangeWins: false,
		},
		{
			name:             "exchange_wins_above_breakeven",
			quantity:         10000,
			contractPrice:    "9.30",
			exchangePrice:    "10.00",
			transport:        "0.49",
			source:           "5.00",
			wantContractNet:  "40550",
			wantContractUnit: "4.055",
			wantExchangeNet:  "41100",        // 100000 - 4900 - 4000 - 50000
			wantExchangeUnit: "4.11",
			wantRequired:     "9.9427083333",
			wantExchangeWins: true,
		},
		{
			name:             "free_transport_and_sourcing",
			quantity:         100,
			contractPrice:    "10.00",
			exchangePrice:    "10.00",
			transport:        "0",
			source:           "0",
			wantContractNet:  "1000",
			wantContractUnit: "10",
			wantExchangeNet:  "960",          // 1000 - 4% fee
			wantExchangeUnit: "9.6",
			wantRequired:     "10.4166666667", // 10 / 0.96
			wantExchangeWins: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := makeScenario(tt.quantity, tt.contractPrice, tt.exchangePrice, tt.transport, tt.source)

			b, err := Compute(s)
			if err != nil {
				t.Fatalf("Compute: %v", err)
			}

			if got := b.Contract.NetProfit; !got.Equal(decimal.RequireFromString(tt.wantContractNet)) {
				t.Errorf("contract net = %s, want %s", got, tt.wantContractNet)
			}
			if got := b.Contract.NetProfitPerUnit; !got.Equal(decimal.RequireFromString(tt.wantContractUnit)) {
				t.Errorf("contract net/unit = %s, want %s", got, tt.wantContractUnit)
			}
			if got := b.Exchange.NetProfit; !got.Equal(decimal.RequireFromString(tt.wantExchangeNet)) {
				t.Errorf("exchange net = %s, want %s", got, tt.wantExchangeNet)
			}
			if got := b.Exchange.NetProfitPerUnit; !got.Equal(decimal.RequireFromString(tt.wantExchangeUnit)) {
				t.Errorf("exchange net/unit = %s, want %s", got, tt.wantExchangeUnit)
			}
			if got := b.RequiredExchangePrice.Round(10); !got.Equal(decimal.RequireFromString(tt.wantRequired)) {
				t.Errorf("required price = %s, want %s", got, tt.wantRequired)
			}
			if b.ExchangeBeatsContract != tt.wantExchangeWins {
				t.Errorf("exchange beats contract = %v, want %v", b.ExchangeBeatsContract, tt.wantExchangeWins)
			}
		})
	}
}

func TestCompute_ChannelCosts(t *testing.T) {
	s := makeScenario(10000, "9.30", "9.70", "0.49", "5.00")

	b, err := Compute(s)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	// Contract sales split transport with the buyer; exchange sales pay it in full.
	if got := b.Contract.TransportCost; !got.Equal(decimal.RequireFromString("2450")) {
		t.Errorf("contract transport = %s, want 2450", got)
	}
	if got := b.Exchange.TransportCost; !got.Equal(decimal.RequireFromString("4900")) {
		t.Errorf("exchange transport = %s, want 4900", got)
	}

	// Only exchange sales pay the 4% fee.
	if !b.Contract.Fee.IsZero() {
		t.Errorf("contract fee = %s, want 0", b.Contract.Fee)
	}
	if got := b.Exchange.Fee; !got.Equal(decimal.RequireFromString("3880")) {
		t.Errorf("exchange fee = %s, want 3880", got)
	}

	// In-hand excludes production cost.
	if got := b.Contract.InHand; !got.Equal(decimal.RequireFromString("90550")) {
		t.Errorf("contract in hand = %s, want 90550", got)
	}
	if got := b.Exchange.InHand; !got.Equal(decimal.RequireFromString("88220")) {
		t.Errorf("exchange in hand = %s, want 88220", got)
	}
}

// Selling at exactly the breakeven price must yield the contract channel's
// net profit, and the non-strict comparison must call it for the exchange.
func TestCompute_BreakevenSubstitution(t *testing.T) {
	s := makeScenario(10000, "9.30", "9.70", "0.49", "5.00")

	b, err := Compute(s)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	s.ExchangePrice = b.RequiredExchangePrice
	b2, err := Compute(s)
	if err != nil {
		t.Fatalf("Compute at breakeven: %v", err)
	}

	diff := b2.Exchange.NetProfit.Sub(b2.Contract.NetProfit).Abs()
	if diff.GreaterThan(decimal.RequireFromString("0.0001")) {
		t.Errorf("net profit gap at breakeven = %s, want ~0", diff)
	}
	if !b2.ExchangeBeatsContract {
		t.Error("exchange at exactly the breakeven price should not lose the verdict")
	}
}

func TestScenario_Validate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Scenario)
		wantCode apperror.Code
	}{
		{"valid", func(s *Scenario) {}, ""},
		{"zero_quantity", func(s *Scenario) { s.Quantity = 0 }, apperror.CodeInvalidQuantity},
		{"negative_quantity", func(s *Scenario) { s.Quantity = -5 }, apperror.CodeInvalidQuantity},
		{"negative_contract_price", func(s *Scenario) { s.ContractPrice = decimal.NewFromInt(-1) }, apperror.CodeNegativePrice},
		{"negative_exchange_price", func(s *Scenario) { s.ExchangePrice = decimal.NewFromInt(-1) }, apperror.CodeNegativePrice},
		{"negative_transport", func(s *Scenario) { s.TransportPerUnit = decimal.NewFromInt(-1) }, apperror.CodeNegativePrice},
		{"negative_source", func(s *Scenario) { s.SourcePerUnit = decimal.NewFromInt(-1) }, apperror.CodeNegativePrice},
		{"quality_below_range", func(s *Scenario) { s.Quality = -1 }, apperror.CodeInvalidQuality},
		{"quality_above_range", func(s *Scenario) { s.Quality = 13 }, apperror.CodeInvalidQuality},
		{"zero_prices_allowed", func(s *Scenario) {
			s.ContractPrice = decimal.Zero
			s.ExchangePrice = decimal.Zero
		}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := makeScenario(100, "9.30", "9.70", "0.49", "5.00")
			tt.mutate(&s)

			err := s.Validate()
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("Validate: unexpected error %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate: expected error, got nil")
			}
			if got := apperror.GetCode(err); got != tt.wantCode {
				t.Errorf("error code = %s, want %s", got, tt.wantCode)
			}
		})
	}
}
