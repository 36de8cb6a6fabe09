package config

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.App.Name != "simco-optimizer" {
		t.Errorf("app name = %q", cfg.App.Name)
	}
	if cfg.App.RefreshInterval != time.Minute {
		t.Errorf("refresh interval = %s, want 1m", cfg.App.RefreshInterval)
	}
	if cfg.Market.BaseURL != "https://www.simcompanies.com" {
		t.Errorf("base url = %q", cfg.Market.BaseURL)
	}
	if cfg.Market.CacheTTL != 5*time.Minute {
		t.Errorf("cache ttl = %s, want 5m", cfg.Market.CacheTTL)
	}
	if cfg.Scenario.Product != "Apples" {
		t.Errorf("product = %q, want Apples", cfg.Scenario.Product)
	}
	if cfg.Scenario.Quantity != 167779 {
		t.Errorf("quantity = %d, want 167779", cfg.Scenario.Quantity)
	}
	if want := decimal.RequireFromString("9.02"); !cfg.Scenario.ContractPriceDecimal().Equal(want) {
		t.Errorf("contract price = %s, want %s", cfg.Scenario.ContractPriceDecimal(), want)
	}
	if want := decimal.RequireFromString("0.49"); !cfg.Scenario.TransportPerUnitDecimal().Equal(want) {
		t.Errorf("transport = %s, want %s", cfg.Scenario.TransportPerUnitDecimal(), want)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SIMCO_PRODUCT", "Grapes")
	t.Setenv("SIMCO_QUANTITY", "500")
	t.Setenv("SIMCO_MARKET_CACHE_TTL", "30s")
	t.Setenv("SIMCO_REALM", "1")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Scenario.Product != "Grapes" {
		t.Errorf("product = %q, want Grapes", cfg.Scenario.Product)
	}
	if cfg.Scenario.Quantity != 500 {
		t.Errorf("quantity = %d, want 500", cfg.Scenario.Quantity)
	}
	if cfg.Market.CacheTTL != 30*time.Second {
		t.Errorf("cache ttl = %s, want 30s", cfg.Market.CacheTTL)
	}
	if cfg.Market.Realm != 1 {
		t.Errorf("realm = %d, want 1", cfg.Market.Realm)
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Market: MarketConfig{
				BaseURL:  "https://www.simcompanies.com",
				CacheTTL: 5 * time.Minute,
			},
			Scenario: ScenarioConfig{
				Product:       "Apples",
				Quantity:      1000,
				ContractPrice: 9.02,
				ExchangePrice: 9.50,
				Quality:       0,
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"missing_base_url", func(c *Config) { c.Market.BaseURL = "" }, "base_url"},
		{"negative_realm", func(c *Config) { c.Market.Realm = -1 }, "realm"},
		{"zero_cache_ttl", func(c *Config) { c.Market.CacheTTL = 0 }, "cache_ttl"},
		{"zero_quantity", func(c *Config) { c.Scenario.Quantity = 0 }, "quantity"},
		{"negative_price", func(c *Config) { c.Scenario.ExchangePrice = -1 }, "negative"},
		{"quality_out_of_range", func(c *Config) { c.Scenario.Quality = 13 }, "quality"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate: unexpected error %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate: expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}
