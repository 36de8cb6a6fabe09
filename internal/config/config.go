// Package config provides configuration loading and validation.
package config

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Market    MarketConfig    `mapstructure:"market"`
	Scenario  ScenarioConfig  `mapstructure:"scenario"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Name            string        `mapstructure:"name"`
	Environment     string        `mapstructure:"environment"`
	LogLevel        string        `mapstructure:"log_level"`
	RefreshInterval time.Duration `mapstructure:"refresh_interval"`
	TUIMode         bool          `mapstructure:"-"` // Set at runtime, not from config file
}

// MarketConfig holds SimCompanies exchange API configuration.
type MarketConfig struct {
	BaseURL           string        `mapstructure:"base_url"`
	Realm             int           `mapstructure:"realm"` // 0 = Magnates, 1 = Entrepreneurs
	RequestTimeout    time.Duration `mapstructure:"request_timeout"`
	CacheTTL          time.Duration `mapstructure:"cache_ttl"`
	RequestsPerMinute int           `mapstructure:"requests_per_minute"`
}

// ScenarioConfig holds the default sale scenario shown at startup.
type ScenarioConfig struct {
	Product          string  `mapstructure:"product"`
	Quantity         int64   `mapstructure:"quantity"`
	ContractPrice    float64 `mapstructure:"contract_price"`
	ExchangePrice    float64 `mapstructure:"exchange_price"`
	TransportPerUnit float64 `mapstructure:"transport_per_unit"`
	SourcePerUnit    float64 `mapstructure:"source_per_unit"`
	Quality          int     `mapstructure:"quality"`
}

// ContractPriceDecimal returns the contract price as decimal.Decimal.
func (c *ScenarioConfig) ContractPriceDecimal() decimal.Decimal {
	return decimal.NewFromFloat(c.ContractPrice)
}

// ExchangePriceDecimal returns the exchange price as decimal.Decimal.
func (c *ScenarioConfig) ExchangePriceDecimal() decimal.Decimal {
	return decimal.NewFromFloat(c.ExchangePrice)
}

// TransportPerUnitDecimal returns the transport cost as decimal.Decimal.
func (c *ScenarioConfig) TransportPerUnitDecimal() decimal.Decimal {
	return decimal.NewFromFloat(c.TransportPerUnit)
}

// SourcePerUnitDecimal returns the source cost as decimal.Decimal.
func (c *ScenarioConfig) SourcePerUnitDecimal() decimal.Decimal {
	return decimal.NewFromFloat(c.SourcePerUnit)
}

// TelemetryConfig holds observability configuration.
type TelemetryConfig struct {
	Enabled        bool   `mapstructure:"enabled"`
	ServiceName    string `mapstructure:"service_name"`
	OTLPEndpoint   string `mapstructure:"otlp_endpoint"`
	PrometheusPort int    `mapstructure:"prometheus_port"`
}

// Load loads configuration from file and environment variables.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables
	v.SetEnvPrefix("SIMCO")
	v.AutomaticEnv()

	// Bind env vars to config keys
	bindEnvVars(v)

	// Set defaults
	setDefaults(v)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, use env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func bindEnvVars(v *viper.Viper) {
	// App
	v.BindEnv("app.name", "SIMCO_APP_NAME", "SERVICE_NAME")
	v.BindEnv("app.environment", "SIMCO_ENVIRONMENT", "ENVIRONMENT")
	v.BindEnv("app.log_level", "SIMCO_LOG_LEVEL", "LOG_LEVEL")
	v.BindEnv("app.refresh_interval", "SIMCO_REFRESH_INTERVAL")

	// Market
	v.BindEnv("market.base_url", "SIMCO_MARKET_URL", "MARKET_URL")
	v.BindEnv("market.realm", "SIMCO_REALM")
	v.BindEnv("market.cache_ttl", "SIMCO_MARKET_CACHE_TTL")

	// Scenario
	v.BindEnv("scenario.product", "SIMCO_PRODUCT")
	v.BindEnv("scenario.quantity", "SIMCO_QUANTITY")
	v.BindEnv("scenario.contract_price", "SIMCO_CONTRACT_PRICE")
	v.BindEnv("scenario.exchange_price", "SIMCO_EXCHANGE_PRICE")
	v.BindEnv("scenario.transport_per_unit", "SIMCO_TRANSPORT_PER_UNIT")
	v.BindEnv("scenario.source_per_unit", "SIMCO_SOURCE_PER_UNIT")
	v.BindEnv("scenario.quality", "SIMCO_QUALITY")

	// Telemetry
	v.BindEnv("telemetry.enabled", "SIMCO_OTEL_ENABLED", "OTEL_ENABLED")
	v.BindEnv("telemetry.service_name", "SIMCO_OTEL_SERVICE_NAME", "OTEL_SERVICE_NAME")
	v.BindEnv("telemetry.otlp_endpoint", "SIMCO_OTEL_ENDPOINT", "OTEL_EXPORTER_OTLP_ENDPOINT")
}

func setDefaults(v *viper.Viper) {
	// App defaults
	v.SetDefault("app.name", "simco-optimizer")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.log_level", "info")
	v.SetDefault("app.refresh_interval", "1m")

	// Market defaults
	v.SetDefault("market.base_url", "https://www.simcompanies.com")
	v.SetDefault("market.realm", 0)
	v.SetDefault("market.request_timeout", "10s")
	v.SetDefault("market.cache_ttl", "5m")
	v.SetDefault("market.requests_per_minute", 60)

	// Scenario defaults
	v.SetDefault("scenario.product", "Apples")
	v.SetDefault("scenario.quantity", 167779)
	v.SetDefault("scenario.contract_price", 9.02)
	v.SetDefault("scenario.exchange_price", 9.50)
	v.SetDefault("scenario.transport_per_unit", 0.49)
	v.SetDefault("scenario.source_per_unit", 5.00)
	v.SetDefault("scenario.quality", 0)

	// Telemetry defaults
	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.service_name", "simco-optimizer")
	v.SetDefault("telemetry.prometheus_port", 9090)
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Market.BaseURL == "" {
		return fmt.Errorf("market.base_url is required")
	}
	if c.Market.Realm < 0 {
		return fmt.Errorf("market.realm must not be negative")
	}
	if c.Market.CacheTTL <= 0 {
		return fmt.Errorf("market.cache_ttl must be positive")
	}
	if c.Scenario.Quantity <= 0 {
		return fmt.Errorf("scenario.quantity must be greater than zero")
	}
	if c.Scenario.ContractPrice < 0 || c.Scenario.ExchangePrice < 0 ||
		c.Scenario.TransportPerUnit < 0 || c.Scenario.SourcePerUnit < 0 {
		return fmt.Errorf("scenario prices must not be negative")
	}
	if c.Scenario.Quality < 0 || c.Scenario.Quality > 12 {
		return fmt.Errorf("scenario.quality must be between 0 and 12")
	}
	return nil
}
