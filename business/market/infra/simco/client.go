// Package simco talks to the SimCompanies exchange REST API.
package simco

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/noxustrader/simco-optimizer/business/market/domain"
	"github.com/noxustrader/simco-optimizer/internal/apperror"
	"github.com/noxustrader/simco-optimizer/internal/httpclient"
	"github.com/noxustrader/simco-optimizer/internal/logger"
)

const (
	// BaseAPIURL is the production exchange endpoint.
	BaseAPIURL = "https://www.simcompanies.com"

	// Endpoints
	marketEndpointFmt = "/api/v3/market/%d/%d/"

	// Default HTTP client settings
	httpTimeout = 10 * time.Second

	tracerName = "simco"
)

// ClientConfig holds configuration for the exchange HTTP client.
type ClientConfig struct {
	BaseURL string        // API base URL (empty = default)
	Realm   int           // 0 = Magnates, 1 = Entrepreneurs
	Timeout time.Duration // Request timeout
}

// DefaultClientConfig returns sensible defaults.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		BaseURL: BaseAPIURL,
		Realm:   0,
		Timeout: httpTimeout,
	}
}

// Client provides read access to the exchange orderbook.
type Client struct {
	client httpclient.Client
	config ClientConfig
	logger logger.LoggerInterface
	tracer trace.Tracer
}

// NewClient creates a new exchange API client.
func NewClient(cfg ClientConfig, log logger.LoggerInterface) (*Client, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = BaseAPIURL
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = httpTimeout
	}
	cfg.Timeout = timeout

	tracer := otel.Tracer(tracerName)

	client, err := httpclient.NewInstrumentedClient(
		httpclient.WithProviderName("simcompanies"),
		httpclient.WithBaseURL(baseURL),
		httpclient.WithRequestTimeout(timeout),
		httpclient.WithTracer(tracer),
		httpclient.WithHeaders(map[string]string{
			"Accept": "application/json",
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP client: %w", err)
	}

	return &Client{
		client: client,
		config: cfg,
		logger: log,
		tracer: tracer,
	}, nil
}

// Realm returns the realm the client is bound to.
func (c *Client) Realm() int {
	return c.config.Realm
}

// FetchListings fetches the current orderbook for a resource.
func (c *Client) FetchListings(ctx context.Context, resourceID int) ([]domain.Listing, error) {
	ctx, span := c.tracer.Start(ctx, "simco.http.fetch_listings",
		trace.WithAttributes(
			attribute.Int("realm", c.config.Realm),
			attribute.Int("resource_id", resourceID),
		),
	)
	defer span.End()

	endpoint := fmt.Sprintf(marketEndpointFmt, c.config.Realm, resourceID)

	var result []marketListing
	resp, err := c.client.NewRequestWithOptions(
		httpclient.WithLabels(
			httpclient.NewLabel("endpoint", "market"),
			httpclient.NewLabel("resource_id", fmt.Sprintf("%d", resourceID)),
		),
		httpclient.WithResponseErrorHandler(simcoErrorHandler),
	).
		SetResult(&result).
		Get(ctx, endpoint)

	if err != nil {
		span.RecordError(err)
		return nil, apperror.New(apperror.CodeExchangeConnectionFailed,
			apperror.WithCause(err),
			apperror.WithContext(fmt.Sprintf("failed to fetch market for resource %d", resourceID)))
	}

	if resp.IsError() {
		return nil, apperror.New(apperror.CodeExchangeAPIError,
			apperror.WithContext(fmt.Sprintf("HTTP %d: %s", resp.StatusCode, resp.String())))
	}

	listings := make([]domain.Listing, 0, len(result))
	for _, m := range result {
		l, convErr := m.toDomain()
		if convErr != nil {
			return nil, apperror.New(apperror.CodeInvalidListingData,
				apperror.WithCause(convErr))
		}
		listings = append(listings, l)
	}

	span.SetAttributes(attribute.Int("listings", len(listings)))

	c.logger.Debug(ctx, "fetched market listings via HTTP",
		"realm", c.config.Realm,
		"resource_id", resourceID,
		"listings", len(listings))

	return listings, nil
}

// simcoErrorHandler parses exchange API error responses.
func simcoErrorHandler(statusCode int, body []byte) error {
	if statusCode >= 400 {
		var apiErr APIError
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Message != "" {
			apiErr.Status = statusCode
			return &apiErr
		}
		return fmt.Errorf("HTTP %d: %s", statusCode, string(body))
	}
	return nil
}
