package simco

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/noxustrader/simco-optimizer/business/market/domain"
	"github.com/noxustrader/simco-optimizer/internal/apperror"
	"github.com/noxustrader/simco-optimizer/internal/circuitbreaker"
	"github.com/noxustrader/simco-optimizer/internal/logger"
	"github.com/noxustrader/simco-optimizer/internal/ratelimit"
)

const (
	// DefaultCacheTTL is how long a fetched orderbook stays fresh.
	DefaultCacheTTL = 5 * time.Minute

	// DefaultRequestsPerMinute bounds outbound API calls.
	DefaultRequestsPerMinute = 30
)

// ProviderConfig holds configuration for the listing provider.
type ProviderConfig struct {
	CacheTTL          time.Duration
	RequestsPerMinute int
}

// DefaultProviderConfig returns sensible defaults.
func DefaultProviderConfig() ProviderConfig {
	return ProviderConfig{
		CacheTTL:          DefaultCacheTTL,
		RequestsPerMinute: DefaultRequestsPerMinute,
	}
}

// Provider serves orderbooks to the application layer. It fronts the
// HTTP client with a TTL cache, a rate limiter, and a circuit breaker,
// coalescing concurrent fetches for the same resource.
type Provider struct {
	client  *Client
	cache   *listingCache
	limiter *ratelimit.Limiter
	breaker *circuitbreaker.CircuitBreaker[[]domain.Listing]
	logger  logger.LoggerInterface
}

// NewProvider wraps client with caching, rate limiting and a breaker.
func NewProvider(client *Client, cfg ProviderConfig, log logger.LoggerInterface) *Provider {
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = DefaultCacheTTL
	}
	if cfg.RequestsPerMinute <= 0 {
		cfg.RequestsPerMinute = DefaultRequestsPerMinute
	}

	cbCfg := circuitbreaker.DefaultConfig("simco-market")
	cbCfg.OnStateChange = func(name string, from, to gobreaker.State) {
		log.Info(context.Background(), "circuit breaker state change",
			"breaker", name, "from", from.String(), "to", to.String())
	}

	return &Provider{
		client:  client,
		cache:   newListingCache(cfg.CacheTTL),
		limiter: ratelimit.New(cfg.RequestsPerMinute),
		breaker: circuitbreaker.New[[]domain.Listing](cbCfg),
		logger:  log,
	}
}

// Listings returns the current orderbook for a resource.
//
// Cached data within the TTL is returned without touching the network.
// On a miss, concurrent callers for the same resource share a single
// fetch through the breaker and rate limiter.
func (p *Provider) Listings(ctx context.Context, resourceID int) ([]domain.Listing, error) {
	realm := p.client.Realm()

	if listings, ok := p.cache.Get(realm, resourceID); ok {
		p.logger.Debug(ctx, "market cache hit",
			"realm", realm, "resource_id", resourceID, "listings", len(listings))
		return listings, nil
	}

	key := fmt.Sprintf("%d:%d", realm, resourceID)
	v, err, shared := p.cache.group.Do(key, func() (interface{}, error) {
		// Re-check under singleflight: another caller may have just
		// refilled the cache.
		if listings, ok := p.cache.Get(realm, resourceID); ok {
			return listings, nil
		}

		if err := p.limiter.Wait(ctx); err != nil {
			return nil, apperror.New(apperror.CodeExchangeRateLimited,
				apperror.WithCause(err))
		}

		listings, err := p.breaker.Execute(func() ([]domain.Listing, error) {
			return p.client.FetchListings(ctx, resourceID)
		})
		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
				return nil, apperror.New(apperror.CodeCircuitOpen,
					apperror.WithCause(err),
					apperror.WithContext(fmt.Sprintf("market fetch suppressed for resource %d", resourceID)))
			}
			return nil, err
		}

		p.cache.Put(realm, resourceID, listings)
		return listings, nil
	})
	if err != nil {
		return nil, apperror.New(apperror.CodeListingFetchFailed,
			apperror.WithCause(err),
			apperror.WithContext(fmt.Sprintf("resource %d", resourceID)))
	}

	if shared {
		p.logger.Debug(ctx, "market fetch coalesced",
			"realm", realm, "resource_id", resourceID)
	}

	return v.([]domain.Listing), nil
}

// Invalidate drops any cached orderbook for a resource.
func (p *Provider) Invalidate(resourceID int) {
	p.cache.Invalidate(p.client.Realm(), resourceID)
}

// CheckHealth reports readiness based on the breaker state.
func (p *Provider) CheckHealth(ctx context.Context) error {
	if p.breaker.State() == gobreaker.StateOpen {
		return errors.New("market circuit breaker open")
	}
	return nil
}
