package simco

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/noxustrader/simco-optimizer/internal/apperror"
	"github.com/noxustrader/simco-optimizer/internal/logger"
)

const marketBody = `[
	{"id": 1, "price": 9.30, "quality": 2, "quantity": 1500,
	 "seller": {"id": 77, "company": "Orchard Inc"},
	 "posted": "2026-03-14T09:00:00.000000Z"},
	{"id": 2, "price": 9.80, "quality": 0, "quantity": 400,
	 "seller": {"id": 78, "company": "Fruit Stand"},
	 "posted": "2026-03-14T10:30:00.000000Z"}
]`

func testClientLogger() logger.LoggerInterface {
	return logger.New(io.Discard, logger.LevelError, "test", nil)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(ClientConfig{BaseURL: server.URL, Realm: 0}, testClientLogger())
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client
}

func TestClient_FetchListings(t *testing.T) {
	var gotPath atomic.Value
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath.Store(r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(marketBody))
	})

	listings, err := client.FetchListings(context.Background(), 66)
	if err != nil {
		t.Fatalf("FetchListings: %v", err)
	}

	if path := gotPath.Load(); path != "/api/v3/market/0/66/" {
		t.Errorf("request path = %v, want /api/v3/market/0/66/", path)
	}
	if len(listings) != 2 {
		t.Fatalf("got %d listings, want 2", len(listings))
	}

	first := listings[0]
	if !first.Price.Equal(decimal.RequireFromString("9.3")) {
		t.Errorf("price = %s, want 9.3", first.Price)
	}
	if first.Quality != 2 || first.Quantity != 1500 {
		t.Errorf("quality/quantity = %d/%d, want 2/1500", first.Quality, first.Quantity)
	}
	if first.Seller != "Orchard Inc" {
		t.Errorf("seller = %q, want Orchard Inc", first.Seller)
	}
	wantPosted := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	if !first.PostedAt.Equal(wantPosted) {
		t.Errorf("posted = %v, want %v", first.PostedAt, wantPosted)
	}
	if first.Own {
		t.Error("fetched listing marked as own")
	}
}

func TestClient_FetchListings_APIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message": "unknown resource"}`))
	})

	_, err := client.FetchListings(context.Background(), 9999)
	if err == nil {
		t.Fatal("expected error for 404, got nil")
	}
	if got := apperror.GetCode(err); got != apperror.CodeExchangeConnectionFailed {
		t.Errorf("error code = %s, want %s", got, apperror.CodeExchangeConnectionFailed)
	}
}

func TestClient_FetchListings_EmptyBook(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	})

	listings, err := client.FetchListings(context.Background(), 66)
	if err != nil {
		t.Fatalf("FetchListings: %v", err)
	}
	if len(listings) != 0 {
		t.Errorf("got %d listings, want 0", len(listings))
	}
}

func TestProvider_CachesFetches(t *testing.T) {
	var calls atomic.Int64
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(marketBody))
	})

	provider := NewProvider(client, ProviderConfig{
		CacheTTL:          time.Minute,
		RequestsPerMinute: 600,
	}, testClientLogger())

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		listings, err := provider.Listings(ctx, 66)
		if err != nil {
			t.Fatalf("Listings call %d: %v", i+1, err)
		}
		if len(listings) != 2 {
			t.Fatalf("call %d: got %d listings, want 2", i+1, len(listings))
		}
	}

	if n := calls.Load(); n != 1 {
		t.Errorf("backend calls = %d, want 1 (cache must absorb repeats)", n)
	}

	provider.Invalidate(66)
	if _, err := provider.Listings(ctx, 66); err != nil {
		t.Fatalf("Listings after invalidate: %v", err)
	}
	if n := calls.Load(); n != 2 {
		t.Errorf("backend calls = %d, want 2 after invalidation", n)
	}
}
