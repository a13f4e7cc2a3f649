package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BrandishEconomy/internal/auction"
	"github.com/osse101/BrandishEconomy/internal/concurrency"
	"github.com/osse101/BrandishEconomy/internal/database/memory"
	"github.com/osse101/BrandishEconomy/internal/domain"
	"github.com/osse101/BrandishEconomy/internal/effect"
	"github.com/osse101/BrandishEconomy/internal/inventory"
	"github.com/osse101/BrandishEconomy/internal/item"
	"github.com/osse101/BrandishEconomy/internal/ledger"
	"github.com/osse101/BrandishEconomy/internal/pricing"
)

const testAPIKey = "test-key"

func TestLoggingMiddleware_RedactsSecrets(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	req := httptest.NewRequest(http.MethodGet, "/api/v1/user", nil)
	req.Header.Set(HeaderAPIKey, "secret-key-123")
	req.Header.Set(HeaderAuthorization, "Bearer mytoken")
	req.Header.Set("User-Agent", "TestAgent")
	rec := httptest.NewRecorder()

	loggingMiddleware(okHandler()).ServeHTTP(rec, req)

	logOutput := buf.String()
	require.Contains(t, logOutput, LogMsgRequestHeaders)
	assert.NotContains(t, logOutput, "secret-key-123")
	assert.NotContains(t, logOutput, "Bearer mytoken")
	assert.Contains(t, logOutput, "TestAgent")
	assert.NotEmpty(t, rec.Header().Get(HeaderRequestID))
}

func TestLoggingMiddleware_SkipsPublicPaths(t *testing.T) {
	rec := httptest.NewRecorder()

	loggingMiddleware(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Empty(t, rec.Header().Get(HeaderRequestID))
}

func TestRouter_RecoversPanics(t *testing.T) {
	svcs := newTestServices()
	router := NewRouter(Options{APIKey: testAPIKey}, memory.NewStore(), Services{
		Ledger:    panickingLedger{Service: svcs.Ledger},
		Inventory: svcs.Inventory,
		Prices:    svcs.Prices,
		Effects:   svcs.Effects,
		Auctions:  svcs.Auctions,
	})

	rec := do(t, router, http.MethodGet, "/api/v1/leaderboard", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

type panickingLedger struct {
	ledger.Service
}

func (panickingLedger) Leaderboard(_ context.Context, _ int) ([]ledger.LeaderboardEntry, error) {
	panic("boom")
}

func newTestServices() Services {
	store := memory.NewStore()
	locker := concurrency.NewLockManager()
	catalog := item.NewCatalog([]domain.ItemDefinition{
		{ItemID: "iron_sword", Name: "Iron Sword", BasePrice: 300, Rarity: domain.RarityCommon, ShopStock: -1, Sellable: true, Tradeable: true},
	})
	prices := pricing.NewEngine(catalog)

	return Services{
		Ledger:    ledger.NewService(store, locker),
		Inventory: inventory.NewService(store, locker, catalog, prices, nil, nil),
		Prices:    prices,
		Effects:   effect.NewService(store, locker, catalog, nil),
		Auctions:  auction.NewService(store, locker, catalog, prices, nil),
	}
}

func do(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(HeaderAPIKey, testAPIKey)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_PublicAndProtectedRoutes(t *testing.T) {
	router := NewRouter(Options{APIKey: testAPIKey, ServiceName: "brandish-economy", Version: "test"}, memory.NewStore(), newTestServices())

	for _, path := range []string{"/healthz", "/readyz", "/version", "/metrics"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/user?user_id=alice", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_AuctionRoundTrip(t *testing.T) {
	// ARRANGE
	router := NewRouter(Options{APIKey: testAPIKey}, memory.NewStore(), newTestServices())

	for _, u := range []string{"alice", "bob"} {
		rec := do(t, router, http.MethodGet, "/api/v1/user?user_id="+u, nil)
		require.Equal(t, http.StatusOK, rec.Code)
	}
	rec := do(t, router, http.MethodPost, "/api/v1/inventory/add", map[string]interface{}{
		"user_id": "alice", "item_id": "iron_sword", "quantity": 1,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	// ACT
	rec = do(t, router, http.MethodPost, "/api/v1/auctions", map[string]interface{}{
		"seller_id": "alice", "item": "iron sword", "quantity": 1, "starting_bid": 100, "duration_hours": 24,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created auction.CreateResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = do(t, router, http.MethodPost, "/api/v1/auctions/"+created.AuctionID+"/bid", map[string]interface{}{
		"bidder_id": "bob", "amount": 150,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// ASSERT
	rec = do(t, router, http.MethodGet, "/api/v1/auctions/"+created.AuctionID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var a domain.Auction
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &a))
	assert.Equal(t, int64(150), a.CurrentBid)
	assert.Equal(t, "bob", a.HighestBidderID)

	rec = do(t, router, http.MethodGet, "/api/v1/user?user_id=bob", nil)
	var bob domain.Account
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &bob))
	assert.Equal(t, domain.DefaultWallet-150, bob.Wallet)

	rec = do(t, router, http.MethodGet, "/api/v1/inventory?user_id=alice", nil)
	var inv []domain.InventoryEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &inv))
	assert.Empty(t, inv)

	rec = do(t, router, http.MethodPost, "/api/v1/auctions/"+created.AuctionID+"/settle", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, router, http.MethodGet, "/api/v1/auctions?filter=bids&user_id=bob", nil)
	var listed []domain.Auction
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	assert.Len(t, listed, 1)
}
