package inventory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/osse101/BrandishEconomy/internal/concurrency"
	"github.com/osse101/BrandishEconomy/internal/database/memory"
	"github.com/osse101/BrandishEconomy/internal/domain"
	"github.com/osse101/BrandishEconomy/internal/event"
	"github.com/osse101/BrandishEconomy/internal/item"
	"github.com/osse101/BrandishEconomy/internal/pricing"
	"github.com/osse101/BrandishEconomy/internal/repository"
	"github.com/osse101/BrandishEconomy/internal/session"
	"github.com/osse101/BrandishEconomy/internal/testing/storetest"
)

func testCatalog() *item.MemoryCatalog {
	return item.NewCatalog([]domain.ItemDefinition{
		{ItemID: domain.ItemToken, Name: "Token", BasePrice: 50, Rarity: domain.RarityCommon, Tradeable: true},
		{ItemID: "health_potion", Name: "Health Potion", BasePrice: 100, Rarity: domain.RarityCommon, ShopStock: -1, Sellable: true, Tradeable: true},
		{ItemID: "diamond", Name: "Diamond", BasePrice: 1000, Rarity: domain.RarityRare, ShopStock: 2, Sellable: true, Tradeable: true},
		{ItemID: "quest_relic", Name: "Quest Relic", BasePrice: 10, Rarity: domain.RarityCommon},
		{ItemID: "golden_goose", Name: "Golden Goose", BasePrice: 200, Rarity: domain.RarityEpic, ShopStock: -1, Sellable: true, Tradeable: true, TokenCost: 3},
	})
}

// fixedPrices buys at base price and sells at base price / sellDivisor
type fixedPrices struct {
	sellDivisor int64
}

func (p *fixedPrices) GetItemPrice(string, pricing.Direction) (int64, error) { return 0, nil }
func (p *fixedPrices) BuyPrice(def *domain.ItemDefinition) int64 { return def.BasePrice }
func (p *fixedPrices) SellPrice(def *domain.ItemDefinition) int64 { return def.BasePrice / p.sellDivisor }
func (p *fixedPrices) ShopQuotes() []pricing.Quote { return nil }

// faultyStore fails the UpdateAccount calls failOn selects, counting from 1
type faultyStore struct {
	*memory.Store
	mu      sync.Mutex
	updates int
	failOn  map[int]bool
}

func (f *faultyStore) BeginTx(ctx context.Context) (repository.EconomyTx, error) {
	tx, err := f.Store.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	return &faultyTx{EconomyTx: tx, parent: f}, nil
}

type faultyTx struct {
	repository.EconomyTx
	parent *faultyStore
}

func (t *faultyTx) UpdateAccount(ctx context.Context, acct *domain.Account) error {
	t.parent.mu.Lock()
	t.parent.updates++
	fail := t.parent.failOn[t.parent.updates]
	t.parent.mu.Unlock()
	if fail {
		return fmt.Errorf("%w: injected failure", domain.ErrPersistence)
	}
	return t.EconomyTx.UpdateAccount(ctx, acct)
}

type fixture struct {
	svc    *service
	store  repository.Store
	prices *fixedPrices
	events []event.Event
}

func newFixture(t *testing.T, store repository.Store) *fixture {
	t.Helper()
	f := &fixture{store: store, prices: &fixedPrices{sellDivisor: 2}}
	bus := event.NewMemoryBus()
	event.SubscribeAll(bus, func(_ context.Context, e event.Event) error {
		f.events = append(f.events, e)
		return nil
	})

	f.svc = NewService(store, concurrency.NewLockManager(), testCatalog(), f.prices, bus, session.NewStore(16, time.Minute)).(*service)
	f.svc.now = func() time.Time { return storetest.Now }
	return f
}

func setupService(t *testing.T, users ...string) *fixture {
	t.Helper()
	store := memory.NewStore()
	for _, u := range users {
		storetest.SeedAccount(t, store, u, domain.DefaultWallet)
	}
	return newFixture(t, store)
}

func (f *fixture) account(t *testing.T, userID string) *domain.Account {
	t.Helper()
	acct, err := f.store.GetAccount(context.Background(), userID)
	require.NoError(t, err)
	return acct
}
