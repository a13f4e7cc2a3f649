package auction

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/osse101/BrandishEconomy/internal/concurrency"
	"github.com/osse101/BrandishEconomy/internal/database/memory"
	"github.com/osse101/BrandishEconomy/internal/domain"
	"github.com/osse101/BrandishEconomy/internal/event"
	"github.com/osse101/BrandishEconomy/internal/inventory"
	"github.com/osse101/BrandishEconomy/internal/item"
	"github.com/osse101/BrandishEconomy/internal/pricing"
	"github.com/osse101/BrandishEconomy/internal/repository"
	"github.com/osse101/BrandishEconomy/internal/testing/storetest"
)

func testCatalog() *item.MemoryCatalog {
	return item.NewCatalog([]domain.ItemDefinition{
		{ItemID: "diamond", Name: "Diamond", BasePrice: 1000, Rarity: domain.RarityRare, ShopStock: 2, Sellable: true, Tradeable: true},
		{ItemID: "iron_sword", Name: "Iron Sword", BasePrice: 300, Rarity: domain.RarityCommon, ShopStock: -1, Sellable: true, Tradeable: true},
		{ItemID: "quest_relic", Name: "Quest Relic", BasePrice: 10, Rarity: domain.RarityCommon},
	})
}

// halfPrice sells at half the base price
type halfPrice struct{}

func (halfPrice) GetItemPrice(string, pricing.Direction) (int64, error) { return 0, nil }
func (halfPrice) BuyPrice(def *domain.ItemDefinition) int64 { return def.BasePrice }
func (halfPrice) SellPrice(def *domain.ItemDefinition) int64 { return def.BasePrice / 2 }
func (halfPrice) ShopQuotes() []pricing.Quote { return nil }

type fixture struct {
	svc   *service
	store repository.Store
	clock time.Time

	mu     sync.Mutex
	events []event.Event
}

func setupService(t *testing.T, users ...string) *fixture {
	t.Helper()
	store := memory.NewStore()
	for _, u := range users {
		storetest.SeedAccount(t, store, u, domain.DefaultWallet)
	}

	f := &fixture{store: store, clock: storetest.Now}
	bus := event.NewMemoryBus()
	event.SubscribeAll(bus, func(_ context.Context, e event.Event) error {
		f.mu.Lock()
		f.events = append(f.events, e)
		f.mu.Unlock()
		return nil
	})

	f.svc = NewService(store, concurrency.NewLockManager(), testCatalog(), halfPrice{}, bus).(*service)
	f.svc.now = func() time.Time { return f.clock }
	return f
}

func (f *fixture) account(t *testing.T, userID string) *domain.Account {
	t.Helper()
	acct, err := f.store.GetAccount(context.Background(), userID)
	require.NoError(t, err)
	return acct
}

func (f *fixture) auction(t *testing.T, auctionID string) *domain.Auction {
	t.Helper()
	a, err := f.store.GetAuction(context.Background(), auctionID)
	require.NoError(t, err)
	return a
}

// give commits qty of itemID into the user's inventory
func (f *fixture) give(t *testing.T, userID, itemID string, qty int) {
	t.Helper()
	ctx := context.Background()
	def, err := testCatalog().Get(itemID)
	require.NoError(t, err)

	err = repository.WithTx(ctx, f.store, func(tx repository.EconomyTx) error {
		acct, err := tx.GetAccountForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		inventory.AddStack(acct, inventory.NewEntry(def, qty, 0, def.BasePrice/2))
		return tx.UpdateAccount(ctx, acct)
	})
	require.NoError(t, err)
}

// list creates a 24h auction of qty items and returns its id
func (f *fixture) list(t *testing.T, sellerID, itemQuery string, qty int, startingBid int64) string {
	t.Helper()
	res, err := f.svc.CreateAuction(context.Background(), sellerID, itemQuery, qty, startingBid, 24)
	require.NoError(t, err)
	return res.AuctionID
}

func (f *fixture) eventTypes() []event.Type {
	f.mu.Lock()
	defer f.mu.Unlock()
	types := make([]event.Type, 0, len(f.events))
	for _, e := range f.events {
		types = append(types, e.Type)
	}
	return types
}
