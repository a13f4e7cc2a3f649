// Package storetest holds behaviour checks every repository.Store
// implementation must pass. Backend packages call Run from their tests.
package storetest

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BrandishEconomy/internal/domain"
	"github.com/osse101/BrandishEconomy/internal/repository"
)

// Factory returns an empty store for one subtest
type Factory func(t *testing.T) repository.Store

// Run executes the store behaviour suite
func Run(t *testing.T, newStore Factory) {
	t.Run("EnsureAccountCreatesOnce", func(t *testing.T) { testEnsureAccount(t, newStore(t)) })
	t.Run("UpdateAccountRoundTrip", func(t *testing.T) { testAccountRoundTrip(t, newStore(t)) })
	t.Run("RollbackDiscardsWrites", func(t *testing.T) { testRollback(t, newStore(t)) })
	t.Run("MissingRecords", func(t *testing.T) { testMissing(t, newStore(t)) })
	t.Run("TopAccounts", func(t *testing.T) { testTopAccounts(t, newStore(t)) })
	t.Run("AuctionLifecycle", func(t *testing.T) { testAuctionLifecycle(t, newStore(t)) })
	t.Run("ListAuctionFilters", func(t *testing.T) { testListFilters(t, newStore(t)) })
	t.Run("ListSkipsEndedBeforeLimit", func(t *testing.T) { testListSkipsEnded(t, newStore(t)) })
	t.Run("ListDueAuctions", func(t *testing.T) { testListDue(t, newStore(t)) })
}

// Now is a fixed reference time truncated to what Postgres stores
var Now = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

// SeedAccount commits a fresh account with the given wallet
func SeedAccount(t *testing.T, store repository.Store, userID string, wallet int64) *domain.Account {
	t.Helper()
	ctx := context.Background()

	tx, err := store.BeginTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)

	acct, err := tx.EnsureAccount(ctx, domain.NewAccount(userID, userID, Now))
	require.NoError(t, err)
	acct.Wallet = wallet
	require.NoError(t, tx.UpdateAccount(ctx, acct))
	require.NoError(t, tx.Commit(ctx))
	return acct
}

// SeedAuction commits an active auction ending at end
func SeedAuction(t *testing.T, store repository.Store, sellerID string, end time.Time) *domain.Auction {
	t.Helper()
	ctx := context.Background()

	a := &domain.Auction{
		AuctionID:     uuid.NewString(),
		SellerID:      sellerID,
		ItemID:        "iron_sword",
		ItemName:      "Iron Sword",
		Quantity:      1,
		StartingPrice: 100,
		CurrentBid:    100,
		BidHistory:    []domain.Bid{},
		StartTime:     Now,
		EndTime:       end,
		Status:        domain.AuctionActive,
	}

	tx, err := store.BeginTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)
	require.NoError(t, tx.InsertAuction(ctx, a))
	require.NoError(t, tx.Commit(ctx))
	return a
}

func testEnsureAccount(t *testing.T, store repository.Store) {
	ctx := context.Background()
	SeedAccount(t, store, "alice", 500)

	tx, err := store.BeginTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)

	acct, err := tx.EnsureAccount(ctx, domain.NewAccount("alice", "alice", Now))
	require.NoError(t, err)
	assert.Equal(t, int64(500), acct.Wallet, "existing account must not be overwritten")
}

func testAccountRoundTrip(t *testing.T, store repository.Store) {
	ctx := context.Background()
	acct := SeedAccount(t, store, "bob", 1000)

	acct.Bank = 250
	acct.Inventory = []domain.InventoryEntry{{ItemID: "potion", Name: "Potion", Quantity: 3, Rarity: domain.RarityCommon, Sellable: true, SellPrice: 35}}
	acct.ActiveEffects = []domain.ActiveEffect{{
		Type: domain.EffectPoison, Category: domain.CategoryDOT, Value: 2, Duration: 30 * time.Second,
		StackCount: 1, Source: "venom", AppliedAt: Now, ExpiresAt: Now.Add(30 * time.Second),
	}}
	acct.Stats.Health = 42
	acct.AppendTransaction(domain.Transaction{ID: "t1", Type: domain.TransactionCredit, Amount: 250, Location: domain.LocationBank, CreatedAt: Now})

	tx, err := store.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.UpdateAccount(ctx, acct))
	require.NoError(t, tx.Commit(ctx))

	got, err := store.GetAccount(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, int64(250), got.Bank)
	require.Len(t, got.Inventory, 1)
	assert.Equal(t, 3, got.Inventory[0].Quantity)
	require.Len(t, got.ActiveEffects, 1)
	assert.Equal(t, domain.EffectPoison, got.ActiveEffects[0].Type)
	assert.True(t, got.ActiveEffects[0].ExpiresAt.Equal(Now.Add(30*time.Second)))
	assert.Equal(t, int64(42), got.Stats.Health)
	require.Len(t, got.Transactions, 1)
	assert.Equal(t, "t1", got.Transactions[0].ID)
}

func testRollback(t *testing.T, store repository.Store) {
	ctx := context.Background()
	acct := SeedAccount(t, store, "carol", 1000)

	tx, err := store.BeginTx(ctx)
	require.NoError(t, err)
	acct.Wallet = 1
	require.NoError(t, tx.UpdateAccount(ctx, acct))
	require.NoError(t, tx.Rollback(ctx))

	got, err := store.GetAccount(ctx, "carol")
	require.NoError(t, err)
	assert.Equal(t, int64(1000), got.Wallet)

	// rollback after close reports the closed tx
	err = tx.Rollback(ctx)
	assert.ErrorIs(t, err, domain.ErrTxClosed)
}

func testMissing(t *testing.T, store repository.Store) {
	ctx := context.Background()

	_, err := store.GetAccount(ctx, "ghost")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = store.GetAuction(ctx, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrAuctionNotFound)

	tx, err := store.BeginTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)

	err = tx.UpdateAccount(ctx, domain.NewAccount("ghost", "ghost", Now))
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func testTopAccounts(t *testing.T, store repository.Store) {
	ctx := context.Background()
	for i, wallet := range []int64{300, 900, 600} {
		SeedAccount(t, store, fmt.Sprintf("user%d", i), wallet)
	}

	top, err := store.TopAccounts(ctx, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "user1", top[0].UserID)
	assert.Equal(t, "user2", top[1].UserID)
}

func testAuctionLifecycle(t *testing.T, store repository.Store) {
	ctx := context.Background()
	SeedAccount(t, store, "seller", 0)
	a := SeedAuction(t, store, "seller", Now.Add(time.Hour))

	tx, err := store.BeginTx(ctx)
	require.NoError(t, err)
	locked, err := tx.GetAuctionForUpdate(ctx, a.AuctionID)
	require.NoError(t, err)
	locked.CurrentBid = 150
	locked.HighestBidderID = "bidder"
	locked.BidHistory = append(locked.BidHistory, domain.Bid{BidderID: "bidder", Amount: 150, PlacedAt: Now})
	settled := Now.Add(2 * time.Hour)
	locked.Status = domain.AuctionCompleted
	locked.SettledAt = &settled
	require.NoError(t, tx.UpdateAuction(ctx, locked))
	require.NoError(t, tx.Commit(ctx))

	got, err := store.GetAuction(ctx, a.AuctionID)
	require.NoError(t, err)
	assert.Equal(t, int64(150), got.CurrentBid)
	assert.Equal(t, "bidder", got.HighestBidderID)
	assert.Equal(t, domain.AuctionCompleted, got.Status)
	require.NotNil(t, got.SettledAt)
	assert.True(t, got.SettledAt.Equal(settled))
	require.Len(t, got.BidHistory, 1)

	tx, err = store.BeginTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)
	assert.ErrorIs(t, tx.InsertAuction(ctx, got), domain.ErrInvalidInput)
}

func testListFilters(t *testing.T, store repository.Store) {
	ctx := context.Background()
	SeedAccount(t, store, "s1", 0)
	SeedAccount(t, store, "s2", 0)

	later := SeedAuction(t, store, "s1", Now.Add(5*time.Hour))
	soon := SeedAuction(t, store, "s2", Now.Add(30*time.Minute))
	done := SeedAuction(t, store, "s1", Now.Add(10*time.Minute))

	tx, err := store.BeginTx(ctx)
	require.NoError(t, err)
	a, err := tx.GetAuctionForUpdate(ctx, soon.AuctionID)
	require.NoError(t, err)
	a.HighestBidderID = "bidder"
	a.BidHistory = []domain.Bid{{BidderID: "bidder", Amount: 200, PlacedAt: Now}}
	require.NoError(t, tx.UpdateAuction(ctx, a))
	d, err := tx.GetAuctionForUpdate(ctx, done.AuctionID)
	require.NoError(t, err)
	d.Status = domain.AuctionCancelled
	require.NoError(t, tx.UpdateAuction(ctx, d))
	require.NoError(t, tx.Commit(ctx))

	ids := func(q repository.AuctionQuery) []string {
		q.Limit = domain.MaxAuctionListing
		q.Now = Now
		list, err := store.ListAuctions(ctx, q)
		require.NoError(t, err)
		out := make([]string, 0, len(list))
		for _, a := range list {
			out = append(out, a.AuctionID)
		}
		return out
	}

	assert.Equal(t, []string{soon.AuctionID, later.AuctionID}, ids(repository.AuctionQuery{Filter: domain.FilterAll}))
	assert.Equal(t, []string{later.AuctionID}, ids(repository.AuctionQuery{Filter: domain.FilterMine, UserID: "s1"}))
	assert.Equal(t, []string{soon.AuctionID}, ids(repository.AuctionQuery{Filter: domain.FilterBids, UserID: "bidder"}))
	assert.Equal(t, []string{soon.AuctionID}, ids(repository.AuctionQuery{Filter: domain.FilterEnding}))
	assert.Empty(t, ids(repository.AuctionQuery{Filter: domain.FilterBids, UserID: "nobody"}))
}

// testListSkipsEnded fills the listing limit with auctions the reaper has
// not settled yet; the one still running must be listed regardless.
func testListSkipsEnded(t *testing.T, store repository.Store) {
	ctx := context.Background()
	SeedAccount(t, store, "s1", 0)

	for i := 0; i < domain.MaxAuctionListing; i++ {
		SeedAuction(t, store, "s1", Now.Add(-time.Duration(i+1)*time.Minute))
	}
	live := SeedAuction(t, store, "s1", Now.Add(48*time.Hour))

	for _, filter := range []domain.AuctionFilter{domain.FilterAll, domain.FilterMine} {
		list, err := store.ListAuctions(ctx, repository.AuctionQuery{
			Filter: filter,
			UserID: "s1",
			Now:    Now,
			Limit:  domain.MaxAuctionListing,
		})
		require.NoError(t, err)
		require.Len(t, list, 1, filter)
		assert.Equal(t, live.AuctionID, list[0].AuctionID)
	}
}

func testListDue(t *testing.T, store repository.Store) {
	ctx := context.Background()
	SeedAccount(t, store, "seller", 0)
	past := SeedAuction(t, store, "seller", Now.Add(-time.Minute))
	SeedAuction(t, store, "seller", Now.Add(time.Minute))

	due, err := store.ListDueAuctions(ctx, Now, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{past.AuctionID}, due)
}
