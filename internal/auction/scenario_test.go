package auction

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BrandishEconomy/internal/concurrency"
	"github.com/osse101/BrandishEconomy/internal/domain"
	"github.com/osse101/BrandishEconomy/internal/ledger"
)

// TestEconomyScenario walks a new user through the ledger and a seller
// through a contested auction
func TestEconomyScenario(t *testing.T) {
	f := setupService(t)
	ctx := context.Background()
	ledgerSvc := ledger.NewService(f.store, concurrency.NewLockManager())

	// a new user starts with the default balances
	user, err := ledgerSvc.GetUser(ctx, "newbie", "Newbie")
	require.NoError(t, err)
	assert.Equal(t, int64(1000), user.Wallet)
	assert.Equal(t, int64(0), user.Bank)
	assert.Equal(t, int64(10000), user.BankLimit)

	// overdrawing fails and leaves the wallet alone
	err = ledgerSvc.RemoveMoney(ctx, "newbie", 1500, domain.LocationWallet, "test")
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Equal(t, int64(1000), f.account(t, "newbie").Wallet)

	require.NoError(t, ledgerSvc.AddMoney(ctx, "newbie", 500, domain.LocationBank, "test"))
	assert.Equal(t, int64(500), f.account(t, "newbie").Bank)

	// the seller lists their only diamond
	for _, u := range []string{"seller", "b1", "b2"} {
		_, err := ledgerSvc.GetUser(ctx, u, u)
		require.NoError(t, err)
	}
	f.give(t, "seller", "diamond", 1)

	created, err := f.svc.CreateAuction(ctx, "seller", "Diamond", 1, 100, 24)
	require.NoError(t, err)
	assert.Equal(t, -1, f.account(t, "seller").FindEntry("diamond"))
	assert.Equal(t, int64(100), f.auction(t, created.AuctionID).CurrentBid)

	// b2 outbids b1
	_, err = f.svc.PlaceBid(ctx, "b1", created.AuctionID, 150)
	require.NoError(t, err)
	b1Before := f.account(t, "b1").Wallet
	b2Before := f.account(t, "b2").Wallet
	_, err = f.svc.PlaceBid(ctx, "b2", created.AuctionID, 200)
	require.NoError(t, err)

	assert.Equal(t, b1Before+150, f.account(t, "b1").Wallet)
	assert.Equal(t, b2Before-200, f.account(t, "b2").Wallet)
	assert.Equal(t, int64(200), f.auction(t, created.AuctionID).CurrentBid)
}
