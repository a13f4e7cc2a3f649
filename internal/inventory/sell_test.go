package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BrandishEconomy/internal/domain"
	"github.com/osse101/BrandishEconomy/internal/event"
)

func TestSellItem(t *testing.T) {
	// ARRANGE
	f := setupService(t, "alice")
	ctx := context.Background()
	require.NoError(t, f.svc.AddItem(ctx, "alice", "health_potion", 3, 0))

	// ACT
	res, err := f.svc.SellItem(ctx, "alice", "potion", 2)

	// ASSERT
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, int64(100), res.Earned)
	assert.Equal(t, int64(1100), res.NewBalance)
	assert.Equal(t, 1, res.RemainingQuantity)
	assert.Equal(t, "health_potion", res.ItemID)

	require.Len(t, f.events, 1)
	assert.Equal(t, event.ItemSold, f.events[0].Type)

	res, err = f.svc.SellItem(ctx, "alice", "HEALTH POTION", 1)
	require.NoError(t, err)
	assert.Equal(t, 0, res.RemainingQuantity)
	assert.Empty(t, f.account(t, "alice").Inventory)
}

func TestSellItem_Rejections(t *testing.T) {
	f := setupService(t, "alice")
	ctx := context.Background()
	require.NoError(t, f.svc.AddItem(ctx, "alice", "health_potion", 1, 0))
	require.NoError(t, f.svc.AddItem(ctx, "alice", "quest_relic", 1, 0))

	tests := []struct {
		name    string
		query   string
		qty     int
		wantErr error
	}{
		{"no match", "sword", 1, domain.ErrNotInInventory},
		{"not sellable", "relic", 1, domain.ErrNotSellable},
		{"more than held", "potion", 2, domain.ErrInsufficientQuantity},
		{"bad quantity", "potion", -1, domain.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.SellItem(ctx, "alice", tt.query, tt.qty)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	acct := f.account(t, "alice")
	assert.Equal(t, domain.DefaultWallet, acct.Wallet)
	assert.Len(t, acct.Inventory, 2)
}

func TestSellItem_FallsBackToCapturedPrice(t *testing.T) {
	f := setupService(t, "alice")
	ctx := context.Background()
	acct := f.account(t, "alice")
	acct.Inventory = append(acct.Inventory, domain.InventoryEntry{
		ItemID: "retired_relic", Name: "Retired Relic", Quantity: 2, Sellable: true, SellPrice: 40,
	})
	tx, err := f.store.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.UpdateAccount(ctx, acct))
	require.NoError(t, tx.Commit(ctx))

	res, err := f.svc.SellItem(ctx, "alice", "retired", 2)

	require.NoError(t, err)
	assert.Equal(t, int64(80), res.Earned)
}

func TestQuoteAndConfirmSell(t *testing.T) {
	f := setupService(t, "alice", "mallory")
	ctx := context.Background()
	require.NoError(t, f.svc.AddItem(ctx, "alice", "diamond", 2, 0))

	quote, err := f.svc.QuoteSell(ctx, "alice", "diamond", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(500), quote.UnitPrice)
	assert.Equal(t, int64(500), quote.Total)
	assert.Equal(t, 2, f.account(t, "alice").HeldQuantity("diamond"), "quoting does not sell")

	f.prices.sellDivisor = 10

	_, err = f.svc.ConfirmSell(ctx, "mallory", quote.ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound, "confirmations belong to their user")

	res, err := f.svc.ConfirmSell(ctx, "alice", quote.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(500), res.Earned, "quoted price holds")
	assert.Equal(t, 1, res.RemainingQuantity)

	_, err = f.svc.ConfirmSell(ctx, "alice", quote.ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestConfirmSell_StackGoneSinceQuote(t *testing.T) {
	f := setupService(t, "alice")
	ctx := context.Background()
	require.NoError(t, f.svc.AddItem(ctx, "alice", "diamond", 1, 0))
	quote, err := f.svc.QuoteSell(ctx, "alice", "diamond", 1)
	require.NoError(t, err)
	require.NoError(t, f.svc.RemoveItem(ctx, "alice", "diamond", 1))

	_, err = f.svc.ConfirmSell(ctx, "alice", quote.ID)

	assert.ErrorIs(t, err, domain.ErrNotInInventory)
	assert.Equal(t, domain.DefaultWallet, f.account(t, "alice").Wallet)
}
