package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BrandishEconomy/internal/domain"
)

func TestAddItem_MergesStacks(t *testing.T) {
	// ARRANGE
	f := setupService(t, "alice")
	ctx := context.Background()

	// ACT
	require.NoError(t, f.svc.AddItem(ctx, "alice", "health_potion", 2, 80))
	f.prices.sellDivisor = 4
	require.NoError(t, f.svc.AddItem(ctx, "alice", "health_potion", 3, 0))

	// ASSERT
	acct := f.account(t, "alice")
	require.Len(t, acct.Inventory, 1)
	stack := acct.Inventory[0]
	assert.Equal(t, 5, stack.Quantity)
	assert.Equal(t, int64(25), stack.SellPrice, "merge refreshes the captured sell price")
	assert.Equal(t, int64(80), stack.PurchasePrice)
	assert.Equal(t, "Health Potion", stack.Name)
	assert.True(t, stack.Sellable)
}

func TestAddItem_NewStackSnapshotsSellPrice(t *testing.T) {
	f := setupService(t, "alice")

	require.NoError(t, f.svc.AddItem(context.Background(), "alice", "diamond", 1, 0))

	acct := f.account(t, "alice")
	require.Len(t, acct.Inventory, 1)
	assert.Equal(t, int64(500), acct.Inventory[0].SellPrice)
	assert.Equal(t, domain.RarityRare, acct.Inventory[0].Rarity)
}

func TestAddItem_Errors(t *testing.T) {
	f := setupService(t, "alice")
	ctx := context.Background()

	tests := []struct {
		name    string
		userID  string
		itemID  string
		qty     int
		price   int64
		wantErr error
	}{
		{"zero quantity", "alice", "health_potion", 0, 0, domain.ErrInvalidInput},
		{"huge quantity", "alice", "health_potion", domain.MaxTransactionQuantity + 1, 0, domain.ErrInvalidInput},
		{"negative purchase price", "alice", "health_potion", 1, -1, domain.ErrInvalidInput},
		{"unknown item", "alice", "excalibur", 1, 0, domain.ErrItemNotFound},
		{"unknown user", "ghost", "health_potion", 1, 0, domain.ErrUserNotFound},
		{"empty user", "", "health_potion", 1, 0, domain.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := f.svc.AddItem(ctx, tt.userID, tt.itemID, tt.qty, tt.price)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
	assert.Empty(t, f.account(t, "alice").Inventory)
}

func TestRemoveItem(t *testing.T) {
	f := setupService(t, "bob")
	ctx := context.Background()
	require.NoError(t, f.svc.AddItem(ctx, "bob", "health_potion", 3, 0))

	t.Run("absent stack", func(t *testing.T) {
		err := f.svc.RemoveItem(ctx, "bob", "diamond", 1)
		assert.ErrorIs(t, err, domain.ErrNotInInventory)
	})

	t.Run("more than held leaves the stack untouched", func(t *testing.T) {
		err := f.svc.RemoveItem(ctx, "bob", "health_potion", 4)
		assert.ErrorIs(t, err, domain.ErrInsufficientQuantity)
		assert.Equal(t, 3, f.account(t, "bob").HeldQuantity("health_potion"))
	})

	t.Run("partial removal decrements", func(t *testing.T) {
		require.NoError(t, f.svc.RemoveItem(ctx, "bob", "health_potion", 2))
		assert.Equal(t, 1, f.account(t, "bob").HeldQuantity("health_potion"))
	})

	t.Run("stack deleted at zero", func(t *testing.T) {
		require.NoError(t, f.svc.RemoveItem(ctx, "bob", "health_potion", 1))
		assert.Empty(t, f.account(t, "bob").Inventory)
	})
}

func TestGetInventory(t *testing.T) {
	f := setupService(t, "carol")
	ctx := context.Background()
	require.NoError(t, f.svc.AddItem(ctx, "carol", "diamond", 1, 0))
	require.NoError(t, f.svc.AddItem(ctx, "carol", "health_potion", 2, 0))

	inv, err := f.svc.GetInventory(ctx, "carol")

	require.NoError(t, err)
	require.Len(t, inv, 2)
	assert.Equal(t, "diamond", inv[0].ItemID)

	_, err = f.svc.GetInventory(ctx, "nobody")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
