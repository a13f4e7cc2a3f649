package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BrandishEconomy/internal/domain"
	"github.com/osse101/BrandishEconomy/internal/repository"
	"github.com/osse101/BrandishEconomy/internal/testing/storetest"
)

func TestStore(t *testing.T) {
	storetest.Run(t, func(t *testing.T) repository.Store { return NewStore() })
}

func TestStore_ReturnsCopies(t *testing.T) {
	store := NewStore()
	storetest.SeedAccount(t, store, "alice", 100)

	acct, err := store.GetAccount(context.Background(), "alice")
	require.NoError(t, err)
	acct.Wallet = 0
	acct.Inventory = append(acct.Inventory, domain.InventoryEntry{ItemID: "x", Quantity: 1})

	again, err := store.GetAccount(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(100), again.Wallet)
	assert.Empty(t, again.Inventory)
}

func TestTx_StagedWritesInvisibleUntilCommit(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	acct := storetest.SeedAccount(t, store, "alice", 100)

	tx, err := store.BeginTx(ctx)
	require.NoError(t, err)
	acct.Wallet = 5
	require.NoError(t, tx.UpdateAccount(ctx, acct))

	// staged only
	outside, err := store.GetAccount(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(100), outside.Wallet)

	inside, err := tx.GetAccountForUpdate(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(5), inside.Wallet)

	require.NoError(t, tx.Commit(ctx))
	assert.Equal(t, domain.ErrMsgTxClosed, tx.Commit(ctx).Error())

	committed, err := store.GetAccount(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(5), committed.Wallet)
}
