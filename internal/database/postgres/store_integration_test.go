package postgres

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BrandishEconomy/internal/database"
	"github.com/osse101/BrandishEconomy/internal/repository"
	"github.com/osse101/BrandishEconomy/internal/testing/pgtest"
	"github.com/osse101/BrandishEconomy/internal/testing/storetest"
)

var (
	testPool *pgxpool.Pool
	setupMu  sync.Mutex
)

func TestMain(m *testing.M) {
	code := m.Run()
	if testPool != nil {
		testPool.Close()
	}
	pgtest.Terminate()
	os.Exit(code)
}

// setupPool connects to the shared container once and applies migrations
func setupPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	connStr := pgtest.ConnString(t)

	setupMu.Lock()
	defer setupMu.Unlock()
	if testPool != nil {
		return testPool
	}

	ctx := context.Background()
	pool, err := database.NewPool(ctx, connStr, database.PoolConfig{MaxConns: 10})
	require.NoError(t, err)

	_, err = database.Migrate(ctx, pool)
	require.NoError(t, err)

	testPool = pool
	return pool
}

// freshStore truncates both tables so each subtest starts empty
func freshStore(t *testing.T) repository.Store {
	t.Helper()
	pool := setupPool(t)
	_, err := pool.Exec(context.Background(), `TRUNCATE auctions, accounts`)
	require.NoError(t, err)
	return NewStore(pool)
}

func TestStore_Integration(t *testing.T) {
	storetest.Run(t, freshStore)
}

// TestStore_RowLocksSerializeWriters verifies FOR UPDATE serializes two
// transactions crediting the same account without any in-process lock.
func TestStore_RowLocksSerializeWriters(t *testing.T) {
	store := freshStore(t)
	storetest.SeedAccount(t, store, "alice", 0)
	ctx := context.Background()

	const writers = 20
	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tx, err := store.BeginTx(ctx)
			if err != nil {
				errs <- err
				return
			}
			defer repository.SafeRollback(ctx, tx)

			acct, err := tx.GetAccountForUpdate(ctx, "alice")
			if err != nil {
				errs <- err
				return
			}
			acct.Wallet += 10
			if err := tx.UpdateAccount(ctx, acct); err != nil {
				errs <- err
				return
			}
			errs <- tx.Commit(ctx)
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	acct, err := store.GetAccount(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(writers*10), acct.Wallet, fmt.Sprintf("expected %d serialized credits", writers))
}

func TestStore_RejectsNegativeWallet(t *testing.T) {
	store := freshStore(t)
	acct := storetest.SeedAccount(t, store, "bob", 10)
	ctx := context.Background()

	tx, err := store.BeginTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)

	acct.Wallet = -1
	err = tx.UpdateAccount(ctx, acct)
	assert.Error(t, err, "wallet check constraint must reject negative balances")
}
