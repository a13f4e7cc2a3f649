package concurrency

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockManager_ForgetsReleasedKeys(t *testing.T) {
	lm := NewLockManager()
	ctx := context.Background()

	for i := 0; i < 1000; i++ {
		unlock, err := lm.Lock(ctx, AccountKey(fmt.Sprintf("user-%d", i)), AuctionKey("a1"))
		require.NoError(t, err)
		unlock()
	}

	assert.Equal(t, 0, lm.Size())
}

func TestLockManager_KeyKeptWhileWaiterQueued(t *testing.T) {
	lm := NewLockManager()
	ctx := context.Background()

	unlock, err := lm.Lock(ctx, "k")
	require.NoError(t, err)

	acquired := make(chan func())
	go func() {
		u, _ := lm.Lock(ctx, "k")
		acquired <- u
	}()
	require.Eventually(t, func() bool {
		lm.mu.Lock()
		defer lm.mu.Unlock()
		return lm.locks["k"] != nil && lm.locks["k"].refs == 2
	}, time.Second, time.Millisecond)

	unlock()
	second := <-acquired
	assert.Equal(t, 1, lm.Size(), "the waiter still holds the key")
	second()
	assert.Equal(t, 0, lm.Size())
}

func TestLockManager_SerializesSameKey(t *testing.T) {
	lm := NewLockManager()
	ctx := context.Background()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock, err := lm.Lock(ctx, AccountKey("alice"))
			if err != nil {
				t.Error(err)
				return
			}
			defer unlock()
			v := counter
			time.Sleep(time.Microsecond)
			counter = v + 1
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, counter)
}

// TestLockManager_OppositeOrderNoDeadlock locks the same pair of keys in
// opposite argument order from two goroutines.
func TestLockManager_OppositeOrderNoDeadlock(t *testing.T) {
	lm := NewLockManager()
	ctx := context.Background()

	done := make(chan struct{})
	go func() {
		var wg sync.WaitGroup
		for i := 0; i < 200; i++ {
			wg.Add(2)
			go func() {
				defer wg.Done()
				unlock, _ := lm.Lock(ctx, AccountKey("a"), AccountKey("b"))
				unlock()
			}()
			go func() {
				defer wg.Done()
				unlock, _ := lm.Lock(ctx, AccountKey("b"), AccountKey("a"))
				unlock()
			}()
		}
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("deadlock acquiring keys in opposite order")
	}
}

func TestLockManager_DuplicateKeysAndDoubleUnlock(t *testing.T) {
	lm := NewLockManager()

	unlock, err := lm.Lock(context.Background(), "k", "k")
	require.NoError(t, err)
	unlock()
	unlock()

	assert.Equal(t, 0, lm.Size(), "key must be free after unlock")

	relock, err := lm.Lock(context.Background(), "k")
	require.NoError(t, err)
	relock()
}

func TestLockManager_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLockManager().Lock(ctx, "k")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSortedUnique(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, sortedUnique([]string{"c", "a", "b", "a"}))
	assert.Empty(t, sortedUnique(nil))
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "account:alice", AccountKey("alice"))
	assert.Equal(t, "auction:123", AuctionKey("123"))
}
