package concurrency

import (
	"context"
	"sort"
	"sync"
)

// Locker serializes work on named keys. Lock acquires every key in sorted
// order so callers that need overlapping key sets cannot deadlock, and
// returns a function releasing all of them.
type Locker interface {
	Lock(ctx context.Context, keys ...string) (unlock func(), err error)
}

// AccountKey is the lock key guarding one account
func AccountKey(userID string) string {
	return KeyPrefixAccount + userID
}

// AuctionKey is the lock key guarding one auction
func AuctionKey(auctionID string) string {
	return KeyPrefixAuction + auctionID
}

// LockManager handles named locks within one process. A key's mutex lives
// only while some caller holds or waits on it.
type LockManager struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	mu   sync.Mutex
	refs int
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{locks: make(map[string]*keyLock)}
}

// Lock acquires the mutexes for keys in sorted order
func (lm *LockManager) Lock(ctx context.Context, keys ...string) (func(), error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ordered := sortedUnique(keys)
	for _, key := range ordered {
		lm.acquire(key).mu.Lock()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			for i := len(ordered) - 1; i >= 0; i-- {
				lm.release(ordered[i])
			}
		})
	}, nil
}

// acquire registers interest in key and returns its lock
func (lm *LockManager) acquire(key string) *keyLock {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	l, ok := lm.locks[key]
	if !ok {
		l = &keyLock{}
		lm.locks[key] = l
	}
	l.refs++
	return l
}

// release unlocks key and forgets it once nobody else references it
func (lm *LockManager) release(key string) {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	l := lm.locks[key]
	l.mu.Unlock()
	l.refs--
	if l.refs == 0 {
		delete(lm.locks, key)
	}
}

// Size reports how many keys are currently held or awaited
func (lm *LockManager) Size() int {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	return len(lm.locks)
}

// sortedUnique returns keys sorted with duplicates removed
func sortedUnique(keys []string) []string {
	out := append([]string(nil), keys...)
	sort.Strings(out)
	n := 0
	for i, k := range out {
		if i > 0 && k == out[n-1] {
			continue
		}
		out[n] = k
		n++
	}
	return out[:n]
}

var _ Locker = (*LockManager)(nil)
