// Package memory is an in-process repository.Store used for local runs and
// as the stateful fake in service tests.
package memory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/osse101/BrandishEconomy/internal/domain"
	"github.com/osse101/BrandishEconomy/internal/repository"
)

var errTxClosed = domain.ErrTxClosed

// Store keeps accounts and auctions in maps. Records handed out are deep
// copies; transaction writes are staged and applied atomically on Commit.
type Store struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account
	auctions map[string]*domain.Auction
}

// NewStore creates an empty Store
func NewStore() *Store {
	return &Store{
		accounts: make(map[string]*domain.Account),
		auctions: make(map[string]*domain.Auction),
	}
}

// Ping always succeeds
func (s *Store) Ping(_ context.Context) error {
	return nil
}

// GetAccount returns a copy of the account
func (s *Store) GetAccount(_ context.Context, userID string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acct, ok := s.accounts[userID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, userID)
	}
	return acct.Clone(), nil
}

// TopAccounts returns accounts ordered by net worth
func (s *Store) TopAccounts(_ context.Context, limit int) ([]domain.Account, error) {
	s.mu.RLock()
	accounts := make([]domain.Account, 0, len(s.accounts))
	for _, acct := range s.accounts {
		accounts = append(accounts, *acct.Clone())
	}
	s.mu.RUnlock()

	sort.Slice(accounts, func(i, j int) bool {
		if accounts[i].NetWorth() != accounts[j].NetWorth() {
			return accounts[i].NetWorth() > accounts[j].NetWorth()
		}
		return accounts[i].UserID < accounts[j].UserID
	})
	if limit >= 0 && len(accounts) > limit {
		accounts = accounts[:limit]
	}
	return accounts, nil
}

// GetAuction returns a copy of the auction
func (s *Store) GetAuction(_ context.Context, auctionID string) (*domain.Auction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.auctions[auctionID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrAuctionNotFound, auctionID)
	}
	return a.Clone(), nil
}

// ListAuctions returns open auctions matching the query, soonest ending
// first. Active auctions already past their end time are left out.
func (s *Store) ListAuctions(_ context.Context, q repository.AuctionQuery) ([]domain.Auction, error) {
	s.mu.RLock()
	auctions := []domain.Auction{}
	for _, a := range s.auctions {
		if a.Status == domain.AuctionActive && !a.Ended(q.Now) && matches(a, q) {
			auctions = append(auctions, *a.Clone())
		}
	}
	s.mu.RUnlock()

	sort.Slice(auctions, func(i, j int) bool {
		if !auctions[i].EndTime.Equal(auctions[j].EndTime) {
			return auctions[i].EndTime.Before(auctions[j].EndTime)
		}
		return auctions[i].AuctionID < auctions[j].AuctionID
	})
	if q.Limit >= 0 && len(auctions) > q.Limit {
		auctions = auctions[:q.Limit]
	}
	return auctions, nil
}

func matches(a *domain.Auction, q repository.AuctionQuery) bool {
	switch q.Filter {
	case domain.FilterMine:
		return a.SellerID == q.UserID
	case domain.FilterBids:
		return a.HighestBidderID == q.UserID
	case domain.FilterEnding:
		return !a.EndTime.After(q.Now.Add(domain.AuctionEndingWindow))
	}
	return true
}

// ListDueAuctions returns the ids of active auctions past their end time
func (s *Store) ListDueAuctions(_ context.Context, now time.Time, limit int) ([]string, error) {
	s.mu.RLock()
	var due []*domain.Auction
	for _, a := range s.auctions {
		if a.Status == domain.AuctionActive && a.EndTime.Before(now) {
			due = append(due, a)
		}
	}
	sort.Slice(due, func(i, j int) bool { return due[i].EndTime.Before(due[j].EndTime) })
	ids := make([]string, 0, len(due))
	for _, a := range due {
		if len(ids) == limit {
			break
		}
		ids = append(ids, a.AuctionID)
	}
	s.mu.RUnlock()
	return ids, nil
}

// BeginTx starts a unit of work
func (s *Store) BeginTx(_ context.Context) (repository.EconomyTx, error) {
	return &tx{
		store:    s,
		accounts: make(map[string]*domain.Account),
		auctions: make(map[string]*domain.Auction),
	}, nil
}

// tx stages writes until Commit. Row locking is left to the caller's
// concurrency.Locker; the store lock only guards the maps.
type tx struct {
	store    *Store
	accounts map[string]*domain.Account
	auctions map[string]*domain.Auction
	closed   bool
}

func (t *tx) GetAccountForUpdate(ctx context.Context, userID string) (*domain.Account, error) {
	if t.closed {
		return nil, errTxClosed
	}
	if acct, ok := t.accounts[userID]; ok {
		return acct.Clone(), nil
	}
	return t.store.GetAccount(ctx, userID)
}

func (t *tx) EnsureAccount(ctx context.Context, acct *domain.Account) (*domain.Account, error) {
	existing, err := t.GetAccountForUpdate(ctx, acct.UserID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	t.accounts[acct.UserID] = acct.Clone()
	return acct.Clone(), nil
}

func (t *tx) UpdateAccount(ctx context.Context, acct *domain.Account) error {
	if _, err := t.GetAccountForUpdate(ctx, acct.UserID); err != nil {
		return err
	}
	t.accounts[acct.UserID] = acct.Clone()
	return nil
}

func (t *tx) GetAuctionForUpdate(ctx context.Context, auctionID string) (*domain.Auction, error) {
	if t.closed {
		return nil, errTxClosed
	}
	if a, ok := t.auctions[auctionID]; ok {
		return a.Clone(), nil
	}
	return t.store.GetAuction(ctx, auctionID)
}

func (t *tx) InsertAuction(ctx context.Context, a *domain.Auction) error {
	_, err := t.GetAuctionForUpdate(ctx, a.AuctionID)
	if err == nil {
		return fmt.Errorf("%w: duplicate auction id %s", domain.ErrInvalidInput, a.AuctionID)
	}
	if !errors.Is(err, domain.ErrAuctionNotFound) {
		return err
	}
	t.auctions[a.AuctionID] = a.Clone()
	return nil
}

func (t *tx) UpdateAuction(ctx context.Context, a *domain.Auction) error {
	if _, err := t.GetAuctionForUpdate(ctx, a.AuctionID); err != nil {
		return err
	}
	t.auctions[a.AuctionID] = a.Clone()
	return nil
}

func (t *tx) Commit(_ context.Context) error {
	if t.closed {
		return errTxClosed
	}
	t.closed = true

	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	for id, acct := range t.accounts {
		t.store.accounts[id] = acct
	}
	for id, a := range t.auctions {
		t.store.auctions[id] = a
	}
	return nil
}

func (t *tx) Rollback(_ context.Context) error {
	if t.closed {
		return errTxClosed
	}
	t.closed = true
	t.accounts = nil
	t.auctions = nil
	return nil
}

var _ repository.Store = (*Store)(nil)
