// Package session holds short-lived confirmation records keyed by id.
package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/BrandishEconomy/internal/domain"
)

// Defaults for the confirmation store
const (
	DefaultSize = 4096
	DefaultTTL  = 60 * time.Second
)

// SellConfirmation is a quoted sale waiting for the seller to confirm it
type SellConfirmation struct {
	ID        string    `json:"confirmation_id"`
	UserID    string    `json:"user_id"`
	ItemID    string    `json:"item_id"`
	ItemName  string    `json:"item_name"`
	Quantity  int       `json:"quantity"`
	UnitPrice int64     `json:"unit_price"`
	Total     int64     `json:"total"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Store keeps confirmations in an LRU whose entries expire after a fixed
// lifetime, so abandoned confirmations never accumulate.
type Store struct {
	lru *expirable.LRU[string, SellConfirmation]
	ttl time.Duration
	now func() time.Time
}

// NewStore creates a confirmation store.
// size: maximum number of pending confirmations
// ttl: lifetime of a confirmation
func NewStore(size int, ttl time.Duration) *Store {
	if size <= 0 {
		size = DefaultSize
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		lru: expirable.NewLRU[string, SellConfirmation](size, nil, ttl),
		ttl: ttl,
		now: time.Now,
	}
}

// TTL returns the lifetime of a confirmation
func (s *Store) TTL() time.Duration {
	return s.ttl
}

// Put stores c under a fresh id and returns the stored record
func (s *Store) Put(c SellConfirmation) SellConfirmation {
	c.ID = uuid.NewString()
	c.ExpiresAt = s.now().Add(s.ttl)
	s.lru.Add(c.ID, c)
	return c
}

// Take removes and returns the confirmation id owned by userID. A missing,
// expired or foreign confirmation is domain.ErrSessionNotFound.
func (s *Store) Take(id, userID string) (SellConfirmation, error) {
	c, ok := s.lru.Get(id)
	if !ok || c.UserID != userID {
		return SellConfirmation{}, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}
	s.lru.Remove(id)
	return c, nil
}

// Len reports the number of pending confirmations
func (s *Store) Len() int {
	return s.lru.Len()
}
