package repository

import (
	"context"
	"time"

	"github.com/osse101/BrandishEconomy/internal/domain"
)

// AuctionQuery selects active auctions for a listing
type AuctionQuery struct {
	Filter domain.AuctionFilter
	UserID string    // seller for FilterMine, highest bidder for FilterBids
	Now    time.Time // auctions ending before Now are excluded
	Limit  int
}

// Auctions defines read access to auctions outside a transaction
type Auctions interface {
	// GetAuction returns domain.ErrAuctionNotFound when no auction exists.
	GetAuction(ctx context.Context, auctionID string) (*domain.Auction, error)
	// ListAuctions returns active auctions matching q that have not ended by
	// q.Now, ordered by end time ascending and capped at q.Limit.
	ListAuctions(ctx context.Context, q AuctionQuery) ([]domain.Auction, error)
	// ListDueAuctions returns ids of active auctions whose end time is before now.
	ListDueAuctions(ctx context.Context, now time.Time, limit int) ([]string, error)
}

// AuctionTx defines auction access inside a transaction
type AuctionTx interface {
	GetAuctionForUpdate(ctx context.Context, auctionID string) (*domain.Auction, error)
	InsertAuction(ctx context.Context, auction *domain.Auction) error
	UpdateAuction(ctx context.Context, auction *domain.Auction) error
}
