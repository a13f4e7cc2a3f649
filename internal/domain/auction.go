package domain

import "time"

// AuctionStatus is the lifecycle state of an auction
type AuctionStatus string

const (
	AuctionActive    AuctionStatus = "active"
	AuctionCompleted AuctionStatus = "completed"
	AuctionCancelled AuctionStatus = "cancelled"
	AuctionExpired   AuctionStatus = "expired"
)

// AuctionFilter selects which auctions a listing returns
type AuctionFilter string

const (
	FilterAll    AuctionFilter = "all"
	FilterMine   AuctionFilter = "mine"
	FilterBids   AuctionFilter = "bids"
	FilterEnding AuctionFilter = "ending"
)

// Valid reports whether f is a known filter.
func (f AuctionFilter) Valid() bool {
	switch f {
	case FilterAll, FilterMine, FilterBids, FilterEnding:
		return true
	}
	return false
}

// Bid is one accepted bid in an auction's history.
type Bid struct {
	BidderID string    `json:"bidder_id"`
	Amount   int64     `json:"amount"`
	PlacedAt time.Time `json:"placed_at"`
}

// Auction is an escrow-backed listing. The item quantity is held by the
// auction from creation until settlement; CurrentBid is the money held in
// escrow once a bid exists.
type Auction struct {
	AuctionID       string        `json:"auction_id"`
	SellerID        string        `json:"seller_id"`
	ItemID          string        `json:"item_id"`
	ItemName        string        `json:"item_name"`
	Quantity        int           `json:"quantity"`
	StartingPrice   int64         `json:"starting_price"`
	CurrentBid      int64         `json:"current_bid"`
	HighestBidderID string        `json:"highest_bidder_id,omitempty"`
	BidHistory      []Bid         `json:"bid_history"`
	StartTime       time.Time     `json:"start_time"`
	EndTime         time.Time     `json:"end_time"`
	Status          AuctionStatus `json:"status"`
	SettledAt       *time.Time    `json:"settled_at,omitempty"`
}

// HasBids reports whether any bid was accepted.
func (a *Auction) HasBids() bool {
	return a.HighestBidderID != ""
}

// Ended reports whether bidding has closed at now.
func (a *Auction) Ended(now time.Time) bool {
	return now.After(a.EndTime)
}

// Clone returns a deep copy.
func (a *Auction) Clone() *Auction {
	if a == nil {
		return nil
	}
	c := *a
	c.BidHistory = append([]Bid{}, a.BidHistory...)
	if a.SettledAt != nil {
		t := *a.SettledAt
		c.SettledAt = &t
	}
	return &c
}
