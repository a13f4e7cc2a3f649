package domain

import "time"

// Auction event types published on the event bus
const (
	EventAuctionCreated   = "auction.created"
	EventAuctionBidPlaced = "auction.bid_placed"
	EventAuctionOutbid    = "auction.outbid"
	EventAuctionCompleted = "auction.completed"
	EventAuctionExpired   = "auction.expired"
	EventAuctionCancelled = "auction.cancelled"
)

// Economy event types
const (
	EventItemPurchased = "economy.item_purchased"
	EventItemSold      = "economy.item_sold"
	EventItemUsed      = "economy.item_used"
)

// AuctionEventPayload is the payload of every auction.* event.
type AuctionEventPayload struct {
	AuctionID        string    `json:"auction_id"`
	SellerID         string    `json:"seller_id"`
	ItemID           string    `json:"item_id"`
	Quantity         int       `json:"quantity"`
	BidderID         string    `json:"bidder_id,omitempty"`
	Amount           int64     `json:"amount,omitempty"`
	PreviousBid      int64     `json:"previous_bid,omitempty"`
	PreviousBidderID string    `json:"previous_bidder_id,omitempty"`
	Timestamp        time.Time `json:"timestamp"`
}

// ItemEventPayload is the payload of economy.* item events.
type ItemEventPayload struct {
	UserID    string    `json:"user_id"`
	ItemID    string    `json:"item_id"`
	Quantity  int       `json:"quantity"`
	Amount    int64     `json:"amount"`
	Timestamp time.Time `json:"timestamp"`
}
