package auction

// Reaper batch size
const (
	SettleBatchSize = 100
)

// Log messages
const (
	LogMsgCreateAuctionCalled  = "CreateAuction called"
	LogMsgPlaceBidCalled       = "PlaceBid called"
	LogMsgGetAuctionsCalled    = "GetAuctions called"
	LogMsgCancelAuctionCalled  = "CancelAuction called"
	LogMsgSettleCalled         = "Settle called"
	LogMsgAuctionCreated       = "Auction created"
	LogMsgBidAccepted          = "Bid accepted"
	LogMsgAuctionSettled       = "Auction settled"
	LogMsgAuctionCancelled     = "Auction cancelled"
	LogMsgAlreadySettled       = "Auction already settled"
	LogMsgSettleFailed         = "Failed to settle auction"
	LogMsgReaperFinished       = "Auction reaper finished"
	LogMsgItemMissingInCatalog = "Auctioned item no longer in catalog, returning snapshot"
	LogMsgPublishFailed        = "Failed to publish event"
)

// Error messages
const (
	ErrMsgLockFailed          = "failed to lock %s: %w"
	ErrMsgUpdateAccountFailed = "failed to update account: %w"
	ErrMsgUpdateAuctionFailed = "failed to update auction: %w"
	ErrMsgInsertAuctionFailed = "failed to insert auction: %w"
	ErrMsgListDueFailed       = "failed to list due auctions: %w"
)

// Error format strings
const (
	ErrFmtEmptyUserID       = "%w: user id is required"
	ErrFmtInvalidAuctionID  = "%w: auction id %q is not a uuid"
	ErrFmtInvalidQuantity   = "%w: quantity must be between 1 and %d, got %d"
	ErrFmtInvalidStartBid   = "%w: starting bid must be positive, got %d"
	ErrFmtInvalidDuration   = "%w: duration must be between %d and %d hours, got %d"
	ErrFmtInvalidBid        = "%w: bid must be positive, got %d"
	ErrFmtInvalidFilter     = "%w: unknown filter %q"
	ErrFmtFilterNeedsUser   = "%w: filter %q needs a user id"
	ErrFmtNotInInventory    = "%w: %q"
	ErrFmtNotTradeable      = "%w: %s"
	ErrFmtBidTooLow         = "%w: current bid is %d, got %d"
	ErrFmtInsufficientFunds = "%w: wallet holds %d, bid is %d"
	ErrFmtNotActive         = "%w: status is %s"
	ErrFmtEnded             = "%w: ended at %s"
	ErrFmtNotEnded          = "%w: ends at %s"
)
