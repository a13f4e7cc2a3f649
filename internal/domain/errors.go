package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Account errors
	ErrMsgUserNotFound = "user not found"

	// Item errors
	ErrMsgItemNotFound = "item not found"

	// Inventory errors
	ErrMsgInsufficientQuantity = "insufficient quantity"
	ErrMsgNotInInventory       = "item not in inventory"
	ErrMsgOutOfStock           = "not enough shop stock"

	// Economy errors
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgNotSellable       = "item is not sellable"
	ErrMsgNotBuyable        = "is not buyable"
	ErrMsgNotTradeable      = "item is not tradeable"

	// Auction errors
	ErrMsgAuctionNotFound  = "auction not found"
	ErrMsgAuctionNotActive = "auction is not active"
	ErrMsgAuctionEnded     = "auction has ended"
	ErrMsgBidTooLow        = "bid must exceed the current bid"
	ErrMsgSelfBid          = "sellers cannot bid on their own auction"
	ErrMsgAuctionHasBids   = "auction already has bids"
	ErrMsgAuctionNotEnded  = "auction has not ended yet"
	ErrMsgNotSeller        = "only the seller can do that"

	// Effect errors
	ErrMsgUnknownEffect = "unknown effect type"
	ErrMsgNotUsable     = "item has no use effects"

	// Session errors
	ErrMsgSessionNotFound = "session not found or expired"

	// Database/System errors
	ErrMsgPersistence        = "persistence error"
	ErrMsgCompensationFailed = "compensation failed"
	ErrMsgTxClosed           = "tx is closed"
	ErrMsgLockNotAcquired    = "lock not acquired"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrUserNotFound = errors.New(ErrMsgUserNotFound)

	ErrItemNotFound = errors.New(ErrMsgItemNotFound)

	ErrInsufficientQuantity = errors.New(ErrMsgInsufficientQuantity)
	ErrNotInInventory       = errors.New(ErrMsgNotInInventory)
	ErrOutOfStock           = errors.New(ErrMsgOutOfStock)

	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrNotSellable       = errors.New(ErrMsgNotSellable)
	ErrNotBuyable        = errors.New(ErrMsgNotBuyable)
	ErrNotTradeable      = errors.New(ErrMsgNotTradeable)

	ErrAuctionNotFound  = errors.New(ErrMsgAuctionNotFound)
	ErrAuctionNotActive = errors.New(ErrMsgAuctionNotActive)
	ErrAuctionEnded     = errors.New(ErrMsgAuctionEnded)
	ErrBidTooLow        = errors.New(ErrMsgBidTooLow)
	ErrSelfBid          = errors.New(ErrMsgSelfBid)
	ErrAuctionHasBids   = errors.New(ErrMsgAuctionHasBids)
	ErrAuctionNotEnded  = errors.New(ErrMsgAuctionNotEnded)
	ErrNotSeller        = errors.New(ErrMsgNotSeller)

	ErrUnknownEffect = errors.New(ErrMsgUnknownEffect)
	ErrNotUsable     = errors.New(ErrMsgNotUsable)

	ErrSessionNotFound = errors.New(ErrMsgSessionNotFound)

	// ErrPersistence wraps storage failures. Callers re-issue; nothing retries.
	ErrPersistence        = errors.New(ErrMsgPersistence)
	ErrCompensationFailed = errors.New(ErrMsgCompensationFailed)
	ErrLockNotAcquired    = errors.New(ErrMsgLockNotAcquired)
	// ErrTxClosed is returned by Commit or Rollback on a finished unit of work
	ErrTxClosed = errors.New(ErrMsgTxClosed)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
