package domain

import "time"

// Account defaults
const (
	DefaultWallet    int64 = 1000
	DefaultBankLimit int64 = 10000

	// MaxTransactionLog is the number of ledger entries kept per account
	MaxTransactionLog = 100
)

// Stat defaults
const (
	DefaultMaxVital   int64   = 100
	DefaultBaseStat   float64 = 10
	DefaultCritChance float64 = 5
	DefaultDodge      float64 = 5
)

// Transaction limits
const (
	MaxTransactionQuantity = 10000
)

// Effect defaults
const (
	DefaultTemporaryDuration = 300 * time.Second
	DefaultDOTDuration       = 30 * time.Second
	DefaultStatusDuration    = 60 * time.Second
	DefaultDefensiveDuration = 120 * time.Second
	DefaultTransformDuration = 600 * time.Second
	DOTTickInterval          = 5 * time.Second
	DefaultEffectChance      = 100.0
)

// Auction limits
const (
	MaxAuctionListing       = 50
	AuctionEndingWindow     = time.Hour
	MinAuctionDurationHours = 1
	MaxAuctionDurationHours = 168
)

// Secondary currency used by tiered purchases
const (
	ItemToken = "token"
)

// Transaction reasons written into the ledger log
const (
	ReasonPurchase     = "shop purchase"
	ReasonSale         = "item sale"
	ReasonBidEscrow    = "auction bid escrow"
	ReasonBidRefund    = "auction bid refund"
	ReasonAuctionSale  = "auction sale proceeds"
	ReasonItemEffect   = "item effect"
	ReasonCompensation = "compensating refund"
	ReasonTransfer     = "transfer"
)
