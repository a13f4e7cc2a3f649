package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidLimit      = "Invalid limit parameter"
	ErrMsgInvalidFilter     = "Invalid filter. Valid options: all, mine, bids, ending"
	ErrMsgInvalidTrigger    = "Invalid trigger. Valid options: use, equip, attack, defend"
	ErrMsgInvalidDirection  = "Invalid direction. Valid options: buy, sell"
)

// Success messages for API responses
const (
	MsgMoneyAddedSuccess       = "Money added successfully"
	MsgMoneyRemovedSuccess     = "Money removed successfully"
	MsgMoneyTransferredSuccess = "Money transferred successfully"
	MsgItemAddedSuccess        = "Item added successfully"
	MsgItemRemovedSuccess      = "Item removed successfully"
	MsgAuctionCancelledSuccess = "Auction cancelled"
)

// Log messages
const (
	LogMsgRequestFailed    = "Request failed"
	LogMsgEncodeFailed     = "Failed to encode JSON response"
	LogMsgWriteFailed      = "Failed to write response buffer"
	LogMsgReadinessFailed  = "Readiness check failed"
	LogMsgDecodeFailedFmt  = "Failed to decode %s request"
	LogMsgDecodedFmt       = "%s request decoded"
	LogMsgMissingParamFmt  = "Missing %s query parameter"
	LogMsgPricesRetrieved  = "Prices retrieved"
	LogMsgAuctionsListed   = "Auctions listed"
	LogMsgReaperTriggered  = "Reaper triggered over HTTP"
	LogMsgInventoryFetched = "Inventory retrieved"
)

// Health responses
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
	HealthMsgStoreFailed    = "storage backend unreachable"
)

// Query parameter names
const (
	ParamUserID    = "user_id"
	ParamLimit     = "limit"
	ParamFilter    = "filter"
	ParamItem      = "item"
	ParamDirection = "direction"
	ParamAuctionID = "auctionID"
)

// Listing defaults
const (
	DefaultLeaderboardLimit  = 10
	DefaultTransactionsLimit = 20
	MaxListLimit             = 100
)
