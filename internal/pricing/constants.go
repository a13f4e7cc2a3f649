package pricing

// Price adjustments
const (
	// SellRatio is the share of the rarity-adjusted base price paid on sale
	SellRatio = "0.7"
	// BuySpread is the maximum random deviation of a buy price either way
	BuySpread = "0.2"
)

// Error messages
const (
	ErrMsgUnknownDirection = "unknown price direction"
)
