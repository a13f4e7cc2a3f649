package inventory

// Log messages
const (
	LogMsgAddItemCalled       = "AddItem called"
	LogMsgRemoveItemCalled    = "RemoveItem called"
	LogMsgPurchaseItemCalled  = "PurchaseItem called"
	LogMsgSellItemCalled      = "SellItem called"
	LogMsgQuoteSellCalled     = "QuoteSell called"
	LogMsgConfirmSellCalled   = "ConfirmSell called"
	LogMsgGetInventoryCalled  = "GetInventory called"
	LogMsgItemPurchased       = "Item purchased"
	LogMsgItemSold            = "Item sold"
	LogMsgTokenStepFailed     = "Token step of tiered purchase failed, refunding coins"
	LogMsgCompensationFailed  = "Compensating refund failed, coins lost"
	LogMsgCompensationApplied = "Compensating refund applied"
	LogMsgPublishFailed       = "Failed to publish event"
)

// Error messages
const (
	ErrMsgLockFailed          = "failed to lock account: %w"
	ErrMsgUpdateAccountFailed = "failed to update account: %w"
)

// Error format strings
const (
	ErrFmtInvalidQuantity      = "%w: quantity must be between 1 and %d, got %d"
	ErrFmtNegativePrice        = "%w: purchase price must not be negative, got %d"
	ErrFmtEmptyUserID          = "%w: user id is required"
	ErrFmtNotInInventory       = "%w: %q"
	ErrFmtInsufficientQuantity = "%w: holding %d of %s, need %d"
	ErrFmtNotBuyable           = "%q %w"
	ErrFmtOutOfStock           = "%w: shop sells at most %d of %s per purchase"
	ErrFmtNotSellable          = "%w: %s"
	ErrFmtInsufficientTokens   = "%w: tiered purchase needs %d %s, holding %d"
	ErrFmtCompensationFailed   = "%w: %d coins debited from %s were not refunded: %w"
)

// Result messages
const (
	MsgPurchased       = "Purchased %d× %s for %d coins"
	MsgPurchasedTiered = "Purchased %d× %s for %d coins and %d tokens"
	MsgSold            = "Sold %d× %s for %d coins"
)
