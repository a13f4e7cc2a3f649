package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction = "failed to begin transaction"
	ErrMsgFailedToCommit           = "failed to commit transaction"
)

// Error Messages - Accounts
const (
	ErrMsgFailedToGetAccount    = "failed to get account"
	ErrMsgFailedToInsertAccount = "failed to insert account"
	ErrMsgFailedToUpdateAccount = "failed to update account"
	ErrMsgFailedToListAccounts  = "failed to list accounts"
	ErrMsgFailedToEncodeAccount = "failed to encode account"
	ErrMsgFailedToDecodeAccount = "failed to decode account"
	ErrMsgAccountUpdateNoRows   = "account update affected no rows"
)

// Error Messages - Auctions
const (
	ErrMsgFailedToGetAuction    = "failed to get auction"
	ErrMsgFailedToInsertAuction = "failed to insert auction"
	ErrMsgFailedToUpdateAuction = "failed to update auction"
	ErrMsgFailedToListAuctions  = "failed to list auctions"
	ErrMsgFailedToEncodeBids    = "failed to encode bid history"
	ErrMsgFailedToDecodeBids    = "failed to decode bid history"
	ErrMsgAuctionUpdateNoRows   = "auction update affected no rows"
)
