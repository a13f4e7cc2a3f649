package ledger

// Leaderboard limits
const (
	DefaultLeaderboardSize = 10
	MaxLeaderboardSize     = 100
)

// Log messages
const (
	LogMsgGetUserCalled         = "GetUser called"
	LogMsgAddMoneyCalled        = "AddMoney called"
	LogMsgRemoveMoneyCalled     = "RemoveMoney called"
	LogMsgTransferMoneyCalled   = "TransferMoney called"
	LogMsgLeaderboardCalled     = "Leaderboard called"
	LogMsgGetTransactionsCalled = "GetTransactions called"
	LogMsgBankSpillover         = "Bank credit exceeded limit, remainder paid to wallet"
)

// Error messages
const (
	ErrMsgGetAccountFailed    = "failed to get account: %w"
	ErrMsgUpdateAccountFailed = "failed to update account: %w"
	ErrMsgLockFailed          = "failed to lock account: %w"
)

// Error format strings for validation
const (
	ErrFmtInvalidAmount   = "%w: amount must be positive, got %d"
	ErrFmtInvalidLocation = "%w: unknown money location %q"
	ErrFmtSameLocation    = "%w: transfer source and destination are both %s"
	ErrFmtEmptyUserID     = "%w: user id is required"
	ErrFmtInsufficient    = "%w: %s holds %d, need %d"
	ErrFmtBalanceOverflow = "%w: crediting %d to %s would overflow the balance"
)
