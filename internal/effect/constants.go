package effect

// Stat change keys for values that are not stat effect types
const (
	StatHealth     = "health"
	StatSanity     = "sanity"
	StatEnergy     = "energy"
	StatExperience = "experience"
	StatWallet     = "wallet"
)

// Sub-result reasons
const (
	ReasonTriggerMismatch = "trigger not matched"
	ReasonChanceFailed    = "chance roll failed"
	ReasonUnknownType     = "unknown effect type"
	ReasonDivideByZero    = "division by zero"
)

// Log messages
const (
	LogMsgApplyItemEffectsCalled = "ApplyItemEffects called"
	LogMsgUseItemCalled          = "UseItem called"
	LogMsgGetActiveEffectsCalled = "GetActiveEffects called"
	LogMsgGetEffectiveStats      = "GetEffectiveStats called"
	LogMsgEffectFailed           = "Effect could not be applied"
	LogMsgEffectsSettled         = "Settled timed effects"
	LogMsgPublishFailed          = "Failed to publish event"
)

// Error messages
const (
	ErrMsgLockFailed          = "failed to lock account: %w"
	ErrMsgUpdateAccountFailed = "failed to update account: %w"
)

// Error format strings
const (
	ErrFmtInvalidTrigger = "%w: unknown trigger %q"
	ErrFmtEmptyUserID    = "%w: user id is required"
	ErrFmtNotInInventory = "%w: %q"
	ErrFmtNotUsable      = "%w: %s"
)
