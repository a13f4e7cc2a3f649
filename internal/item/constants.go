package item

// Item configuration names
const (
	// SchemaName is the name the embedded catalog schema is registered under
	SchemaName = "items.schema.json"
)

// File operation error messages
const (
	ErrMsgReadConfigFileFailed = "failed to read items config file: %w"
	ErrMsgParseConfigFailed    = "failed to parse items config: %w"
	ErrMsgSchemaFailed         = "schema validation failed for %s: %w"
	ErrMsgRegisterSchemaFailed = "failed to register items schema: %w"
)

// Validation error messages (fragments used with error wrapping)
const (
	ErrMsgConfigNil      = "config is nil"
	ErrMsgNoItemsDefined = "no items defined"
)

// Format strings for detailed validation errors
const (
	ErrFmtItemAtIndexEmpty   = "%w: item at index %d has empty item_id"
	ErrFmtItemHasEmptyName   = "%w: item '%s' has empty name"
	ErrFmtItemNegativePrice  = "%w: item '%s' has negative base_price"
	ErrFmtItemUnknownRarity  = "%w: item '%s' has unknown rarity '%s'"
	ErrFmtItemNegativeTokens = "%w: item '%s' has negative token_cost"
	ErrFmtItemMissingToken   = "%w: item '%s' has a token_cost but the catalog has no '%s' item"
	ErrFmtEffectBadChance    = "%w: item '%s' effect %d has chance outside [0,100]"
	ErrFmtEffectBadDuration  = "%w: item '%s' effect %d has negative duration"
	ErrFmtDuplicateName      = "%w: '%s' and '%s' share the name '%s'"
)

// Log messages
const (
	LogMsgCatalogLoaded    = "Item catalog loaded"
	LogMsgCatalogUnchanged = "Items config file unchanged, skipping reload"
	LogMsgUnknownEffect    = "Catalog item declares an unrecognised effect type"
)
