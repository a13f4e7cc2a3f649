package item

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/osse101/BrandishEconomy/internal/domain"
	"github.com/osse101/BrandishEconomy/internal/validation"
)

//go:embed items.schema.json
var itemsSchema []byte

// Sentinel errors for item loader
var (
	ErrDuplicateItemID = errors.New("duplicate item id")

	ErrInvalidConfig = errors.New("invalid configuration")
)

// Config represents the JSON configuration for items
type Config struct {
	Version     string `json:"version"`
	Description string `json:"description"`

	Items []domain.ItemDefinition `json:"items"`
}

// Loader handles loading and validating item configuration
type Loader interface {
	Load(path string) (*Config, error)
	Parse(data []byte, source string) (*Config, error)
	Validate(config *Config) error
}

type itemLoader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a new Loader instance
func NewLoader() (Loader, error) {
	v := validation.NewSchemaValidator()
	if err := v.RegisterSchema(SchemaName, itemsSchema); err != nil {
		return nil, fmt.Errorf(ErrMsgRegisterSchemaFailed, err)
	}
	return &itemLoader{schemaValidator: v}, nil
}

// Load reads, schema-checks and parses an items JSON file
func (l *itemLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}
	return l.Parse(data, path)
}

// Parse schema-checks and decodes catalog JSON; source names it in errors
func (l *itemLoader) Parse(data []byte, source string) (*Config, error) {
	if err := l.schemaValidator.ValidateBytes(data, SchemaName); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaFailed, source, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}

	return &config, nil
}

// Validate checks cross-item rules the schema cannot express
func (l *itemLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}

	if len(config.Items) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoItemsDefined)
	}

	ids := make(map[string]bool, len(config.Items))
	names := make(map[string]string, len(config.Items))
	for i := range config.Items {
		def := &config.Items[i]

		if err := validateItemDef(i, def, ids); err != nil {
			return err
		}

		folded := Fold(def.Name)
		if other, ok := names[folded]; ok {
			return fmt.Errorf(ErrFmtDuplicateName, ErrInvalidConfig, other, def.ItemID, def.Name)
		}
		names[folded] = def.ItemID
	}

	for i := range config.Items {
		def := &config.Items[i]
		if def.TokenCost > 0 && !ids[domain.ItemToken] {
			return fmt.Errorf(ErrFmtItemMissingToken, ErrInvalidConfig, def.ItemID, domain.ItemToken)
		}
	}

	return nil
}

func validateItemDef(index int, def *domain.ItemDefinition, ids map[string]bool) error {
	if def.ItemID == "" {
		return fmt.Errorf(ErrFmtItemAtIndexEmpty, ErrInvalidConfig, index)
	}

	if ids[def.ItemID] {
		return fmt.Errorf("%w: '%s'", ErrDuplicateItemID, def.ItemID)
	}
	ids[def.ItemID] = true

	if def.Name == "" {
		return fmt.Errorf(ErrFmtItemHasEmptyName, ErrInvalidConfig, def.ItemID)
	}
	if def.BasePrice < 0 {
		return fmt.Errorf(ErrFmtItemNegativePrice, ErrInvalidConfig, def.ItemID)
	}
	if !def.Rarity.Valid() {
		return fmt.Errorf(ErrFmtItemUnknownRarity, ErrInvalidConfig, def.ItemID, def.Rarity)
	}
	if def.TokenCost < 0 {
		return fmt.Errorf(ErrFmtItemNegativeTokens, ErrInvalidConfig, def.ItemID)
	}

	for j, eff := range def.Effects {
		if eff.Chance != nil && (*eff.Chance < 0 || *eff.Chance > 100) {
			return fmt.Errorf(ErrFmtEffectBadChance, ErrInvalidConfig, def.ItemID, j)
		}
		if eff.Duration < 0 {
			return fmt.Errorf(ErrFmtEffectBadDuration, ErrInvalidConfig, def.ItemID, j)
		}
	}

	return nil
}
