// Package pricing turns catalog base prices into buy and sell quotes.
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/osse101/BrandishEconomy/internal/domain"
	"github.com/osse101/BrandishEconomy/internal/item"
	"github.com/osse101/BrandishEconomy/internal/utils"
)

// Direction selects which side of a trade is being priced
type Direction string

const (
	DirectionBuy  Direction = "buy"
	DirectionSell Direction = "sell"
)

var rarityMultipliers = map[domain.Rarity]decimal.Decimal{
	domain.RarityCommon:    decimal.NewFromInt(1),
	domain.RarityUncommon:  decimal.RequireFromString("1.5"),
	domain.RarityRare:      decimal.RequireFromString("2.5"),
	domain.RarityEpic:      decimal.NewFromInt(4),
	domain.RarityLegendary: decimal.NewFromInt(7),
	domain.RarityMythical:  decimal.NewFromInt(12),
}

var (
	sellRatio = decimal.RequireFromString(SellRatio)
	buySpread = decimal.RequireFromString(BuySpread)
	two       = decimal.NewFromInt(2)
)

// RarityMultiplier returns the price multiplier of a rarity; unknown rarities price as common
func RarityMultiplier(r domain.Rarity) decimal.Decimal {
	if m, ok := rarityMultipliers[r]; ok {
		return m
	}
	return decimal.NewFromInt(1)
}

// Quote is a priced catalog entry
type Quote struct {
	ItemID    string        `json:"item_id"`
	Name      string        `json:"name"`
	Rarity    domain.Rarity `json:"rarity"`
	BuyPrice  int64         `json:"buy_price"`
	SellPrice int64         `json:"sell_price"`
	TokenCost int           `json:"token_cost,omitempty"`
	ShopStock int           `json:"shop_stock"`
}

// Engine prices catalog items
type Engine interface {
	GetItemPrice(itemID string, direction Direction) (int64, error)
	BuyPrice(def *domain.ItemDefinition) int64
	SellPrice(def *domain.ItemDefinition) int64
	ShopQuotes() []Quote
}

type engine struct {
	catalog item.Catalog
	rnd     func() float64
}

// NewEngine creates a pricing engine over the catalog
func NewEngine(catalog item.Catalog) Engine {
	return &engine{
		catalog: catalog,
		rnd:     utils.RandomFloat,
	}
}

// GetItemPrice returns the current price of itemID in the given direction
func (e *engine) GetItemPrice(itemID string, direction Direction) (int64, error) {
	def, err := e.catalog.Get(itemID)
	if err != nil {
		return 0, err
	}

	switch direction {
	case DirectionBuy:
		return e.BuyPrice(def), nil
	case DirectionSell:
		return e.SellPrice(def), nil
	}
	return 0, fmt.Errorf("%w: %s %q", domain.ErrInvalidInput, ErrMsgUnknownDirection, direction)
}

// BuyPrice is base × rarity × a uniform factor in [0.8, 1.2), floored at zero
func (e *engine) BuyPrice(def *domain.ItemDefinition) int64 {
	// factor = 1 - spread + 2·spread·r
	factor := decimal.NewFromInt(1).Sub(buySpread).Add(two.Mul(buySpread).Mul(decimal.NewFromFloat(e.rnd())))
	return floorNonNegative(adjustedBase(def).Mul(factor))
}

// SellPrice is base × rarity × 0.7, deterministic
func (e *engine) SellPrice(def *domain.ItemDefinition) int64 {
	return floorNonNegative(adjustedBase(def).Mul(sellRatio))
}

// ShopQuotes prices every item the shop carries
func (e *engine) ShopQuotes() []Quote {
	var quotes []Quote
	for _, def := range e.catalog.All() {
		if !def.InShop() {
			continue
		}
		quotes = append(quotes, Quote{
			ItemID:    def.ItemID,
			Name:      def.Name,
			Rarity:    def.Rarity,
			BuyPrice:  e.BuyPrice(&def),
			SellPrice: e.SellPrice(&def),
			TokenCost: def.TokenCost,
			ShopStock: def.ShopStock,
		})
	}
	return quotes
}

func adjustedBase(def *domain.ItemDefinition) decimal.Decimal {
	return decimal.NewFromInt(def.BasePrice).Mul(RarityMultiplier(def.Rarity))
}

func floorNonNegative(d decimal.Decimal) int64 {
	if d.IsNegative() {
		return 0
	}
	return d.Floor().IntPart()
}
