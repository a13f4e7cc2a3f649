package domain

// Rarity is the catalog rarity tier of an item
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
	RarityMythical  Rarity = "mythical"
)

// ItemDefinition is a read-only catalog entry.
type ItemDefinition struct {
	ItemID      string             `json:"item_id"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	BasePrice   int64              `json:"base_price"`
	Rarity      Rarity             `json:"rarity"`
	Effects     []EffectDefinition `json:"effects,omitempty"`
	// ShopStock caps a single shop purchase; negative means unlimited and
	// zero means the shop does not sell the item.
	ShopStock int  `json:"shop_stock"`
	Sellable  bool `json:"sellable"`
	Tradeable bool `json:"tradeable"`
	// TokenCost is the secondary-currency price of a tiered purchase.
	TokenCost int `json:"token_cost,omitempty"`
}

// InShop reports whether the item can be bought at all.
func (d *ItemDefinition) InShop() bool {
	return d.ShopStock != 0
}

// Valid reports whether r is a known rarity tier.
func (r Rarity) Valid() bool {
	switch r {
	case RarityCommon, RarityUncommon, RarityRare, RarityEpic, RarityLegendary, RarityMythical:
		return true
	}
	return false
}
