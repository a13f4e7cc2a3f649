package domain

// InventoryEntry is one stack of a single item definition.
// Quantity is always >= 1; a stack reaching zero is deleted.
type InventoryEntry struct {
	ItemID        string `json:"item_id"`
	Name          string `json:"name"`
	Quantity      int    `json:"quantity"`
	Rarity        Rarity `json:"rarity"`
	Sellable      bool   `json:"sellable"`
	Tradeable     bool   `json:"tradeable"`
	SellPrice     int64  `json:"sell_price"`
	PurchasePrice int64  `json:"purchase_price"`
}
