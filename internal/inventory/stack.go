package inventory

import (
	"fmt"

	"github.com/osse101/BrandishEconomy/internal/domain"
)

// NewEntry snapshots def into a stack of quantity items
func NewEntry(def *domain.ItemDefinition, quantity int, purchasePrice, sellPrice int64) domain.InventoryEntry {
	return domain.InventoryEntry{
		ItemID:        def.ItemID,
		Name:          def.Name,
		Quantity:      quantity,
		Rarity:        def.Rarity,
		Sellable:      def.Sellable,
		Tradeable:     def.Tradeable,
		SellPrice:     sellPrice,
		PurchasePrice: purchasePrice,
	}
}

// AddStack merges entry into the account's stack for the same item, or
// appends it as a new stack. A merge refreshes the captured sell price.
func AddStack(acct *domain.Account, entry domain.InventoryEntry) {
	idx := acct.FindEntry(entry.ItemID)
	if idx < 0 {
		acct.Inventory = append(acct.Inventory, entry)
		return
	}

	stack := &acct.Inventory[idx]
	stack.Quantity += entry.Quantity
	stack.SellPrice = entry.SellPrice
	if entry.PurchasePrice > 0 {
		stack.PurchasePrice = entry.PurchasePrice
	}
}

// RemoveStack takes quantity of itemID out of the account, deleting the
// stack when it reaches zero. Nothing changes on error.
func RemoveStack(acct *domain.Account, itemID string, quantity int) (domain.InventoryEntry, error) {
	idx := acct.FindEntry(itemID)
	if idx < 0 {
		return domain.InventoryEntry{}, fmt.Errorf(ErrFmtNotInInventory, domain.ErrNotInInventory, itemID)
	}

	stack := acct.Inventory[idx]
	if quantity > stack.Quantity {
		return domain.InventoryEntry{}, fmt.Errorf(ErrFmtInsufficientQuantity, domain.ErrInsufficientQuantity, stack.Quantity, itemID, quantity)
	}

	removed := stack
	removed.Quantity = quantity
	if quantity == stack.Quantity {
		acct.Inventory = append(acct.Inventory[:idx], acct.Inventory[idx+1:]...)
	} else {
		acct.Inventory[idx].Quantity -= quantity
	}
	return removed, nil
}

func validateQuantity(quantity int) error {
	if quantity <= 0 || quantity > domain.MaxTransactionQuantity {
		return fmt.Errorf(ErrFmtInvalidQuantity, domain.ErrInvalidInput, domain.MaxTransactionQuantity, quantity)
	}
	return nil
}
