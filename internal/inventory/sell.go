package inventory

import (
	"context"
	"fmt"

	"github.com/osse101/BrandishEconomy/internal/domain"
	"github.com/osse101/BrandishEconomy/internal/event"
	"github.com/osse101/BrandishEconomy/internal/item"
	"github.com/osse101/BrandishEconomy/internal/ledger"
	"github.com/osse101/BrandishEconomy/internal/logger"
	"github.com/osse101/BrandishEconomy/internal/repository"
	"github.com/osse101/BrandishEconomy/internal/session"
)

// SellItem sells quantity of the stack whose name matches itemQuery at the
// current sell price
func (s *service) SellItem(ctx context.Context, userID, itemQuery string, quantity int) (*SellResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgSellItemCalled, "userID", userID, "item", itemQuery, "quantity", quantity)

	if err := validateUser(userID); err != nil {
		return nil, err
	}
	if err := validateQuantity(quantity); err != nil {
		return nil, err
	}

	return s.sell(ctx, userID, quantity, func(acct *domain.Account) (int, int64, error) {
		idx, err := s.sellableStack(acct, itemQuery, quantity)
		if err != nil {
			return -1, 0, err
		}
		return idx, s.unitSellPrice(acct.Inventory[idx]), nil
	})
}

// QuoteSell prices a sale without executing it. The quote holds its unit
// price until it expires or ConfirmSell consumes it.
func (s *service) QuoteSell(ctx context.Context, userID, itemQuery string, quantity int) (*session.SellConfirmation, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgQuoteSellCalled, "userID", userID, "item", itemQuery, "quantity", quantity)

	if err := validateUser(userID); err != nil {
		return nil, err
	}
	if err := validateQuantity(quantity); err != nil {
		return nil, err
	}

	acct, err := s.store.GetAccount(ctx, userID)
	if err != nil {
		return nil, err
	}
	idx, err := s.sellableStack(acct, itemQuery, quantity)
	if err != nil {
		return nil, err
	}

	stack := acct.Inventory[idx]
	unit := s.unitSellPrice(stack)
	c := s.confirmations.Put(session.SellConfirmation{
		UserID:    userID,
		ItemID:    stack.ItemID,
		ItemName:  stack.Name,
		Quantity:  quantity,
		UnitPrice: unit,
		Total:     unit * int64(quantity),
	})
	return &c, nil
}

// ConfirmSell executes a quoted sale at the quoted price
func (s *service) ConfirmSell(ctx context.Context, userID, confirmationID string) (*SellResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgConfirmSellCalled, "userID", userID, "confirmationID", confirmationID)

	c, err := s.confirmations.Take(confirmationID, userID)
	if err != nil {
		return nil, err
	}

	return s.sell(ctx, userID, c.Quantity, func(acct *domain.Account) (int, int64, error) {
		idx, err := s.sellableStack(acct, c.ItemID, c.Quantity)
		if err != nil {
			return -1, 0, err
		}
		return idx, c.UnitPrice, nil
	})
}

// sell removes quantity from the stack chosen by pick and credits the
// wallet at the unit price pick returns, in one unit of work
func (s *service) sell(ctx context.Context, userID string, quantity int, pick func(acct *domain.Account) (int, int64, error)) (*SellResult, error) {
	log := logger.FromContext(ctx)
	result := &SellResult{Success: true}
	var name string

	err := s.withAccount(ctx, userID, func(tx repository.EconomyTx) error {
		acct, err := tx.GetAccountForUpdate(ctx, userID)
		if err != nil {
			return err
		}

		idx, unit, err := pick(acct)
		if err != nil {
			return err
		}
		stack := acct.Inventory[idx]
		name = stack.Name

		if _, err := RemoveStack(acct, stack.ItemID, quantity); err != nil {
			return err
		}
		earned := unit * int64(quantity)
		if earned > 0 {
			if _, err := ledger.Credit(acct, earned, domain.LocationWallet, domain.ReasonSale, s.now()); err != nil {
				return err
			}
		}

		result.ItemID = stack.ItemID
		result.Earned = earned
		result.NewBalance = acct.Wallet
		result.RemainingQuantity = acct.HeldQuantity(stack.ItemID)
		return s.save(ctx, tx, acct)
	})
	if err != nil {
		return nil, err
	}

	result.Message = fmt.Sprintf(MsgSold, quantity, name, result.Earned)
	log.Info(LogMsgItemSold, "userID", userID, "itemID", result.ItemID, "quantity", quantity, "earned", result.Earned)
	s.publish(ctx, event.ItemSold, domain.ItemEventPayload{
		UserID:   userID,
		ItemID:   result.ItemID,
		Quantity: quantity,
		Amount:   result.Earned,
	})
	return result, nil
}

// sellableStack resolves query against the account's stacks and checks the
// stack may be sold in the requested quantity
func (s *service) sellableStack(acct *domain.Account, query string, quantity int) (int, error) {
	idx := item.MatchEntry(acct.Inventory, query)
	if idx < 0 {
		return -1, fmt.Errorf(ErrFmtNotInInventory, domain.ErrNotInInventory, query)
	}

	stack := acct.Inventory[idx]
	if !stack.Sellable {
		return -1, fmt.Errorf(ErrFmtNotSellable, domain.ErrNotSellable, stack.Name)
	}
	if quantity > stack.Quantity {
		return -1, fmt.Errorf(ErrFmtInsufficientQuantity, domain.ErrInsufficientQuantity, stack.Quantity, stack.ItemID, quantity)
	}
	return idx, nil
}

// unitSellPrice is the catalog's current sell price, or the price captured
// on the stack when the item has left the catalog
func (s *service) unitSellPrice(stack domain.InventoryEntry) int64 {
	if def, err := s.catalog.Get(stack.ItemID); err == nil {
		return s.prices.SellPrice(def)
	}
	return stack.SellPrice
}
