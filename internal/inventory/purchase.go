package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/BrandishEconomy/internal/concurrency"
	"github.com/osse101/BrandishEconomy/internal/domain"
	"github.com/osse101/BrandishEconomy/internal/event"
	"github.com/osse101/BrandishEconomy/internal/ledger"
	"github.com/osse101/BrandishEconomy/internal/logger"
	"github.com/osse101/BrandishEconomy/internal/repository"
)

// PurchaseItem buys quantity of an item from the shop at the current buy
// price. Items with a token cost also consume tokens; see purchaseTiered.
func (s *service) PurchaseItem(ctx context.Context, userID, itemID string, quantity int) (*PurchaseResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgPurchaseItemCalled, "userID", userID, "itemID", itemID, "quantity", quantity)

	if err := validateUser(userID); err != nil {
		return nil, err
	}
	if err := validateQuantity(quantity); err != nil {
		return nil, err
	}

	def, err := s.catalog.FindByName(itemID)
	if err != nil {
		return nil, err
	}
	if !def.InShop() {
		return nil, fmt.Errorf(ErrFmtNotBuyable, def.ItemID, domain.ErrNotBuyable)
	}
	if def.ShopStock > 0 && quantity > def.ShopStock {
		return nil, fmt.Errorf(ErrFmtOutOfStock, domain.ErrOutOfStock, def.ShopStock, def.ItemID)
	}

	unitPrice := s.prices.BuyPrice(def)
	cost := unitPrice * int64(quantity)
	entry := NewEntry(def, quantity, unitPrice, s.prices.SellPrice(def))

	var result *PurchaseResult
	if def.TokenCost > 0 {
		result, err = s.purchaseTiered(ctx, userID, entry, cost, def.TokenCost*quantity)
	} else {
		result, err = s.purchaseWithCoins(ctx, userID, entry, cost)
	}
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgItemPurchased, "userID", userID, "itemID", def.ItemID, "quantity", quantity, "cost", cost, "tokens", result.TokensSpent)
	s.publish(ctx, event.ItemPurchased, domain.ItemEventPayload{
		UserID:   userID,
		ItemID:   def.ItemID,
		Quantity: quantity,
		Amount:   cost,
	})
	return result, nil
}

func (s *service) purchaseWithCoins(ctx context.Context, userID string, entry domain.InventoryEntry, cost int64) (*PurchaseResult, error) {
	result := &PurchaseResult{
		Success:  true,
		Message:  fmt.Sprintf(MsgPurchased, entry.Quantity, entry.Name, cost),
		Cost:     cost,
		Quantity: entry.Quantity,
	}

	err := s.withAccount(ctx, userID, func(tx repository.EconomyTx) error {
		acct, err := tx.GetAccountForUpdate(ctx, userID)
		if err != nil {
			return err
		}

		if err := ledger.Debit(acct, cost, domain.LocationWallet, domain.ReasonPurchase, s.now()); err != nil {
			return err
		}
		AddStack(acct, entry)
		result.NewBalance = acct.Wallet
		return s.save(ctx, tx, acct)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// purchaseTiered runs a coin step and a token step as separate units of
// work. A failed token step refunds the coin step; a failed refund is
// logged with the amount lost and reported as domain.ErrCompensationFailed.
// The account lock is held across all steps.
func (s *service) purchaseTiered(ctx context.Context, userID string, entry domain.InventoryEntry, cost int64, tokens int) (*PurchaseResult, error) {
	log := logger.FromContext(ctx)

	unlock, err := s.locker.Lock(ctx, concurrency.AccountKey(userID))
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLockFailed, err)
	}
	defer unlock()

	result := &PurchaseResult{
		Success:     true,
		Message:     fmt.Sprintf(MsgPurchasedTiered, entry.Quantity, entry.Name, cost, tokens),
		Cost:        cost,
		TokensSpent: tokens,
		Quantity:    entry.Quantity,
	}

	// Coin step. Both balances are checked here so a rejection leaves no trace.
	err = repository.WithTx(ctx, s.store, func(tx repository.EconomyTx) error {
		acct, err := tx.GetAccountForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if held := acct.HeldQuantity(domain.ItemToken); held < tokens {
			return fmt.Errorf(ErrFmtInsufficientTokens, domain.ErrInsufficientQuantity, tokens, domain.ItemToken, held)
		}
		if err := ledger.Debit(acct, cost, domain.LocationWallet, domain.ReasonPurchase, s.now()); err != nil {
			return err
		}
		return s.save(ctx, tx, acct)
	})
	if err != nil {
		return nil, err
	}

	// Token step
	tokenErr := repository.WithTx(ctx, s.store, func(tx repository.EconomyTx) error {
		acct, err := tx.GetAccountForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if _, err := RemoveStack(acct, domain.ItemToken, tokens); err != nil {
			return err
		}
		AddStack(acct, entry)
		result.NewBalance = acct.Wallet
		return s.save(ctx, tx, acct)
	})
	if tokenErr == nil {
		return result, nil
	}

	log.Warn(LogMsgTokenStepFailed, "userID", userID, "itemID", entry.ItemID, "coins", cost, "error", tokenErr)
	if err := s.refund(ctx, userID, cost); err != nil {
		log.Error(LogMsgCompensationFailed, "userID", userID, "itemID", entry.ItemID, "lostCoins", cost, "tokenError", tokenErr, "error", err)
		return nil, errors.Join(fmt.Errorf(ErrFmtCompensationFailed, domain.ErrCompensationFailed, cost, userID, err), tokenErr)
	}
	log.Info(LogMsgCompensationApplied, "userID", userID, "coins", cost)
	return nil, tokenErr
}

func (s *service) refund(ctx context.Context, userID string, amount int64) error {
	return repository.WithTx(ctx, s.store, func(tx repository.EconomyTx) error {
		acct, err := tx.GetAccountForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if _, err := ledger.Credit(acct, amount, domain.LocationWallet, domain.ReasonCompensation, s.now()); err != nil {
			return err
		}
		return s.save(ctx, tx, acct)
	})
}
