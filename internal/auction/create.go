package auction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/BrandishEconomy/internal/concurrency"
	"github.com/osse101/BrandishEconomy/internal/domain"
	"github.com/osse101/BrandishEconomy/internal/event"
	"github.com/osse101/BrandishEconomy/internal/inventory"
	"github.com/osse101/BrandishEconomy/internal/item"
	"github.com/osse101/BrandishEconomy/internal/logger"
	"github.com/osse101/BrandishEconomy/internal/repository"
)

// CreateAuction lists quantity of the seller's stack matching itemQuery.
// The items leave the seller's inventory in the same transaction that
// stores the auction.
func (s *service) CreateAuction(ctx context.Context, sellerID, itemQuery string, quantity int, startingBid int64, durationHours int) (*CreateResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgCreateAuctionCalled, "sellerID", sellerID, "item", itemQuery, "quantity", quantity,
		"startingBid", startingBid, "durationHours", durationHours)

	if err := validateCreate(sellerID, quantity, startingBid, durationHours); err != nil {
		return nil, err
	}

	unlock, err := s.locker.Lock(ctx, concurrency.AccountKey(sellerID))
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLockFailed, "account", err)
	}
	defer unlock()

	now := s.now()
	a := &domain.Auction{
		AuctionID:     uuid.NewString(),
		SellerID:      sellerID,
		Quantity:      quantity,
		StartingPrice: startingBid,
		CurrentBid:    startingBid,
		BidHistory:    []domain.Bid{},
		StartTime:     now,
		EndTime:       now.Add(time.Duration(durationHours) * time.Hour),
		Status:        domain.AuctionActive,
	}

	err = repository.WithTx(ctx, s.store, func(tx repository.EconomyTx) error {
		seller, err := tx.GetAccountForUpdate(ctx, sellerID)
		if err != nil {
			return err
		}

		idx := item.MatchEntry(seller.Inventory, itemQuery)
		if idx < 0 {
			return fmt.Errorf(ErrFmtNotInInventory, domain.ErrNotInInventory, itemQuery)
		}
		stack := seller.Inventory[idx]
		if !tradeable(s.catalog, stack) {
			return fmt.Errorf(ErrFmtNotTradeable, domain.ErrNotTradeable, stack.Name)
		}

		if _, err := inventory.RemoveStack(seller, stack.ItemID, quantity); err != nil {
			return err
		}
		seller.UpdatedAt = now

		a.ItemID = stack.ItemID
		a.ItemName = stack.Name
		if err := tx.InsertAuction(ctx, a); err != nil {
			return fmt.Errorf(ErrMsgInsertAuctionFailed, err)
		}
		return s.save(ctx, tx, seller)
	})
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgAuctionCreated, "auctionID", a.AuctionID, "itemID", a.ItemID, "endsAt", a.EndTime)
	s.publish(ctx, event.AuctionCreated, a, domain.AuctionEventPayload{Amount: startingBid})

	return &CreateResult{Success: true, AuctionID: a.AuctionID, EndsAt: a.EndTime}, nil
}

// CancelAuction withdraws an open auction that has no bids and returns the
// items to the seller
func (s *service) CancelAuction(ctx context.Context, sellerID, auctionID string) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgCancelAuctionCalled, "sellerID", sellerID, "auctionID", auctionID)

	if err := validateUser(sellerID); err != nil {
		return err
	}
	if err := validateAuctionID(auctionID); err != nil {
		return err
	}

	var cancelled *domain.Auction
	err := s.withAuction(ctx, auctionID, func(a *domain.Auction) []string {
		return []string{a.SellerID}
	}, func(tx repository.EconomyTx, a *domain.Auction) error {
		now := s.now()
		switch {
		case a.SellerID != sellerID:
			return domain.ErrNotSeller
		case a.Status != domain.AuctionActive:
			return fmt.Errorf(ErrFmtNotActive, domain.ErrAuctionNotActive, a.Status)
		case a.Ended(now):
			return fmt.Errorf(ErrFmtEnded, domain.ErrAuctionEnded, a.EndTime.Format(time.RFC3339))
		case a.HasBids():
			return domain.ErrAuctionHasBids
		}

		seller, err := tx.GetAccountForUpdate(ctx, a.SellerID)
		if err != nil {
			return err
		}
		inventory.AddStack(seller, s.returnedStack(ctx, a))
		seller.UpdatedAt = now

		a.Status = domain.AuctionCancelled
		a.SettledAt = &now
		if err := tx.UpdateAuction(ctx, a); err != nil {
			return fmt.Errorf(ErrMsgUpdateAuctionFailed, err)
		}
		cancelled = a
		return s.save(ctx, tx, seller)
	})
	if err != nil {
		return err
	}

	log.Info(LogMsgAuctionCancelled, "auctionID", auctionID)
	s.publish(ctx, event.AuctionCancelled, cancelled, domain.AuctionEventPayload{})
	return nil
}

// tradeable prefers the catalog's current flag over the stack snapshot
func tradeable(catalog item.Catalog, stack domain.InventoryEntry) bool {
	if def, err := catalog.Get(stack.ItemID); err == nil {
		return def.Tradeable
	}
	return stack.Tradeable
}

func validateCreate(sellerID string, quantity int, startingBid int64, durationHours int) error {
	if err := validateUser(sellerID); err != nil {
		return err
	}
	if quantity <= 0 || quantity > domain.MaxTransactionQuantity {
		return fmt.Errorf(ErrFmtInvalidQuantity, domain.ErrInvalidInput, domain.MaxTransactionQuantity, quantity)
	}
	if startingBid <= 0 {
		return fmt.Errorf(ErrFmtInvalidStartBid, domain.ErrInvalidInput, startingBid)
	}
	if durationHours < domain.MinAuctionDurationHours || durationHours > domain.MaxAuctionDurationHours {
		return fmt.Errorf(ErrFmtInvalidDuration, domain.ErrInvalidInput,
			domain.MinAuctionDurationHours, domain.MaxAuctionDurationHours, durationHours)
	}
	return nil
}
