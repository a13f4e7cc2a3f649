package auction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/BrandishEconomy/internal/domain"
	"github.com/osse101/BrandishEconomy/internal/event"
	"github.com/osse101/BrandishEconomy/internal/inventory"
	"github.com/osse101/BrandishEconomy/internal/ledger"
	"github.com/osse101/BrandishEconomy/internal/logger"
	"github.com/osse101/BrandishEconomy/internal/repository"
)

// Settle closes an auction whose end time has passed. With a bid the items
// go to the highest bidder and the escrow to the seller (completed);
// without one the items return to the seller (expired). Settling an auction
// that is no longer active changes nothing.
func (s *service) Settle(ctx context.Context, auctionID string) (*SettleResult, error) {
	ctx = logger.WithAttrs(ctx, "auctionID", auctionID)
	log := logger.FromContext(ctx)
	log.Info(LogMsgSettleCalled)

	if err := validateAuctionID(auctionID); err != nil {
		return nil, err
	}

	var (
		result  *SettleResult
		settled *domain.Auction
	)
	err := s.withAuction(ctx, auctionID, func(a *domain.Auction) []string {
		return []string{a.SellerID, a.HighestBidderID}
	}, func(tx repository.EconomyTx, a *domain.Auction) error {
		if a.Status != domain.AuctionActive {
			result = &SettleResult{AuctionID: a.AuctionID, Status: a.Status, WinnerID: a.HighestBidderID, AlreadySettled: true}
			if a.Status == domain.AuctionCompleted {
				result.Amount = a.CurrentBid
			}
			return nil
		}

		now := s.now()
		if !a.Ended(now) {
			return fmt.Errorf(ErrFmtNotEnded, domain.ErrAuctionNotEnded, a.EndTime.Format(time.RFC3339))
		}

		seller, err := tx.GetAccountForUpdate(ctx, a.SellerID)
		if err != nil {
			return err
		}
		seller.UpdatedAt = now
		stack := s.returnedStack(ctx, a)

		result = &SettleResult{AuctionID: a.AuctionID}
		if a.HasBids() {
			winner, err := tx.GetAccountForUpdate(ctx, a.HighestBidderID)
			if err != nil {
				return err
			}
			inventory.AddStack(winner, stack)
			winner.UpdatedAt = now
			if _, err := ledger.Credit(seller, a.CurrentBid, domain.LocationWallet, domain.ReasonAuctionSale, now); err != nil {
				return err
			}
			if err := s.save(ctx, tx, winner); err != nil {
				return err
			}

			a.Status = domain.AuctionCompleted
			result.WinnerID = a.HighestBidderID
			result.Amount = a.CurrentBid
		} else {
			inventory.AddStack(seller, stack)
			a.Status = domain.AuctionExpired
		}
		result.Status = a.Status

		a.SettledAt = &now
		if err := tx.UpdateAuction(ctx, a); err != nil {
			return fmt.Errorf(ErrMsgUpdateAuctionFailed, err)
		}
		settled = a
		return s.save(ctx, tx, seller)
	})
	if err != nil {
		return nil, err
	}

	if result.AlreadySettled {
		log.Info(LogMsgAlreadySettled, "status", result.Status)
		return result, nil
	}

	log.Info(LogMsgAuctionSettled, "status", result.Status, "winnerID", result.WinnerID, "amount", result.Amount)
	if result.Status == domain.AuctionCompleted {
		s.publish(ctx, event.AuctionCompleted, settled, domain.AuctionEventPayload{BidderID: result.WinnerID, Amount: result.Amount})
	} else {
		s.publish(ctx, event.AuctionExpired, settled, domain.AuctionEventPayload{})
	}
	return result, nil
}

// SettleExpired settles every active auction past its end time and returns
// how many it closed. A failing auction does not stop the others; their
// errors are joined.
func (s *service) SettleExpired(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	ids, err := s.store.ListDueAuctions(ctx, s.now(), SettleBatchSize)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgListDueFailed, err)
	}

	settled := 0
	var errs []error
	for _, id := range ids {
		res, err := s.Settle(ctx, id)
		if err != nil {
			log.Error(LogMsgSettleFailed, "auctionID", id, "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", id, err))
			continue
		}
		if !res.AlreadySettled {
			settled++
		}
	}

	if len(ids) > 0 {
		log.Info(LogMsgReaperFinished, "due", len(ids), "settled", settled, "failed", len(errs))
	}
	return settled, errors.Join(errs...)
}
