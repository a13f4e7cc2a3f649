package auction

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/BrandishEconomy/internal/domain"
	"github.com/osse101/BrandishEconomy/internal/event"
	"github.com/osse101/BrandishEconomy/internal/ledger"
	"github.com/osse101/BrandishEconomy/internal/logger"
	"github.com/osse101/BrandishEconomy/internal/repository"
	"github.com/osse101/BrandishEconomy/internal/utils"
)

// PlaceBid escrows amount from the bidder's wallet and refunds the bid it
// replaces. The escrow held by an auction always equals its CurrentBid.
func (s *service) PlaceBid(ctx context.Context, bidderID, auctionID string, amount int64) (*BidResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgPlaceBidCalled, "bidderID", bidderID, "auctionID", auctionID, "amount", amount)

	if err := validateUser(bidderID); err != nil {
		return nil, err
	}
	if err := validateAuctionID(auctionID); err != nil {
		return nil, err
	}
	if amount <= 0 {
		return nil, fmt.Errorf(ErrFmtInvalidBid, domain.ErrInvalidInput, amount)
	}

	var (
		result   *BidResult
		outbid   string
		snapshot *domain.Auction
	)
	err := s.withAuction(ctx, auctionID, func(a *domain.Auction) []string {
		return []string{bidderID, a.HighestBidderID}
	}, func(tx repository.EconomyTx, a *domain.Auction) error {
		now := s.now()
		if err := checkBid(a, bidderID, amount, now); err != nil {
			return err
		}

		bidder, err := tx.GetAccountForUpdate(ctx, bidderID)
		if err != nil {
			return err
		}

		previous := a.CurrentBid
		raising := a.HighestBidderID == bidderID
		available := bidder.Wallet
		if raising {
			available = utils.SaturatingAddInt64(available, previous)
		}
		if available < amount {
			return fmt.Errorf(ErrFmtInsufficientFunds, domain.ErrInsufficientFunds, available, amount)
		}

		switch {
		case raising:
			if _, err := ledger.Credit(bidder, previous, domain.LocationWallet, domain.ReasonBidRefund, now); err != nil {
				return err
			}
		case a.HasBids():
			prev, err := tx.GetAccountForUpdate(ctx, a.HighestBidderID)
			if err != nil {
				return err
			}
			if _, err := ledger.Credit(prev, previous, domain.LocationWallet, domain.ReasonBidRefund, now); err != nil {
				return err
			}
			prev.UpdatedAt = now
			if err := s.save(ctx, tx, prev); err != nil {
				return err
			}
			outbid = a.HighestBidderID
		}

		if err := ledger.Debit(bidder, amount, domain.LocationWallet, domain.ReasonBidEscrow, now); err != nil {
			return err
		}
		bidder.UpdatedAt = now

		a.CurrentBid = amount
		a.HighestBidderID = bidderID
		a.BidHistory = append(a.BidHistory, domain.Bid{BidderID: bidderID, Amount: amount, PlacedAt: now})
		if err := tx.UpdateAuction(ctx, a); err != nil {
			return fmt.Errorf(ErrMsgUpdateAuctionFailed, err)
		}

		result = &BidResult{Success: true, PreviousBid: previous, EndsAt: a.EndTime}
		snapshot = a
		return s.save(ctx, tx, bidder)
	})
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgBidAccepted, "auctionID", auctionID, "bidderID", bidderID, "amount", amount, "previousBid", result.PreviousBid)
	s.publish(ctx, event.AuctionBidPlaced, snapshot, domain.AuctionEventPayload{
		BidderID:         bidderID,
		Amount:           amount,
		PreviousBid:      result.PreviousBid,
		PreviousBidderID: outbid,
	})
	if outbid != "" {
		s.publish(ctx, event.AuctionOutbid, snapshot, domain.AuctionEventPayload{
			BidderID:         bidderID,
			Amount:           amount,
			PreviousBid:      result.PreviousBid,
			PreviousBidderID: outbid,
		})
	}
	return result, nil
}

// checkBid applies the auction rules that need no account state
func checkBid(a *domain.Auction, bidderID string, amount int64, now time.Time) error {
	switch {
	case a.SellerID == bidderID:
		return domain.ErrSelfBid
	case a.Status != domain.AuctionActive:
		return fmt.Errorf(ErrFmtNotActive, domain.ErrAuctionNotActive, a.Status)
	case a.Ended(now):
		return fmt.Errorf(ErrFmtEnded, domain.ErrAuctionEnded, a.EndTime.Format(time.RFC3339))
	case amount <= a.CurrentBid:
		return fmt.Errorf(ErrFmtBidTooLow, domain.ErrBidTooLow, a.CurrentBid, amount)
	}
	return nil
}
