// Package auction runs the escrow-backed auction market. Items leave the
// seller's inventory when an auction is created, the highest bid is held
// out of the bidder's wallet, and a scheduled reaper settles auctions once
// their end time has passed.
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
	"github.com/osse101/BrandishEconomy/internal/pricing"
	"github.com/osse101/BrandishEconomy/internal/repository"
)

// CreateResult contains the result of listing an item
type CreateResult struct {
	Success   bool      `json:"success"`
	AuctionID string    `json:"auction_id"`
	EndsAt    time.Time `json:"ends_at"`
}

// BidResult contains the result of an accepted bid
type BidResult struct {
	Success     bool      `json:"success"`
	PreviousBid int64     `json:"previous_bid"`
	EndsAt      time.Time `json:"ends_at"`
}

// SettleResult describes how an auction ended
type SettleResult struct {
	AuctionID      string               `json:"auction_id"`
	Status         domain.AuctionStatus `json:"status"`
	WinnerID       string               `json:"winner_id,omitempty"`
	Amount         int64                `json:"amount,omitempty"`
	AlreadySettled bool                 `json:"already_settled,omitempty"`
}

// Service defines the interface for auction operations
type Service interface {
	CreateAuction(ctx context.Context, sellerID, itemQuery string, quantity int, startingBid int64, durationHours int) (*CreateResult, error)
	PlaceBid(ctx context.Context, bidderID, auctionID string, amount int64) (*BidResult, error)
	GetAuctions(ctx context.Context, userID string, filter domain.AuctionFilter) ([]domain.Auction, error)
	GetAuction(ctx context.Context, auctionID string) (*domain.Auction, error)
	CancelAuction(ctx context.Context, sellerID, auctionID string) error
	Settle(ctx context.Context, auctionID string) (*SettleResult, error)
	SettleExpired(ctx context.Context) (int, error)
}

type service struct {
	store     repository.Store
	locker    concurrency.Locker
	catalog   item.Catalog
	prices    pricing.Engine
	publisher event.Publisher
	now       func() time.Time
}

// NewService creates a new auction service. publisher may be nil.
func NewService(store repository.Store, locker concurrency.Locker, catalog item.Catalog, prices pricing.Engine, publisher event.Publisher) Service {
	return &service{
		store:     store,
		locker:    locker,
		catalog:   catalog,
		prices:    prices,
		publisher: publisher,
		now:       time.Now,
	}
}

// GetAuction returns one auction in any status
func (s *service) GetAuction(ctx context.Context, auctionID string) (*domain.Auction, error) {
	if err := validateAuctionID(auctionID); err != nil {
		return nil, err
	}
	return s.store.GetAuction(ctx, auctionID)
}

// GetAuctions lists open auctions matching filter, soonest ending first.
// Auctions past their end time that the reaper has not reached yet are
// left out by the store query.
func (s *service) GetAuctions(ctx context.Context, userID string, filter domain.AuctionFilter) ([]domain.Auction, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgGetAuctionsCalled, "userID", userID, "filter", filter)

	if filter == "" {
		filter = domain.FilterAll
	}
	if !filter.Valid() {
		return nil, fmt.Errorf(ErrFmtInvalidFilter, domain.ErrInvalidInput, filter)
	}
	if (filter == domain.FilterMine || filter == domain.FilterBids) && userID == "" {
		return nil, fmt.Errorf(ErrFmtFilterNeedsUser, domain.ErrInvalidInput, filter)
	}

	return s.store.ListAuctions(ctx, repository.AuctionQuery{
		Filter: filter,
		UserID: userID,
		Now:    s.now(),
		Limit:  domain.MaxAuctionListing,
	})
}

// withAuction runs operation on the locked auction. The auction key is
// taken before any account key: accountsOf names the accounts the auction's
// current state involves, and those stay fixed while the auction is held.
func (s *service) withAuction(ctx context.Context, auctionID string, accountsOf func(a *domain.Auction) []string, operation func(tx repository.EconomyTx, a *domain.Auction) error) error {
	unlockAuction, err := s.locker.Lock(ctx, concurrency.AuctionKey(auctionID))
	if err != nil {
		return fmt.Errorf(ErrMsgLockFailed, "auction", err)
	}
	defer unlockAuction()

	current, err := s.store.GetAuction(ctx, auctionID)
	if err != nil {
		return err
	}

	keys := make([]string, 0, 2)
	for _, id := range accountsOf(current) {
		if id != "" {
			keys = append(keys, concurrency.AccountKey(id))
		}
	}
	unlockAccounts, err := s.locker.Lock(ctx, keys...)
	if err != nil {
		return fmt.Errorf(ErrMsgLockFailed, "accounts", err)
	}
	defer unlockAccounts()

	return repository.WithTx(ctx, s.store, func(tx repository.EconomyTx) error {
		a, err := tx.GetAuctionForUpdate(ctx, auctionID)
		if err != nil {
			return err
		}
		return operation(tx, a)
	})
}

// returnedStack rebuilds the inventory stack an auction holds, priced at
// the current sell price
func (s *service) returnedStack(ctx context.Context, a *domain.Auction) domain.InventoryEntry {
	def, err := s.catalog.Get(a.ItemID)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgItemMissingInCatalog, "auctionID", a.AuctionID, "itemID", a.ItemID)
		return domain.InventoryEntry{
			ItemID:    a.ItemID,
			Name:      a.ItemName,
			Quantity:  a.Quantity,
			Rarity:    domain.RarityCommon,
			Tradeable: true,
		}
	}
	return inventory.NewEntry(def, a.Quantity, 0, s.prices.SellPrice(def))
}

func (s *service) save(ctx context.Context, tx repository.EconomyTx, accts ...*domain.Account) error {
	for _, acct := range accts {
		if err := tx.UpdateAccount(ctx, acct); err != nil {
			return fmt.Errorf(ErrMsgUpdateAccountFailed, err)
		}
	}
	return nil
}

func (s *service) publish(ctx context.Context, t event.Type, a *domain.Auction, payload domain.AuctionEventPayload) {
	if s.publisher == nil {
		return
	}
	payload.AuctionID = a.AuctionID
	payload.SellerID = a.SellerID
	payload.ItemID = a.ItemID
	payload.Quantity = a.Quantity
	payload.Timestamp = s.now()
	if err := s.publisher.Publish(ctx, event.NewAuctionEvent(t, payload)); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event", t, "auctionID", a.AuctionID, "error", err)
	}
}

func validateUser(userID string) error {
	if userID == "" {
		return fmt.Errorf(ErrFmtEmptyUserID, domain.ErrInvalidInput)
	}
	return nil
}

func validateAuctionID(auctionID string) error {
	if _, err := uuid.Parse(auctionID); err != nil {
		return fmt.Errorf(ErrFmtInvalidAuctionID, domain.ErrInvalidInput, auctionID)
	}
	return nil
}
