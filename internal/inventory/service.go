// Package inventory mutates item stacks: catalog-backed adds and removals,
// shop purchases (including tiered coin-plus-token purchases) and sales.
package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/BrandishEconomy/internal/concurrency"
	"github.com/osse101/BrandishEconomy/internal/domain"
	"github.com/osse101/BrandishEconomy/internal/event"
	"github.com/osse101/BrandishEconomy/internal/item"
	"github.com/osse101/BrandishEconomy/internal/logger"
	"github.com/osse101/BrandishEconomy/internal/pricing"
	"github.com/osse101/BrandishEconomy/internal/repository"
	"github.com/osse101/BrandishEconomy/internal/session"
)

// PurchaseResult contains the result of a shop purchase
type PurchaseResult struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	Cost        int64  `json:"cost"`
	TokensSpent int    `json:"tokens_spent,omitempty"`
	Quantity    int    `json:"quantity"`
	NewBalance  int64  `json:"new_balance"`
}

// SellResult contains the result of a sale
type SellResult struct {
	Success           bool   `json:"success"`
	Message           string `json:"message"`
	ItemID            string `json:"item_id"`
	Earned            int64  `json:"earned"`
	NewBalance        int64  `json:"new_balance"`
	RemainingQuantity int    `json:"remaining_quantity"`
}

// Service defines the interface for inventory operations
type Service interface {
	AddItem(ctx context.Context, userID, itemID string, quantity int, purchasePrice int64) error
	RemoveItem(ctx context.Context, userID, itemID string, quantity int) error
	PurchaseItem(ctx context.Context, userID, itemID string, quantity int) (*PurchaseResult, error)
	SellItem(ctx context.Context, userID, itemQuery string, quantity int) (*SellResult, error)
	QuoteSell(ctx context.Context, userID, itemQuery string, quantity int) (*session.SellConfirmation, error)
	ConfirmSell(ctx context.Context, userID, confirmationID string) (*SellResult, error)
	GetInventory(ctx context.Context, userID string) ([]domain.InventoryEntry, error)
}

type service struct {
	store         repository.Store
	locker        concurrency.Locker
	catalog       item.Catalog
	prices        pricing.Engine
	publisher     event.Publisher
	confirmations *session.Store
	now           func() time.Time
}

// NewService creates a new inventory service. publisher may be nil.
func NewService(store repository.Store, locker concurrency.Locker, catalog item.Catalog, prices pricing.Engine, publisher event.Publisher, confirmations *session.Store) Service {
	if confirmations == nil {
		confirmations = session.NewStore(session.DefaultSize, session.DefaultTTL)
	}
	return &service{
		store:         store,
		locker:        locker,
		catalog:       catalog,
		prices:        prices,
		publisher:     publisher,
		confirmations: confirmations,
		now:           time.Now,
	}
}

// AddItem adds quantity of a catalog item, snapshotting its current sell price
func (s *service) AddItem(ctx context.Context, userID, itemID string, quantity int, purchasePrice int64) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgAddItemCalled, "userID", userID, "itemID", itemID, "quantity", quantity, "purchasePrice", purchasePrice)

	if err := validateUser(userID); err != nil {
		return err
	}
	if err := validateQuantity(quantity); err != nil {
		return err
	}
	if purchasePrice < 0 {
		return fmt.Errorf(ErrFmtNegativePrice, domain.ErrInvalidInput, purchasePrice)
	}

	def, err := s.catalog.Get(itemID)
	if err != nil {
		return err
	}

	return s.withAccount(ctx, userID, func(tx repository.EconomyTx) error {
		acct, err := tx.GetAccountForUpdate(ctx, userID)
		if err != nil {
			return err
		}

		AddStack(acct, NewEntry(def, quantity, purchasePrice, s.prices.SellPrice(def)))
		return s.save(ctx, tx, acct)
	})
}

// RemoveItem removes quantity of itemID
func (s *service) RemoveItem(ctx context.Context, userID, itemID string, quantity int) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgRemoveItemCalled, "userID", userID, "itemID", itemID, "quantity", quantity)

	if err := validateUser(userID); err != nil {
		return err
	}
	if err := validateQuantity(quantity); err != nil {
		return err
	}

	return s.withAccount(ctx, userID, func(tx repository.EconomyTx) error {
		acct, err := tx.GetAccountForUpdate(ctx, userID)
		if err != nil {
			return err
		}

		if _, err := RemoveStack(acct, itemID, quantity); err != nil {
			return err
		}
		acct.UpdatedAt = s.now()
		return s.save(ctx, tx, acct)
	})
}

// GetInventory returns the user's stacks
func (s *service) GetInventory(ctx context.Context, userID string) ([]domain.InventoryEntry, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgGetInventoryCalled, "userID", userID)

	acct, err := s.store.GetAccount(ctx, userID)
	if err != nil {
		return nil, err
	}
	return acct.Inventory, nil
}

// withAccount serializes operation against other writers of userID
func (s *service) withAccount(ctx context.Context, userID string, operation func(tx repository.EconomyTx) error) error {
	unlock, err := s.locker.Lock(ctx, concurrency.AccountKey(userID))
	if err != nil {
		return fmt.Errorf(ErrMsgLockFailed, err)
	}
	defer unlock()

	return repository.WithTx(ctx, s.store, operation)
}

func (s *service) save(ctx context.Context, tx repository.EconomyTx, acct *domain.Account) error {
	if err := tx.UpdateAccount(ctx, acct); err != nil {
		return fmt.Errorf(ErrMsgUpdateAccountFailed, err)
	}
	return nil
}

func (s *service) publish(ctx context.Context, t event.Type, payload domain.ItemEventPayload) {
	if s.publisher == nil {
		return
	}
	payload.Timestamp = s.now()
	if err := s.publisher.Publish(ctx, event.NewItemEvent(t, payload)); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event", t, "error", err)
	}
}

func validateUser(userID string) error {
	if userID == "" {
		return fmt.Errorf(ErrFmtEmptyUserID, domain.ErrInvalidInput)
	}
	return nil
}
