// Package effect applies item effects to accounts and evaluates timed
// effects lazily: every read or write of an account's effect list first
// settles owed DOT ticks and prunes expired records.
package effect

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/BrandishEconomy/internal/concurrency"
	"github.com/osse101/BrandishEconomy/internal/domain"
	"github.com/osse101/BrandishEconomy/internal/event"
	"github.com/osse101/BrandishEconomy/internal/inventory"
	"github.com/osse101/BrandishEconomy/internal/item"
	"github.com/osse101/BrandishEconomy/internal/logger"
	"github.com/osse101/BrandishEconomy/internal/repository"
	"github.com/osse101/BrandishEconomy/internal/utils"
)

// ApplyResult contains the result of applying an item's effects
type ApplyResult struct {
	// Success is true when at least one effect fired
	Success        bool            `json:"success"`
	ItemID         string          `json:"item_id"`
	AppliedEffects []AppliedEffect `json:"applied_effects"`
	StatChanges    StatChanges     `json:"stat_changes"`
}

// Service defines the interface for effect operations
type Service interface {
	ApplyItemEffects(ctx context.Context, userID, itemID string, trigger domain.Trigger) (*ApplyResult, error)
	UseItem(ctx context.Context, userID, itemQuery string) (*ApplyResult, error)
	GetActiveEffects(ctx context.Context, userID string) ([]domain.ActiveEffect, error)
	GetEffectiveStats(ctx context.Context, userID string) (*EffectiveStats, error)
}

type service struct {
	store     repository.Store
	locker    concurrency.Locker
	catalog   item.Catalog
	publisher event.Publisher
	rnd       func() float64 // For chance rolls
	now       func() time.Time
}

// NewService creates a new effect service. publisher may be nil.
func NewService(store repository.Store, locker concurrency.Locker, catalog item.Catalog, publisher event.Publisher) Service {
	return &service{
		store:     store,
		locker:    locker,
		catalog:   catalog,
		publisher: publisher,
		rnd:       utils.RandomFloat,
		now:       time.Now,
	}
}

// ApplyItemEffects fires the effects of itemID that listen for trigger.
// The item is not consumed.
func (s *service) ApplyItemEffects(ctx context.Context, userID, itemID string, trigger domain.Trigger) (*ApplyResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgApplyItemEffectsCalled, "userID", userID, "itemID", itemID, "trigger", trigger)

	if err := validateUser(userID); err != nil {
		return nil, err
	}
	if !trigger.Valid() {
		return nil, fmt.Errorf(ErrFmtInvalidTrigger, domain.ErrInvalidInput, trigger)
	}

	def, err := s.catalog.FindByName(itemID)
	if err != nil {
		return nil, err
	}

	var result *ApplyResult
	err = s.withAccount(ctx, userID, func(tx repository.EconomyTx) error {
		acct, err := tx.GetAccountForUpdate(ctx, userID)
		if err != nil {
			return err
		}

		result = s.applyAll(ctx, acct, def, trigger)
		return s.save(ctx, tx, acct)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// UseItem consumes one of the stack matching itemQuery and fires its use
// effects in the same unit of work
func (s *service) UseItem(ctx context.Context, userID, itemQuery string) (*ApplyResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgUseItemCalled, "userID", userID, "item", itemQuery)

	if err := validateUser(userID); err != nil {
		return nil, err
	}

	var result *ApplyResult
	err := s.withAccount(ctx, userID, func(tx repository.EconomyTx) error {
		acct, err := tx.GetAccountForUpdate(ctx, userID)
		if err != nil {
			return err
		}

		idx := item.MatchEntry(acct.Inventory, itemQuery)
		if idx < 0 {
			return fmt.Errorf(ErrFmtNotInInventory, domain.ErrNotInInventory, itemQuery)
		}
		def, err := s.catalog.Get(acct.Inventory[idx].ItemID)
		if err != nil {
			return err
		}
		if !usable(def) {
			return fmt.Errorf(ErrFmtNotUsable, domain.ErrNotUsable, def.Name)
		}

		if _, err := inventory.RemoveStack(acct, def.ItemID, 1); err != nil {
			return err
		}
		result = s.applyAll(ctx, acct, def, domain.TriggerUse)
		return s.save(ctx, tx, acct)
	})
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		evt := event.NewItemEvent(event.ItemUsed, domain.ItemEventPayload{
			UserID:    userID,
			ItemID:    result.ItemID,
			Quantity:  1,
			Timestamp: s.now(),
		})
		if err := s.publisher.Publish(ctx, evt); err != nil {
			log.Warn(LogMsgPublishFailed, "event", event.ItemUsed, "error", err)
		}
	}
	return result, nil
}

// GetActiveEffects settles the user's timed effects and returns the live ones
func (s *service) GetActiveEffects(ctx context.Context, userID string) ([]domain.ActiveEffect, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgGetActiveEffectsCalled, "userID", userID)

	acct, err := s.settled(ctx, userID)
	if err != nil {
		return nil, err
	}
	return acct.ActiveEffects, nil
}

// GetEffectiveStats settles the user's timed effects and returns the stat
// block with live modifiers applied
func (s *service) GetEffectiveStats(ctx context.Context, userID string) (*EffectiveStats, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgGetEffectiveStats, "userID", userID)

	acct, err := s.settled(ctx, userID)
	if err != nil {
		return nil, err
	}
	return effectiveStats(acct, s.now()), nil
}

// settled loads the account, settling and persisting its effects when due
func (s *service) settled(ctx context.Context, userID string) (*domain.Account, error) {
	var acct *domain.Account
	err := s.withAccount(ctx, userID, func(tx repository.EconomyTx) error {
		var err error
		acct, err = tx.GetAccountForUpdate(ctx, userID)
		if err != nil {
			return err
		}

		changes := StatChanges{}
		if !settle(acct, s.now(), changes) {
			return nil
		}
		logger.FromContext(ctx).Debug(LogMsgEffectsSettled, "userID", userID, "changes", changes)
		return s.save(ctx, tx, acct)
	})
	if err != nil {
		return nil, err
	}
	return acct, nil
}

// applyAll settles acct, then gates and applies every effect of def.
// A failing effect is reported and its siblings still run. Only changes
// made by def's own effects land in StatChanges.
func (s *service) applyAll(ctx context.Context, acct *domain.Account, def *domain.ItemDefinition, trigger domain.Trigger) *ApplyResult {
	log := logger.FromContext(ctx)
	now := s.now()
	result := &ApplyResult{
		ItemID:         def.ItemID,
		AppliedEffects: make([]AppliedEffect, 0, len(def.Effects)),
		StatChanges:    StatChanges{},
	}

	settledChanges := StatChanges{}
	if settle(acct, now, settledChanges) {
		log.Debug(LogMsgEffectsSettled, "userID", acct.UserID, "changes", settledChanges)
	}

	for _, eff := range def.Effects {
		if fired, reason := gate(eff, trigger, s.rnd); !fired {
			result.AppliedEffects = append(result.AppliedEffects, AppliedEffect{
				Type:     eff.Type,
				Category: eff.Type.Category(),
				Value:    eff.Value,
				Reason:   reason,
			})
			continue
		}

		res := apply(acct, eff, def.ItemID, now, result.StatChanges)
		if res.Failed {
			log.Warn(LogMsgEffectFailed, "userID", acct.UserID, "itemID", def.ItemID, "effect", failureMessage(res))
		}
		result.Success = result.Success || res.Applied
		result.AppliedEffects = append(result.AppliedEffects, res)
	}

	acct.UpdatedAt = now
	return result
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

// usable reports whether any effect of def listens for the use trigger
func usable(def *domain.ItemDefinition) bool {
	for _, eff := range def.Effects {
		if eff.FiresOn(domain.TriggerUse) {
			return true
		}
	}
	return false
}

func validateUser(userID string) error {
	if userID == "" {
		return fmt.Errorf(ErrFmtEmptyUserID, domain.ErrInvalidInput)
	}
	return nil
}
