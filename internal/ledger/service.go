// Package ledger owns account balances: lazy account creation, wallet and
// bank credits and debits, transfers between them and the bounded
// transaction log.
package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/BrandishEconomy/internal/concurrency"
	"github.com/osse101/BrandishEconomy/internal/domain"
	"github.com/osse101/BrandishEconomy/internal/logger"
	"github.com/osse101/BrandishEconomy/internal/repository"
)

// LeaderboardEntry is one ranked account
type LeaderboardEntry struct {
	Rank        int    `json:"rank"`
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	NetWorth    int64  `json:"net_worth"`
}

// Service defines the interface for ledger operations
type Service interface {
	GetUser(ctx context.Context, userID, displayName string) (*domain.Account, error)
	AddMoney(ctx context.Context, userID string, amount int64, loc domain.MoneyLocation, reason string) error
	RemoveMoney(ctx context.Context, userID string, amount int64, loc domain.MoneyLocation, reason string) error
	TransferMoney(ctx context.Context, userID string, amount int64, from, to domain.MoneyLocation) error
	Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error)
	GetTransactions(ctx context.Context, userID string, limit int) ([]domain.Transaction, error)
}

type service struct {
	store  repository.Store
	locker concurrency.Locker
	now    func() time.Time
}

// NewService creates a new ledger service
func NewService(store repository.Store, locker concurrency.Locker) Service {
	return &service{
		store:  store,
		locker: locker,
		now:    time.Now,
	}
}

// GetUser returns the account for userID, creating it with the starting
// balances on first sight. A non-empty displayName refreshes the stored one.
func (s *service) GetUser(ctx context.Context, userID, displayName string) (*domain.Account, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgGetUserCalled, "userID", userID)

	if userID == "" {
		return nil, fmt.Errorf(ErrFmtEmptyUserID, domain.ErrInvalidInput)
	}

	var result *domain.Account
	err := s.withAccount(ctx, userID, func(tx repository.EconomyTx) error {
		now := s.now()
		acct, err := tx.EnsureAccount(ctx, domain.NewAccount(userID, displayName, now))
		if err != nil {
			return fmt.Errorf(ErrMsgGetAccountFailed, err)
		}

		if displayName != "" && acct.DisplayName != displayName {
			acct.DisplayName = displayName
			acct.UpdatedAt = now
			if err := tx.UpdateAccount(ctx, acct); err != nil {
				return fmt.Errorf(ErrMsgUpdateAccountFailed, err)
			}
		}
		result = acct
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// AddMoney credits amount at loc; see Credit for the bank spillover rule
func (s *service) AddMoney(ctx context.Context, userID string, amount int64, loc domain.MoneyLocation, reason string) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgAddMoneyCalled, "userID", userID, "amount", amount, "location", loc, "reason", reason)

	if err := validateMoneyRequest(userID, amount, loc); err != nil {
		return err
	}

	return s.withAccount(ctx, userID, func(tx repository.EconomyTx) error {
		acct, err := tx.GetAccountForUpdate(ctx, userID)
		if err != nil {
			return err
		}

		spill, err := Credit(acct, amount, loc, reason, s.now())
		if err != nil {
			return err
		}
		if spill > 0 {
			log.Info(LogMsgBankSpillover, "userID", userID, "spillover", spill)
		}
		return s.save(ctx, tx, acct)
	})
}

// RemoveMoney debits amount from loc only
func (s *service) RemoveMoney(ctx context.Context, userID string, amount int64, loc domain.MoneyLocation, reason string) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgRemoveMoneyCalled, "userID", userID, "amount", amount, "location", loc, "reason", reason)

	if err := validateMoneyRequest(userID, amount, loc); err != nil {
		return err
	}

	return s.withAccount(ctx, userID, func(tx repository.EconomyTx) error {
		acct, err := tx.GetAccountForUpdate(ctx, userID)
		if err != nil {
			return err
		}

		if err := Debit(acct, amount, loc, reason, s.now()); err != nil {
			return err
		}
		return s.save(ctx, tx, acct)
	})
}

// TransferMoney moves amount from one of the user's locations to the other
func (s *service) TransferMoney(ctx context.Context, userID string, amount int64, from, to domain.MoneyLocation) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgTransferMoneyCalled, "userID", userID, "amount", amount, "from", from, "to", to)

	if err := validateMoneyRequest(userID, amount, from); err != nil {
		return err
	}
	if !to.Valid() {
		return fmt.Errorf(ErrFmtInvalidLocation, domain.ErrInvalidInput, to)
	}
	if from == to {
		return fmt.Errorf(ErrFmtSameLocation, domain.ErrInvalidInput, from)
	}

	return s.withAccount(ctx, userID, func(tx repository.EconomyTx) error {
		acct, err := tx.GetAccountForUpdate(ctx, userID)
		if err != nil {
			return err
		}

		spill, err := Transfer(acct, amount, from, to, s.now())
		if err != nil {
			return err
		}
		if spill > 0 {
			log.Info(LogMsgBankSpillover, "userID", userID, "spillover", spill)
		}
		return s.save(ctx, tx, acct)
	})
}

// Leaderboard ranks accounts by wallet plus bank
func (s *service) Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgLeaderboardCalled, "limit", limit)

	if limit <= 0 {
		limit = DefaultLeaderboardSize
	}
	limit = min(limit, MaxLeaderboardSize)

	accounts, err := s.store.TopAccounts(ctx, limit)
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(accounts))
	for i := range accounts {
		entries = append(entries, LeaderboardEntry{
			Rank:        i + 1,
			UserID:      accounts[i].UserID,
			DisplayName: accounts[i].DisplayName,
			NetWorth:    accounts[i].NetWorth(),
		})
	}
	return entries, nil
}

// GetTransactions returns up to limit ledger entries, newest first
func (s *service) GetTransactions(ctx context.Context, userID string, limit int) ([]domain.Transaction, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgGetTransactionsCalled, "userID", userID, "limit", limit)

	acct, err := s.store.GetAccount(ctx, userID)
	if err != nil {
		return nil, err
	}

	if limit <= 0 || limit > len(acct.Transactions) {
		limit = len(acct.Transactions)
	}
	out := make([]domain.Transaction, 0, limit)
	for i := len(acct.Transactions) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, acct.Transactions[i])
	}
	return out, nil
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

func validateMoneyRequest(userID string, amount int64, loc domain.MoneyLocation) error {
	if userID == "" {
		return fmt.Errorf(ErrFmtEmptyUserID, domain.ErrInvalidInput)
	}
	if amount <= 0 {
		return fmt.Errorf(ErrFmtInvalidAmount, domain.ErrInvalidInput, amount)
	}
	if !loc.Valid() {
		return fmt.Errorf(ErrFmtInvalidLocation, domain.ErrInvalidInput, loc)
	}
	return nil
}
