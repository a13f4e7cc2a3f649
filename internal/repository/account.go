package repository

import (
	"context"

	"github.com/osse101/BrandishEconomy/internal/domain"
)

// Accounts defines read access to economy accounts outside a transaction
type Accounts interface {
	// GetAccount returns domain.ErrUserNotFound when no account exists.
	GetAccount(ctx context.Context, userID string) (*domain.Account, error)
	// TopAccounts returns accounts ordered by wallet+bank descending.
	TopAccounts(ctx context.Context, limit int) ([]domain.Account, error)
}

// AccountTx defines account access inside a transaction
type AccountTx interface {
	// GetAccountForUpdate returns domain.ErrUserNotFound when no account exists.
	GetAccountForUpdate(ctx context.Context, userID string) (*domain.Account, error)
	// EnsureAccount inserts acct unless an account with the same id exists and
	// returns the stored (locked) record.
	EnsureAccount(ctx context.Context, acct *domain.Account) (*domain.Account, error)
	UpdateAccount(ctx context.Context, acct *domain.Account) error
}
