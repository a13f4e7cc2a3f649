package repository

import (
	"context"
	"fmt"

	"github.com/osse101/BrandishEconomy/internal/logger"
)

// Tx defines the interface for transactional operations
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// EconomyTx is the unit of work every economy mutation runs in. Reads made
// through it lock the returned rows until Commit or Rollback.
type EconomyTx interface {
	Tx
	AccountTx
	AuctionTx
}

// TxBeginner starts units of work
type TxBeginner interface {
	BeginTx(ctx context.Context) (EconomyTx, error)
}

// WithTx executes a function within a transaction.
// It handles begin, commit, and rollback automatically.
// Nothing is committed when operation returns an error.
func WithTx(ctx context.Context, db TxBeginner, operation func(tx EconomyTx) error) error {
	log := logger.FromContext(ctx)

	tx, err := db.BeginTx(ctx)
	if err != nil {
		log.Error("Failed to begin transaction", "error", err)
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer SafeRollback(ctx, tx)

	if err := operation(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error("Failed to commit transaction", "error", err)
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
