package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/BrandishEconomy/internal/domain"
	"github.com/osse101/BrandishEconomy/internal/repository"
)

// Store implements repository.Store on PostgreSQL. Accounts and auctions
// read inside a transaction are locked with SELECT ... FOR UPDATE so
// separate processes stay serialized on the same rows.
type Store struct {
	db *pgxpool.Pool
}

// NewStore creates a new Store
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Ping checks the database connection
func (s *Store) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

// BeginTx starts a unit of work
func (s *Store) BeginTx(ctx context.Context) (repository.EconomyTx, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, persistErr(ErrMsgFailedToBeginTransaction, err)
	}
	return &economyTx{tx: tx}, nil
}

type economyTx struct {
	tx pgx.Tx
}

func (t *economyTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		if errors.Is(err, pgx.ErrTxClosed) {
			return domain.ErrTxClosed
		}
		return persistErr(ErrMsgFailedToCommit, err)
	}
	return nil
}

// Rollback after Commit reports domain.ErrTxClosed
func (t *economyTx) Rollback(ctx context.Context) error {
	err := t.tx.Rollback(ctx)
	if errors.Is(err, pgx.ErrTxClosed) {
		return domain.ErrTxClosed
	}
	return err
}

var _ repository.Store = (*Store)(nil)
var _ repository.EconomyTx = (*economyTx)(nil)
