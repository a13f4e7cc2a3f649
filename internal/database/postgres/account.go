package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/BrandishEconomy/internal/domain"
)

const accountColumns = `user_id, display_name, wallet, bank, bank_limit,
	inventory, active_effects, transactions, stats, created_at, updated_at`

// GetAccount loads an account without locking it
func (s *Store) GetAccount(ctx context.Context, userID string) (*domain.Account, error) {
	return getAccount(ctx, s.db, `SELECT `+accountColumns+` FROM accounts WHERE user_id = $1`, userID)
}

// TopAccounts returns accounts ordered by net worth
func (s *Store) TopAccounts(ctx context.Context, limit int) ([]domain.Account, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+accountColumns+`
		FROM accounts
		ORDER BY (wallet + bank) DESC, user_id ASC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, persistErr(ErrMsgFailedToListAccounts, err)
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		acct, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, *acct)
	}
	if err := rows.Err(); err != nil {
		return nil, persistErr(ErrMsgFailedToListAccounts, err)
	}
	return accounts, nil
}

// GetAccountForUpdate loads and row-locks an account
func (t *economyTx) GetAccountForUpdate(ctx context.Context, userID string) (*domain.Account, error) {
	return getAccount(ctx, t.tx, `SELECT `+accountColumns+` FROM accounts WHERE user_id = $1 FOR UPDATE`, userID)
}

// EnsureAccount inserts the account unless it exists, then returns the locked row
func (t *economyTx) EnsureAccount(ctx context.Context, acct *domain.Account) (*domain.Account, error) {
	args, err := accountArgs(acct)
	if err != nil {
		return nil, err
	}

	_, err = t.tx.Exec(ctx, `
		INSERT INTO accounts (`+accountColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (user_id) DO NOTHING
	`, args...)
	if err != nil {
		return nil, persistErr(ErrMsgFailedToInsertAccount, err)
	}

	return t.GetAccountForUpdate(ctx, acct.UserID)
}

// UpdateAccount writes every mutable column of the account
func (t *economyTx) UpdateAccount(ctx context.Context, acct *domain.Account) error {
	args, err := accountArgs(acct)
	if err != nil {
		return err
	}

	tag, err := t.tx.Exec(ctx, `
		UPDATE accounts
		SET display_name = $2, wallet = $3, bank = $4, bank_limit = $5,
			inventory = $6, active_effects = $7, transactions = $8, stats = $9,
			updated_at = $11
		WHERE user_id = $1
	`, args...)
	if err != nil {
		return persistErr(ErrMsgFailedToUpdateAccount, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrUserNotFound, ErrMsgAccountUpdateNoRows)
	}
	return nil
}

func getAccount(ctx context.Context, q querier, query, userID string) (*domain.Account, error) {
	acct, err := scanAccount(q.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, userID)
		}
		return nil, err
	}
	return acct, nil
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var acct domain.Account
	var inventory, effects, transactions, stats []byte
	err := row.Scan(
		&acct.UserID, &acct.DisplayName, &acct.Wallet, &acct.Bank, &acct.BankLimit,
		&inventory, &effects, &transactions, &stats, &acct.CreatedAt, &acct.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, persistErr(ErrMsgFailedToGetAccount, err)
	}

	if err := json.Unmarshal(inventory, &acct.Inventory); err != nil {
		return nil, persistErr(ErrMsgFailedToDecodeAccount, err)
	}
	if err := json.Unmarshal(effects, &acct.ActiveEffects); err != nil {
		return nil, persistErr(ErrMsgFailedToDecodeAccount, err)
	}
	if err := json.Unmarshal(transactions, &acct.Transactions); err != nil {
		return nil, persistErr(ErrMsgFailedToDecodeAccount, err)
	}
	if err := json.Unmarshal(stats, &acct.Stats); err != nil {
		return nil, persistErr(ErrMsgFailedToDecodeAccount, err)
	}
	return &acct, nil
}

// accountArgs returns the positional arguments matching accountColumns
func accountArgs(acct *domain.Account) ([]any, error) {
	inventory, err := jsonColumn(acct.Inventory)
	if err != nil {
		return nil, persistErr(ErrMsgFailedToEncodeAccount, err)
	}
	effects, err := jsonColumn(acct.ActiveEffects)
	if err != nil {
		return nil, persistErr(ErrMsgFailedToEncodeAccount, err)
	}
	transactions, err := jsonColumn(acct.Transactions)
	if err != nil {
		return nil, persistErr(ErrMsgFailedToEncodeAccount, err)
	}
	stats, err := json.Marshal(acct.Stats)
	if err != nil {
		return nil, persistErr(ErrMsgFailedToEncodeAccount, err)
	}

	return []any{
		acct.UserID, acct.DisplayName, acct.Wallet, acct.Bank, acct.BankLimit,
		inventory, effects, transactions, stats, acct.CreatedAt, acct.UpdatedAt,
	}, nil
}
