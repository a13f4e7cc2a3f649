package ledger

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BrandishEconomy/internal/domain"
)

var t0 = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

func TestCredit(t *testing.T) {
	tests := []struct {
		name       string
		bank       int64
		amount     int64
		loc        domain.MoneyLocation
		wantWallet int64
		wantBank   int64
		wantSpill  int64
	}{
		{"wallet credit is unconditional", 0, 5000, domain.LocationWallet, 6000, 0, 0},
		{"bank credit under limit", 0, 4000, domain.LocationBank, 1000, 4000, 0},
		{"bank credit exactly fills", 9000, 1000, domain.LocationBank, 1000, 10000, 0},
		{"bank credit spills remainder to wallet", 9500, 1000, domain.LocationBank, 1500, 10000, 500},
		{"full bank spills everything", 10000, 300, domain.LocationBank, 1300, 10000, 300},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// ARRANGE
			acct := domain.NewAccount("u1", "U1", t0)
			acct.Bank = tt.bank

			// ACT
			spill, err := Credit(acct, tt.amount, tt.loc, "test", t0)

			// ASSERT
			require.NoError(t, err)
			assert.Equal(t, tt.wantSpill, spill)
			assert.Equal(t, tt.wantWallet, acct.Wallet)
			assert.Equal(t, tt.wantBank, acct.Bank)
			require.Len(t, acct.Transactions, 1)
			entry := acct.Transactions[0]
			assert.Equal(t, domain.TransactionCredit, entry.Type)
			assert.Equal(t, tt.amount, entry.Amount)
			assert.Equal(t, tt.wantSpill, entry.Spillover)
			assert.Equal(t, acct.Wallet, entry.Wallet)
			assert.Equal(t, acct.Bank, entry.Bank)
			assert.NotEmpty(t, entry.ID)
		})
	}
}

func TestDebit(t *testing.T) {
	t.Run("debits the named location", func(t *testing.T) {
		acct := domain.NewAccount("u1", "U1", t0)

		require.NoError(t, Debit(acct, 400, domain.LocationWallet, "test", t0))

		assert.Equal(t, int64(600), acct.Wallet)
		require.Len(t, acct.Transactions, 1)
		assert.Equal(t, domain.TransactionDebit, acct.Transactions[0].Type)
	})

	t.Run("whole balance may be spent", func(t *testing.T) {
		acct := domain.NewAccount("u1", "U1", t0)

		require.NoError(t, Debit(acct, 1000, domain.LocationWallet, "test", t0))

		assert.Equal(t, int64(0), acct.Wallet)
	})

	t.Run("no fallback to the other location", func(t *testing.T) {
		acct := domain.NewAccount("u1", "U1", t0)
		acct.Bank = 5000

		err := Debit(acct, 1500, domain.LocationWallet, "test", t0)

		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
		assert.Equal(t, int64(1000), acct.Wallet)
		assert.Equal(t, int64(5000), acct.Bank)
		assert.Empty(t, acct.Transactions)
	})

	t.Run("bank debit", func(t *testing.T) {
		acct := domain.NewAccount("u1", "U1", t0)
		acct.Bank = 50

		err := Debit(acct, 51, domain.LocationBank, "test", t0)
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

		require.NoError(t, Debit(acct, 50, domain.LocationBank, "test", t0))
		assert.Equal(t, int64(0), acct.Bank)
	})
}

func TestCredit_RejectsOverflow(t *testing.T) {
	tests := []struct {
		name   string
		wallet int64
		bank   int64
		amount int64
		loc    domain.MoneyLocation
	}{
		{"wallet", 1000, 0, math.MaxInt64, domain.LocationWallet},
		{"bank spillover", math.MaxInt64 - 10, 10000, 11, domain.LocationBank},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acct := domain.NewAccount("u1", "U1", t0)
			acct.Wallet = tt.wallet
			acct.Bank = tt.bank

			_, err := Credit(acct, tt.amount, tt.loc, "gift", t0)

			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Equal(t, tt.wallet, acct.Wallet)
			assert.Equal(t, tt.bank, acct.Bank)
			assert.Empty(t, acct.Transactions)
		})
	}

	t.Run("largest credit that fits", func(t *testing.T) {
		acct := domain.NewAccount("u1", "U1", t0)

		_, err := Credit(acct, math.MaxInt64-acct.Wallet, domain.LocationWallet, "gift", t0)

		require.NoError(t, err)
		assert.Equal(t, int64(math.MaxInt64), acct.Wallet)
	})
}

func TestTransfer(t *testing.T) {
	t.Run("wallet to bank with spillover", func(t *testing.T) {
		acct := domain.NewAccount("u1", "U1", t0)
		acct.Wallet = 3000
		acct.Bank = 9000

		spill, err := Transfer(acct, 2500, domain.LocationWallet, domain.LocationBank, t0)

		require.NoError(t, err)
		assert.Equal(t, int64(1500), spill)
		assert.Equal(t, int64(10000), acct.Bank)
		assert.Equal(t, int64(2000), acct.Wallet)
		assert.Equal(t, int64(12000), acct.NetWorth(), "transfers conserve net worth")
		require.Len(t, acct.Transactions, 1)
		assert.Equal(t, domain.TransactionTransfer, acct.Transactions[0].Type)
	})

	t.Run("debit failure aborts without credit", func(t *testing.T) {
		acct := domain.NewAccount("u1", "U1", t0)

		_, err := Transfer(acct, 10, domain.LocationBank, domain.LocationWallet, t0)

		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
		assert.Equal(t, int64(1000), acct.Wallet)
		assert.Equal(t, int64(0), acct.Bank)
		assert.Empty(t, acct.Transactions)
	})

	t.Run("credit overflow leaves the debit unapplied", func(t *testing.T) {
		acct := domain.NewAccount("u1", "U1", t0)
		acct.Wallet = math.MaxInt64 - 5
		acct.Bank = 100

		_, err := Transfer(acct, 100, domain.LocationBank, domain.LocationWallet, t0)

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Equal(t, int64(100), acct.Bank)
		assert.Equal(t, int64(math.MaxInt64-5), acct.Wallet)
	})
}

func TestTransactionLogIsBounded(t *testing.T) {
	acct := domain.NewAccount("u1", "U1", t0)

	for i := 1; i <= domain.MaxTransactionLog+25; i++ {
		_, err := Credit(acct, int64(i), domain.LocationWallet, "test", t0)
		require.NoError(t, err)
	}

	require.Len(t, acct.Transactions, domain.MaxTransactionLog)
	assert.Equal(t, int64(26), acct.Transactions[0].Amount, "oldest entries are evicted first")
	assert.Equal(t, int64(domain.MaxTransactionLog+25), acct.Transactions[domain.MaxTransactionLog-1].Amount)
}
