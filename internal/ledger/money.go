package ledger

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/BrandishEconomy/internal/domain"
	"github.com/osse101/BrandishEconomy/internal/utils"
)

// Credit adds amount at loc. A bank credit larger than the remaining bank
// headroom lands the excess in the wallet; the excess is returned. A credit
// that would overflow a balance fails with domain.ErrInvalidInput and leaves
// acct untouched.
func Credit(acct *domain.Account, amount int64, loc domain.MoneyLocation, reason string, now time.Time) (int64, error) {
	wallet, bank, spill, err := planDeposit(acct.Wallet, acct.Bank, acct.BankLimit, amount, loc)
	if err != nil {
		return 0, err
	}
	acct.Wallet, acct.Bank = wallet, bank
	record(acct, domain.TransactionCredit, amount, loc, spill, reason, now)
	return spill, nil
}

// Debit removes amount from loc. It returns domain.ErrInsufficientFunds,
// leaving acct untouched, when loc holds less than amount. The other
// location is never drawn on.
func Debit(acct *domain.Account, amount int64, loc domain.MoneyLocation, reason string, now time.Time) error {
	if err := withdraw(acct, amount, loc); err != nil {
		return err
	}
	record(acct, domain.TransactionDebit, amount, loc, 0, reason, now)
	return nil
}

// Transfer moves amount between the account's own locations: a debit of
// from followed by a credit of to under the same spillover rule. Both legs
// are checked before either is applied.
func Transfer(acct *domain.Account, amount int64, from, to domain.MoneyLocation, now time.Time) (int64, error) {
	held := acct.Balance(from)
	if held < amount {
		return 0, fmt.Errorf(ErrFmtInsufficient, domain.ErrInsufficientFunds, from, held, amount)
	}
	wallet, bank := acct.Wallet, acct.Bank
	if from == domain.LocationBank {
		bank -= amount
	} else {
		wallet -= amount
	}

	wallet, bank, spill, err := planDeposit(wallet, bank, acct.BankLimit, amount, to)
	if err != nil {
		return 0, err
	}
	acct.Wallet, acct.Bank = wallet, bank
	record(acct, domain.TransactionTransfer, amount, to, spill, fmt.Sprintf("%s %s to %s", domain.ReasonTransfer, from, to), now)
	return spill, nil
}

// planDeposit returns the balances after crediting amount at loc, without
// touching any account
func planDeposit(wallet, bank, bankLimit, amount int64, loc domain.MoneyLocation) (newWallet, newBank, spill int64, err error) {
	spill = amount
	if loc == domain.LocationBank {
		toBank := min(amount, max(bankLimit-bank, 0))
		bank += toBank
		spill = amount - toBank
	}

	newWallet, ok := utils.AddInt64(wallet, spill)
	if !ok {
		return 0, 0, 0, fmt.Errorf(ErrFmtBalanceOverflow, domain.ErrInvalidInput, amount, loc)
	}
	if loc != domain.LocationBank {
		spill = 0
	}
	return newWallet, bank, spill, nil
}

func withdraw(acct *domain.Account, amount int64, loc domain.MoneyLocation) error {
	held := acct.Balance(loc)
	if held < amount {
		return fmt.Errorf(ErrFmtInsufficient, domain.ErrInsufficientFunds, loc, held, amount)
	}
	if loc == domain.LocationBank {
		acct.Bank -= amount
	} else {
		acct.Wallet -= amount
	}
	return nil
}

func record(acct *domain.Account, typ domain.TransactionType, amount int64, loc domain.MoneyLocation, spill int64, reason string, now time.Time) {
	acct.UpdatedAt = now
	acct.AppendTransaction(domain.Transaction{
		ID:        uuid.NewString(),
		Type:      typ,
		Amount:    amount,
		Location:  loc,
		Spillover: spill,
		Reason:    reason,
		Wallet:    acct.Wallet,
		Bank:      acct.Bank,
		CreatedAt: now,
	})
}
