package domain

import "time"

// MoneyLocation is where a balance is held.
type MoneyLocation string

const (
	LocationWallet MoneyLocation = "wallet"
	LocationBank   MoneyLocation = "bank"
)

// Valid reports whether the location is wallet or bank.
func (l MoneyLocation) Valid() bool {
	return l == LocationWallet || l == LocationBank
}

// TransactionType classifies ledger entries
type TransactionType string

const (
	TransactionCredit   TransactionType = "credit"
	TransactionDebit    TransactionType = "debit"
	TransactionTransfer TransactionType = "transfer"
)

// Transaction is a single entry in an account's bounded log.
type Transaction struct {
	ID        string          `json:"id"`
	Type      TransactionType `json:"type"`
	Amount    int64           `json:"amount"`
	Location  MoneyLocation   `json:"location"`
	Spillover int64           `json:"spillover,omitempty"` // part of a bank credit that landed in the wallet
	Reason    string          `json:"reason"`
	Wallet    int64           `json:"wallet_after"`
	Bank      int64           `json:"bank_after"`
	CreatedAt time.Time       `json:"created_at"`
}
