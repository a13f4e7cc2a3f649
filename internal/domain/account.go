package domain

import "time"

// Account is the per-user economy record: balances, inventory, timed
// effects, the bounded transaction log and the stat block.
type Account struct {
	UserID        string           `json:"user_id"`
	DisplayName   string           `json:"display_name"`
	Wallet        int64            `json:"wallet"`
	Bank          int64            `json:"bank"`
	BankLimit     int64            `json:"bank_limit"`
	Inventory     []InventoryEntry `json:"inventory"`
	ActiveEffects []ActiveEffect   `json:"active_effects"`
	Transactions  []Transaction    `json:"transactions"`
	Stats         StatBlock        `json:"stats"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// NewAccount returns an account with the starting balances and stats.
func NewAccount(userID, displayName string, now time.Time) *Account {
	return &Account{
		UserID:        userID,
		DisplayName:   displayName,
		Wallet:        DefaultWallet,
		Bank:          0,
		BankLimit:     DefaultBankLimit,
		Inventory:     []InventoryEntry{},
		ActiveEffects: []ActiveEffect{},
		Transactions:  []Transaction{},
		Stats:         DefaultStatBlock(),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// NetWorth is wallet plus bank.
func (a *Account) NetWorth() int64 {
	return a.Wallet + a.Bank
}

// Balance returns the balance held at the given location.
func (a *Account) Balance(loc MoneyLocation) int64 {
	if loc == LocationBank {
		return a.Bank
	}
	return a.Wallet
}

// FindEntry returns the index of the stack holding itemID, or -1.
func (a *Account) FindEntry(itemID string) int {
	for i := range a.Inventory {
		if a.Inventory[i].ItemID == itemID {
			return i
		}
	}
	return -1
}

// HeldQuantity returns how many of itemID the account holds.
func (a *Account) HeldQuantity(itemID string) int {
	if idx := a.FindEntry(itemID); idx >= 0 {
		return a.Inventory[idx].Quantity
	}
	return 0
}

// AppendTransaction records a ledger entry, evicting the oldest entries
// beyond MaxTransactionLog.
func (a *Account) AppendTransaction(tx Transaction) {
	a.Transactions = append(a.Transactions, tx)
	if over := len(a.Transactions) - MaxTransactionLog; over > 0 {
		a.Transactions = append([]Transaction(nil), a.Transactions[over:]...)
	}
}

// Clone returns a deep copy so stores can hand out records without sharing slices.
func (a *Account) Clone() *Account {
	if a == nil {
		return nil
	}
	c := *a
	c.Inventory = append([]InventoryEntry{}, a.Inventory...)
	c.ActiveEffects = append([]ActiveEffect{}, a.ActiveEffects...)
	c.Transactions = append([]Transaction{}, a.Transactions...)
	return &c
}
