package repository

import "context"

// Store is the persistence boundary of the economy services
type Store interface {
	Accounts
	Auctions
	TxBeginner
	Ping(ctx context.Context) error
}
