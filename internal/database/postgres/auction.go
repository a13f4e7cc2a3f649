package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/BrandishEconomy/internal/domain"
	"github.com/osse101/BrandishEconomy/internal/repository"
)

const auctionColumns = `auction_id, seller_id, item_id, item_name, quantity, starting_price,
	current_bid, highest_bidder_id, bid_history, start_time, end_time, status, settled_at`

// GetAuction loads an auction without locking it
func (s *Store) GetAuction(ctx context.Context, auctionID string) (*domain.Auction, error) {
	return getAuction(ctx, s.db, `SELECT `+auctionColumns+` FROM auctions WHERE auction_id = $1`, auctionID)
}

// ListAuctions returns open auctions matching the query, soonest ending
// first. Active rows already past their end time are excluded before the
// limit applies.
func (s *Store) ListAuctions(ctx context.Context, q repository.AuctionQuery) ([]domain.Auction, error) {
	query := `SELECT ` + auctionColumns + ` FROM auctions WHERE status = 'active' AND end_time >= $2`
	args := []any{q.Limit, q.Now}

	switch q.Filter {
	case domain.FilterMine:
		query += ` AND seller_id = $3`
		args = append(args, q.UserID)
	case domain.FilterBids:
		query += ` AND highest_bidder_id = $3`
		args = append(args, q.UserID)
	case domain.FilterEnding:
		query += ` AND end_time <= $3`
		args = append(args, q.Now.Add(domain.AuctionEndingWindow))
	}
	query += ` ORDER BY end_time ASC, auction_id ASC LIMIT $1`

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, persistErr(ErrMsgFailedToListAuctions, err)
	}
	defer rows.Close()

	auctions := []domain.Auction{}
	for rows.Next() {
		a, err := scanAuction(rows)
		if err != nil {
			return nil, err
		}
		auctions = append(auctions, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, persistErr(ErrMsgFailedToListAuctions, err)
	}
	return auctions, nil
}

// ListDueAuctions returns the ids of active auctions past their end time
func (s *Store) ListDueAuctions(ctx context.Context, now time.Time, limit int) ([]string, error) {
	rows, err := s.db.Query(ctx, `
		SELECT auction_id::text
		FROM auctions
		WHERE status = 'active' AND end_time < $1
		ORDER BY end_time ASC
		LIMIT $2
	`, now, limit)
	if err != nil {
		return nil, persistErr(ErrMsgFailedToListAuctions, err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, persistErr(ErrMsgFailedToListAuctions, err)
	}
	return ids, nil
}

// GetAuctionForUpdate loads and row-locks an auction
func (t *economyTx) GetAuctionForUpdate(ctx context.Context, auctionID string) (*domain.Auction, error) {
	return getAuction(ctx, t.tx, `SELECT `+auctionColumns+` FROM auctions WHERE auction_id = $1 FOR UPDATE`, auctionID)
}

// InsertAuction stores a new auction
func (t *economyTx) InsertAuction(ctx context.Context, a *domain.Auction) error {
	args, err := auctionArgs(a)
	if err != nil {
		return err
	}

	_, err = t.tx.Exec(ctx, `
		INSERT INTO auctions (`+auctionColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: duplicate auction id %s", domain.ErrInvalidInput, a.AuctionID)
		}
		return persistErr(ErrMsgFailedToInsertAuction, err)
	}
	return nil
}

// UpdateAuction writes the mutable columns of an auction
func (t *economyTx) UpdateAuction(ctx context.Context, a *domain.Auction) error {
	args, err := auctionArgs(a)
	if err != nil {
		return err
	}

	tag, err := t.tx.Exec(ctx, `
		UPDATE auctions
		SET current_bid = $7, highest_bidder_id = $8, bid_history = $9,
			end_time = $11, status = $12, settled_at = $13
		WHERE auction_id = $1
	`, args...)
	if err != nil {
		return persistErr(ErrMsgFailedToUpdateAuction, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrAuctionNotFound, ErrMsgAuctionUpdateNoRows)
	}
	return nil
}

func getAuction(ctx context.Context, q querier, query, auctionID string) (*domain.Auction, error) {
	a, err := scanAuction(q.QueryRow(ctx, query, auctionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrAuctionNotFound, auctionID)
		}
		return nil, err
	}
	return a, nil
}

func scanAuction(row pgx.Row) (*domain.Auction, error) {
	var a domain.Auction
	var auctionID string
	var highestBidder *string
	var bids []byte
	var status string

	err := row.Scan(
		&auctionID, &a.SellerID, &a.ItemID, &a.ItemName, &a.Quantity, &a.StartingPrice,
		&a.CurrentBid, &highestBidder, &bids, &a.StartTime, &a.EndTime, &status, &a.SettledAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, persistErr(ErrMsgFailedToGetAuction, err)
	}

	a.AuctionID = auctionID
	a.Status = domain.AuctionStatus(status)
	if highestBidder != nil {
		a.HighestBidderID = *highestBidder
	}
	if err := json.Unmarshal(bids, &a.BidHistory); err != nil {
		return nil, persistErr(ErrMsgFailedToDecodeBids, err)
	}
	return &a, nil
}

// auctionArgs returns the positional arguments matching auctionColumns
func auctionArgs(a *domain.Auction) ([]any, error) {
	bids, err := jsonColumn(a.BidHistory)
	if err != nil {
		return nil, persistErr(ErrMsgFailedToEncodeBids, err)
	}

	var highestBidder *string
	if a.HighestBidderID != "" {
		highestBidder = &a.HighestBidderID
	}

	return []any{
		a.AuctionID, a.SellerID, a.ItemID, a.ItemName, a.Quantity, a.StartingPrice,
		a.CurrentBid, highestBidder, bids, a.StartTime, a.EndTime, string(a.Status), a.SettledAt,
	}, nil
}
