package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/osse101/BrandishEconomy/internal/domain"
	"github.com/osse101/BrandishEconomy/internal/ledger"
	"github.com/osse101/BrandishEconomy/internal/logger"
)

// MoneyRequest credits or debits one balance
type MoneyRequest struct {
	UserID   string `json:"user_id" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Amount   int64  `json:"amount" validate:"gt=0"`
	Location string `json:"location" validate:"location"`
	Reason   string `json:"reason" validate:"max=200"`
}

// TransferRequest moves money between a user's wallet and bank
type TransferRequest struct {
	UserID string `json:"user_id" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Amount int64  `json:"amount" validate:"gt=0"`
	From   string `json:"from" validate:"required,location"`
	To     string `json:"to" validate:"required,location,nefield=From"`
}

// BalanceResponse is returned after a money mutation
type BalanceResponse struct {
	Message string `json:"message"`
	Wallet  int64  `json:"wallet"`
	Bank    int64  `json:"bank"`
}

func parseLocation(raw string) domain.MoneyLocation {
	if raw == "" {
		return domain.LocationWallet
	}
	return domain.MoneyLocation(strings.ToLower(raw))
}

// HandleGetUser returns the account for user_id, creating it on first sight
func HandleGetUser(svc ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetQueryParam(r, w, ParamUserID)
		if !ok {
			return
		}
		displayName := GetOptionalQueryParam(r, "display_name", "")

		acct, err := svc.GetUser(context.WithoutCancel(r.Context()), userID, displayName)
		if err != nil {
			respondServiceError(w, r, "get user", err)
			return
		}

		respondJSON(w, http.StatusOK, acct)
	}
}

// HandleAddMoney credits the requested balance
func HandleAddMoney(svc ledger.Service) http.HandlerFunc {
	return handleMoney(svc, "Add money", svc.AddMoney, MsgMoneyAddedSuccess)
}

// HandleRemoveMoney debits the requested balance
func HandleRemoveMoney(svc ledger.Service) http.HandlerFunc {
	return handleMoney(svc, "Remove money", svc.RemoveMoney, MsgMoneyRemovedSuccess)
}

type moneyOp func(ctx context.Context, userID string, amount int64, loc domain.MoneyLocation, reason string) error

func handleMoney(svc ledger.Service, opName string, op moneyOp, successMsg string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req MoneyRequest
		if err := DecodeAndValidateRequest(r, w, &req, opName); err != nil {
			return
		}

		ctx := context.WithoutCancel(r.Context())
		if err := op(ctx, req.UserID, req.Amount, parseLocation(req.Location), req.Reason); err != nil {
			respondServiceError(w, r, opName, err)
			return
		}

		respondBalance(w, r, svc, req.UserID, successMsg)
	}
}

// HandleTransferMoney moves money between wallet and bank
func HandleTransferMoney(svc ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TransferRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Transfer money"); err != nil {
			return
		}

		ctx := context.WithoutCancel(r.Context())
		if err := svc.TransferMoney(ctx, req.UserID, req.Amount, parseLocation(req.From), parseLocation(req.To)); err != nil {
			respondServiceError(w, r, "transfer money", err)
			return
		}

		respondBalance(w, r, svc, req.UserID, MsgMoneyTransferredSuccess)
	}
}

func respondBalance(w http.ResponseWriter, r *http.Request, svc ledger.Service, userID, msg string) {
	acct, err := svc.GetUser(context.WithoutCancel(r.Context()), userID, "")
	if err != nil {
		respondServiceError(w, r, "read balance", err)
		return
	}

	logger.FromContext(r.Context()).Info(msg, "userID", userID, "wallet", acct.Wallet, "bank", acct.Bank)
	respondJSON(w, http.StatusOK, BalanceResponse{Message: msg, Wallet: acct.Wallet, Bank: acct.Bank})
}

// HandleLeaderboard ranks accounts by net worth
func HandleLeaderboard(svc ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, ok := getLimitParam(r, w, DefaultLeaderboardLimit)
		if !ok {
			return
		}

		entries, err := svc.Leaderboard(r.Context(), limit)
		if err != nil {
			respondServiceError(w, r, "leaderboard", err)
			return
		}

		respondJSON(w, http.StatusOK, entries)
	}
}

// HandleGetTransactions returns the newest ledger entries of a user
func HandleGetTransactions(svc ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetQueryParam(r, w, ParamUserID)
		if !ok {
			return
		}
		limit, ok := getLimitParam(r, w, DefaultTransactionsLimit)
		if !ok {
			return
		}

		txs, err := svc.GetTransactions(r.Context(), userID, limit)
		if err != nil {
			respondServiceError(w, r, "get transactions", err)
			return
		}

		respondJSON(w, http.StatusOK, txs)
	}
}
