package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/BrandishEconomy/internal/auction"
	"github.com/osse101/BrandishEconomy/internal/domain"
	"github.com/osse101/BrandishEconomy/internal/logger"
)

type CreateAuctionRequest struct {
	SellerID      string `json:"seller_id" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Item          string `json:"item" validate:"required,max=100"`
	Quantity      int    `json:"quantity" validate:"min=1,max=10000"`
	StartingBid   int64  `json:"starting_bid" validate:"gt=0"`
	DurationHours int    `json:"duration_hours" validate:"min=1,max=168"`
}

type PlaceBidRequest struct {
	BidderID string `json:"bidder_id" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Amount   int64  `json:"amount" validate:"gt=0"`
}

type CancelAuctionRequest struct {
	SellerID string `json:"seller_id" validate:"required,max=100,excludesall=\x00\n\r\t"`
}

// SettleExpiredResponse reports a manual reaper pass
type SettleExpiredResponse struct {
	Settled int `json:"settled"`
}

// HandleCreateAuction escrows items into a new auction
func HandleCreateAuction(svc auction.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateAuctionRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create auction"); err != nil {
			return
		}

		result, err := svc.CreateAuction(context.WithoutCancel(r.Context()),
			req.SellerID, req.Item, req.Quantity, req.StartingBid, req.DurationHours)
		if err != nil {
			respondServiceError(w, r, "create auction", err)
			return
		}

		respondJSON(w, http.StatusCreated, result)
	}
}

// HandleGetAuctions lists active auctions; filter is all, mine, bids or ending
func HandleGetAuctions(svc auction.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := domain.AuctionFilter(strings.ToLower(GetOptionalQueryParam(r, ParamFilter, string(domain.FilterAll))))
		if !filter.Valid() {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidFilter)
			return
		}
		userID := GetOptionalQueryParam(r, ParamUserID, "")

		auctions, err := svc.GetAuctions(r.Context(), userID, filter)
		if err != nil {
			respondServiceError(w, r, "get auctions", err)
			return
		}

		logger.FromContext(r.Context()).Debug(LogMsgAuctionsListed, "filter", filter, "count", len(auctions))
		respondJSON(w, http.StatusOK, auctions)
	}
}

// HandleGetAuction returns one auction with its bid history
func HandleGetAuction(svc auction.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.GetAuction(r.Context(), chi.URLParam(r, ParamAuctionID))
		if err != nil {
			respondServiceError(w, r, "get auction", err)
			return
		}

		respondJSON(w, http.StatusOK, a)
	}
}

// HandlePlaceBid escrows a bid and refunds the previous one
func HandlePlaceBid(svc auction.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PlaceBidRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Place bid"); err != nil {
			return
		}

		result, err := svc.PlaceBid(context.WithoutCancel(r.Context()), req.BidderID, chi.URLParam(r, ParamAuctionID), req.Amount)
		if err != nil {
			respondServiceError(w, r, "place bid", err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}

// HandleCancelAuction returns the items of an auction nobody bid on
func HandleCancelAuction(svc auction.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CancelAuctionRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Cancel auction"); err != nil {
			return
		}

		if err := svc.CancelAuction(context.WithoutCancel(r.Context()), req.SellerID, chi.URLParam(r, ParamAuctionID)); err != nil {
			respondServiceError(w, r, "cancel auction", err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgAuctionCancelledSuccess})
	}
}

// HandleSettleAuction settles one ended auction
func HandleSettleAuction(svc auction.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := svc.Settle(context.WithoutCancel(r.Context()), chi.URLParam(r, ParamAuctionID))
		if err != nil {
			respondServiceError(w, r, "settle auction", err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}

// HandleSettleExpired runs one reaper pass on demand. Partial failures
// still report how many auctions settled.
func HandleSettleExpired(svc auction.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		settled, err := svc.SettleExpired(context.WithoutCancel(r.Context()))
		if err != nil {
			log.Error(LogMsgRequestFailed, "operation", "settle expired", "settled", settled, "error", err)
			respondJSON(w, http.StatusInternalServerError, DataResponse{
				Message: ErrMsgGenericServerError,
				Data:    SettleExpiredResponse{Settled: settled},
			})
			return
		}

		log.Info(LogMsgReaperTriggered, "settled", settled)
		respondJSON(w, http.StatusOK, SettleExpiredResponse{Settled: settled})
	}
}
