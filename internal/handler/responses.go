package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/BrandishEconomy/internal/domain"
	"github.com/osse101/BrandishEconomy/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode before writing headers so a failed encode can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and writes the mapped
// status and user message.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)

	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgRequestFailed, "operation", opName, "error", err)
	} else {
		log.Warn(LogMsgRequestFailed, "operation", opName, "error", err, "status", status)
	}

	respondError(w, status, msg)
}

// User-facing error messages for service errors
const (
	// Generic messages
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."
	ErrMsgUnavailableError    = "Server is temporarily unavailable. Please try again later."

	// Account and inventory messages
	ErrMsgUserNotFoundError    = "User not found"
	ErrMsgItemNotFoundError    = "Item not found"
	ErrMsgInsufficientItemsErr = "Not enough items"
	ErrMsgNotInInventoryError  = "You don't have that item"
	ErrMsgOutOfStockError      = "The shop does not have that many"
	ErrMsgNotSellableError     = "Item is not sellable"
	ErrMsgNotBuyableError      = "Item is not buyable"
	ErrMsgNotUsableError       = "That item can't be used"
	ErrMsgUnknownEffectError   = "That item has an unknown effect"
	ErrMsgSessionNotFoundError = "Confirmation not found or expired"

	// Money messages
	ErrMsgNotEnoughMoneyError = "Not enough money"

	// Auction messages
	ErrMsgAuctionNotFoundError  = "Auction not found"
	ErrMsgAuctionNotActiveError = "Auction is no longer active"
	ErrMsgAuctionEndedError     = "Auction has already ended"
	ErrMsgAuctionNotEndedError  = "Auction has not ended yet"
	ErrMsgAuctionHasBidsError   = "Auction already has bids and can't be cancelled"
	ErrMsgBidTooLowError        = "Your bid must be higher than the current bid"
	ErrMsgSelfBidError          = "You can't bid on your own auction"
	ErrMsgNotTradeableError     = "That item can't be auctioned"
	ErrMsgNotSellerError        = "Only the seller can do that"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses.
// Unrecognised errors become a generic 500 so internal details never leak.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestError

	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, ErrMsgUserNotFoundError
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrAuctionNotFound):
		return http.StatusNotFound, ErrMsgAuctionNotFoundError
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound, ErrMsgSessionNotFoundError

	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgNotEnoughMoneyError
	case errors.Is(err, domain.ErrInsufficientQuantity):
		return http.StatusBadRequest, ErrMsgInsufficientItemsErr
	case errors.Is(err, domain.ErrNotInInventory):
		return http.StatusBadRequest, ErrMsgNotInInventoryError
	case errors.Is(err, domain.ErrOutOfStock):
		return http.StatusBadRequest, ErrMsgOutOfStockError
	case errors.Is(err, domain.ErrNotSellable):
		return http.StatusBadRequest, ErrMsgNotSellableError
	case errors.Is(err, domain.ErrNotBuyable):
		return http.StatusBadRequest, ErrMsgNotBuyableError
	case errors.Is(err, domain.ErrNotUsable):
		return http.StatusBadRequest, ErrMsgNotUsableError
	case errors.Is(err, domain.ErrUnknownEffect):
		return http.StatusBadRequest, ErrMsgUnknownEffectError

	case errors.Is(err, domain.ErrBidTooLow):
		return http.StatusBadRequest, ErrMsgBidTooLowError
	case errors.Is(err, domain.ErrNotTradeable):
		return http.StatusBadRequest, ErrMsgNotTradeableError
	case errors.Is(err, domain.ErrSelfBid):
		return http.StatusForbidden, ErrMsgSelfBidError
	case errors.Is(err, domain.ErrNotSeller):
		return http.StatusForbidden, ErrMsgNotSellerError
	case errors.Is(err, domain.ErrAuctionNotActive):
		return http.StatusConflict, ErrMsgAuctionNotActiveError
	case errors.Is(err, domain.ErrAuctionEnded):
		return http.StatusConflict, ErrMsgAuctionEndedError
	case errors.Is(err, domain.ErrAuctionNotEnded):
		return http.StatusConflict, ErrMsgAuctionNotEndedError
	case errors.Is(err, domain.ErrAuctionHasBids):
		return http.StatusConflict, ErrMsgAuctionHasBidsError

	case errors.Is(err, domain.ErrLockNotAcquired):
		return http.StatusServiceUnavailable, ErrMsgUnavailableError
	case errors.Is(err, domain.ErrPersistence), errors.Is(err, domain.ErrCompensationFailed):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
