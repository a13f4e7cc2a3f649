package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/BrandishEconomy/internal/logger"
	"github.com/osse101/BrandishEconomy/internal/pricing"
)

// ItemPriceResponse is a single priced item
type ItemPriceResponse struct {
	ItemID    string            `json:"item_id"`
	Direction pricing.Direction `json:"direction"`
	Price     int64             `json:"price"`
}

// HandleGetPrices returns buy and sell quotes for the whole shop
func HandleGetPrices(prices pricing.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		quotes := prices.ShopQuotes()

		logger.FromContext(r.Context()).Debug(LogMsgPricesRetrieved, "count", len(quotes))
		respondJSON(w, http.StatusOK, quotes)
	}
}

// HandleGetItemPrice prices one item; direction defaults to sell
func HandleGetItemPrice(prices pricing.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID := chi.URLParam(r, "itemID")

		direction := pricing.Direction(strings.ToLower(GetOptionalQueryParam(r, ParamDirection, string(pricing.DirectionSell))))
		if direction != pricing.DirectionBuy && direction != pricing.DirectionSell {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidDirection)
			return
		}

		price, err := prices.GetItemPrice(itemID, direction)
		if err != nil {
			respondServiceError(w, r, "get item price", err)
			return
		}

		respondJSON(w, http.StatusOK, ItemPriceResponse{ItemID: itemID, Direction: direction, Price: price})
	}
}
