package handler

import (
	"context"
	"net/http"

	"github.com/osse101/BrandishEconomy/internal/inventory"
	"github.com/osse101/BrandishEconomy/internal/logger"
)

type AddItemRequest struct {
	UserID        string `json:"user_id" validate:"required,max=100,excludesall=\x00\n\r\t"`
	ItemID        string `json:"item_id" validate:"required,max=100"`
	Quantity      int    `json:"quantity" validate:"min=1,max=10000"`
	PurchasePrice int64  `json:"purchase_price" validate:"min=0"`
}

type RemoveItemRequest struct {
	UserID   string `json:"user_id" validate:"required,max=100,excludesall=\x00\n\r\t"`
	ItemID   string `json:"item_id" validate:"required,max=100"`
	Quantity int    `json:"quantity" validate:"min=1,max=10000"`
}

type PurchaseItemRequest struct {
	UserID   string `json:"user_id" validate:"required,max=100,excludesall=\x00\n\r\t"`
	ItemID   string `json:"item_id" validate:"required,max=100"`
	Quantity int    `json:"quantity" validate:"min=1,max=10000"`
}

// SellItemRequest names the item by id or display name
type SellItemRequest struct {
	UserID   string `json:"user_id" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Item     string `json:"item" validate:"required,max=100"`
	Quantity int    `json:"quantity" validate:"min=1,max=10000"`
}

type ConfirmSellRequest struct {
	UserID         string `json:"user_id" validate:"required,max=100,excludesall=\x00\n\r\t"`
	ConfirmationID string `json:"confirmation_id" validate:"required,uuid"`
}

// HandleAddItem grants items to a user (admin/system action)
func HandleAddItem(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AddItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Add item"); err != nil {
			return
		}

		ctx := context.WithoutCancel(r.Context())
		if err := svc.AddItem(ctx, req.UserID, req.ItemID, req.Quantity, req.PurchasePrice); err != nil {
			respondServiceError(w, r, "add item", err)
			return
		}

		logger.FromContext(r.Context()).Info(MsgItemAddedSuccess,
			"userID", req.UserID, "itemID", req.ItemID, "quantity", req.Quantity)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgItemAddedSuccess})
	}
}

// HandleRemoveItem takes items away from a user
func HandleRemoveItem(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RemoveItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Remove item"); err != nil {
			return
		}

		ctx := context.WithoutCancel(r.Context())
		if err := svc.RemoveItem(ctx, req.UserID, req.ItemID, req.Quantity); err != nil {
			respondServiceError(w, r, "remove item", err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgItemRemovedSuccess})
	}
}

// HandlePurchaseItem buys items from the shop
func HandlePurchaseItem(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PurchaseItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Purchase item"); err != nil {
			return
		}

		result, err := svc.PurchaseItem(context.WithoutCancel(r.Context()), req.UserID, req.ItemID, req.Quantity)
		if err != nil {
			respondServiceError(w, r, "purchase item", err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}

// HandleSellItem sells items back to the shop in one step
func HandleSellItem(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SellItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Sell item"); err != nil {
			return
		}

		result, err := svc.SellItem(context.WithoutCancel(r.Context()), req.UserID, req.Item, req.Quantity)
		if err != nil {
			respondServiceError(w, r, "sell item", err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}

// HandleQuoteSell prices a sale and returns a confirmation to redeem
func HandleQuoteSell(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SellItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Quote sell"); err != nil {
			return
		}

		quote, err := svc.QuoteSell(r.Context(), req.UserID, req.Item, req.Quantity)
		if err != nil {
			respondServiceError(w, r, "quote sell", err)
			return
		}

		respondJSON(w, http.StatusOK, quote)
	}
}

// HandleConfirmSell redeems a sell confirmation
func HandleConfirmSell(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ConfirmSellRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Confirm sell"); err != nil {
			return
		}

		result, err := svc.ConfirmSell(context.WithoutCancel(r.Context()), req.UserID, req.ConfirmationID)
		if err != nil {
			respondServiceError(w, r, "confirm sell", err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}

// HandleGetInventory lists a user's stacks
func HandleGetInventory(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetQueryParam(r, w, ParamUserID)
		if !ok {
			return
		}

		entries, err := svc.GetInventory(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "get inventory", err)
			return
		}

		logger.FromContext(r.Context()).Debug(LogMsgInventoryFetched, "userID", userID, "stacks", len(entries))
		respondJSON(w, http.StatusOK, entries)
	}
}
