package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/osse101/BrandishEconomy/internal/domain"
	"github.com/osse101/BrandishEconomy/internal/effect"
)

// ApplyEffectsRequest fires an item's effects for a trigger without
// consuming the item
type ApplyEffectsRequest struct {
	UserID  string `json:"user_id" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Item    string `json:"item" validate:"required,max=100"`
	Trigger string `json:"trigger" validate:"trigger"`
}

// UseItemRequest consumes one item and applies its use effects
type UseItemRequest struct {
	UserID string `json:"user_id" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Item   string `json:"item" validate:"required,max=100"`
}

// HandleApplyEffects applies an item's effects for the given trigger
func HandleApplyEffects(svc effect.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ApplyEffectsRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Apply effects"); err != nil {
			return
		}

		trigger := domain.TriggerUse
		if req.Trigger != "" {
			trigger = domain.Trigger(strings.ToLower(req.Trigger))
		}

		result, err := svc.ApplyItemEffects(context.WithoutCancel(r.Context()), req.UserID, req.Item, trigger)
		if err != nil {
			respondServiceError(w, r, "apply effects", err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}

// HandleUseItem consumes one item and applies its effects
func HandleUseItem(svc effect.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UseItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Use item"); err != nil {
			return
		}

		result, err := svc.UseItem(context.WithoutCancel(r.Context()), req.UserID, req.Item)
		if err != nil {
			respondServiceError(w, r, "use item", err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}

// HandleGetActiveEffects lists a user's live timed effects
func HandleGetActiveEffects(svc effect.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetQueryParam(r, w, ParamUserID)
		if !ok {
			return
		}

		effects, err := svc.GetActiveEffects(context.WithoutCancel(r.Context()), userID)
		if err != nil {
			respondServiceError(w, r, "get active effects", err)
			return
		}

		respondJSON(w, http.StatusOK, effects)
	}
}

// HandleGetStats returns base and effective stats
func HandleGetStats(svc effect.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetQueryParam(r, w, ParamUserID)
		if !ok {
			return
		}

		stats, err := svc.GetEffectiveStats(context.WithoutCancel(r.Context()), userID)
		if err != nil {
			respondServiceError(w, r, "get stats", err)
			return
		}

		respondJSON(w, http.StatusOK, stats)
	}
}
