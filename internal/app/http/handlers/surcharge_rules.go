package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/leeboklee/rsvshop-sub002/internal/domain/pricing"
)

type surchargeRuleRequest struct {
	Enabled   *bool   `json:"enabled"`
	Scope     string  `json:"scope"`
	RoomID    *string `json:"roomId"`
	PackageID *string `json:"packageId"`
	Channel   *string `json:"channel"`
	StartDate string  `json:"startDate"`
	EndDate   string  `json:"endDate"`
	DowMask   *int    `json:"dowMask"`
	RuleType  string  `json:"ruleType"`
	Amount    int64   `json:"amount"`
	Priority  int     `json:"priority"`
}

func (req *surchargeRuleRequest) toRule() (*pricing.SurchargeRule, string) {
	var scope pricing.Scope
	switch pricing.ScopeKind(req.Scope) {
	case pricing.ScopeHotel:
		scope = pricing.HotelScope()
	case pricing.ScopeRoom:
		if req.RoomID == nil || *req.RoomID == "" {
			return nil, "roomId required for ROOM scope"
		}
		scope = pricing.RoomScope(*req.RoomID)
	case pricing.ScopePackage:
		if req.PackageID == nil || *req.PackageID == "" {
			return nil, "packageId required for PACKAGE scope"
		}
		scope = pricing.PackageScope(*req.PackageID)
	default:
		return nil, "scope must be HOTEL, ROOM or PACKAGE"
	}

	ruleType := pricing.RuleType(req.RuleType)
	if ruleType != pricing.RuleFixed && ruleType != pricing.RulePercent {
		return nil, "ruleType must be FIXED or PERCENT"
	}

	start, err1 := pricing.ParseDate(req.StartDate)
	end, err2 := pricing.ParseDate(req.EndDate)
	if err1 != nil || err2 != nil || start.After(end) {
		return nil, "날짜 범위 오류"
	}

	if req.DowMask != nil && (*req.DowMask < 0 || *req.DowMask > 127) {
		return nil, "dowMask must be 0..127"
	}

	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}

	return &pricing.SurchargeRule{
		Enabled:   enabled,
		Scope:     scope,
		Channel:   req.Channel,
		StartDate: start,
		EndDate:   end,
		DowMask:   req.DowMask,
		RuleType:  ruleType,
		Amount:    req.Amount,
		Priority:  req.Priority,
	}, ""
}

func (h *Handlers) ListSurchargeRules(w http.ResponseWriter, r *http.Request) {
	var f pricing.RuleFilter
	if v := optParam(r, "scope"); v != nil {
		kind := pricing.ScopeKind(*v)
		f.Scope = &kind
	}
	f.RoomID = optParam(r, "roomId")
	f.PackageID = optParam(r, "packageId")

	list, err := h.Store.ListSurchargeRules(r.Context(), f)
	if err != nil {
		log.Printf("surcharge rules list: %v", err)
		writeError(w, http.StatusInternalServerError, "failed")
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *Handlers) CreateSurchargeRule(w http.ResponseWriter, r *http.Request) {
	var req surchargeRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad request")
		return
	}
	rule, msg := req.toRule()
	if msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	if err := h.Store.CreateSurchargeRule(r.Context(), rule); err != nil {
		log.Printf("surcharge rule create: %v", err)
		writeError(w, http.StatusInternalServerError, "failed")
		return
	}
	writeJSON(w, http.StatusCreated, rule)
}

func (h *Handlers) UpdateSurchargeRule(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req surchargeRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad request")
		return
	}
	rule, msg := req.toRule()
	if msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	rule.ID = id

	if err := h.Store.UpdateSurchargeRule(r.Context(), rule); err != nil {
		if errors.Is(err, pricing.ErrRuleNotFound) {
			writeError(w, http.StatusNotFound, "rule not found")
			return
		}
		log.Printf("surcharge rule update: %v", err)
		writeError(w, http.StatusInternalServerError, "failed")
		return
	}
	writeJSON(w, http.StatusOK, rule)
}

func (h *Handlers) DeleteSurchargeRule(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Store.DeleteSurchargeRule(r.Context(), id); err != nil {
		if errors.Is(err, pricing.ErrRuleNotFound) {
			writeError(w, http.StatusNotFound, "rule not found")
			return
		}
		log.Printf("surcharge rule delete: %v", err)
		writeError(w, http.StatusInternalServerError, "failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
