package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/leeboklee/rsvshop-sub002/internal/domain/pricing"
)

type inventoryRequest struct {
	Date      string  `json:"date"`
	RoomID    *string `json:"roomId"`
	PackageID *string `json:"packageId"`
	Allotment *int    `json:"allotment"`
	Closed    bool    `json:"closed"`
}

func (h *Handlers) ListInventories(w http.ResponseWriter, r *http.Request) {
	f := pricing.InventoryFilter{
		RoomID:    optParam(r, "roomId"),
		PackageID: optParam(r, "packageId"),
	}
	if v := optParam(r, "startDate"); v != nil {
		t, err := pricing.ParseDate(*v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "날짜 범위 오류")
			return
		}
		f.Start = &t
	}
	if v := optParam(r, "endDate"); v != nil {
		t, err := pricing.ParseDate(*v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "날짜 범위 오류")
			return
		}
		f.End = &t
	}

	list, err := h.Store.ListInventories(r.Context(), f)
	if err != nil {
		log.Printf("inventories list: %v", err)
		writeError(w, http.StatusInternalServerError, "failed")
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *Handlers) CreateInventory(w http.ResponseWriter, r *http.Request) {
	var req inventoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad request")
		return
	}
	if req.Date == "" {
		writeError(w, http.StatusBadRequest, "date required")
		return
	}
	date, err := pricing.ParseDate(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "날짜 범위 오류")
		return
	}

	allotment := 0
	if req.Allotment != nil {
		allotment = *req.Allotment
	}
	inv := &pricing.InventoryDay{
		Date:      date,
		RoomID:    req.RoomID,
		PackageID: req.PackageID,
		Allotment: allotment,
		Closed:    req.Closed,
	}

	if err := h.Store.CreateInventory(r.Context(), inv); err != nil {
		log.Printf("inventory create: %v", err)
		writeError(w, http.StatusInternalServerError, "failed")
		return
	}
	writeJSON(w, http.StatusCreated, inv)
}

func (h *Handlers) UpdateInventory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req inventoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad request")
		return
	}

	allotment := 0
	if req.Allotment != nil {
		allotment = *req.Allotment
	}
	inv := &pricing.InventoryDay{ID: id, Allotment: allotment, Closed: req.Closed}

	if err := h.Store.UpdateInventory(r.Context(), inv); err != nil {
		if errors.Is(err, pricing.ErrInventoryNotFound) {
			writeError(w, http.StatusNotFound, "inventory not found")
			return
		}
		log.Printf("inventory update: %v", err)
		writeError(w, http.StatusInternalServerError, "failed")
		return
	}
	writeJSON(w, http.StatusOK, inv)
}

func (h *Handlers) DeleteInventory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Store.DeleteInventory(r.Context(), id); err != nil {
		if errors.Is(err, pricing.ErrInventoryNotFound) {
			writeError(w, http.StatusNotFound, "inventory not found")
			return
		}
		log.Printf("inventory delete: %v", err)
		writeError(w, http.StatusInternalServerError, "failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
