package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/leeboklee/rsvshop-sub002/internal/domain/catalog"
	"github.com/leeboklee/rsvshop-sub002/internal/domain/pricing"
)

func (h *Handlers) ListHotels(w http.ResponseWriter, r *http.Request) {
	list, err := h.Store.ListHotels(r.Context())
	if err != nil {
		log.Printf("hotels list: %v", err)
		writeError(w, http.StatusInternalServerError, "failed")
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *Handlers) CreateHotel(w http.ResponseWriter, r *http.Request) {
	var hotel catalog.Hotel
	if err := json.NewDecoder(r.Body).Decode(&hotel); err != nil {
		writeError(w, http.StatusBadRequest, "bad request")
		return
	}
	if strings.TrimSpace(hotel.Name) == "" {
		writeError(w, http.StatusBadRequest, "name required")
		return
	}

	if err := h.Store.CreateHotel(r.Context(), &hotel); err != nil {
		log.Printf("hotel create: %v", err)
		writeError(w, http.StatusInternalServerError, "failed")
		return
	}
	writeJSON(w, http.StatusCreated, hotel)
}

func (h *Handlers) ListRooms(w http.ResponseWriter, r *http.Request) {
	list, err := h.Store.ListRooms(r.Context(), optParam(r, "hotelId"))
	if err != nil {
		log.Printf("rooms list: %v", err)
		writeError(w, http.StatusInternalServerError, "failed")
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *Handlers) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var room catalog.Room
	if err := json.NewDecoder(r.Body).Decode(&room); err != nil {
		writeError(w, http.StatusBadRequest, "bad request")
		return
	}
	if strings.TrimSpace(room.Name) == "" {
		writeError(w, http.StatusBadRequest, "name required")
		return
	}
	if room.Capacity <= 0 {
		room.Capacity = 2
	}

	if err := h.Store.CreateRoom(r.Context(), &room); err != nil {
		log.Printf("room create: %v", err)
		writeError(w, http.StatusInternalServerError, "failed")
		return
	}
	writeJSON(w, http.StatusCreated, room)
}

func (h *Handlers) ListPackages(w http.ResponseWriter, r *http.Request) {
	list, err := h.Store.ListPackages(r.Context(), optParam(r, "roomId"))
	if err != nil {
		log.Printf("packages list: %v", err)
		writeError(w, http.StatusInternalServerError, "failed")
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *Handlers) CreatePackage(w http.ResponseWriter, r *http.Request) {
	var pkg pricing.Package
	if err := json.NewDecoder(r.Body).Decode(&pkg); err != nil {
		writeError(w, http.StatusBadRequest, "bad request")
		return
	}
	if strings.TrimSpace(pkg.Name) == "" {
		writeError(w, http.StatusBadRequest, "name required")
		return
	}
	if pkg.Price < 0 {
		writeError(w, http.StatusBadRequest, "price must be >= 0")
		return
	}

	if err := h.Store.CreatePackage(r.Context(), &pkg); err != nil {
		log.Printf("package create: %v", err)
		writeError(w, http.StatusInternalServerError, "failed")
		return
	}
	writeJSON(w, http.StatusCreated, pkg)
}
