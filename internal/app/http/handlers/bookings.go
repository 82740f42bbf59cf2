package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/leeboklee/rsvshop-sub002/internal/domain/booking"
	"github.com/leeboklee/rsvshop-sub002/internal/domain/pricing"
)

type createBookingRequest struct {
	PackageID  string  `json:"packageId"`
	RoomID     *string `json:"roomId"`
	Channel    *string `json:"channel"`
	StartDate  string  `json:"startDate"`
	EndDate    string  `json:"endDate"`
	GuestName  string  `json:"guestName"`
	GuestPhone string  `json:"guestPhone"`
	GuestEmail *string `json:"guestEmail"`
}

func (h *Handlers) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req createBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad request")
		return
	}
	if req.PackageID == "" || req.StartDate == "" || req.EndDate == "" ||
		strings.TrimSpace(req.GuestName) == "" || strings.TrimSpace(req.GuestPhone) == "" {
		writeError(w, http.StatusBadRequest, "필수값 누락")
		return
	}

	start, err1 := pricing.ParseDate(req.StartDate)
	end, err2 := pricing.ParseDate(req.EndDate)
	if err1 != nil || err2 != nil {
		writeError(w, http.StatusBadRequest, "날짜 범위 오류")
		return
	}

	created, err := h.Bookings.Create(r.Context(), booking.CreateInput{
		PackageID:  req.PackageID,
		RoomID:     req.RoomID,
		Channel:    req.Channel,
		StartDate:  start,
		EndDate:    end,
		GuestName:  req.GuestName,
		GuestPhone: req.GuestPhone,
		GuestEmail: req.GuestEmail,
	})
	if err != nil {
		switch {
		case booking.AsClosedDateError(err) != nil:
			writeError(w, http.StatusConflict, booking.AsClosedDateError(err).Error())
		case booking.AsInputError(err) != nil:
			writeError(w, http.StatusBadRequest, "필수값 누락")
		case errors.Is(err, pricing.ErrPackageNotFound):
			writeError(w, http.StatusNotFound, "패키지 없음")
		case errors.Is(err, pricing.ErrInvalidRange):
			writeError(w, http.StatusBadRequest, "날짜 범위 오류")
		default:
			log.Printf("booking create: %v", err)
			writeError(w, http.StatusInternalServerError, "failed")
		}
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *Handlers) ListBookings(w http.ResponseWriter, r *http.Request) {
	var status *booking.Status
	if v := optParam(r, "status"); v != nil {
		st := booking.Status(*v)
		if !booking.ValidStatus(st) {
			writeError(w, http.StatusBadRequest, "invalid status")
			return
		}
		status = &st
	}

	list, err := h.Store.ListBookings(r.Context(), status, optParam(r, "channel"))
	if err != nil {
		log.Printf("bookings list: %v", err)
		writeError(w, http.StatusInternalServerError, "failed")
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *Handlers) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req struct {
		Status booking.Status `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Status == "" {
		writeError(w, http.StatusBadRequest, "status required")
		return
	}
	if !booking.ValidStatus(req.Status) {
		writeError(w, http.StatusBadRequest, "invalid status")
		return
	}

	updated, err := h.Store.UpdateBookingStatus(r.Context(), id, req.Status)
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			writeError(w, http.StatusNotFound, "booking not found")
			return
		}
		log.Printf("booking status update: %v", err)
		writeError(w, http.StatusInternalServerError, "failed")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}
