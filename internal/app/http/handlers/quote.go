package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/leeboklee/rsvshop-sub002/internal/domain/pricing"
)

func (h *Handlers) Quote(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	packageID := strings.TrimSpace(q.Get("packageId"))
	startDate := strings.TrimSpace(q.Get("startDate"))
	endDate := strings.TrimSpace(q.Get("endDate"))
	if packageID == "" || startDate == "" || endDate == "" {
		writeError(w, http.StatusBadRequest, "packageId, startDate, endDate 필수")
		return
	}

	start, err1 := pricing.ParseDate(startDate)
	end, err2 := pricing.ParseDate(endDate)
	if err1 != nil || err2 != nil {
		writeError(w, http.StatusBadRequest, "날짜 범위 오류")
		return
	}

	quote, err := h.Pricing.Quote(r.Context(), pricing.QuoteRequest{
		PackageID: packageID,
		RoomID:    optParam(r, "roomId"),
		Channel:   optParam(r, "channel"),
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		switch {
		case errors.Is(err, pricing.ErrPackageNotFound):
			writeError(w, http.StatusNotFound, "패키지 없음")
		case errors.Is(err, pricing.ErrInvalidRange):
			writeError(w, http.StatusBadRequest, "날짜 범위 오류")
		default:
			log.Printf("quote: %v", err)
			writeError(w, http.StatusInternalServerError, "failed")
		}
		return
	}

	writeJSON(w, http.StatusOK, quote)
}
