package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/leeboklee/rsvshop-sub002/internal/domain/pricing"
	"github.com/leeboklee/rsvshop-sub002/internal/domain/report"
)

// BookingSummary aggregates bookings created in the requested range, last 30
// days when no range is given. format=pdf renders the summary as a PDF.
func (h *Handlers) BookingSummary(w http.ResponseWriter, r *http.Request) {
	now := time.Now().UTC()
	start := pricing.DateOnly(now.AddDate(0, 0, -30))
	end := pricing.DateOnly(now)

	if v := optParam(r, "startDate"); v != nil {
		t, err := pricing.ParseDate(*v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "날짜 범위 오류")
			return
		}
		start = t
	}
	if v := optParam(r, "endDate"); v != nil {
		t, err := pricing.ParseDate(*v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "날짜 범위 오류")
			return
		}
		end = t
	}
	if start.After(end) {
		writeError(w, http.StatusBadRequest, "날짜 범위 오류")
		return
	}

	groupBy := report.GroupDaily
	if v := optParam(r, "groupBy"); v != nil {
		groupBy = report.GroupBy(*v)
	}

	bookings, err := h.Store.BookingsBetween(r.Context(), start, end)
	if err != nil {
		log.Printf("booking summary: %v", err)
		writeError(w, http.StatusInternalServerError, "failed")
		return
	}

	summary := report.Summarize(bookings, start, end, groupBy)

	if v := optParam(r, "format"); v != nil && *v == "pdf" {
		pdfBytes, err := h.PDF.Generate(summary)
		if err != nil {
			log.Printf("booking summary pdf: %v", err)
			writeError(w, http.StatusInternalServerError, "pdf generation failed")
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition",
			fmt.Sprintf(`attachment; filename="booking-summary-%s-%s.pdf"`, summary.StartDate, summary.EndDate))
		w.WriteHeader(http.StatusOK)
		w.Write(pdfBytes)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}
