package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/leeboklee/rsvshop-sub002/internal/domain/booking"
	"github.com/leeboklee/rsvshop-sub002/internal/domain/pricing"
)

func postBooking(t *testing.T, h *Handlers, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.CreateBooking(w, req)
	return w
}

func TestCreateBookingHandlerOK(t *testing.T) {
	ps := &fakePricingStore{pkg: &pricing.Package{ID: "P1", Price: 100000}}
	rec := &bookingRecorder{}
	h := newTestHandlers(ps, rec)

	w := postBooking(t, h, `{
		"packageId": "P1",
		"startDate": "2024-07-05",
		"endDate": "2024-07-07",
		"guestName": "홍길동",
		"guestPhone": "010-1234-5678"
	}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var got booking.Booking
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.TotalAmount != 300000 {
		t.Errorf("total %d", got.TotalAmount)
	}
	if len(got.Items) != 3 {
		t.Errorf("items %d", len(got.Items))
	}
	if len(rec.saved) != 1 {
		t.Fatalf("expected booking persisted once, got %d", len(rec.saved))
	}
}

func TestCreateBookingHandlerMissingFields(t *testing.T) {
	h := newTestHandlers(&fakePricingStore{}, &bookingRecorder{})

	w := postBooking(t, h, `{"packageId": "P1", "startDate": "2024-07-05", "endDate": "2024-07-07"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "필수값 누락") {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}

func TestCreateBookingHandlerClosedDate(t *testing.T) {
	ps := &fakePricingStore{
		pkg: &pricing.Package{ID: "P1", Price: 100000},
		inventories: []pricing.InventoryDay{
			{ID: "i1", Date: mustDate(t, "2024-07-06"), Closed: true},
		},
	}
	rec := &bookingRecorder{}
	h := newTestHandlers(ps, rec)

	w := postBooking(t, h, `{
		"packageId": "P1",
		"startDate": "2024-07-05",
		"endDate": "2024-07-07",
		"guestName": "홍길동",
		"guestPhone": "010-1234-5678"
	}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "2024-07-06") {
		t.Fatalf("conflict must name the closed date: %s", w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "마감됨") {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
	if len(rec.saved) != 0 {
		t.Fatalf("nothing may be persisted on conflict, got %d bookings", len(rec.saved))
	}
}

func TestCreateBookingHandlerUnknownPackage(t *testing.T) {
	h := newTestHandlers(&fakePricingStore{}, &bookingRecorder{})

	w := postBooking(t, h, `{
		"packageId": "nope",
		"startDate": "2024-07-05",
		"endDate": "2024-07-07",
		"guestName": "홍길동",
		"guestPhone": "010-1234-5678"
	}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestCreateBookingHandlerInvertedRange(t *testing.T) {
	h := newTestHandlers(&fakePricingStore{pkg: &pricing.Package{ID: "P1"}}, &bookingRecorder{})

	w := postBooking(t, h, `{
		"packageId": "P1",
		"startDate": "2024-07-07",
		"endDate": "2024-07-05",
		"guestName": "홍길동",
		"guestPhone": "010-1234-5678"
	}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
