package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/leeboklee/rsvshop-sub002/internal/app/config"
	"github.com/leeboklee/rsvshop-sub002/internal/domain/booking"
	"github.com/leeboklee/rsvshop-sub002/internal/domain/pricing"
)

// fakePricingStore backs the engine in handler tests.
type fakePricingStore struct {
	pkg         *pricing.Package
	inventories []pricing.InventoryDay
	rules       []pricing.SurchargeRule
}

func (f *fakePricingStore) PackageByID(_ context.Context, id string) (*pricing.Package, error) {
	if f.pkg != nil && f.pkg.ID == id {
		p := *f.pkg
		return &p, nil
	}
	return nil, pricing.ErrPackageNotFound
}

func (f *fakePricingStore) InventoryDays(_ context.Context, start, end time.Time, _, _ *string) ([]pricing.InventoryDay, error) {
	var out []pricing.InventoryDay
	for _, inv := range f.inventories {
		d := pricing.DateOnly(inv.Date)
		if d.Before(start) || d.After(end) {
			continue
		}
		out = append(out, inv)
	}
	return out, nil
}

func (f *fakePricingStore) EnabledRules(_ context.Context, _, _ time.Time, _ *string, _ string, _ *string) ([]pricing.SurchargeRule, error) {
	return f.rules, nil
}

type bookingRecorder struct {
	saved []*booking.Booking
}

func (r *bookingRecorder) CreateBooking(_ context.Context, b *booking.Booking) error {
	r.saved = append(r.saved, b)
	return nil
}

func newTestHandlers(ps *fakePricingStore, rec *bookingRecorder) *Handlers {
	engine := pricing.NewEngine(ps)
	return New(nil, config.Config{}, engine, booking.NewManager(engine, rec), nil)
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := pricing.ParseDate(s)
	if err != nil {
		t.Fatalf("parse %s: %v", s, err)
	}
	return d
}

func TestQuoteHandlerOK(t *testing.T) {
	ps := &fakePricingStore{
		pkg: &pricing.Package{ID: "P1", Price: 100000},
		rules: []pricing.SurchargeRule{{
			ID: "season", Enabled: true, Scope: pricing.HotelScope(),
			StartDate: mustDate(t, "2024-07-01"), EndDate: mustDate(t, "2024-07-31"),
			RuleType: pricing.RulePercent, Amount: 5,
		}},
	}
	h := newTestHandlers(ps, &bookingRecorder{})

	req := httptest.NewRequest(http.MethodGet,
		"/v1/pricing/quote?packageId=P1&roomId=R1&startDate=2024-07-05&endDate=2024-07-07", nil)
	w := httptest.NewRecorder()
	h.Quote(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var got pricing.Quote
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.PackageID != "P1" {
		t.Errorf("packageId %q", got.PackageID)
	}
	if got.RoomID == nil || *got.RoomID != "R1" {
		t.Errorf("roomId %v", got.RoomID)
	}
	if len(got.Days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(got.Days))
	}
	for _, d := range got.Days {
		if d.Total != 105000 {
			t.Errorf("%s: expected 105000, got %d", d.Date, d.Total)
		}
	}
}

func TestQuoteHandlerMissingParams(t *testing.T) {
	h := newTestHandlers(&fakePricingStore{}, &bookingRecorder{})

	req := httptest.NewRequest(http.MethodGet, "/v1/pricing/quote?packageId=P1", nil)
	w := httptest.NewRecorder()
	h.Quote(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestQuoteHandlerUnknownPackage(t *testing.T) {
	h := newTestHandlers(&fakePricingStore{}, &bookingRecorder{})

	req := httptest.NewRequest(http.MethodGet,
		"/v1/pricing/quote?packageId=nope&startDate=2024-07-05&endDate=2024-07-07", nil)
	w := httptest.NewRecorder()
	h.Quote(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestQuoteHandlerBadDates(t *testing.T) {
	h := newTestHandlers(&fakePricingStore{pkg: &pricing.Package{ID: "P1"}}, &bookingRecorder{})

	for _, qs := range []string{
		"packageId=P1&startDate=notadate&endDate=2024-07-07",
		"packageId=P1&startDate=2024-07-07&endDate=2024-07-05",
	} {
		req := httptest.NewRequest(http.MethodGet, "/v1/pricing/quote?"+qs, nil)
		w := httptest.NewRecorder()
		h.Quote(w, req)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", qs, w.Code)
		}
	}
}
