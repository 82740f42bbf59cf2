package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/leeboklee/rsvshop-sub002/internal/domain/pricing"
)

type fakeStore struct {
	pkg         *pricing.Package
	inventories []pricing.InventoryDay
	rules       []pricing.SurchargeRule

	saved []*Booking
}

func (f *fakeStore) PackageByID(_ context.Context, id string) (*pricing.Package, error) {
	if f.pkg != nil && f.pkg.ID == id {
		p := *f.pkg
		return &p, nil
	}
	return nil, pricing.ErrPackageNotFound
}

func (f *fakeStore) InventoryDays(_ context.Context, start, end time.Time, roomID, packageID *string) ([]pricing.InventoryDay, error) {
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

func (f *fakeStore) EnabledRules(_ context.Context, _, _ time.Time, _ *string, _ string, _ *string) ([]pricing.SurchargeRule, error) {
	return f.rules, nil
}

func (f *fakeStore) CreateBooking(_ context.Context, b *Booking) error {
	f.saved = append(f.saved, b)
	return nil
}

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := pricing.ParseDate(s)
	if err != nil {
		t.Fatalf("parse %s: %v", s, err)
	}
	return d
}

func newManager(store *fakeStore) *Manager {
	return NewManager(pricing.NewEngine(store), store)
}

func validInput(t *testing.T) CreateInput {
	return CreateInput{
		PackageID:  "P1",
		StartDate:  date(t, "2024-07-05"),
		EndDate:    date(t, "2024-07-07"),
		GuestName:  "홍길동",
		GuestPhone: "010-1234-5678",
	}
}

func TestCreateBookingTotalsMatchQuote(t *testing.T) {
	store := &fakeStore{
		pkg: &pricing.Package{ID: "P1", Price: 100000},
		rules: []pricing.SurchargeRule{{
			ID: "season", Enabled: true, Scope: pricing.HotelScope(),
			StartDate: date(t, "2024-07-01"), EndDate: date(t, "2024-07-31"),
			RuleType: pricing.RulePercent, Amount: 5,
		}},
	}
	m := newManager(store)

	quote, err := pricing.NewEngine(store).Quote(context.Background(), pricing.QuoteRequest{
		PackageID: "P1",
		StartDate: date(t, "2024-07-05"),
		EndDate:   date(t, "2024-07-07"),
	})
	if err != nil {
		t.Fatalf("quote: %v", err)
	}

	b, err := m.Create(context.Background(), validInput(t))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if b.TotalAmount != quote.Total() {
		t.Fatalf("booking total %d != quote total %d", b.TotalAmount, quote.Total())
	}
	if len(b.Items) != len(quote.Days) {
		t.Fatalf("expected %d items, got %d", len(quote.Days), len(b.Items))
	}
	for i, it := range b.Items {
		if it.Price != quote.Days[i].Total {
			t.Errorf("item %d price %d != day total %d", i, it.Price, quote.Days[i].Total)
		}
		if it.Quantity != 1 {
			t.Errorf("item %d quantity %d", i, it.Quantity)
		}
	}
	if b.Status != StatusPending {
		t.Errorf("expected PENDING, got %s", b.Status)
	}
	if len(store.saved) != 1 {
		t.Fatalf("expected 1 saved booking, got %d", len(store.saved))
	}
}

func TestCreateBookingRejectsClosedDate(t *testing.T) {
	store := &fakeStore{
		pkg: &pricing.Package{ID: "P1", Price: 100000},
		inventories: []pricing.InventoryDay{
			{ID: "i1", Date: date(t, "2024-07-06"), Closed: true},
		},
	}
	m := newManager(store)

	_, err := m.Create(context.Background(), validInput(t))
	cde := AsClosedDateError(err)
	if cde == nil {
		t.Fatalf("expected ClosedDateError, got %v", err)
	}
	if cde.Date != "2024-07-06" {
		t.Fatalf("expected closed date 2024-07-06, got %s", cde.Date)
	}
	if cde.Error() != "2024-07-06 마감됨" {
		t.Fatalf("unexpected message %q", cde.Error())
	}
	if len(store.saved) != 0 {
		t.Fatalf("no booking must be persisted on conflict, got %d", len(store.saved))
	}
}

func TestCreateBookingValidation(t *testing.T) {
	store := &fakeStore{pkg: &pricing.Package{ID: "P1", Price: 100000}}
	m := newManager(store)

	tests := []struct {
		name   string
		mutate func(*CreateInput)
	}{
		{"missing guest name", func(in *CreateInput) { in.GuestName = " " }},
		{"missing guest phone", func(in *CreateInput) { in.GuestPhone = "" }},
		{"missing package", func(in *CreateInput) { in.PackageID = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput(t)
			tt.mutate(&in)
			_, err := m.Create(context.Background(), in)
			if AsInputError(err) == nil {
				t.Fatalf("expected InputError, got %v", err)
			}
			if len(store.saved) != 0 {
				t.Fatalf("nothing may be persisted on validation failure")
			}
		})
	}
}

func TestCreateBookingUnknownPackage(t *testing.T) {
	store := &fakeStore{}
	m := newManager(store)

	_, err := m.Create(context.Background(), validInput(t))
	if !errors.Is(err, pricing.ErrPackageNotFound) {
		t.Fatalf("expected ErrPackageNotFound, got %v", err)
	}
}

func TestCreateBookingInvertedRange(t *testing.T) {
	store := &fakeStore{pkg: &pricing.Package{ID: "P1", Price: 100000}}
	m := newManager(store)

	in := validInput(t)
	in.StartDate = date(t, "2024-07-07")
	in.EndDate = date(t, "2024-07-05")
	_, err := m.Create(context.Background(), in)
	if !errors.Is(err, pricing.ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

func TestCreateBookingChannelNote(t *testing.T) {
	store := &fakeStore{pkg: &pricing.Package{ID: "P1", Price: 100000}}
	m := newManager(store)

	in := validInput(t)
	kakao := "KAKAO"
	in.Channel = &kakao
	b, err := m.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if b.Notes != "channel=KAKAO; package=P1" {
		t.Fatalf("unexpected notes %q", b.Notes)
	}

	in2 := validInput(t)
	b2, err := m.Create(context.Background(), in2)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if b2.Notes != "channel=SITE; package=P1" {
		t.Fatalf("default channel note: %q", b2.Notes)
	}
}
