package handlers

import (
	"context"
	"time"

	"github.com/leeboklee/rsvshop-sub002/internal/app/config"
	"github.com/leeboklee/rsvshop-sub002/internal/domain/booking"
	"github.com/leeboklee/rsvshop-sub002/internal/domain/catalog"
	"github.com/leeboklee/rsvshop-sub002/internal/domain/pricing"
	"github.com/leeboklee/rsvshop-sub002/internal/domain/report/pdf"
)

// Store lists what the admin handlers need from the data layer. The postgres
// store satisfies it; tests plug in an in-memory fake.
type Store interface {
	ListSurchargeRules(ctx context.Context, f pricing.RuleFilter) ([]pricing.SurchargeRule, error)
	CreateSurchargeRule(ctx context.Context, r *pricing.SurchargeRule) error
	UpdateSurchargeRule(ctx context.Context, r *pricing.SurchargeRule) error
	DeleteSurchargeRule(ctx context.Context, id string) error

	ListInventories(ctx context.Context, f pricing.InventoryFilter) ([]pricing.InventoryDay, error)
	CreateInventory(ctx context.Context, inv *pricing.InventoryDay) error
	UpdateInventory(ctx context.Context, inv *pricing.InventoryDay) error
	DeleteInventory(ctx context.Context, id string) error

	ListHotels(ctx context.Context) ([]catalog.Hotel, error)
	CreateHotel(ctx context.Context, h *catalog.Hotel) error
	ListRooms(ctx context.Context, hotelID *string) ([]catalog.Room, error)
	CreateRoom(ctx context.Context, r *catalog.Room) error
	ListPackages(ctx context.Context, roomID *string) ([]pricing.Package, error)
	CreatePackage(ctx context.Context, p *pricing.Package) error

	ListBookings(ctx context.Context, status *booking.Status, channel *string) ([]booking.Booking, error)
	UpdateBookingStatus(ctx context.Context, id string, status booking.Status) (*booking.Booking, error)
	BookingsBetween(ctx context.Context, start, end time.Time) ([]booking.Booking, error)
}

type Handlers struct {
	Store    Store
	Cfg      config.Config
	Pricing  *pricing.Engine
	Bookings *booking.Manager
	PDF      pdf.Generator
}

func New(store Store, cfg config.Config, engine *pricing.Engine, bookings *booking.Manager, pdfGen pdf.Generator) *Handlers {
	return &Handlers{
		Store:    store,
		Cfg:      cfg,
		Pricing:  engine,
		Bookings: bookings,
		PDF:      pdfGen,
	}
}
