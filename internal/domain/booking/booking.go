package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/leeboklee/rsvshop-sub002/internal/domain/pricing"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
)

func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

type Booking struct {
	ID          string    `json:"id"`
	RoomID      *string   `json:"roomId"`
	PackageID   string    `json:"packageId"`
	GuestName   string    `json:"guestName"`
	GuestPhone  string    `json:"guestPhone"`
	GuestEmail  *string   `json:"guestEmail"`
	CheckIn     time.Time `json:"checkInDate"`
	CheckOut    time.Time `json:"checkOutDate"`
	TotalAmount int64     `json:"totalAmount"`
	Status      Status    `json:"status"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"createdAt"`
	Items       []Item    `json:"bookingItems"`
}

// Item is one priced night of a booking.
type Item struct {
	ID        string    `json:"id"`
	BookingID string    `json:"bookingId"`
	PackageID string    `json:"packageId"`
	Date      time.Time `json:"date"`
	Price     int64     `json:"price"`
	Quantity  int       `json:"quantity"`
}

type CreateInput struct {
	PackageID  string
	RoomID     *string
	Channel    *string
	StartDate  time.Time
	EndDate    time.Time
	GuestName  string
	GuestPhone string
	GuestEmail *string
}

func (in *CreateInput) validate() error {
	inputErr := newInputError()
	if in.PackageID == "" {
		inputErr.add("packageId", "packageId is required")
	}
	if strings.TrimSpace(in.GuestName) == "" {
		inputErr.add("guestName", "guestName is required")
	}
	if strings.TrimSpace(in.GuestPhone) == "" {
		inputErr.add("guestPhone", "guestPhone is required")
	}
	if inputErr.count() > 0 {
		return inputErr
	}
	return nil
}

// store persists a booking with its items atomically. Implementations must
// re-check closed dates inside the same transaction as the insert and return
// *ClosedDateError when a day got closed after the quote was computed.
type store interface {
	CreateBooking(ctx context.Context, b *Booking) error
}

type Manager struct {
	engine *pricing.Engine
	store  store
}

func NewManager(engine *pricing.Engine, store store) *Manager {
	return &Manager{engine: engine, store: store}
}

// Create re-runs the quote computation to obtain authoritative prices, rejects
// the whole booking on the first closed date, and persists the booking with
// one line item per night. Nothing is written when any day is closed.
func (m *Manager) Create(ctx context.Context, in CreateInput) (*Booking, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	quote, err := m.engine.Quote(ctx, pricing.QuoteRequest{
		PackageID: in.PackageID,
		RoomID:    in.RoomID,
		Channel:   in.Channel,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
	})
	if err != nil {
		return nil, err
	}

	for _, day := range quote.Days {
		if day.Closed {
			return nil, &ClosedDateError{Date: day.Date}
		}
	}

	channel := "SITE"
	if in.Channel != nil && *in.Channel != "" {
		channel = *in.Channel
	}

	b := &Booking{
		ID:          uuid.NewString(),
		RoomID:      in.RoomID,
		PackageID:   in.PackageID,
		GuestName:   strings.TrimSpace(in.GuestName),
		GuestPhone:  strings.TrimSpace(in.GuestPhone),
		GuestEmail:  in.GuestEmail,
		CheckIn:     pricing.DateOnly(in.StartDate),
		CheckOut:    pricing.DateOnly(in.EndDate),
		TotalAmount: quote.Total(),
		Status:      StatusPending,
		Notes:       fmt.Sprintf("channel=%s; package=%s", channel, in.PackageID),
		CreatedAt:   time.Now().UTC(),
	}
	for _, day := range quote.Days {
		date, _ := pricing.ParseDate(day.Date)
		b.Items = append(b.Items, Item{
			ID:        uuid.NewString(),
			BookingID: b.ID,
			PackageID: in.PackageID,
			Date:      date,
			Price:     day.Total,
			Quantity:  1,
		})
	}

	if err := m.store.CreateBooking(ctx, b); err != nil {
		return nil, fmt.Errorf("save booking: %w", err)
	}
	return b, nil
}
