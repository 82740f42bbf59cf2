package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/leeboklee/rsvshop-sub002/internal/domain/booking"
	"github.com/leeboklee/rsvshop-sub002/internal/domain/pricing"
)

const bookingColumns = `id, room_id::text, package_id::text, guest_name, guest_phone, guest_email,
	check_in, check_out, total_amount, status, notes, created_at`

// CreateBooking persists a booking and its line items in one serializable
// transaction. The closed-date check runs again inside the transaction, so a
// day closed between quote and commit aborts the whole booking instead of
// slipping through the check-then-act gap.
func (s *Store) CreateBooking(ctx context.Context, b *booking.Booking) error {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			log.Printf("booking tx rollback: %v", err)
		}
	}()

	var closedDate time.Time
	err = tx.QueryRow(ctx, `
		SELECT date
		FROM package_inventories
		WHERE date BETWEEN $1 AND $2
		  AND room_id::text IS NOT DISTINCT FROM $3
		  AND package_id::text IS NOT DISTINCT FROM $4
		  AND closed
		ORDER BY date
		LIMIT 1
	`, b.CheckIn, b.CheckOut, b.RoomID, b.PackageID).Scan(&closedDate)
	if err == nil {
		return &booking.ClosedDateError{Date: pricing.FormatDate(closedDate)}
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("recheck closed dates: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO bookings (id, room_id, package_id, guest_name, guest_phone, guest_email,
		                      check_in, check_out, total_amount, status, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, b.ID, b.RoomID, b.PackageID, b.GuestName, b.GuestPhone, b.GuestEmail,
		b.CheckIn, b.CheckOut, b.TotalAmount, b.Status, b.Notes, b.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	for _, it := range b.Items {
		_, err = tx.Exec(ctx, `
			INSERT INTO booking_items (id, booking_id, package_id, date, price, quantity)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, it.ID, it.BookingID, it.PackageID, it.Date, it.Price, it.Quantity)
		if err != nil {
			return fmt.Errorf("insert booking item: %w", err)
		}
	}

	return tx.Commit(ctx)
}

func (s *Store) ListBookings(ctx context.Context, status *booking.Status, channel *string) ([]booking.Booking, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+bookingColumns+`
		FROM bookings
		WHERE ($1::text IS NULL OR status = $1)
		  AND ($2::text IS NULL OR notes LIKE '%channel=' || $2 || '%')
		ORDER BY created_at DESC
	`, status, channel)
	if err != nil {
		return nil, fmt.Errorf("select bookings: %w", err)
	}
	defer rows.Close()

	list, err := scanBookings(rows)
	if err != nil {
		return nil, err
	}
	if err := s.attachItems(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *Store) BookingsBetween(ctx context.Context, start, end time.Time) ([]booking.Booking, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+bookingColumns+`
		FROM bookings
		WHERE created_at >= $1 AND created_at < $2 + INTERVAL '1 day'
		ORDER BY created_at
	`, start, end)
	if err != nil {
		return nil, fmt.Errorf("select bookings in range: %w", err)
	}
	defer rows.Close()

	list, err := scanBookings(rows)
	if err != nil {
		return nil, err
	}
	if err := s.attachItems(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *Store) UpdateBookingStatus(ctx context.Context, id string, status booking.Status) (*booking.Booking, error) {
	rows, err := s.pool.Query(ctx, `
		UPDATE bookings SET status = $2
		WHERE id = $1
		RETURNING `+bookingColumns, id, status)
	if err != nil {
		return nil, fmt.Errorf("update booking status: %w", err)
	}
	defer rows.Close()

	list, err := scanBookings(rows)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, booking.ErrNotFound
	}
	return &list[0], nil
}

func scanBookings(rows pgx.Rows) ([]booking.Booking, error) {
	var list []booking.Booking
	for rows.Next() {
		var b booking.Booking
		if err := rows.Scan(
			&b.ID, &b.RoomID, &b.PackageID, &b.GuestName, &b.GuestPhone, &b.GuestEmail,
			&b.CheckIn, &b.CheckOut, &b.TotalAmount, &b.Status, &b.Notes, &b.CreatedAt,
		); err != nil {
			return nil, err
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

func (s *Store) attachItems(ctx context.Context, bookings []booking.Booking) error {
	if len(bookings) == 0 {
		return nil
	}
	ids := make([]string, 0, len(bookings))
	index := make(map[string]*booking.Booking, len(bookings))
	for i := range bookings {
		ids = append(ids, bookings[i].ID)
		index[bookings[i].ID] = &bookings[i]
	}

	rows, err := s.pool.Query(ctx, `
		SELECT id, booking_id, package_id, date, price, quantity
		FROM booking_items
		WHERE booking_id = ANY($1::uuid[])
		ORDER BY date
	`, ids)
	if err != nil {
		return fmt.Errorf("select booking items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var it booking.Item
		if err := rows.Scan(&it.ID, &it.BookingID, &it.PackageID, &it.Date, &it.Price, &it.Quantity); err != nil {
			return err
		}
		if b, ok := index[it.BookingID]; ok {
			b.Items = append(b.Items, it)
		}
	}
	return rows.Err()
}
