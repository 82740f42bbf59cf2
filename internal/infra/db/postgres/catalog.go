package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/leeboklee/rsvshop-sub002/internal/domain/catalog"
	"github.com/leeboklee/rsvshop-sub002/internal/domain/pricing"
)

func (s *Store) ListHotels(ctx context.Context) ([]catalog.Hotel, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, address, phone, created_at
		FROM hotels
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("select hotels: %w", err)
	}
	defer rows.Close()

	var list []catalog.Hotel
	for rows.Next() {
		var h catalog.Hotel
		if err := rows.Scan(&h.ID, &h.Name, &h.Address, &h.Phone, &h.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, h)
	}
	return list, rows.Err()
}

func (s *Store) CreateHotel(ctx context.Context, h *catalog.Hotel) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	err := s.pool.QueryRow(ctx, `
		INSERT INTO hotels (id, name, address, phone)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`, h.ID, h.Name, h.Address, h.Phone).Scan(&h.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert hotel: %w", err)
	}
	return nil
}

func (s *Store) ListRooms(ctx context.Context, hotelID *string) ([]catalog.Room, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, hotel_id::text, name, description, capacity, created_at
		FROM rooms
		WHERE ($1::text IS NULL OR hotel_id::text = $1)
		ORDER BY created_at DESC
	`, hotelID)
	if err != nil {
		return nil, fmt.Errorf("select rooms: %w", err)
	}
	defer rows.Close()

	var list []catalog.Room
	for rows.Next() {
		var r catalog.Room
		if err := rows.Scan(&r.ID, &r.HotelID, &r.Name, &r.Description, &r.Capacity, &r.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, r)
	}
	return list, rows.Err()
}

func (s *Store) CreateRoom(ctx context.Context, r *catalog.Room) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	err := s.pool.QueryRow(ctx, `
		INSERT INTO rooms (id, hotel_id, name, description, capacity)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`, r.ID, r.HotelID, r.Name, r.Description, r.Capacity).Scan(&r.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert room: %w", err)
	}
	return nil
}

func (s *Store) ListPackages(ctx context.Context, roomID *string) ([]pricing.Package, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, COALESCE(room_id::text, ''), name, description, price, created_at
		FROM packages
		WHERE ($1::text IS NULL OR room_id::text = $1)
		ORDER BY created_at DESC
	`, roomID)
	if err != nil {
		return nil, fmt.Errorf("select packages: %w", err)
	}
	defer rows.Close()

	var list []pricing.Package
	for rows.Next() {
		var p pricing.Package
		if err := rows.Scan(&p.ID, &p.RoomID, &p.Name, &p.Description, &p.Price, &p.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (s *Store) CreatePackage(ctx context.Context, p *pricing.Package) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	var roomID *string
	if p.RoomID != "" {
		roomID = &p.RoomID
	}
	err := s.pool.QueryRow(ctx, `
		INSERT INTO packages (id, room_id, name, description, price)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`, p.ID, roomID, p.Name, p.Description, p.Price).Scan(&p.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert package: %w", err)
	}
	return nil
}
