package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/leeboklee/rsvshop-sub002/internal/domain/pricing"
)

func (s *Store) ListInventories(ctx context.Context, f pricing.InventoryFilter) ([]pricing.InventoryDay, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, date, room_id::text, package_id::text, allotment, closed
		FROM package_inventories
		WHERE ($1::text IS NULL OR room_id::text = $1)
		  AND ($2::text IS NULL OR package_id::text = $2)
		  AND ($3::date IS NULL OR date >= $3)
		  AND ($4::date IS NULL OR date <= $4)
		ORDER BY date
	`, f.RoomID, f.PackageID, f.Start, f.End)
	if err != nil {
		return nil, fmt.Errorf("select inventories: %w", err)
	}
	defer rows.Close()
	return scanInventories(rows)
}

// CreateInventory upserts on the (date, room, package) scope so repeated admin
// saves edit the one existing row instead of violating the scope index.
func (s *Store) CreateInventory(ctx context.Context, inv *pricing.InventoryDay) error {
	if inv.ID == "" {
		inv.ID = uuid.NewString()
	}
	err := s.pool.QueryRow(ctx, `
		INSERT INTO package_inventories (id, date, room_id, package_id, allotment, closed)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (date, COALESCE(room_id::text, ''), COALESCE(package_id::text, ''))
		DO UPDATE SET allotment = EXCLUDED.allotment, closed = EXCLUDED.closed
		RETURNING id
	`, inv.ID, inv.Date, inv.RoomID, inv.PackageID, inv.Allotment, inv.Closed).Scan(&inv.ID)
	if err != nil {
		return fmt.Errorf("upsert inventory: %w", err)
	}
	return nil
}

func (s *Store) UpdateInventory(ctx context.Context, inv *pricing.InventoryDay) error {
	rows, err := s.pool.Query(ctx, `
		UPDATE package_inventories
		SET allotment = $2, closed = $3
		WHERE id = $1
		RETURNING id, date, room_id::text, package_id::text, allotment, closed
	`, inv.ID, inv.Allotment, inv.Closed)
	if err != nil {
		return fmt.Errorf("update inventory: %w", err)
	}
	defer rows.Close()

	updated, err := scanInventories(rows)
	if err != nil {
		return err
	}
	if len(updated) == 0 {
		return pricing.ErrInventoryNotFound
	}
	*inv = updated[0]
	return nil
}

func (s *Store) DeleteInventory(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM package_inventories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete inventory: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pricing.ErrInventoryNotFound
	}
	return nil
}
