package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/leeboklee/rsvshop-sub002/internal/domain/pricing"
)

// Store is the single data-access handle the whole service shares. It
// implements the pricing engine's read surface, the booking writer and the
// admin CRUD queries.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(db *DB) *Store {
	return &Store{pool: db.Pool}
}

func (s *Store) PackageByID(ctx context.Context, id string) (*pricing.Package, error) {
	var p pricing.Package
	err := s.pool.QueryRow(ctx, `
		SELECT id, COALESCE(room_id::text, ''), name, description, price, created_at
		FROM packages
		WHERE id = $1
	`, id).Scan(&p.ID, &p.RoomID, &p.Name, &p.Description, &p.Price, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, pricing.ErrPackageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select package: %w", err)
	}
	return &p, nil
}

func (s *Store) InventoryDays(ctx context.Context, start, end time.Time, roomID, packageID *string) ([]pricing.InventoryDay, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, date, room_id::text, package_id::text, allotment, closed
		FROM package_inventories
		WHERE date BETWEEN $1 AND $2
		  AND room_id::text IS NOT DISTINCT FROM $3
		  AND package_id::text IS NOT DISTINCT FROM $4
		ORDER BY date
	`, start, end, roomID, packageID)
	if err != nil {
		return nil, fmt.Errorf("select inventories: %w", err)
	}
	defer rows.Close()
	return scanInventories(rows)
}

func (s *Store) EnabledRules(ctx context.Context, start, end time.Time, roomID *string, packageID string, channel *string) ([]pricing.SurchargeRule, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, enabled, scope, room_id::text, package_id::text, channel,
		       start_date, end_date, dow_mask, rule_type, amount, priority, created_at
		FROM surcharge_rules
		WHERE enabled
		  AND start_date <= $2 AND end_date >= $1
		  AND (scope = 'HOTEL'
		       OR (scope = 'ROOM' AND room_id::text IS NOT DISTINCT FROM $3)
		       OR (scope = 'PACKAGE' AND package_id::text = $4))
		  AND (channel IS NULL OR channel = $5)
		ORDER BY priority DESC, created_at DESC
	`, start, end, roomID, packageID, channel)
	if err != nil {
		return nil, fmt.Errorf("select surcharge rules: %w", err)
	}
	defer rows.Close()
	return scanRules(rows)
}

func scanRules(rows pgx.Rows) ([]pricing.SurchargeRule, error) {
	var list []pricing.SurchargeRule
	for rows.Next() {
		var (
			r                 pricing.SurchargeRule
			kind              string
			roomID, packageID *string
		)
		if err := rows.Scan(
			&r.ID, &r.Enabled, &kind, &roomID, &packageID, &r.Channel,
			&r.StartDate, &r.EndDate, &r.DowMask, &r.RuleType, &r.Amount, &r.Priority, &r.CreatedAt,
		); err != nil {
			return nil, err
		}
		r.Scope = scopeFromRow(kind, roomID, packageID)
		list = append(list, r)
	}
	return list, rows.Err()
}

func scanInventories(rows pgx.Rows) ([]pricing.InventoryDay, error) {
	var list []pricing.InventoryDay
	for rows.Next() {
		var inv pricing.InventoryDay
		if err := rows.Scan(&inv.ID, &inv.Date, &inv.RoomID, &inv.PackageID, &inv.Allotment, &inv.Closed); err != nil {
			return nil, err
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

func scopeFromRow(kind string, roomID, packageID *string) pricing.Scope {
	switch pricing.ScopeKind(kind) {
	case pricing.ScopeRoom:
		if roomID != nil {
			return pricing.RoomScope(*roomID)
		}
	case pricing.ScopePackage:
		if packageID != nil {
			return pricing.PackageScope(*packageID)
		}
	}
	return pricing.HotelScope()
}

func scopeToRow(sc pricing.Scope) (kind string, roomID, packageID *string) {
	kind = string(sc.Kind)
	switch sc.Kind {
	case pricing.ScopeRoom:
		roomID = &sc.RoomID
	case pricing.ScopePackage:
		packageID = &sc.PackageID
	}
	return kind, roomID, packageID
}
