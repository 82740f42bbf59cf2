package postgres

import "context"

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS hotels (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		address TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS rooms (
		id UUID PRIMARY KEY,
		hotel_id UUID REFERENCES hotels(id),
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		capacity INT NOT NULL DEFAULT 2,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS packages (
		id UUID PRIMARY KEY,
		room_id UUID REFERENCES rooms(id),
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		price BIGINT NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS package_inventories (
		id UUID PRIMARY KEY,
		date DATE NOT NULL,
		room_id UUID REFERENCES rooms(id),
		package_id UUID REFERENCES packages(id),
		allotment INT NOT NULL DEFAULT 0,
		closed BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	// NULLs never collide in a plain unique constraint, so coalesce to keep
	// one row per (date, room, package) scope.
	`CREATE UNIQUE INDEX IF NOT EXISTS package_inventories_scope_uq
		ON package_inventories (date, COALESCE(room_id::text, ''), COALESCE(package_id::text, ''))`,
	`CREATE TABLE IF NOT EXISTS surcharge_rules (
		id UUID PRIMARY KEY,
		enabled BOOLEAN NOT NULL DEFAULT TRUE,
		scope TEXT NOT NULL,
		room_id UUID REFERENCES rooms(id),
		package_id UUID REFERENCES packages(id),
		channel TEXT,
		start_date DATE NOT NULL,
		end_date DATE NOT NULL,
		dow_mask INT,
		rule_type TEXT NOT NULL,
		amount BIGINT NOT NULL,
		priority INT NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id UUID PRIMARY KEY,
		room_id UUID REFERENCES rooms(id),
		package_id UUID NOT NULL REFERENCES packages(id),
		guest_name TEXT NOT NULL,
		guest_phone TEXT NOT NULL,
		guest_email TEXT,
		check_in DATE NOT NULL,
		check_out DATE NOT NULL,
		total_amount BIGINT NOT NULL,
		status TEXT NOT NULL DEFAULT 'PENDING',
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS booking_items (
		id UUID PRIMARY KEY,
		booking_id UUID NOT NULL REFERENCES bookings(id) ON DELETE CASCADE,
		package_id UUID NOT NULL REFERENCES packages(id),
		date DATE NOT NULL,
		price BIGINT NOT NULL,
		quantity INT NOT NULL DEFAULT 1
	)`,
	`CREATE INDEX IF NOT EXISTS surcharge_rules_range_idx ON surcharge_rules (start_date, end_date)`,
	`CREATE INDEX IF NOT EXISTS bookings_created_at_idx ON bookings (created_at)`,
}

func (db *DB) initSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
