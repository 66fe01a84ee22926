// Package db opens the PostgreSQL connection and applies the schema.
package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// Uniqueness of admin email, company name and vehicle number lives in the
// schema so concurrent creates cannot both succeed.
const schema = `
CREATE TABLE IF NOT EXISTS admins (
    id TEXT PRIMARY KEY,
    email TEXT NOT NULL UNIQUE,
    password_hash BYTEA NOT NULL
);

CREATE TABLE IF NOT EXISTS transport_companies (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    address TEXT NOT NULL,
    contact_number TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS vehicles (
    id TEXT PRIMARY KEY,
    vehicle_number TEXT NOT NULL UNIQUE,
    vehicle_type TEXT NOT NULL,
    capacity INTEGER NOT NULL CHECK (capacity > 0),
    company_name TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS vehicles_company_name_idx ON vehicles (company_name);

CREATE TABLE IF NOT EXISTS trips (
    id TEXT PRIMARY KEY,
    source TEXT NOT NULL,
    destination TEXT NOT NULL,
    price DOUBLE PRECISION NOT NULL,
    transport_company_name TEXT NOT NULL,
    vehicle_number TEXT NOT NULL,
    trip_date_time TIMESTAMPTZ NOT NULL,
    status TEXT NOT NULL DEFAULT 'notpaid' CHECK (status IN ('paid', 'notpaid'))
);
CREATE INDEX IF NOT EXISTS trips_trip_date_time_idx ON trips (trip_date_time DESC);
`

// InitPostgres opens dsn, checks connectivity and creates missing tables.
func InitPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	if err := Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate applies the schema to db. It is safe to run repeatedly.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}
