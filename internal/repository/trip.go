package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/atinyakov/FleetDesk/internal/models"
)

const tripColumns = `id, source, destination, price, transport_company_name, vehicle_number, trip_date_time, status`

func scanTrip(row rowScanner) (models.Trip, error) {
	var t models.Trip
	err := row.Scan(&t.ID, &t.Source, &t.Destination, &t.Price,
		&t.TransportCompanyName, &t.VehicleNumber, &t.TripDateTime, &t.Status)
	return t, err
}

// PostgresTripRepository stores trips. Trips are never deleted and only
// their status is ever updated.
type PostgresTripRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresTripRepository creates a new PostgresTripRepository using the provided *sql.DB.
func NewPostgresTripRepository(db *sql.DB) *PostgresTripRepository {
	return &PostgresTripRepository{DB: db}
}

// CreateTrip inserts t as given; defaults are the caller's job.
func (r *PostgresTripRepository) CreateTrip(ctx context.Context, t models.Trip) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO trips (`+tripColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, t.ID, t.Source, t.Destination, t.Price, t.TransportCompanyName, t.VehicleNumber, t.TripDateTime, string(t.Status))
	if err != nil {
		return fmt.Errorf("create trip: %w", err)
	}
	return nil
}

// ListTrips returns trips matching f, newest trip date first.
//
//	CompanyName, VehicleNumber, Status: exact match
//	Source, Destination:               case-insensitive substring
func (r *PostgresTripRepository) ListTrips(ctx context.Context, f models.TripFilter) ([]models.Trip, error) {
	var (
		where []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}
	if f.CompanyName != "" {
		add("transport_company_name = $%d", f.CompanyName)
	}
	if f.VehicleNumber != "" {
		add("vehicle_number = $%d", f.VehicleNumber)
	}
	if f.Status != "" {
		add("status = $%d", string(f.Status))
	}
	if f.Source != "" {
		add("source ILIKE '%%' || $%d || '%%'", f.Source)
	}
	if f.Destination != "" {
		add("destination ILIKE '%%' || $%d || '%%'", f.Destination)
	}

	q := `SELECT ` + tripColumns + ` FROM trips`
	if len(where) > 0 {
		q += ` WHERE ` + strings.Join(where, " AND ")
	}
	q += ` ORDER BY trip_date_time DESC`

	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list trips: %w", err)
	}
	defer rows.Close()

	trips := make([]models.Trip, 0)
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list trips: %w", err)
	}
	return trips, nil
}

// UpdateTripStatus sets the status of trip id and returns the updated trip.
// Returns models.ErrNotFound for an unknown id.
func (r *PostgresTripRepository) UpdateTripStatus(ctx context.Context, id string, status models.TripStatus) (*models.Trip, error) {
	t, err := scanTrip(r.DB.QueryRowContext(ctx,
		`UPDATE trips SET status = $2 WHERE id = $1 RETURNING `+tripColumns, id, string(status)))
	if err != nil {
		return nil, fmt.Errorf("update trip status: %w", translate(err))
	}
	return &t, nil
}
