package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/atinyakov/FleetDesk/internal/models"
)

const vehicleColumns = `id, vehicle_number, vehicle_type, capacity, company_name`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVehicle(row rowScanner) (models.Vehicle, error) {
	var v models.Vehicle
	err := row.Scan(&v.ID, &v.VehicleNumber, &v.VehicleType, &v.Capacity, &v.CompanyName)
	return v, err
}

// PostgresVehicleRepository stores vehicles keyed by vehicle number.
type PostgresVehicleRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresVehicleRepository creates a new PostgresVehicleRepository using the provided *sql.DB.
func NewPostgresVehicleRepository(db *sql.DB) *PostgresVehicleRepository {
	return &PostgresVehicleRepository{DB: db}
}

// CreateVehicle inserts v. Returns models.ErrConflict if the vehicle number is taken.
func (r *PostgresVehicleRepository) CreateVehicle(ctx context.Context, v models.Vehicle) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO vehicles (id, vehicle_number, vehicle_type, capacity, company_name)
		VALUES ($1, $2, $3, $4, $5)
	`, v.ID, v.VehicleNumber, v.VehicleType, v.Capacity, v.CompanyName)
	if err := translate(err); err != nil {
		return fmt.Errorf("create vehicle: %w", err)
	}
	return nil
}

// ListVehicles returns every vehicle ordered by vehicle number.
func (r *PostgresVehicleRepository) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	return r.query(ctx, `SELECT `+vehicleColumns+` FROM vehicles ORDER BY vehicle_number`)
}

// ListVehiclesByCompany returns the vehicles whose company name equals name.
// An unknown company simply yields an empty slice.
func (r *PostgresVehicleRepository) ListVehiclesByCompany(ctx context.Context, name string) ([]models.Vehicle, error) {
	return r.query(ctx, `SELECT `+vehicleColumns+` FROM vehicles WHERE company_name = $1 ORDER BY vehicle_number`, name)
}

func (r *PostgresVehicleRepository) query(ctx context.Context, q string, args ...any) ([]models.Vehicle, error) {
	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	defer rows.Close()

	vehicles := make([]models.Vehicle, 0)
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		vehicles = append(vehicles, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	return vehicles, nil
}

// GetVehicleByNumber returns the vehicle with the given number or models.ErrNotFound.
func (r *PostgresVehicleRepository) GetVehicleByNumber(ctx context.Context, number string) (*models.Vehicle, error) {
	v, err := scanVehicle(r.DB.QueryRowContext(ctx,
		`SELECT `+vehicleColumns+` FROM vehicles WHERE vehicle_number = $1`, number))
	if err != nil {
		return nil, fmt.Errorf("get vehicle: %w", translate(err))
	}
	return &v, nil
}

// UpdateVehicleByNumber applies upd to the vehicle and returns the updated row.
func (r *PostgresVehicleRepository) UpdateVehicleByNumber(ctx context.Context, number string, upd models.VehicleUpdate) (*models.Vehicle, error) {
	v, err := scanVehicle(r.DB.QueryRowContext(ctx, `
		UPDATE vehicles SET
			vehicle_number = COALESCE($2, vehicle_number),
			vehicle_type = COALESCE($3, vehicle_type),
			capacity = COALESCE($4, capacity),
			company_name = COALESCE($5, company_name)
		WHERE vehicle_number = $1
		RETURNING `+vehicleColumns,
		number, upd.VehicleNumber, upd.VehicleType, upd.Capacity, upd.CompanyName,
	))
	if err != nil {
		return nil, fmt.Errorf("update vehicle: %w", translate(err))
	}
	return &v, nil
}

// DeleteVehicleByNumber removes the vehicle and returns it.
func (r *PostgresVehicleRepository) DeleteVehicleByNumber(ctx context.Context, number string) (*models.Vehicle, error) {
	v, err := scanVehicle(r.DB.QueryRowContext(ctx,
		`DELETE FROM vehicles WHERE vehicle_number = $1 RETURNING `+vehicleColumns, number))
	if err != nil {
		return nil, fmt.Errorf("delete vehicle: %w", translate(err))
	}
	return &v, nil
}
