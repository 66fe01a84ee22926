package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/atinyakov/FleetDesk/internal/models"
)

const companyColumns = `id, name, address, contact_number`

// PostgresCompanyRepository stores transport companies keyed by name.
type PostgresCompanyRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresCompanyRepository creates a new PostgresCompanyRepository using the provided *sql.DB.
func NewPostgresCompanyRepository(db *sql.DB) *PostgresCompanyRepository {
	return &PostgresCompanyRepository{DB: db}
}

// CreateCompany inserts c. Returns models.ErrConflict if the name is taken.
func (r *PostgresCompanyRepository) CreateCompany(ctx context.Context, c models.TransportCompany) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO transport_companies (id, name, address, contact_number)
		VALUES ($1, $2, $3, $4)
	`, c.ID, c.Name, c.Address, c.ContactNumber)
	if err := translate(err); err != nil {
		return fmt.Errorf("create company: %w", err)
	}
	return nil
}

// ListCompanies returns every company ordered by name.
func (r *PostgresCompanyRepository) ListCompanies(ctx context.Context) ([]models.TransportCompany, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+companyColumns+` FROM transport_companies ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	companies := make([]models.TransportCompany, 0)
	for rows.Next() {
		var c models.TransportCompany
		if err := rows.Scan(&c.ID, &c.Name, &c.Address, &c.ContactNumber); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		companies = append(companies, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	return companies, nil
}

// GetCompanyByName returns the company called name or models.ErrNotFound.
func (r *PostgresCompanyRepository) GetCompanyByName(ctx context.Context, name string) (*models.TransportCompany, error) {
	var c models.TransportCompany
	err := r.DB.QueryRowContext(ctx,
		`SELECT `+companyColumns+` FROM transport_companies WHERE name = $1`, name,
	).Scan(&c.ID, &c.Name, &c.Address, &c.ContactNumber)
	if err != nil {
		return nil, fmt.Errorf("get company: %w", translate(err))
	}
	return &c, nil
}

// UpdateCompanyByName applies upd to the company called name and returns the
// updated row. Renaming onto an existing name yields models.ErrConflict.
func (r *PostgresCompanyRepository) UpdateCompanyByName(ctx context.Context, name string, upd models.CompanyUpdate) (*models.TransportCompany, error) {
	var c models.TransportCompany
	err := r.DB.QueryRowContext(ctx, `
		UPDATE transport_companies SET
			name = COALESCE($2, name),
			address = COALESCE($3, address),
			contact_number = COALESCE($4, contact_number)
		WHERE name = $1
		RETURNING `+companyColumns,
		name, upd.Name, upd.Address, upd.ContactNumber,
	).Scan(&c.ID, &c.Name, &c.Address, &c.ContactNumber)
	if err != nil {
		return nil, fmt.Errorf("update company: %w", translate(err))
	}
	return &c, nil
}

// DeleteCompanyByName removes the company called name and returns it.
// Vehicles and trips that reference the name are left untouched.
func (r *PostgresCompanyRepository) DeleteCompanyByName(ctx context.Context, name string) (*models.TransportCompany, error) {
	var c models.TransportCompany
	err := r.DB.QueryRowContext(ctx,
		`DELETE FROM transport_companies WHERE name = $1 RETURNING `+companyColumns, name,
	).Scan(&c.ID, &c.Name, &c.Address, &c.ContactNumber)
	if err != nil {
		return nil, fmt.Errorf("delete company: %w", translate(err))
	}
	return &c, nil
}
