// Package repository provides PostgreSQL persistence for admins,
// transport companies, vehicles, and trips.
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/atinyakov/FleetDesk/internal/models"
)

// PostgresAdminRepository stores admin credentials in PostgreSQL.
type PostgresAdminRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresAdminRepository creates a new PostgresAdminRepository with the given database connection.
func NewPostgresAdminRepository(db *sql.DB) *PostgresAdminRepository {
	return &PostgresAdminRepository{DB: db}
}

// CreateAdmin inserts a new admin. The email must already be normalized.
// Returns models.ErrConflict if the email is taken.
func (r *PostgresAdminRepository) CreateAdmin(ctx context.Context, admin models.Admin) error {
	_, err := r.DB.ExecContext(
		ctx,
		`INSERT INTO admins (id, email, password_hash) VALUES ($1, $2, $3)`,
		admin.ID, admin.Email, admin.PasswordHash,
	)
	if err := translate(err); err != nil {
		return fmt.Errorf("create admin: %w", err)
	}
	return nil
}

// GetAdminByEmail looks up an admin by normalized email.
// Returns models.ErrNotFound if there is none.
func (r *PostgresAdminRepository) GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var a models.Admin
	err := r.DB.QueryRowContext(
		ctx,
		`SELECT id, email, password_hash FROM admins WHERE email = $1`,
		email,
	).Scan(&a.ID, &a.Email, &a.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("get admin by email: %w", translate(err))
	}
	return &a, nil
}

// GetAdminByID looks up an admin by id.
// Returns models.ErrNotFound if there is none.
func (r *PostgresAdminRepository) GetAdminByID(ctx context.Context, id string) (*models.Admin, error) {
	var a models.Admin
	err := r.DB.QueryRowContext(
		ctx,
		`SELECT id, email, password_hash FROM admins WHERE id = $1`,
		id,
	).Scan(&a.ID, &a.Email, &a.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("get admin by id: %w", translate(err))
	}
	return &a, nil
}
