// Package service provides the business logic for admins, companies,
// vehicles, and trips, delegating persistence to repository interfaces.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/atinyakov/FleetDesk/internal/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// passwordCost is the bcrypt work factor for admin passwords.
const passwordCost = 10

// AdminRepository defines the persistence operations
// required by the authentication service.
type AdminRepository interface {
	// CreateAdmin stores a new admin. Returns models.ErrConflict if the email is taken.
	CreateAdmin(ctx context.Context, admin models.Admin) error
	// GetAdminByEmail returns the admin with the normalized email or models.ErrNotFound.
	GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error)
	// GetAdminByID returns the admin with the given id or models.ErrNotFound.
	GetAdminByID(ctx context.Context, id string) (*models.Admin, error)
}

// Service implements authentication operations by delegating
// to an AdminRepository.
type Service struct {
	// repo performs the data-layer operations.
	repo AdminRepository
}

// NewAuthService constructs a new Service using the provided repository.
func NewAuthService(repo AdminRepository) *Service {
	return &Service{repo: repo}
}

// NormalizeEmail trims surrounding whitespace and lower-cases email.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an admin with a bcrypt-hashed password.
// Returns models.ErrConflict if the email is already registered.
func (s *Service) Register(ctx context.Context, email, password string) (*models.Admin, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	admin := models.Admin{
		ID:           uuid.NewString(),
		Email:        NormalizeEmail(email),
		PasswordHash: hash,
	}
	if err := s.repo.CreateAdmin(ctx, admin); err != nil {
		return nil, err
	}
	return &admin, nil
}

// Login returns the admin matching email and password. Unknown email and
// wrong password both yield models.ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, email, password string) (*models.Admin, error) {
	admin, err := s.repo.GetAdminByEmail(ctx, NormalizeEmail(email))
	if errors.Is(err, models.ErrNotFound) {
		return nil, models.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword(admin.PasswordHash, []byte(password)); err != nil {
		return nil, models.ErrInvalidCredentials
	}
	return admin, nil
}

// FindByEmail returns the admin with the given email or models.ErrNotFound.
func (s *Service) FindByEmail(ctx context.Context, email string) (*models.Admin, error) {
	return s.repo.GetAdminByEmail(ctx, NormalizeEmail(email))
}

// FindByID returns the admin with the given id or models.ErrNotFound.
func (s *Service) FindByID(ctx context.Context, id string) (*models.Admin, error) {
	return s.repo.GetAdminByID(ctx, id)
}
