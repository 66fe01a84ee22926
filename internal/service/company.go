package service

import (
	"context"

	"github.com/atinyakov/FleetDesk/internal/models"
	"github.com/google/uuid"
)

// CompanyRepository defines the persistence operations for transport companies.
type CompanyRepository interface {
	CreateCompany(ctx context.Context, c models.TransportCompany) error
	ListCompanies(ctx context.Context) ([]models.TransportCompany, error)
	GetCompanyByName(ctx context.Context, name string) (*models.TransportCompany, error)
	UpdateCompanyByName(ctx context.Context, name string, upd models.CompanyUpdate) (*models.TransportCompany, error)
	DeleteCompanyByName(ctx context.Context, name string) (*models.TransportCompany, error)
}

// CompanyService manages transport companies and the vehicles listed under them.
type CompanyService struct {
	repo     CompanyRepository
	vehicles VehicleRepository
}

// NewCompanyService constructs a CompanyService. vehicles backs the
// vehicles-by-company listing.
func NewCompanyService(repo CompanyRepository, vehicles VehicleRepository) *CompanyService {
	return &CompanyService{repo: repo, vehicles: vehicles}
}

// Create stores a new company under a fresh id.
// Returns models.ErrConflict if the name is taken.
func (s *CompanyService) Create(ctx context.Context, c models.TransportCompany) (*models.TransportCompany, error) {
	c.ID = uuid.NewString()
	if err := s.repo.CreateCompany(ctx, c); err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns all companies.
func (s *CompanyService) List(ctx context.Context) ([]models.TransportCompany, error) {
	return s.repo.ListCompanies(ctx)
}

// Get returns the company called name.
func (s *CompanyService) Get(ctx context.Context, name string) (*models.TransportCompany, error) {
	return s.repo.GetCompanyByName(ctx, name)
}

// Update changes the company called name. A rename does not touch vehicles
// or trips that still refer to the old name.
func (s *CompanyService) Update(ctx context.Context, name string, upd models.CompanyUpdate) (*models.TransportCompany, error) {
	return s.repo.UpdateCompanyByName(ctx, name, upd)
}

// Delete removes the company called name.
func (s *CompanyService) Delete(ctx context.Context, name string) (*models.TransportCompany, error) {
	return s.repo.DeleteCompanyByName(ctx, name)
}

// Vehicles lists the vehicles whose company name equals name. No vehicles
// is an empty list, not an error.
func (s *CompanyService) Vehicles(ctx context.Context, name string) ([]models.Vehicle, error) {
	return s.vehicles.ListVehiclesByCompany(ctx, name)
}
