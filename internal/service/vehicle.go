package service

import (
	"context"

	"github.com/atinyakov/FleetDesk/internal/models"
	"github.com/google/uuid"
)

// VehicleRepository defines the persistence operations for vehicles.
type VehicleRepository interface {
	CreateVehicle(ctx context.Context, v models.Vehicle) error
	ListVehicles(ctx context.Context) ([]models.Vehicle, error)
	ListVehiclesByCompany(ctx context.Context, name string) ([]models.Vehicle, error)
	GetVehicleByNumber(ctx context.Context, number string) (*models.Vehicle, error)
	UpdateVehicleByNumber(ctx context.Context, number string, upd models.VehicleUpdate) (*models.Vehicle, error)
	DeleteVehicleByNumber(ctx context.Context, number string) (*models.Vehicle, error)
}

// VehicleService manages vehicles keyed by vehicle number.
type VehicleService struct {
	repo VehicleRepository
}

// NewVehicleService constructs a VehicleService with the provided repository.
func NewVehicleService(repo VehicleRepository) *VehicleService {
	return &VehicleService{repo: repo}
}

// Create stores v under a fresh id. The company name is stored as given.
func (s *VehicleService) Create(ctx context.Context, v models.Vehicle) (*models.Vehicle, error) {
	v.ID = uuid.NewString()
	if err := s.repo.CreateVehicle(ctx, v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *VehicleService) List(ctx context.Context) ([]models.Vehicle, error) {
	return s.repo.ListVehicles(ctx)
}

func (s *VehicleService) Get(ctx context.Context, number string) (*models.Vehicle, error) {
	return s.repo.GetVehicleByNumber(ctx, number)
}

func (s *VehicleService) Update(ctx context.Context, number string, upd models.VehicleUpdate) (*models.Vehicle, error) {
	return s.repo.UpdateVehicleByNumber(ctx, number, upd)
}

func (s *VehicleService) Delete(ctx context.Context, number string) (*models.Vehicle, error) {
	return s.repo.DeleteVehicleByNumber(ctx, number)
}
