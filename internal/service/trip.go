package service

import (
	"context"
	"time"

	"github.com/atinyakov/FleetDesk/internal/models"
	"github.com/google/uuid"
)

// TripRepository defines the persistence operations for trips.
type TripRepository interface {
	CreateTrip(ctx context.Context, t models.Trip) error
	ListTrips(ctx context.Context, f models.TripFilter) ([]models.Trip, error)
	UpdateTripStatus(ctx context.Context, id string, status models.TripStatus) (*models.Trip, error)
}

// TripService creates trips and tracks their payment status.
type TripService struct {
	repo TripRepository
	now  func() time.Time
}

// NewTripService constructs a TripService with the provided repository.
func NewTripService(repo TripRepository) *TripService {
	return &TripService{repo: repo, now: time.Now}
}

// Create stores t under a fresh id. A zero TripDateTime becomes now and an
// empty Status becomes notpaid; any other unknown status is
// models.ErrInvalidStatus.
func (s *TripService) Create(ctx context.Context, t models.Trip) (*models.Trip, error) {
	if t.Status == "" {
		t.Status = models.TripNotPaid
	}
	if !t.Status.Valid() {
		return nil, models.ErrInvalidStatus
	}
	if t.TripDateTime.IsZero() {
		t.TripDateTime = s.now()
	}
	t.TripDateTime = t.TripDateTime.UTC()
	t.ID = uuid.NewString()

	if err := s.repo.CreateTrip(ctx, t); err != nil {
		return nil, err
	}
	return &t, nil
}

// List returns the trips matching f.
func (s *TripService) List(ctx context.Context, f models.TripFilter) ([]models.Trip, error) {
	if f.Status != "" && !f.Status.Valid() {
		return nil, models.ErrInvalidStatus
	}
	return s.repo.ListTrips(ctx, f)
}

// SetStatus changes the payment status of trip id.
func (s *TripService) SetStatus(ctx context.Context, id string, status models.TripStatus) (*models.Trip, error) {
	if !status.Valid() {
		return nil, models.ErrInvalidStatus
	}
	return s.repo.UpdateTripStatus(ctx, id, status)
}
