package http

import (
	"context"
	"net/http"
	"time"

	"github.com/atinyakov/FleetDesk/internal/models"
	"go.uber.org/zap"
)

// TripService defines the trip operations used by TripHandler.
type TripService interface {
	Create(ctx context.Context, t models.Trip) (*models.Trip, error)
	List(ctx context.Context, f models.TripFilter) ([]models.Trip, error)
	SetStatus(ctx context.Context, id string, status models.TripStatus) (*models.Trip, error)
}

// TripHandler serves /api/trips.
type TripHandler struct {
	Trips TripService
	Log   *zap.Logger
}

type createTripRequest struct {
	Source               string            `json:"source" validate:"required"`
	Destination          string            `json:"destination" validate:"required"`
	Price                *float64          `json:"price" validate:"required,gte=0"`
	TransportCompanyName string            `json:"transportCompanyName" validate:"required"`
	VehicleNumber        string            `json:"vehicleNumber" validate:"required"`
	TripDateTime         *time.Time        `json:"tripDateTime"`
	Status               models.TripStatus `json:"status"`
}

type tripStatusRequest struct {
	Status models.TripStatus `json:"status"`
}

// Create handles POST /api/trips. tripDateTime defaults to now and status
// to notpaid.
func (h *TripHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTripRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	trip := models.Trip{
		Source:               req.Source,
		Destination:          req.Destination,
		Price:                *req.Price,
		TransportCompanyName: req.TransportCompanyName,
		VehicleNumber:        req.VehicleNumber,
		Status:               req.Status,
	}
	if req.TripDateTime != nil {
		trip.TripDateTime = *req.TripDateTime
	}

	created, err := h.Trips.Create(r.Context(), trip)
	if err != nil {
		writeServiceError(w, h.Log, err, "Trip not found", "Trip already exists")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// List handles GET /api/trips. Optional query parameters companyName,
// vehicleNumber, status, source and destination narrow the result.
func (h *TripHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	trips, err := h.Trips.List(r.Context(), models.TripFilter{
		CompanyName:   q.Get("companyName"),
		VehicleNumber: q.Get("vehicleNumber"),
		Status:        models.TripStatus(q.Get("status")),
		Source:        q.Get("source"),
		Destination:   q.Get("destination"),
	})
	if err != nil {
		writeServiceError(w, h.Log, err, "Trip not found", "")
		return
	}
	writeJSON(w, http.StatusOK, trips)
}

// UpdateStatus handles POST /api/trips/{id}/status.
func (h *TripHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req tripStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	trip, err := h.Trips.SetStatus(r.Context(), pathParam(r, "id"), req.Status)
	if err != nil {
		writeServiceError(w, h.Log, err, "Trip not found", "")
		return
	}
	writeJSON(w, http.StatusOK, trip)
}
