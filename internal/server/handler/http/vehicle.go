package http

import (
	"context"
	"net/http"

	"github.com/atinyakov/FleetDesk/internal/models"
	"go.uber.org/zap"
)

const vehicleNotFound = "Vehicle not found"

// VehicleService defines the vehicle operations used by VehicleHandler.
type VehicleService interface {
	Create(ctx context.Context, v models.Vehicle) (*models.Vehicle, error)
	List(ctx context.Context) ([]models.Vehicle, error)
	Get(ctx context.Context, number string) (*models.Vehicle, error)
	Update(ctx context.Context, number string, upd models.VehicleUpdate) (*models.Vehicle, error)
	Delete(ctx context.Context, number string) (*models.Vehicle, error)
}

// VehicleHandler serves /api/vehicles. Vehicles are addressed by vehicle number.
type VehicleHandler struct {
	Vehicles VehicleService
	Log      *zap.Logger
}

type createVehicleRequest struct {
	VehicleNumber string `json:"vehicleNumber" validate:"required"`
	VehicleType   string `json:"vehicleType" validate:"required"`
	Capacity      int    `json:"capacity" validate:"gt=0"`
	CompanyName   string `json:"companyName" validate:"required"`
}

type updateVehicleRequest struct {
	VehicleNumber *string `json:"vehicleNumber" validate:"omitnil,min=1"`
	VehicleType   *string `json:"vehicleType" validate:"omitnil,min=1"`
	Capacity      *int    `json:"capacity" validate:"omitnil,gt=0"`
	CompanyName   *string `json:"companyName" validate:"omitnil,min=1"`
}

// Create handles POST /api/vehicles.
func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createVehicleRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	v, err := h.Vehicles.Create(r.Context(), models.Vehicle{
		VehicleNumber: req.VehicleNumber,
		VehicleType:   req.VehicleType,
		Capacity:      req.Capacity,
		CompanyName:   req.CompanyName,
	})
	if err != nil {
		writeServiceError(w, h.Log, err, vehicleNotFound, "Vehicle already exists")
		return
	}
	writeJSON(w, http.StatusCreated, v)
}

// List handles GET /api/vehicles.
func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.Vehicles.List(r.Context())
	if err != nil {
		writeServiceError(w, h.Log, err, vehicleNotFound, "")
		return
	}
	writeJSON(w, http.StatusOK, vehicles)
}

// Get handles GET /api/vehicles/{vehicleNumber}.
func (h *VehicleHandler) Get(w http.ResponseWriter, r *http.Request) {
	v, err := h.Vehicles.Get(r.Context(), pathParam(r, "vehicleNumber"))
	if err != nil {
		writeServiceError(w, h.Log, err, vehicleNotFound, "")
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// Update handles PUT /api/vehicles/{vehicleNumber}. Omitted fields keep their values.
func (h *VehicleHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateVehicleRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	v, err := h.Vehicles.Update(r.Context(), pathParam(r, "vehicleNumber"), models.VehicleUpdate{
		VehicleNumber: req.VehicleNumber,
		VehicleType:   req.VehicleType,
		Capacity:      req.Capacity,
		CompanyName:   req.CompanyName,
	})
	if err != nil {
		writeServiceError(w, h.Log, err, vehicleNotFound, "Vehicle already exists")
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// Delete handles DELETE /api/vehicles/{vehicleNumber} and echoes the removed vehicle.
func (h *VehicleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	v, err := h.Vehicles.Delete(r.Context(), pathParam(r, "vehicleNumber"))
	if err != nil {
		writeServiceError(w, h.Log, err, vehicleNotFound, "")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Vehicle deleted successfully",
		"vehicle": v,
	})
}
