package http

import (
	"context"
	"net/http"

	"github.com/atinyakov/FleetDesk/internal/models"
	"go.uber.org/zap"
)

const companyNotFound = "Company not found"

// CompanyService defines the transport company operations used by CompanyHandler.
type CompanyService interface {
	Create(ctx context.Context, c models.TransportCompany) (*models.TransportCompany, error)
	List(ctx context.Context) ([]models.TransportCompany, error)
	Get(ctx context.Context, name string) (*models.TransportCompany, error)
	Update(ctx context.Context, name string, upd models.CompanyUpdate) (*models.TransportCompany, error)
	Delete(ctx context.Context, name string) (*models.TransportCompany, error)
	Vehicles(ctx context.Context, name string) ([]models.Vehicle, error)
}

// CompanyHandler serves /api/company. Companies are addressed by name.
type CompanyHandler struct {
	Companies CompanyService
	Log       *zap.Logger
}

type createCompanyRequest struct {
	Name          string `json:"name" validate:"required"`
	Address       string `json:"address" validate:"required"`
	ContactNumber string `json:"contactNumber" validate:"required"`
}

type updateCompanyRequest struct {
	Name          *string `json:"name" validate:"omitnil,min=1"`
	Address       *string `json:"address" validate:"omitnil,min=1"`
	ContactNumber *string `json:"contactNumber" validate:"omitnil,min=1"`
}

// Create handles POST /api/company.
func (h *CompanyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCompanyRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	c, err := h.Companies.Create(r.Context(), models.TransportCompany{
		Name:          req.Name,
		Address:       req.Address,
		ContactNumber: req.ContactNumber,
	})
	if err != nil {
		writeServiceError(w, h.Log, err, companyNotFound, "Company already exists")
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

// List handles GET /api/company.
func (h *CompanyHandler) List(w http.ResponseWriter, r *http.Request) {
	companies, err := h.Companies.List(r.Context())
	if err != nil {
		writeServiceError(w, h.Log, err, companyNotFound, "")
		return
	}
	writeJSON(w, http.StatusOK, companies)
}

// Get handles GET /api/company/{name}.
func (h *CompanyHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.Companies.Get(r.Context(), pathParam(r, "name"))
	if err != nil {
		writeServiceError(w, h.Log, err, companyNotFound, "")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// Update handles PUT /api/company/{name}. Omitted fields keep their values.
func (h *CompanyHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateCompanyRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	c, err := h.Companies.Update(r.Context(), pathParam(r, "name"), models.CompanyUpdate{
		Name:          req.Name,
		Address:       req.Address,
		ContactNumber: req.ContactNumber,
	})
	if err != nil {
		writeServiceError(w, h.Log, err, companyNotFound, "Company already exists")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// Delete handles DELETE /api/company/{name}.
func (h *CompanyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if _, err := h.Companies.Delete(r.Context(), pathParam(r, "name")); err != nil {
		writeServiceError(w, h.Log, err, companyNotFound, "")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Company deleted successfully"})
}

// Vehicles handles GET /api/company/{name}/vehicles. A company without
// vehicles, or an unknown name, yields 200 with an empty array.
func (h *CompanyHandler) Vehicles(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.Companies.Vehicles(r.Context(), pathParam(r, "name"))
	if err != nil {
		writeServiceError(w, h.Log, err, companyNotFound, "")
		return
	}
	writeJSON(w, http.StatusOK, vehicles)
}
