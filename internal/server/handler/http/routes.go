package http

import (
	"net/http"

	"github.com/atinyakov/FleetDesk/internal/middleware"
	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// RouterConfig collects the handlers and middleware NewRouter mounts.
type RouterConfig struct {
	Auth      *AuthHandler
	Companies *CompanyHandler
	Vehicles  *VehicleHandler
	Trips     *TripHandler

	// Gate protects admin-only routes.
	Gate func(http.Handler) http.Handler
	// Metrics is optional; when set, requests are counted and /metrics is served.
	Metrics *middleware.Metrics
	Logger  *zap.Logger

	// CORSOrigin is the browser origin allowed to call the API with cookies.
	CORSOrigin string
	// PublicTripStatus leaves POST /api/trips/{id}/status outside the gate.
	PublicTripStatus bool
}

// NewRouter constructs the FleetDesk HTTP handler.
//
// Routes:
//
//	GET  /api/auth/ping, POST /api/auth/{register,login,logout}, GET /api/auth/me
//	/api/company[/{name}[/vehicles]]       (gated)
//	/api/vehicles[/{vehicleNumber}], /api/vehicles/{name}/vehicles (gated)
//	/api/trips, POST /api/trips/{id}/status (gated)
//	GET  /metrics
func NewRouter(cfg RouterConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Recoverer)
	if cfg.CORSOrigin != "" {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{cfg.CORSOrigin},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}
	r.Use(middleware.WithRequestLogging(logger))
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware)
		r.Method(http.MethodGet, "/metrics", cfg.Metrics.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		// Only allow requests with Content-Type: application/json
		r.Use(chiMiddleware.AllowContentType("application/json"))

		r.Route("/auth", func(r chi.Router) {
			r.Get("/ping", cfg.Auth.Ping)
			r.Post("/register", cfg.Auth.Register)
			r.Post("/login", cfg.Auth.Login)
			r.Post("/logout", cfg.Auth.Logout)
			r.Get("/me", cfg.Auth.Me)
		})

		if cfg.PublicTripStatus {
			r.Post("/trips/{id}/status", cfg.Trips.UpdateStatus)
		}

		r.Group(func(r chi.Router) {
			r.Use(cfg.Gate)

			r.Route("/company", func(r chi.Router) {
				r.Post("/", cfg.Companies.Create)
				r.Get("/", cfg.Companies.List)
				r.Get("/{name}", cfg.Companies.Get)
				r.Put("/{name}", cfg.Companies.Update)
				r.Delete("/{name}", cfg.Companies.Delete)
				r.Get("/{name}/vehicles", cfg.Companies.Vehicles)
			})

			r.Route("/vehicles", func(r chi.Router) {
				r.Post("/", cfg.Vehicles.Create)
				r.Get("/", cfg.Vehicles.List)
				r.Get("/{vehicleNumber}", cfg.Vehicles.Get)
				r.Put("/{vehicleNumber}", cfg.Vehicles.Update)
				r.Delete("/{vehicleNumber}", cfg.Vehicles.Delete)
				// older clients list a company's fleet here
				r.Get("/{name}/vehicles", cfg.Companies.Vehicles)
			})

			r.Post("/trips", cfg.Trips.Create)
			r.Get("/trips", cfg.Trips.List)
			if !cfg.PublicTripStatus {
				r.Post("/trips/{id}/status", cfg.Trips.UpdateStatus)
			}
		})
	})

	return r
}
