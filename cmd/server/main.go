// Package main initializes and starts the FleetDesk API server, setting up
// configuration, logging, database connections, repositories, services,
// handlers, and optional TLS.
package main

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	nethttp "net/http"

	"github.com/atinyakov/FleetDesk/internal/config"
	"github.com/atinyakov/FleetDesk/internal/db"
	"github.com/atinyakov/FleetDesk/internal/logger"
	"github.com/atinyakov/FleetDesk/internal/middleware"
	"github.com/atinyakov/FleetDesk/internal/repository"
	"github.com/atinyakov/FleetDesk/internal/server/handler/http"
	"github.com/atinyakov/FleetDesk/internal/service"
	"github.com/atinyakov/FleetDesk/internal/session"
	"go.uber.org/zap"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Parse command-line and environment configuration.
	options := config.Parse()

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init(options.LogLevel); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	sessions, err := session.NewManager(options.JWTSecret, options.TLSEnabled())
	if err != nil {
		zapLogger.Fatal("cannot init sessions, set JWT_SECRET or -s", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize PostgreSQL connection and schema.
	postgresDB, err := db.InitPostgres(ctx, options.DatabaseDSN)
	if err != nil {
		zapLogger.Fatal("cannot init database", zap.Error(err))
	}
	defer postgresDB.Close()

	// Initialize repositories.
	adminRepo := repository.NewPostgresAdminRepository(postgresDB)
	companyRepo := repository.NewPostgresCompanyRepository(postgresDB)
	vehicleRepo := repository.NewPostgresVehicleRepository(postgresDB)
	tripRepo := repository.NewPostgresTripRepository(postgresDB)

	// Initialize business-logic services.
	authService := service.NewAuthService(adminRepo)
	companyService := service.NewCompanyService(companyRepo, vehicleRepo)
	vehicleService := service.NewVehicleService(vehicleRepo)
	tripService := service.NewTripService(tripRepo)

	// Build the router with middleware and routes.
	router := http.NewRouter(http.RouterConfig{
		Auth:             &http.AuthHandler{AuthService: authService, Sessions: sessions, Log: zapLogger},
		Companies:        &http.CompanyHandler{Companies: companyService, Log: zapLogger},
		Vehicles:         &http.VehicleHandler{Vehicles: vehicleService, Log: zapLogger},
		Trips:            &http.TripHandler{Trips: tripService, Log: zapLogger},
		Gate:             middleware.RequireAdmin(sessions, authService, zapLogger),
		Metrics:          middleware.NewMetrics("fleetdesk"),
		Logger:           zapLogger,
		CORSOrigin:       options.CORSOrigin,
		PublicTripStatus: options.PublicTripStatus,
	})

	server := &nethttp.Server{
		Addr:              options.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		if options.TLSEnabled() {
			zapLogger.Info("starting HTTPS server", zap.String("addr", options.Port))
			serveErr <- server.ListenAndServeTLS(options.TLSCert, options.TLSKey)
			return
		}
		zapLogger.Info("starting HTTP server", zap.String("addr", options.Port))
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, nethttp.ErrServerClosed) {
			zapLogger.Fatal("server failed", zap.Error(err))
		}
	case <-ctx.Done():
		zapLogger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			zapLogger.Error("graceful shutdown failed", zap.Error(err))
		}
	}
}
