package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/atinyakov/FleetDesk/internal/middleware"
	"github.com/atinyakov/FleetDesk/internal/models"
	"github.com/atinyakov/FleetDesk/internal/service"
	"github.com/atinyakov/FleetDesk/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memAdmins struct {
	mu     sync.Mutex
	admins map[string]models.Admin
}

func (m *memAdmins) CreateAdmin(_ context.Context, a models.Admin) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.admins {
		if existing.Email == a.Email {
			return models.ErrConflict
		}
	}
	m.admins[a.ID] = a
	return nil
}

func (m *memAdmins) GetAdminByEmail(_ context.Context, email string) (*models.Admin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.admins {
		if a.Email == email {
			return &a, nil
		}
	}
	return nil, models.ErrNotFound
}

func (m *memAdmins) GetAdminByID(_ context.Context, id string) (*models.Admin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.admins[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &a, nil
}

type memTrips struct {
	mu    sync.Mutex
	trips []models.Trip
}

func (m *memTrips) CreateTrip(_ context.Context, t models.Trip) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.trips = append(m.trips, t)
	return nil
}

func (m *memTrips) ListTrips(context.Context, models.TripFilter) ([]models.Trip, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Trip{}, m.trips...), nil
}

func (m *memTrips) UpdateTripStatus(_ context.Context, id string, status models.TripStatus) (*models.Trip, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.trips {
		if m.trips[i].ID == id {
			m.trips[i].Status = status
			t := m.trips[i]
			return &t, nil
		}
	}
	return nil, models.ErrNotFound
}

type stack struct {
	router   http.Handler
	sessions *session.Manager
	metrics  *middleware.Metrics
}

func newStack(t *testing.T, publicTripStatus bool) stack {
	t.Helper()
	sessions := newTestSessions(t)
	auth := service.NewAuthService(&memAdmins{admins: map[string]models.Admin{}})
	metrics := middleware.NewMetrics("fleetdesk_test")

	router := NewRouter(RouterConfig{
		Auth:             &AuthHandler{AuthService: auth, Sessions: sessions},
		Companies:        &CompanyHandler{},
		Vehicles:         &VehicleHandler{},
		Trips:            &TripHandler{Trips: service.NewTripService(&memTrips{})},
		Gate:             middleware.RequireAdmin(sessions, auth, zap.NewNop()),
		Metrics:          metrics,
		Logger:           zap.NewNop(),
		CORSOrigin:       "http://localhost:5173",
		PublicTripStatus: publicTripStatus,
	})
	return stack{router: router, sessions: sessions, metrics: metrics}
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	c := findCookie(rec.Result(), session.CookieName)
	require.NotNil(t, c, "expected a session cookie")
	return c
}

func TestRouter_SessionFlow(t *testing.T) {
	s := newStack(t, false)

	rec := call(s.router, http.MethodGet, "/api/trips", "")
	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "No token, authorization denied", messageOf(t, rec))

	rec = call(s.router, http.MethodPost, "/api/auth/register", `{"email":"Ops@Fleet.io","password":"s3cret"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = call(s.router, http.MethodPost, "/api/auth/register", `{"email":" ops@fleet.io","password":"other"}`)
	require.Equal(t, http.StatusConflict, rec.Code)

	rec = call(s.router, http.MethodPost, "/api/auth/login", `{"email":"ops@fleet.io","password":"wrong"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid credentials", messageOf(t, rec))

	rec = call(s.router, http.MethodPost, "/api/auth/login", `{"email":"OPS@fleet.io","password":"s3cret"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	cookie := sessionCookie(t, rec)

	rec = call(s.router, http.MethodGet, "/api/auth/me", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"user"`)

	rec = call(s.router, http.MethodPost, "/api/trips",
		`{"source":"Pune","destination":"Mumbai","price":350,"transportCompanyName":"Acme","vehicleNumber":"KA-01"}`, cookie)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var trip models.Trip
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &trip))
	assert.Equal(t, models.TripNotPaid, trip.Status)
	assert.False(t, trip.TripDateTime.IsZero())

	rec = call(s.router, http.MethodPost, "/api/trips/"+trip.ID+"/status", `{"status":"paid"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = call(s.router, http.MethodPost, "/api/trips/"+trip.ID+"/status", `{"status":"paid"}`, cookie)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &trip))
	assert.Equal(t, models.TripPaid, trip.Status)

	rec = call(s.router, http.MethodPost, "/api/trips/"+trip.ID+"/status", `{"status":"refunded"}`, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = call(s.router, http.MethodGet, "/api/trips", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	var trips []models.Trip
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &trips))
	require.Len(t, trips, 1)
	assert.Equal(t, models.TripPaid, trips[0].Status)

	rec = call(s.router, http.MethodPost, "/api/auth/logout", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Less(t, sessionCookie(t, rec).MaxAge, 0)
}

func TestRouter_StaleAdmin(t *testing.T) {
	s := newStack(t, false)

	token, _, err := s.sessions.Issue("deleted-admin")
	require.NoError(t, err)

	rec := call(s.router, http.MethodGet, "/api/trips", "", &http.Cookie{Name: session.CookieName, Value: token})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid admin", messageOf(t, rec))

	rec = call(s.router, http.MethodGet, "/api/trips", "", &http.Cookie{Name: session.CookieName, Value: token + "x"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid token", messageOf(t, rec))
}

func TestRouter_PublicTripStatus(t *testing.T) {
	s := newStack(t, true)

	rec := call(s.router, http.MethodPost, "/api/trips/missing/status", `{"status":"paid"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = call(s.router, http.MethodGet, "/api/trips", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouter_RejectsNonJSONBodies(t *testing.T) {
	s := newStack(t, false)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	req.Body = http.NoBody
	req.ContentLength = 5
	req.Header.Set("Content-Type", "text/plain")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}

func TestRouter_CORSPreflight(t *testing.T) {
	s := newStack(t, false)

	req := httptest.NewRequest(http.MethodOptions, "/api/trips", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestRouter_Metrics(t *testing.T) {
	s := newStack(t, false)

	rec := call(s.router, http.MethodGet, "/api/auth/ping", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = call(s.router, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `fleetdesk_test_http_requests_total{method="GET",route="/api/auth/ping",status="200"} 1`)
}
