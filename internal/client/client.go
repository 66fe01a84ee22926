// Package client is a small HTTP client for the FleetDesk admin API. It
// keeps the session cookie in a cookie jar so that one Login authorizes
// the following calls.
package client

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/atinyakov/FleetDesk/internal/models"
	"golang.org/x/net/publicsuffix"
)

const requestTimeout = 10 * time.Second

// APIError is a non-2xx answer from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server error %d: %s", e.Status, e.Message)
}

// Session is the decoded session returned by Me.
type Session struct {
	ID        string `json:"id"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// Client talks to one FleetDesk server.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for baseURL. When caPath is set, the server
// certificate must chain to that CA.
func New(baseURL, caPath string) (*Client, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if caPath != "" {
		pool, err := loadRootCAs(caPath)
		if err != nil {
			return nil, err
		}
		transport.TLSClientConfig = &tls.Config{RootCAs: pool, MinVersion: tls.VersionTLS12}
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Jar: jar, Transport: transport, Timeout: requestTimeout},
	}, nil
}

func loadRootCAs(caPath string) (*x509.CertPool, error) {
	caCert, err := os.ReadFile(caPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read CA cert: %w", err)
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(caCert) {
		return nil, errors.New("failed to parse CA cert")
	}
	return pool, nil
}

// do sends body as JSON and decodes a successful response into out.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		var payload struct {
			Message string `json:"message"`
		}
		data, _ := io.ReadAll(resp.Body)
		if json.Unmarshal(data, &payload) == nil && payload.Message != "" {
			apiErr.Message = payload.Message
		} else {
			apiErr.Message = strings.TrimSpace(string(data))
		}
		return apiErr
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates an admin account and logs it in.
func (c *Client) Register(ctx context.Context, email, password string) error {
	return c.do(ctx, http.MethodPost, "/api/auth/register", credentials{email, password}, nil)
}

// Login starts a session.
func (c *Client) Login(ctx context.Context, email, password string) error {
	return c.do(ctx, http.MethodPost, "/api/auth/login", credentials{email, password}, nil)
}

// Logout ends the session.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
}

// Me returns the current session.
func (c *Client) Me(ctx context.Context) (*Session, error) {
	var out struct {
		User Session `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// ListCompanies returns all transport companies.
func (c *Client) ListCompanies(ctx context.Context) ([]models.TransportCompany, error) {
	var out []models.TransportCompany
	err := c.do(ctx, http.MethodGet, "/api/company", nil, &out)
	return out, err
}

// ListVehicles returns all vehicles, or only those of company when it is set.
func (c *Client) ListVehicles(ctx context.Context, company string) ([]models.Vehicle, error) {
	path := "/api/vehicles"
	if company != "" {
		path = "/api/company/" + url.PathEscape(company) + "/vehicles"
	}
	var out []models.Vehicle
	err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

// ListTrips returns the trips matching f.
func (c *Client) ListTrips(ctx context.Context, f models.TripFilter) ([]models.Trip, error) {
	q := url.Values{}
	for key, value := range map[string]string{
		"companyName":   f.CompanyName,
		"vehicleNumber": f.VehicleNumber,
		"status":        string(f.Status),
		"source":        f.Source,
		"destination":   f.Destination,
	} {
		if value != "" {
			q.Set(key, value)
		}
	}
	path := "/api/trips"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out []models.Trip
	err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

// SetTripStatus marks trip id as paid or notpaid.
func (c *Client) SetTripStatus(ctx context.Context, id string, status models.TripStatus) (*models.Trip, error) {
	var out models.Trip
	body := map[string]models.TripStatus{"status": status}
	if err := c.do(ctx, http.MethodPost, "/api/trips/"+url.PathEscape(id)+"/status", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
