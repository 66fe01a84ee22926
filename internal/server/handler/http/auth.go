// Package http provides the HTTP handlers and router of the FleetDesk API.
package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/atinyakov/FleetDesk/internal/models"
	"github.com/atinyakov/FleetDesk/internal/session"
	"go.uber.org/zap"
)

// AuthService defines the credential operations required by the HTTP handlers.
type AuthService interface {
	// Register creates an admin. Returns models.ErrConflict for a taken email.
	Register(ctx context.Context, email, password string) (*models.Admin, error)
	// Login checks credentials. Returns models.ErrInvalidCredentials on mismatch.
	Login(ctx context.Context, email, password string) (*models.Admin, error)
}

// Sessions issues and verifies session tokens and manages the session cookie.
type Sessions interface {
	Issue(adminID string) (string, *session.Claims, error)
	Verify(token string) (*session.Claims, error)
	SetCookie(w http.ResponseWriter, token string)
	ClearCookie(w http.ResponseWriter)
}

// AuthHandler handles HTTP requests for admin registration, login and sessions.
type AuthHandler struct {
	// AuthService performs the underlying credential operations.
	AuthService AuthService
	// Sessions issues the session cookie.
	Sessions Sessions
	// Log receives unexpected failures.
	Log *zap.Logger
}

// credentialsRequest represents the JSON payload for registration and login.
type credentialsRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// decodeCredentials trims the email before validation so that padded
// addresses are accepted and normalized later.
func decodeCredentials(w http.ResponseWriter, r *http.Request) (credentialsRequest, bool) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return req, false
	}
	req.Email = strings.TrimSpace(req.Email)
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return req, false
	}
	return req, true
}

// Ping answers liveness checks.
func (h *AuthHandler) Ping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("pong"))
}

// Register creates an admin and starts a session for it.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeCredentials(w, r)
	if !ok {
		return
	}

	admin, err := h.AuthService.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, h.Log, err, "Admin not found", "Admin already exists")
		return
	}

	if !h.startSession(w, admin) {
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"message": "Admin registered successfully"})
}

// Login checks credentials and starts a session.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeCredentials(w, r)
	if !ok {
		return
	}

	admin, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if errors.Is(err, models.ErrInvalidCredentials) {
		writeError(w, http.StatusBadRequest, "Invalid credentials")
		return
	}
	if err != nil {
		writeServiceError(w, h.Log, err, "Invalid credentials", "Invalid credentials")
		return
	}

	if !h.startSession(w, admin) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Login successful"})
}

func (h *AuthHandler) startSession(w http.ResponseWriter, admin *models.Admin) bool {
	token, _, err := h.Sessions.Issue(admin.ID)
	if err != nil {
		writeServiceError(w, h.Log, err, "", "")
		return false
	}
	h.Sessions.SetCookie(w, token)
	return true
}

// Logout asks the client to drop its session cookie.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.Sessions.ClearCookie(w)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

// sessionView is the decoded session returned by Me.
type sessionView struct {
	ID       string `json:"id"`
	IssuedAt int64  `json:"iat"`
	Expires  int64  `json:"exp"`
}

// Me returns the decoded session of the caller. It verifies the cookie
// itself and answers 401 rather than going through the admin gate.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	raw, ok := session.FromRequest(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	claims, err := h.Sessions.Verify(raw)
	switch {
	case errors.Is(err, session.ErrExpiredToken):
		writeError(w, http.StatusUnauthorized, "Token expired")
		return
	case err != nil:
		writeError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	view := sessionView{ID: claims.AdminID()}
	if claims.IssuedAt != nil {
		view.IssuedAt = claims.IssuedAt.Unix()
	}
	if claims.ExpiresAt != nil {
		view.Expires = claims.ExpiresAt.Unix()
	}
	writeJSON(w, http.StatusOK, map[string]sessionView{"user": view})
}
