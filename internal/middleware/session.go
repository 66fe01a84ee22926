// Package middleware provides HTTP middlewares for admin sessions,
// request logging and metrics.
package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/atinyakov/FleetDesk/internal/models"
	"github.com/atinyakov/FleetDesk/internal/session"
	"go.uber.org/zap"
)

type ctxKey string

const adminKey ctxKey = "admin"

// TokenVerifier checks a session token and returns its claims.
type TokenVerifier interface {
	Verify(token string) (*session.Claims, error)
}

// AdminFinder resolves the admin a session was issued for.
type AdminFinder interface {
	FindByID(ctx context.Context, id string) (*models.Admin, error)
}

// RequireAdmin is the authorization gate for admin-only routes.
//
// It reads the session cookie and moves the request from unauthenticated
// to authenticated only if the token verifies and its admin still exists:
//
//	no cookie            → 403 "No token, authorization denied"
//	bad signature        → 401 "Invalid token"
//	expired              → 401 "Token expired"
//	admin no longer here → 401 "Invalid admin"
//
// On success the admin is stored in the request context.
func RequireAdmin(tokens TokenVerifier, admins AdminFinder, log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := session.FromRequest(r)
			if !ok {
				writeError(w, http.StatusForbidden, "No token, authorization denied")
				return
			}

			claims, err := tokens.Verify(raw)
			switch {
			case errors.Is(err, session.ErrExpiredToken):
				writeError(w, http.StatusUnauthorized, "Token expired")
				return
			case err != nil:
				writeError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			admin, err := admins.FindByID(r.Context(), claims.AdminID())
			if errors.Is(err, models.ErrNotFound) {
				writeError(w, http.StatusUnauthorized, "Invalid admin")
				return
			}
			if err != nil {
				log.Error("resolve session admin", zap.String("admin_id", claims.AdminID()), zap.Error(err))
				writeError(w, http.StatusInternalServerError, "Server error")
				return
			}

			ctx := context.WithValue(r.Context(), adminKey, admin)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetAdminFromContext returns the admin resolved by RequireAdmin, or nil
// outside a gated route.
func GetAdminFromContext(ctx context.Context) *models.Admin {
	if a, ok := ctx.Value(adminKey).(*models.Admin); ok {
		return a
	}
	return nil
}
