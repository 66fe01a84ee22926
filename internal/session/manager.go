// Package session issues and verifies the signed, time-limited tokens that
// carry an admin session, and moves them in and out of the session cookie.
package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// TTL is the fixed lifetime of a session token.
const TTL = 24 * time.Hour

var (
	// ErrInvalidToken is returned for malformed, tampered or foreign tokens.
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken is returned for a correctly signed token past its expiry.
	ErrExpiredToken = errors.New("token expired")
	// ErrEmptySecret is returned by NewManager when no signing secret is configured.
	ErrEmptySecret = errors.New("session: empty signing secret")
)

// Claims is the token payload. Subject holds the admin id.
type Claims struct {
	jwtlib.RegisteredClaims
}

// AdminID returns the admin the token was issued for.
func (c *Claims) AdminID() string {
	return c.Subject
}

// Manager signs and verifies session tokens with one process-wide HS256 secret.
type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
	secure bool
}

// NewManager creates a token manager. secure marks the session cookie
// Secure and should be set when the server terminates TLS.
func NewManager(secret string, secure bool) (*Manager, error) {
	s := strings.TrimSpace(secret)
	if s == "" {
		return nil, ErrEmptySecret
	}
	return &Manager{
		secret: []byte(s),
		ttl:    TTL,
		now:    time.Now,
		secure: secure,
	}, nil
}

// Issue returns a signed token for adminID that expires TTL from now.
func (m *Manager) Issue(adminID string) (string, *Claims, error) {
	now := m.now().UTC()
	claims := &Claims{
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject:   adminID,
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(m.ttl)),
		},
	}
	signed, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}
	return signed, claims, nil
}

// Verify checks the signature first and expiry second. It returns
// ErrInvalidToken or ErrExpiredToken on failure.
func (m *Manager) Verify(token string) (*Claims, error) {
	parser := jwtlib.NewParser(
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithExpirationRequired(),
		jwtlib.WithTimeFunc(m.now),
	)

	claims := &Claims{}
	parsed, err := parser.ParseWithClaims(token, claims, func(*jwtlib.Token) (any, error) {
		return m.secret, nil
	})
	switch {
	case err == nil && parsed.Valid && claims.Subject != "":
		return claims, nil
	case errors.Is(err, jwtlib.ErrTokenExpired):
		return nil, ErrExpiredToken
	default:
		return nil, ErrInvalidToken
	}
}
