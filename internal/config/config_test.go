package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyEnv(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", ":9000")
	t.Setenv("DATABASE_DSN", "postgres://fleet@db/fleet")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("TLS_CERT", "certs/server.crt")
	t.Setenv("TLS_KEY", "certs/server.key")
	t.Setenv("CORS_ORIGIN", "https://admin.fleet.io")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("PUBLIC_TRIP_STATUS", "true")

	o := &Options{Port: "localhost:5000", LogLevel: "info"}
	applyEnv(o)

	assert.Equal(t, ":9000", o.Port)
	assert.Equal(t, "postgres://fleet@db/fleet", o.DatabaseDSN)
	assert.Equal(t, "env-secret", o.JWTSecret)
	assert.True(t, o.TLSEnabled())
	assert.Equal(t, "https://admin.fleet.io", o.CORSOrigin)
	assert.Equal(t, "debug", o.LogLevel)
	assert.True(t, o.PublicTripStatus)
}

func TestApplyEnv_BadBoolIgnored(t *testing.T) {
	t.Setenv("PUBLIC_TRIP_STATUS", "sometimes")
	o := &Options{}
	applyEnv(o)
	assert.False(t, o.PublicTripStatus)
}

func TestParse_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"JWTSecret":"file-secret","DatabaseDSN":"postgres://file"}`), 0o600))
	t.Setenv("CONFIG", path)
	t.Setenv("DATABASE_DSN", "postgres://env")

	o := Parse()

	assert.Equal(t, "file-secret", o.JWTSecret)
	assert.Equal(t, "postgres://env", o.DatabaseDSN, "env overrides file")
}

func TestTLSEnabled(t *testing.T) {
	assert.False(t, (&Options{TLSCert: "a"}).TLSEnabled())
	assert.True(t, (&Options{TLSCert: "a", TLSKey: "b"}).TLSEnabled())
}
