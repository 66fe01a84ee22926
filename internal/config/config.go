// Package config provides functionality for managing configuration options
// for the application using command-line flags, a JSON config file and
// environment variables.
package config

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"strconv"
)

// Options holds the configuration values for the application.
type Options struct {
	// Port defines the server's listening address (ip:port).
	Port string

	// DatabaseDSN holds the database connection string for the application.
	DatabaseDSN string

	// Config is the path to the Config file.
	Config string

	// JWTSecret signs session tokens. Required.
	JWTSecret string

	// TLSCert and TLSKey enable HTTPS when both are set.
	TLSCert string
	TLSKey  string

	// CORSOrigin is the browser origin allowed to call the API with credentials.
	CORSOrigin string

	// LogLevel is the zap level name.
	LogLevel string

	// PublicTripStatus leaves POST /api/trips/{id}/status outside the admin gate.
	PublicTripStatus bool
}

// TLSEnabled reports whether both certificate and key are configured.
func (o *Options) TLSEnabled() bool {
	return o.TLSCert != "" && o.TLSKey != ""
}

// options holds the current configuration values.
var options = &Options{}

// init initializes command-line flags and sets default values.
func init() {
	flag.StringVar(&options.Port, "a", "localhost:5000", "run on ip:port server")
	flag.StringVar(&options.DatabaseDSN, "d", "", "db address")
	flag.StringVar(&options.Config, "config", "config.json", "path to config file")
	flag.StringVar(&options.Config, "c", "config.json", "path to config file (shorthand)")
	flag.StringVar(&options.JWTSecret, "s", "", "session signing secret")
	flag.StringVar(&options.TLSCert, "tls-cert", "", "path to TLS certificate")
	flag.StringVar(&options.TLSKey, "tls-key", "", "path to TLS private key")
	flag.StringVar(&options.CORSOrigin, "cors-origin", "http://localhost:5173", "allowed browser origin")
	flag.StringVar(&options.LogLevel, "log-level", "info", "log level")
	flag.BoolVar(&options.PublicTripStatus, "public-trip-status", false, "do not require a session for trip status updates")
}

// Parse parses the command-line flags and environment variables to set
// configuration values. It returns a pointer to the Options struct containing
// the parsed configuration values.
func Parse() *Options {
	flag.Parse()

	// Override flags with environment variables if set
	if configPath := os.Getenv("CONFIG"); configPath != "" {
		options.Config = configPath
	}

	if options.Config != "" {
		if _, err := os.Stat(options.Config); err == nil {
			data, err := os.ReadFile(options.Config)
			if err != nil {
				log.Fatalf("error while reading config file: %v", err)
			}
			if err := json.Unmarshal(data, options); err != nil {
				log.Fatalf("error while parsing config file: %v", err)
			}
		}
	}

	applyEnv(options)
	return options
}

func applyEnv(o *Options) {
	if serverAddress := os.Getenv("SERVER_ADDRESS"); serverAddress != "" {
		o.Port = serverAddress
	}
	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		o.DatabaseDSN = dsn
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		o.JWTSecret = secret
	}
	if cert := os.Getenv("TLS_CERT"); cert != "" {
		o.TLSCert = cert
	}
	if key := os.Getenv("TLS_KEY"); key != "" {
		o.TLSKey = key
	}
	if origin := os.Getenv("CORS_ORIGIN"); origin != "" {
		o.CORSOrigin = origin
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		o.LogLevel = level
	}
	if v := os.Getenv("PUBLIC_TRIP_STATUS"); v != "" {
		if public, err := strconv.ParseBool(v); err == nil {
			o.PublicTripStatus = public
		}
	}
}
