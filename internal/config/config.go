// Package config loads and validates application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// minSessionSecret is the shortest accepted SESSION_SECRET; the cookie store
// signs flash messages with it.
const minSessionSecret = 32

// Config holds all configuration values for the web server and fyyurctl.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "5000".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// SessionSecret signs the flash-message cookie. Required, at least 32 bytes.
	SessionSecret string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Empty by default: the site is served same-origin.
	// Set CORS_ORIGINS to a comma-separated list to allow others.
	CORSOrigins []string

	// MaxBodyBytes caps request bodies. Defaults to 1 MiB.
	MaxBodyBytes int64
}

// Load reads an optional .env file from the working directory and then the
// environment. Variables already set in the environment win over the file.
func Load() (Config, error) {
	return LoadFile(".env")
}

// LoadFile is Load with an explicit env file path. A missing file is not an error.
func LoadFile(path string) (Config, error) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}

	cfg := Config{
		Port:        getEnv("PORT", "5000"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: splitCSV(os.Getenv("CORS_ORIGINS")),
	}

	var missing []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	cfg.SessionSecret = os.Getenv("SESSION_SECRET")
	if cfg.SessionSecret == "" {
		missing = append(missing, "SESSION_SECRET")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}
	if len(cfg.SessionSecret) < minSessionSecret {
		return Config{}, fmt.Errorf("SESSION_SECRET must be at least %d bytes", minSessionSecret)
	}

	maxBody, err := strconv.ParseInt(getEnv("MAX_BODY_BYTES", "1048576"), 10, 64)
	if err != nil || maxBody <= 0 {
		return Config{}, fmt.Errorf("MAX_BODY_BYTES must be a positive integer")
	}
	cfg.MaxBodyBytes = maxBody

	return cfg, nil
}

// DatabaseURL returns DATABASE_URL after reading the optional .env file.
// fyyurctl uses it because it needs neither the session secret nor the HTTP settings.
func DatabaseURL() (string, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("config: reading .env: %w", err)
	}
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return "", errors.New("required environment variables not set: DATABASE_URL")
	}
	return dsn, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
