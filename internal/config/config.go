package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Logging controls the zerolog output shared by both processes.
type Logging struct {
	Level  string
	Format string
}

// Config holds the booking API's runtime configuration sourced from env vars.
type Config struct {
	Port          string
	Environment   string
	StorageDriver string
	DatabaseURL   string
	DBMaxConns    int32
	JWTSecret     string
	JWTIssuer     string
	JWTTTL        time.Duration
	BcryptCost    int
	CORSOrigins   []string
	Logging       Logging
}

// Load reads configuration from the environment and performs minimal validation.
func Load() (Config, error) {
	cfg := Config{
		Port:          fallback(os.Getenv("PORT"), "8080"),
		Environment:   fallback(os.Getenv("APP_ENV"), "development"),
		StorageDriver: strings.ToLower(fallback(os.Getenv("STORAGE_DRIVER"), DriverPostgres)),
		DatabaseURL:   strings.TrimSpace(os.Getenv("DATABASE_URL")),
		DBMaxConns:    int32(positiveInt(os.Getenv("DB_MAX_CONNS"), 10)),
		JWTSecret:     strings.TrimSpace(os.Getenv("JWT_SECRET")),
		JWTIssuer:     fallback(os.Getenv("JWT_ISSUER"), "cafe-api"),
		JWTTTL:        time.Duration(positiveInt(os.Getenv("JWT_TTL_MINUTES"), 60)) * time.Minute,
		BcryptCost:    positiveInt(os.Getenv("BCRYPT_COST"), 10),
		CORSOrigins:   parseCSV(fallback(os.Getenv("CORS_ALLOWED_ORIGINS"), fallback(os.Getenv("FRONTEND_URL"), "http://localhost:3000"))),
		Logging:       loadLogging(),
	}

	switch cfg.StorageDriver {
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, errors.New("DATABASE_URL is required")
		}
	case DriverMemory:
	default:
		return Config{}, fmt.Errorf("unsupported STORAGE_DRIVER %q", cfg.StorageDriver)
	}
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET is required")
	}

	return cfg, nil
}

// HTTPAddress returns the host:port pair for the HTTP server to bind to.
func (c Config) HTTPAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

// WebConfig holds the presentation service's runtime configuration.
type WebConfig struct {
	Port        string
	Environment string
	APIBaseURL  string
	APITimeout  time.Duration
	Logging     Logging
}

// LoadWeb reads the presentation service configuration from the environment.
func LoadWeb() (WebConfig, error) {
	cfg := WebConfig{
		Port:        fallback(os.Getenv("WEB_PORT"), "3000"),
		Environment: fallback(os.Getenv("APP_ENV"), "development"),
		APIBaseURL:  strings.TrimRight(fallback(os.Getenv("BOOKING_API_URL"), "http://localhost:8080"), "/"),
		APITimeout:  time.Duration(positiveInt(os.Getenv("BOOKING_API_TIMEOUT_SECONDS"), 10)) * time.Second,
		Logging:     loadLogging(),
	}
	if !strings.HasPrefix(cfg.APIBaseURL, "http://") && !strings.HasPrefix(cfg.APIBaseURL, "https://") {
		return WebConfig{}, fmt.Errorf("BOOKING_API_URL must be an http(s) URL, got %q", cfg.APIBaseURL)
	}
	return cfg, nil
}

// HTTPAddress returns the host:port pair for the HTTP server to bind to.
func (c WebConfig) HTTPAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

func loadLogging() Logging {
	return Logging{
		Level:  fallback(os.Getenv("LOG_LEVEL"), "info"),
		Format: fallback(os.Getenv("LOG_FORMAT"), "json"),
	}
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}

func positiveInt(value string, def int) int {
	if n, err := strconv.Atoi(strings.TrimSpace(value)); err == nil && n > 0 {
		return n
	}
	return def
}

func parseCSV(input string) []string {
	parts := strings.Split(input, ",")
	var out []string
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
