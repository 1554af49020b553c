package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"guesthub/internal/pkg/validator"

	"github.com/joho/godotenv"
)

const (
	defaultAPIBaseURL      = "http://localhost:8001/api"
	defaultAPITimeout      = "15s"
	defaultSessionStoreDSN = "guesthub_session.db"
	defaultDatabaseURL     = "guesthub_dev.db"
	defaultJWTSecret       = "change-me-jwt-secret"
	defaultJWTTTL          = "24h"
	defaultPort            = "8001"
)

// ClientConfig is what the booking front end needs: where the booking API
// lives and where the local session is kept.
type ClientConfig struct {
	AppEnv          string
	APIBaseURL      string
	APITimeout      time.Duration
	SessionStoreDSN string
}

// ServerConfig configures the development booking API.
type ServerConfig struct {
	AppEnv      string
	DatabaseURL string
	JWTSecret   string
	JWTTTL      time.Duration
	Port        string
	// CORSOrigins is a comma-separated list of extra allowed origins.
	CORSOrigins string
}

// IsProduction reports whether the server runs in a prod-like environment.
func (c *ServerConfig) IsProduction() bool {
	return isProdLike(c.AppEnv)
}

// LoadDotEnv reads a .env file when present. A missing file is not an error.
func LoadDotEnv(paths ...string) {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			log.Printf("config: failed to load %s: %v", p, err)
		}
	}
}

func LoadClientConfig() (*ClientConfig, error) {
	cfg := &ClientConfig{
		AppEnv:          appEnv(),
		APIBaseURL:      strings.TrimRight(strings.TrimSpace(getEnv("API_BASE_URL", defaultAPIBaseURL)), "/"),
		SessionStoreDSN: strings.TrimSpace(getEnv("SESSION_STORE_DSN", defaultSessionStoreDSN)),
	}

	var err error
	cfg.APITimeout, err = parseDurationEnv("API_TIMEOUT", defaultAPITimeout)
	if err != nil {
		return nil, err
	}

	if cfg.APIBaseURL == "" {
		return nil, fmt.Errorf("API_BASE_URL must not be empty")
	}
	if !validator.Var(cfg.APIBaseURL, "http_url") {
		return nil, fmt.Errorf("API_BASE_URL must be an http(s) URL, got %q", cfg.APIBaseURL)
	}
	if cfg.APITimeout <= 0 {
		return nil, fmt.Errorf("API_TIMEOUT must be > 0")
	}
	if cfg.SessionStoreDSN == "" {
		return nil, fmt.Errorf("SESSION_STORE_DSN must not be empty")
	}

	log.Printf("client config: env=%s api=%s timeout=%s", cfg.AppEnv, cfg.APIBaseURL, cfg.APITimeout)

	return cfg, nil
}

func LoadServerConfig() (*ServerConfig, error) {
	cfg := &ServerConfig{
		AppEnv:      appEnv(),
		DatabaseURL: strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL)),
		JWTSecret:   strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret)),
		Port:        strings.TrimSpace(getEnv("PORT", defaultPort)),
		CORSOrigins: os.Getenv("CORS_ALLOWED_ORIGINS"),
	}

	var err error
	cfg.JWTTTL, err = parseDurationEnv("JWT_TTL", defaultJWTTTL)
	if err != nil {
		return nil, err
	}

	if cfg.JWTTTL <= 0 {
		return nil, fmt.Errorf("JWT_TTL must be > 0")
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL must not be empty")
	}
	if isProdLike(cfg.AppEnv) && isEmptyOrDefault(cfg.JWTSecret, defaultJWTSecret) {
		return nil, fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
	}

	return cfg, nil
}

func appEnv() string {
	env := strings.TrimSpace(os.Getenv("APP_ENV"))
	if env == "" {
		env = strings.TrimSpace(os.Getenv("ENV"))
	}
	if env == "" {
		env = "dev"
	}
	return strings.ToLower(env)
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
