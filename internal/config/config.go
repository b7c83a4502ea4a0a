// Package config provides centralized configuration loaded from environment
// variables. Shared by both cmd/api and cmd/providers.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/eventini/provider-api/internal/provider"
)

// --------------------------------------------------------------------------
// Collection names
// --------------------------------------------------------------------------

const (
	ActiveProvidersCollection = "ActiveProviders"
	ProvidersRoot             = "Providers"
	ProvidersSubcollection    = "providers"
)

// CategoryCollection returns the collection path holding providers of c,
// e.g. "Providers/Venues/providers".
func CategoryCollection(c provider.Category) string {
	return ProvidersRoot + "/" + string(c) + "/" + ProvidersSubcollection
}

// Store backends.
const (
	BackendFirestore = "firestore"
	BackendPostgres  = "postgres"
	BackendMemory    = "memory"
)

// --------------------------------------------------------------------------
// Config struct, populated from environment variables
// --------------------------------------------------------------------------

type Config struct {
	// Datastore
	StoreBackend        string `validate:"oneof=firestore postgres memory"`
	FirestoreProjectID  string `validate:"required_if=StoreBackend firestore"`
	FirestoreDatabaseID string
	FixturesFile        string

	// Database (postgres backend and the providers CLI)
	DatabaseURL    string `validate:"required_if=StoreBackend postgres"`
	DBPoolMinConns int    `validate:"min=0"`
	DBPoolMaxConns int    `validate:"min=1,gtefield=DBPoolMinConns"`
	DBPoolMaxLife  time.Duration

	// API server
	APIHost     string
	APIPort     int    `validate:"min=1,max=65535"`
	Environment string `validate:"oneof=development staging production test"`
	Debug       bool

	// CORS
	CORSAllowOrigins []string

	// Honor X-Forwarded-For / X-Real-IP. Only safe behind a proxy that
	// overwrites them.
	TrustProxy bool

	// Rate limiting
	RateLimitEnabled  bool
	RateLimitRequests int           `validate:"min=1"`
	RateLimitWindow   time.Duration `validate:"min=1s"`

	// Response cache. Off by default: providers are read through to the
	// datastore on every request, and enabling it serves responses up to
	// cache.TTLProvider old.
	CacheEnabled bool

	// Prometheus
	MetricsEnabled bool

	// Background datastore probe; zero disables it
	StoreProbeInterval time.Duration `validate:"min=0"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Option adjusts a loaded Config before validation.
type Option func(*Config)

// WithBackend overrides STORE_BACKEND.
func WithBackend(backend string) Option {
	return func(c *Config) { c.StoreBackend = strings.ToLower(backend) }
}

// WithFixtures overrides FIXTURES_FILE.
func WithFixtures(path string) Option {
	return func(c *Config) { c.FixturesFile = path }
}

// Load reads configuration from environment variables with sensible defaults.
func Load(opts ...Option) (*Config, error) {
	cfg := &Config{
		StoreBackend:        strings.ToLower(envOr("STORE_BACKEND", BackendFirestore)),
		FirestoreProjectID:  envOr("FIRESTORE_PROJECT_ID", envOr("GOOGLE_CLOUD_PROJECT", "")),
		FirestoreDatabaseID: envOr("FIRESTORE_DATABASE_ID", ""),
		FixturesFile:        envOr("FIXTURES_FILE", ""),

		DatabaseURL:    envOr("DATABASE_URL", ""),
		DBPoolMinConns: envInt("DB_POOL_MIN_CONNS", 2),
		DBPoolMaxConns: envInt("DB_POOL_MAX_CONNS", 10),
		DBPoolMaxLife:  time.Duration(envInt("DB_POOL_MAX_LIFE_MINUTES", 30)) * time.Minute,

		APIHost:     envOr("API_HOST", "0.0.0.0"),
		APIPort:     envInt("API_PORT", envInt("PORT", 8000)),
		Environment: envOr("ENVIRONMENT", "development"),
		Debug:       envBool("DEBUG", false),

		CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS", []string{
			"http://localhost:3000",
		}),

		TrustProxy: envBool("TRUST_PROXY", false),

		RateLimitEnabled:  envBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequests: envInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:   time.Duration(envInt("RATE_LIMIT_WINDOW", 60)) * time.Second,

		CacheEnabled:   envBool("CACHE_ENABLED", false),
		MetricsEnabled: envBool("METRICS_ENABLED", true),

		StoreProbeInterval: time.Duration(envInt("STORE_PROBE_INTERVAL", 30)) * time.Second,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints and cross-field requirements.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// IsProduction returns true if running in production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}
