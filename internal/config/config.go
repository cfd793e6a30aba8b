package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAppName         = "HaulBid Admin Console"
	defaultAppEnv          = "development"
	defaultPort            = "8080"
	defaultLogLevel        = "info"
	defaultAPIBaseURL      = "http://localhost:5000/api"
	defaultSessionTTL      = 12 * time.Hour
	defaultCacheTTL        = 30 * time.Second
	defaultUpstreamTimeout = 15 * time.Second
	defaultShutdownPeriod  = 10 * time.Second
	defaultLoginRateLimit  = 5
)

// Config captures application runtime configuration loaded from environment variables.
type Config struct {
	AppName         string
	AppEnv          string
	Port            string
	LogLevel        string
	APIBaseURL      string
	RedisURL        string
	CookieSecret    string
	SessionTTL      time.Duration
	CacheTTL        time.Duration
	UpstreamTimeout time.Duration
	ShutdownPeriod  time.Duration
	LoginRateLimit  int
}

// Load reads configuration values from the environment and populates a Config
// instance. A .env file is honored when present.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		AppName:         getEnv("APP_NAME", defaultAppName),
		AppEnv:          strings.ToLower(getEnv("APP_ENV", defaultAppEnv)),
		Port:            getEnv("PORT", defaultPort),
		LogLevel:        strings.ToLower(getEnv("LOG_LEVEL", defaultLogLevel)),
		APIBaseURL:      strings.TrimRight(getEnv("API_BASE_URL", defaultAPIBaseURL), "/"),
		RedisURL:        os.Getenv("REDIS_URL"),
		CookieSecret:    os.Getenv("COOKIE_SECRET"),
		SessionTTL:      defaultSessionTTL,
		CacheTTL:        defaultCacheTTL,
		UpstreamTimeout: defaultUpstreamTimeout,
		ShutdownPeriod:  defaultShutdownPeriod,
		LoginRateLimit:  defaultLoginRateLimit,
	}

	durations := []struct {
		envVar string
		dst    *time.Duration
	}{
		{"SESSION_TTL", &cfg.SessionTTL},
		{"CACHE_TTL", &cfg.CacheTTL},
		{"UPSTREAM_TIMEOUT", &cfg.UpstreamTimeout},
		{"SHUTDOWN_TIMEOUT", &cfg.ShutdownPeriod},
	}
	for _, d := range durations {
		if v := os.Getenv(d.envVar); v != "" {
			parsed, err := time.ParseDuration(v)
			if err != nil {
				return Config{}, fmt.Errorf("invalid %s: %w", d.envVar, err)
			}
			*d.dst = parsed
		}
	}

	if v := os.Getenv("LOGIN_RATE_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid LOGIN_RATE_LIMIT: %w", err)
		}
		cfg.LoginRateLimit = n
	}

	if cfg.CookieSecret == "" {
		if !cfg.IsDev() {
			return Config{}, fmt.Errorf("COOKIE_SECRET must be set when APP_ENV=%s", cfg.AppEnv)
		}
		cfg.CookieSecret = "dev-only-cookie-secret"
	}

	return cfg, nil
}

// Address returns the listen address in the format Fiber expects.
func (c Config) Address() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return fmt.Sprintf(":%s", c.Port)
}

// IsDev reports whether the console runs in a development environment.
func (c Config) IsDev() bool {
	switch c.AppEnv {
	case "dev", "development", "local":
		return true
	default:
		return false
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
