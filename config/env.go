// Package config exposes application settings as package-level accessors.
//
// Values are resolved in order: process environment, .env file (loaded via
// godotenv), built-in defaults. Call config.Load() once at boot; every
// accessor calls it defensively so tests work without explicit setup.
package config

import (
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAppPort      = "5000"
	defaultAppEnv       = "local"
	defaultMongoURI     = "mongodb://localhost:27017"
	defaultMongoDB      = "vinayak"
	defaultRedisAddr    = "localhost:6379"
	defaultPollInterval = 15 * time.Second
	defaultMaxBodyBytes = 50 << 20 // matches the storefront's 50mb upload limit
)

var (
	loadOnce sync.Once
	loadErr  error
)

// Load reads the .env file (if present) into the process environment.
// A missing file is not an error; a malformed one is.
func Load() error {
	loadOnce.Do(func() {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			loadErr = err
		}
	})
	return loadErr
}

func get(key, fallback string) string {
	_ = Load()
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// AppPort returns the HTTP listen port.
func AppPort() string { return get("APP_PORT", defaultAppPort) }

// AppEnv returns the deployment environment: local, production, …
func AppEnv() string { return get("APP_ENV", defaultAppEnv) }

// MongoURI returns the MongoDB connection string.
func MongoURI() string { return get("MONGO_URI", defaultMongoURI) }

// MongoDB returns the database name.
func MongoDB() string { return get("MONGO_DB", defaultMongoDB) }

// MongoLogURI returns the optional MongoDB URI used by the async log
// handler. Empty means logs go to stdout only.
func MongoLogURI() string { return get("MONGO_LOG_URI", "") }

// RedisAddr returns the Redis host:port used by pkg/cache.
func RedisAddr() string { return get("REDIS_ADDR", defaultRedisAddr) }

// RedisPassword returns the Redis AUTH password (empty when unset).
func RedisPassword() string { return get("REDIS_PASSWORD", "") }

// CORSOrigins returns the allow-listed browser origins, comma separated in
// the environment. Requests without an Origin header bypass the list.
func CORSOrigins() []string {
	raw := get("CORS_ORIGINS", "")
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, strings.TrimRight(p, "/"))
		}
	}
	return out
}

// APIBaseURL returns the backend origin the dashboard and storefront
// clients talk to. Empty string means same-origin (a dev proxy forwards
// /api), so client paths stay relative.
func APIBaseURL() string {
	return strings.TrimRight(get("API_BASE_URL", ""), "/")
}

// DashboardPollInterval returns the order-refresh polling cadence.
func DashboardPollInterval() time.Duration {
	if raw := get("DASHBOARD_POLL_INTERVAL", ""); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			return d
		}
	}
	return defaultPollInterval
}

// MaxBodyBytes returns the request body cap for JSON binding.
func MaxBodyBytes() int64 {
	if raw := get("MAX_BODY_BYTES", ""); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil && n > 0 {
			return n
		}
	}
	return defaultMaxBodyBytes
}

// Get reads any config key by name with an optional fallback.
func Get(key, fallback string) string { return get(key, fallback) }
