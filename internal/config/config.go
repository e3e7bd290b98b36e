package config // package config loads application configuration from environment variables

import (
	"strings"
	"time"
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable; every variable is optional and falls back to a
// default when unset or invalid.
type Config struct {
	Env             string        // application environment (e.g. "dev", "prod")
	Port            string        // HTTP port to listen on
	LogLevel        string        // zerolog level name
	ReadTimeout     time.Duration // http.Server ReadTimeout
	WriteTimeout    time.Duration // http.Server WriteTimeout
	IdleTimeout     time.Duration // http.Server IdleTimeout
	ShutdownTimeout time.Duration // upper bound for graceful shutdown
}

// Defaults used when the corresponding variable is missing or unusable.
const (
	DefaultEnv             = "dev"
	DefaultPort            = "8000"
	DefaultLogLevel        = "info"
	DefaultReadTimeout     = 5 * time.Second
	DefaultWriteTimeout    = 10 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
)

// Load reads configuration values from the environment and returns a Config.
// It never fails: bad values are replaced by their defaults.
func Load() Config {
	return Config{
		Env:             envStr("APP_ENV", DefaultEnv),
		Port:            envPort("APP_PORT", DefaultPort),
		LogLevel:        strings.ToLower(envStr("LOG_LEVEL", DefaultLogLevel)),
		ReadTimeout:     envDur("HTTP_READ_TIMEOUT", DefaultReadTimeout),
		WriteTimeout:    envDur("HTTP_WRITE_TIMEOUT", DefaultWriteTimeout),
		IdleTimeout:     envDur("HTTP_IDLE_TIMEOUT", DefaultIdleTimeout),
		ShutdownTimeout: envDur("SHUTDOWN_TIMEOUT", DefaultShutdownTimeout),
	}
}

// Addr is the listen address handed to echo.Start.
func (c Config) Addr() string { return ":" + c.Port }

// IsProduction reports whether APP_ENV names a production deployment.
func (c Config) IsProduction() bool {
	switch strings.ToLower(c.Env) {
	case "prod", "production":
		return true
	}
	return false
}
