package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultAddr            = ":8080"
	DefaultMetricsAddr     = ":9090"
	DefaultEnvironment     = "development"
	DefaultMaxBodyBytes    = 64 << 10
	DefaultRequestTimeout  = 10 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr            string
	MetricsAddr     string
	Environment     string
	LogLevel        slog.Level
	PoolsFile       string
	MaxBodyBytes    int64
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration

	// Warnings lists variables that were set but unusable and fell back to
	// their defaults.
	Warnings []string
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	return fromLookup(os.LookupEnv)
}

func fromLookup(lookup func(string) (string, bool)) Server {
	cfg := Server{
		Addr:            DefaultAddr,
		MetricsAddr:     DefaultMetricsAddr,
		Environment:     DefaultEnvironment,
		LogLevel:        slog.LevelInfo,
		MaxBodyBytes:    DefaultMaxBodyBytes,
		RequestTimeout:  DefaultRequestTimeout,
		ShutdownTimeout: DefaultShutdownTimeout,
	}
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}
	warn := func(key, value string) {
		cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("ignoring invalid %s=%q", key, value))
	}

	if v, ok := get("LEADGEN_ADDR"); ok {
		cfg.Addr = v
	}
	if v, ok := get("LEADGEN_METRICS_ADDR"); ok {
		cfg.MetricsAddr = v
	}
	if v, ok := get("LEADGEN_ENV"); ok {
		cfg.Environment = v
	}
	if v, ok := get("LEADGEN_POOLS_FILE"); ok {
		cfg.PoolsFile = v
	}
	if v, ok := get("LEADGEN_LOG_LEVEL"); ok {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			cfg.LogLevel = slog.LevelInfo
			warn("LEADGEN_LOG_LEVEL", v)
		}
	}
	if v, ok := get("LEADGEN_MAX_BODY_BYTES"); ok {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			cfg.MaxBodyBytes = n
		} else {
			warn("LEADGEN_MAX_BODY_BYTES", v)
		}
	}
	if v, ok := get("LEADGEN_REQUEST_TIMEOUT"); ok {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.RequestTimeout = d
		} else {
			warn("LEADGEN_REQUEST_TIMEOUT", v)
		}
	}
	if v, ok := get("LEADGEN_SHUTDOWN_TIMEOUT"); ok {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.ShutdownTimeout = d
		} else {
			warn("LEADGEN_SHUTDOWN_TIMEOUT", v)
		}
	}

	return cfg
}

// MetricsEnabled reports whether /metrics gets its own listener.
func (s Server) MetricsEnabled() bool {
	return s.MetricsAddr != "" && s.MetricsAddr != "off"
}
