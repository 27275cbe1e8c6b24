package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultPort           = "5000"
	defaultDatabaseURL    = "kindkart.db"
	defaultJWTSecret      = "change-me-jwt-secret"
	defaultJWTAccessTTL   = "24h"
	defaultTransitionMode = "strict"
)

// Config holds every runtime knob the API reads from the environment.
type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	JWTTTL      time.Duration

	// TransitionMode selects the donation status policy: "strict" enforces
	// the forward-only pending -> accepted -> collected order, "permissive"
	// accepts any valid status value on update.
	TransitionMode string
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", defaultPort),
		DatabaseURL: getEnv("DATABASE_URL", defaultDatabaseURL),
		JWTSecret:   strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret)),
	}

	ttl, err := parseDurationEnv("JWT_ACCESS_TTL", defaultJWTAccessTTL)
	if err != nil {
		return nil, err
	}
	cfg.JWTTTL = ttl

	mode := strings.ToLower(strings.TrimSpace(getEnv("TRANSITION_MODE", defaultTransitionMode)))
	if mode != "strict" && mode != "permissive" {
		return nil, fmt.Errorf("TRANSITION_MODE must be strict or permissive, got %q", mode)
	}
	cfg.TransitionMode = mode

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDurationEnv(key, fallback string) (time.Duration, error) {
	raw := getEnv(key, fallback)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s duration %q: %w", key, raw, err)
	}
	return d, nil
}
