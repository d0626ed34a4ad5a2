// Package http provides HTTP server infrastructure including module registration.
package http

import (
	"context"

	"station_lookup_backend/platform/config"
	"station_lookup_backend/platform/logger"
)

// RouterConfig combines the config interfaces needed by the HTTP router.
type RouterConfig interface {
	config.HTTPConfig
	config.RateLimitConfig
}

// HealthChecker exposes minimal functionality for readiness checks.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// App holds the fully initialized application dependencies.
// This is populated by main.go (the composition root) and passed to the router.
type App struct {
	// Config holds the router configuration (HTTP and rate limit settings only).
	Config RouterConfig
	// Logger is the structured logger.
	Logger *logger.Logger
	// Health is used for readiness checks against the asset and session stores.
	Health HealthChecker
	// Modules contains all HTTP-facing domain modules.
	Modules []Module
}

// HealthChecks pings every checker in order and returns the first failure.
type HealthChecks []HealthChecker

func (h HealthChecks) Ping(ctx context.Context) error {
	for _, check := range h {
		if err := check.Ping(ctx); err != nil {
			return err
		}
	}
	return nil
}
