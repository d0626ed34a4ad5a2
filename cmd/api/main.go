package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"station_lookup_backend/internal/addresses"
	"station_lookup_backend/internal/assets"
	apphttp "station_lookup_backend/internal/http"
	"station_lookup_backend/internal/http/router"
	"station_lookup_backend/internal/selection"
	"station_lookup_backend/internal/selection/repository"
	"station_lookup_backend/internal/stations"
	"station_lookup_backend/platform/config"
	"station_lookup_backend/platform/logger"
	"station_lookup_backend/platform/validator"
)

const shutdownTimeout = 10 * time.Second

type bucketChecker interface {
	CheckBucket(ctx context.Context) error
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr, "assetSource", cfg.GetAssetSource())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	store, err := assets.New(cfg, cfg)
	if err != nil {
		log.Error("failed to initialize asset store", "error", err)
		panic("failed to initialize asset store: " + err.Error())
	}
	if checker, ok := store.(bucketChecker); ok {
		if err := withRetry(ctx, log, "asset bucket check", 5, 2*time.Second, func() error {
			return checker.CheckBucket(ctx)
		}); err != nil {
			log.Error("asset bucket unavailable", "error", err, "bucket", cfg.GetMinioBucketAssets())
			panic("asset bucket unavailable: " + err.Error())
		}
	}
	names := assets.NamesFromConfig(cfg)
	health := apphttp.HealthChecks{assets.NewHealthCheck(store, names)}

	sessions, closeSessions := initSessionStore(ctx, cfg, log)
	if closeSessions != nil {
		defer closeSessions()
	}
	if checker, ok := sessions.(apphttp.HealthChecker); ok {
		health = append(health, checker)
	}

	// Shared validator instance for dependency injection
	val := validator.New()

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	addressesModule := addresses.NewModule(store, names, val, log)
	stationsModule, err := stations.NewModule(store, names, cfg, val, log)
	if err != nil {
		log.Error("failed to initialize stations module", "error", err)
		panic("failed to initialize stations module: " + err.Error())
	}
	selectionModule := selection.NewModule(addressesModule.Service(), stationsModule.Service(), sessions, val, log)
	assetsModule := assets.NewModule(store)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config: cfg,
		Logger: log,
		Health: health,
		Modules: []apphttp.Module{
			addressesModule,
			stationsModule,
			selectionModule,
			assetsModule,
		},
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router.New(app),
		ReadHeaderTimeout: 10 * time.Second,
	}

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("graceful shutdown failed", "error", err)
		}
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}

// initSessionStore returns the Redis session store when REDIS_URL is set and
// reachable, and the in-memory store otherwise.
func initSessionStore(ctx context.Context, cfg config.SessionConfig, log *logger.Logger) (repository.Store, func()) {
	if cfg.GetRedisURL() == "" {
		log.Warn("REDIS_URL not configured; selection sessions kept in memory")
		return repository.NewMemoryStore(cfg.GetSessionTTL()), nil
	}

	client, err := repository.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to initialize redis client", "error", err)
		panic("failed to initialize redis client: " + err.Error())
	}

	redisStore := repository.NewRedisStore(client, cfg.GetSessionTTL())
	if err := withRetry(ctx, log, "redis connection", 5, 2*time.Second, func() error {
		return redisStore.Ping(ctx)
	}); err != nil {
		_ = client.Close()
		log.Error("failed to connect to redis", "error", err)
		panic("failed to connect to redis: " + err.Error())
	}
	log.Info("redis session store initialized", "ttl", cfg.GetSessionTTL())

	return redisStore, func() {
		_ = client.Close()
	}
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return fmt.Errorf("%s: invalid retry attempts", name)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
			log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)
		}

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return errors.New(name + ": " + lastErr.Error())
}
