// Copyright (c) 2026 World of Alafia Logistics. All rights reserved.
// Author: dev@worldofalafialogistics.com

// Command api is the entry point for the World of Alafia marketplace API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/worldofalafia/marketplace-api/internal/api"
	"github.com/worldofalafia/marketplace-api/internal/auth"
	"github.com/worldofalafia/marketplace-api/internal/cart"
	"github.com/worldofalafia/marketplace-api/internal/catalog"
	"github.com/worldofalafia/marketplace-api/internal/enquiry"
	"github.com/worldofalafia/marketplace-api/internal/newsletter"
	"github.com/worldofalafia/marketplace-api/internal/notify"
	"github.com/worldofalafia/marketplace-api/internal/platform/config"
	"github.com/worldofalafia/marketplace-api/internal/platform/constants"
	"github.com/worldofalafia/marketplace-api/internal/platform/migration"
	pgstore "github.com/worldofalafia/marketplace-api/internal/platform/postgres"
	redisstore "github.com/worldofalafia/marketplace-api/internal/platform/redis"
	"github.com/worldofalafia/marketplace-api/internal/platform/sec"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("[Alafia] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Token Service ──────────────────────────────────────────────────
	jwtSvc, err := sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

	// ── 7. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	notifier := notify.NewLogNotifier(log)
	codeSender := notify.NewDevCodeSender(log)

	catalogService := catalog.NewService(catalog.NewRepository(pool))
	catalogHandler := catalog.NewHandler(catalogService)

	// Shared with the middleware chain, which checks every bearer token
	// against the account's session record.
	sessionRepo := auth.NewSessionRepository(rdb)

	authService := auth.NewService(
		auth.NewUserRepository(pool),
		auth.NewPendingLoginRepository(rdb),
		sessionRepo,
		jwtSvc,
		codeSender,
		notifier,
	)
	authHandler := auth.NewHandler(authService)

	cartService := cart.NewService(
		cart.NewRedisSnapshotStore(rdb),
		api.NewCartItemSource(catalogService),
		notifier,
	)
	cartHandler := cart.NewHandler(cartService)

	var upstream enquiry.Upstream = enquiry.NoopUpstream{}
	if cfg.EnquiryUpstreamURL != "" {
		upstream = enquiry.NewHTTPUpstream(cfg.EnquiryUpstreamURL)
	}
	enquiryService := enquiry.NewService(
		enquiry.NewRepository(pool),
		api.NewEnquiryItemSource(catalogService),
		upstream,
		notifier,
	)
	enquiryHandler := enquiry.NewHandler(enquiryService)

	newsletterService := newsletter.NewService(newsletter.NewRepository(pool), notifier)
	newsletterHandler := newsletter.NewHandler(newsletterService)

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:   liveness,
		Readiness:  readiness,
		Auth:       authHandler,
		Cart:       cartHandler,
		Catalog:    catalogHandler,
		Enquiry:    enquiryHandler,
		Newsletter: newsletterHandler,
	}

	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, jwtSvc, sessionRepo, handlers)

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
