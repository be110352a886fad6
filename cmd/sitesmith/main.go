// Package main is the entry point for the SiteSmith builder server.
// It loads configuration, opens the local data store, sets up routing,
// and starts the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sitesmith/internal/analytics"
	"sitesmith/internal/cache"
	"sitesmith/internal/catalog"
	"sitesmith/internal/config"
	"sitesmith/internal/database"
	"sitesmith/internal/handlers"
	"sitesmith/internal/kv"
	"sitesmith/internal/middleware"
	"sitesmith/internal/router"
	"sitesmith/internal/session"
	"sitesmith/internal/store"
)

func main() {
	// Structured logger — outputs JSON in production, text in development.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"data_path", cfg.DataPath,
	)

	// Open the local SQLite data store.
	db, err := database.Connect(cfg.DataPath)
	if err != nil {
		slog.Error("failed to open data store", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Key-value layer over the records table.
	kvs := kv.New(kv.NewSQLBackend(db))

	// Ensure baseline records exist (no-op once seeded).
	database.Seed(kvs)

	// Connect to Valkey (optional — the app works without it, the public
	// site cache just always misses).
	var siteCache *cache.SiteCache
	if cfg.CacheEnabled() {
		valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		if err != nil {
			slog.Error("failed to connect to valkey", "error", err)
			os.Exit(1)
		}
		defer valkeyClient.Close()
		siteCache = cache.NewSiteCache(valkeyClient, cache.DefaultSiteTTL)
	} else {
		slog.Warn("valkey not configured — public site cache disabled")
	}

	// Section template catalog (static, built in).
	cat := catalog.New()

	// Project store and analytics tracker. The store needs the tracker to
	// purge history when a project is deleted, so one side attaches late.
	projects := store.New(kvs, cat, middleware.UserIDFromCtx, cfg.SiteBaseURL)
	tracker := analytics.NewTracker(kvs, projects)
	projects.SetEventHistory(tracker)

	// Viewer identity cookies. In non-development environments, mark them
	// Secure (HTTPS-only).
	sessions := session.NewManager(!cfg.IsDev())

	// Create handler groups with their dependencies.
	editorHandlers := handlers.NewEditor(projects, tracker, cat, siteCache)
	publicHandlers := handlers.NewPublic(projects, tracker, sessions, siteCache)

	// Set up the Chi router with all middleware and routes.
	r := router.New(editorHandlers, publicHandlers)

	// Create the HTTP server with sensible timeouts.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
