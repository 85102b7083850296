// Package main is the entry point for the greenpress content server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"greenpress/internal/cache"
	"greenpress/internal/config"
	"greenpress/internal/database"
	"greenpress/internal/generator"
	"greenpress/internal/handlers"
	"greenpress/internal/planner"
	"greenpress/internal/publisher"
	"greenpress/internal/router"
	"greenpress/internal/storage"
	"greenpress/internal/store"
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
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Valkey (Redis-compatible cache for week lookups).
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	weekCache := cache.NewWeekCache(valkeyClient, cache.DefaultWeekTTL)

	// Initialize data stores.
	contentStore := store.NewContentStore(db)
	weekStore := store.NewWeekStore(db)

	// Initialize the text-generation adapter. The remote backend is probed
	// once here; a failed probe leaves the local templates active rather
	// than failing startup.
	gen := generator.NewAdapter(context.Background(), generator.RemoteConfig{
		APIKey:  cfg.AIAPIKey,
		Model:   cfg.AIModel,
		BaseURL: cfg.AIBaseURL,
	})

	// Build the content planner with the immutable site-wide settings.
	plan := planner.New(&plannerStore{contentStore, weekStore}, gen, planner.Config{
		TargetKeywords: cfg.TargetKeywords,
		TargetProducts: cfg.TargetProducts,
		BrandVoice:     cfg.BrandVoice,
	})

	// Connect the external blog platform (optional — publishing returns a
	// clear error when unconfigured).
	var blogPublisher publisher.BlogPublisher
	if client := publisher.New(publisher.Config{
		BaseURL: cfg.BlogAPIURL,
		Token:   cfg.BlogAPIToken,
		Author:  cfg.BlogAuthor,
	}); client != nil {
		blogPublisher = client
		slog.Info("blog publisher configured", "url", cfg.BlogAPIURL)
	} else {
		slog.Warn("blog publisher not configured — publishing disabled")
	}

	// Connect the S3-compatible export archive (optional).
	archive, err := storage.New(cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket)
	if err != nil {
		slog.Error("failed to initialize export archive", "error", err)
		os.Exit(1)
	}
	if archive != nil {
		slog.Info("export archive connected", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3Bucket)
	} else {
		slog.Warn("export archive not configured — exports are download-only")
	}

	// Create handler group and router.
	h := handlers.New(plan, contentStore, weekStore, weekCache, blogPublisher, archive, gen, cfg.BlogAuthor)
	r := router.New(h)

	// Create the HTTP server with sensible timeouts.
	// WriteTimeout must accommodate generation runs that wait on the
	// remote backend (a full week is 55 sequential items).
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Minute,
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

// plannerStore satisfies planner.Store by combining the two stores.
type plannerStore struct {
	*store.ContentStore
	*store.WeekStore
}
