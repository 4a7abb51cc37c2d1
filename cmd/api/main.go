// Package main is the entry point for the storefront analytics API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/storefront-hub/backend/config"
	"github.com/storefront-hub/backend/internal/infra/db"
	"github.com/storefront-hub/backend/internal/infra/dependency"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.Log.SlogLevel(),
	}))
	slog.SetDefault(logger)

	slog.Info("Starting Storefront Analytics API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"source", cfg.Storefront.Source,
		"timezone", cfg.Report.Timezone,
	)

	opts := dependency.Options{}

	// Initialize database connection
	if cfg.Storefront.Source == config.SourceDatabase {
		database, err := db.NewConnection(&cfg.Database)
		if err != nil {
			slog.Warn("Database connection failed, running without database",
				"error", err,
			)
			opts.DBHealthChecker = func() bool { return false }
		} else {
			// Run database migrations
			if err := database.MigrateSchema(); err != nil {
				slog.Error("Failed to run database migrations", "error", err)
				os.Exit(1)
			}
			slog.Info("Database migrations completed successfully")

			opts.DB = database.DB()
			opts.DBHealthChecker = database.HealthCheck
			defer func() {
				if err := database.Close(); err != nil {
					slog.Error("Failed to close database connection", "error", err)
				}
			}()
		}
	}

	// Initialize redis connection
	if cfg.Cache.Enabled {
		redisConn, err := db.NewRedisConnection(&cfg.Redis)
		if err != nil {
			slog.Warn("Redis connection failed, running without cache", "error", err)
			opts.RedisHealthChecker = func() bool { return false }
		} else {
			opts.Redis = redisConn.Client()
			opts.RedisHealthChecker = redisConn.HealthCheck
			defer func() {
				if err := redisConn.Close(); err != nil {
					slog.Error("Failed to close redis connection", "error", err)
				}
			}()
		}
	}

	injector := dependency.NewInjector(cfg, opts)
	engine := injector.Router.Setup(cfg.Server.Environment)

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()
	injector.ExportRateLimiter.StartCleanup(rootCtx, 5*time.Minute)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
