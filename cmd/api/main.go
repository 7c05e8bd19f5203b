// Package main is the entry point for the Expense Tracker API server.
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

	"github.com/expense-tracker/backend/config"
	"github.com/expense-tracker/backend/internal/infra/db"
	"github.com/expense-tracker/backend/internal/infra/dependency"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Expense Tracker API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	// Run database migrations
	if err := database.AutoMigrate(
		&model.UserModel{},
		&model.RefreshTokenModel{},
		&model.TransactionModel{},
		&model.ImportJobModel{},
		&model.EmailQueueModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Initialize Redis (snapshot cache runs degraded without it)
	redisClient := db.NewRedisClient(&cfg.Redis)
	if redisClient != nil {
		defer func() {
			if err := redisClient.Close(); err != nil {
				slog.Error("Failed to close Redis connection", "error", err)
			}
		}()
	}

	// Wire dependencies
	injector, err := dependency.NewInjector(cfg, database.DB(), dependency.Options{
		RedisClient: redisClient,
	})
	if err != nil {
		slog.Error("Failed to wire dependencies", "error", err)
		os.Exit(1)
	}

	// Start email worker
	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()

	if cfg.Email.WorkerEnabled {
		go injector.EmailWorker.Start(workerCtx)
		slog.Info("Email worker started",
			"poll_interval", cfg.Email.PollInterval,
			"batch_size", cfg.Email.BatchSize,
		)
	}

	// Setup router
	engine := injector.Router.Setup(cfg.Server.Environment)

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
	stopWorker()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
