// Package main is the entry point for the LifeHub API server.
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
	"github.com/redis/go-redis/v9"

	"github.com/lifehub/backend/config"
	"github.com/lifehub/backend/internal/infra/db"
	"github.com/lifehub/backend/internal/infra/dependency"
	"github.com/lifehub/backend/internal/infra/server/router"
	"github.com/lifehub/backend/internal/integration/entrypoint/controller"
	"github.com/lifehub/backend/internal/integration/notification"
	"github.com/lifehub/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if present (development convenience)
	_ = godotenv.Load()

	// Setup structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	slog.Info("Starting LifeHub API",
		"environment", cfg.Server.Environment,
		"port", cfg.Server.Port,
	)

	var engine http.Handler
	var worker *notification.Worker
	var dbClose func() error

	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		// Run in degraded mode so the health endpoint can report the outage.
		slog.Error("Failed to connect to database, running without persistence", "error", err)

		healthController := controller.NewHealthController(func() bool { return false })
		degraded := router.NewRouter(healthController, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil)
		engine = degraded.Setup(cfg.Server.Environment)
	} else {
		dbClose = database.Close

		if err := database.AutoMigrate(
			&model.UserModel{},
			&model.RefreshTokenModel{},
			&model.PasswordResetTokenModel{},
			&model.CategoryModel{},
			&model.TransactionModel{},
			&model.GoalModel{},
			&model.GoalProgressModel{},
			&model.FinanceGoalModel{},
			&model.HabitModel{},
			&model.HabitCheckinModel{},
			&model.NotificationQueueModel{},
		); err != nil {
			slog.Error("Failed to run database migrations", "error", err)
			os.Exit(1)
		}

		redisOpts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			slog.Error("Invalid Redis URL", "error", err)
			os.Exit(1)
		}
		if cfg.Redis.Password != "" {
			redisOpts.Password = cfg.Redis.Password
		}
		redisOpts.DB = cfg.Redis.DB
		redisClient := redis.NewClient(redisOpts)

		injector, err := dependency.NewInjector(cfg, database.DB(), redisClient, database.HealthCheck)
		if err != nil {
			slog.Error("Failed to wire dependencies", "error", err)
			os.Exit(1)
		}

		engine = injector.Router.Setup(cfg.Server.Environment)
		if cfg.Notification.WorkerEnabled {
			worker = injector.NotificationWorker
		}
	}

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	workerCtx, stopWorker := context.WithCancel(context.Background())
	if worker != nil {
		go worker.Start(workerCtx)
		slog.Info("Notification worker started",
			"poll_interval", cfg.Notification.PollInterval,
			"batch_size", cfg.Notification.BatchSize,
		)
	}

	go func() {
		slog.Info("Server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server")
	stopWorker()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}

	if dbClose != nil {
		if err := dbClose(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}

	slog.Info("Server exited")
}
