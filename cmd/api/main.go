package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"board-automation-api/internal/config"
	"board-automation-api/internal/database"
	"board-automation-api/internal/job"
	"board-automation-api/internal/metrics"
	"board-automation-api/internal/repository"
	"board-automation-api/internal/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := initLogger(cfg.Logger.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Automation Service",
		zap.String("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.String("base_path", cfg.Server.BasePath),
		zap.String("board_api_url", cfg.BoardAPI.BaseURL),
	)

	// Initialize database (startup proceeds even if the first attempt fails)
	dbConfig := database.Config{
		DSN:             cfg.Database.GetDSN(),
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	db, err := database.New(dbConfig)
	if err != nil {
		logger.Warn("Failed to connect to database on startup, will retry in background",
			zap.Error(err))
		dbCh := database.NewAsync(dbConfig, 5*time.Second, logger)
		db = <-dbCh
	}
	logger.Info("Database connected successfully")

	if err := database.SafeAutoMigrateWithRetry(db, logger, 3); err != nil {
		logger.Warn("Failed to run database migrations", zap.Error(err))
	} else {
		logger.Info("Database migrations completed")
	}

	// Initialize metrics
	m := metrics.NewWithLogger(logger)
	logger.Info("Metrics initialized")

	// DB query and pool metrics
	database.RegisterMetricsCallbacks(db, m)
	stopStats := database.StartDBStatsCollector(db, m)
	defer close(stopStats)

	// Redis is optional; role lookups fall back to the database without it
	redisClient, err := database.NewRedis(cfg.Redis, logger)
	if err != nil {
		logger.Warn("Failed to connect to redis, role cache disabled", zap.Error(err))
		redisClient = nil
	}

	// Business metrics collector
	collector := metrics.NewBusinessMetricsCollector(db, m, logger)
	collector.Start()
	defer collector.Stop()

	// Setup router with all dependencies
	r := router.Setup(cfg, db, redisClient, m, logger)

	// Execution retention job
	executionRepo := repository.NewExecutionRepository(db)
	cleanupJob := job.NewExecutionCleanupJob(executionRepo, cfg.Engine.ExecutionRetention, logger)
	scheduler := cron.New()
	if _, err := scheduler.AddJob(cfg.Engine.CleanupSchedule, cleanupJob); err != nil {
		logger.Warn("Failed to schedule execution cleanup job",
			zap.String("schedule", cfg.Engine.CleanupSchedule),
			zap.Error(err))
	} else {
		scheduler.Start()
		defer scheduler.Stop()
		logger.Info("Execution cleanup job scheduled",
			zap.String("schedule", cfg.Engine.CleanupSchedule),
			zap.Duration("retention", cfg.Engine.ExecutionRetention))
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Automation Service started successfully",
			zap.String("address", srv.Addr),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	if err := database.Close(db); err != nil {
		logger.Warn("Failed to close database connection", zap.Error(err))
	}

	logger.Info("Server exited gracefully")
}

// initLogger initializes the zap logger with the specified level
func initLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      zapLevel == zapcore.DebugLevel,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return config.Build()
}
