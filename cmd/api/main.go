// @title           Legal Board API
// @version         1.0
// @description     Tableros kanban de audiencias, reuniones, términos y actividades de procesos judiciales

// @host      localhost:8000
// @BasePath  /api/tableros

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	_ "legal-board-api/docs" // Swagger docs import

	"legal-board-api/internal/client"
	"legal-board-api/internal/config"
	"legal-board-api/internal/database"
	"legal-board-api/internal/job"
	"legal-board-api/internal/kanban"
	"legal-board-api/internal/metrics"
	"legal-board-api/internal/realtime"
	"legal-board-api/internal/repository"
	"legal-board-api/internal/router"
	"legal-board-api/internal/service"
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

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Starting Legal Board API",
		zap.String("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.String("base_path", cfg.Server.BasePath),
		zap.String("storage_backend", cfg.Storage.Backend),
		zap.String("failure_policy", cfg.Board.FailurePolicy),
	)

	m := metrics.NewWithLogger(logger)

	// Database, retried until the pod's startup window closes
	dbConfig := database.Config{
		DSN:             cfg.Database.GetDSN(),
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}
	connectCtx, cancelConnect := context.WithTimeout(context.Background(), 2*time.Minute)
	db, err := database.Connect(connectCtx, dbConfig, database.New, 5*time.Second, logger)
	cancelConnect()
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close(db)
	logger.Info("Database connected successfully")

	if err := database.AutoMigrate(db, logger); err != nil {
		logger.Fatal("Failed to run database migrations", zap.Error(err))
	}
	if err := database.RegisterMetricsCallbacks(db, m); err != nil {
		logger.Warn("Failed to register database metrics callbacks", zap.Error(err))
	}
	statsDone := database.StartDBStatsCollector(db, m, cfg.Jobs.StatsInterval)
	defer close(statsDone)

	collector := metrics.NewBusinessMetricsCollector(db, m, logger, cfg.Jobs.StatsInterval)
	collector.Start()
	defer collector.Stop()

	// Redis is optional; without it responsables are read straight from the database
	rdb, err := database.NewRedis(cfg.Redis, logger)
	if err != nil {
		logger.Warn("Redis unavailable, responsables cache disabled", zap.Error(err))
		rdb = nil
	}
	if rdb != nil {
		defer rdb.Close()
	}

	files, err := newFileStore(cfg, logger, m)
	if err != nil {
		logger.Warn("File storage unavailable, attachment routes disabled", zap.Error(err))
		files = nil
	}

	policy, err := kanban.ParseFailurePolicy(cfg.Board.FailurePolicy)
	if err != nil {
		logger.Fatal("Invalid board failure policy", zap.Error(err))
	}

	hub := realtime.NewHub(m, logger)
	defer hub.Stop()

	// Background jobs
	scheduler := job.NewScheduler(logger)
	sweep := job.NewDeadlineSweepJob(repository.NewDeadlineRepository(db), m, logger)
	if err := scheduler.Add("deadline_sweep", cfg.Jobs.DeadlineSweepSchedule, sweep); err != nil {
		logger.Fatal("Invalid deadline sweep schedule", zap.Error(err))
	}
	scheduler.Start()
	go sweep.Run()

	r := router.Setup(router.Config{
		DB:             db,
		Logger:         logger,
		JWTSecret:      cfg.JWT.Secret,
		BasePath:       cfg.Server.BasePath,
		Metrics:        m,
		Redis:          rdb,
		ResponsableTTL: cfg.Redis.ResponsablesTTL,
		FileStore:      files,
		Hub:            hub,
		Board:          service.BoardOptions{PageSize: cfg.Board.PageSize, Policy: policy},
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("Legal Board API started successfully",
			zap.String("address", srv.Addr),
			zap.String("swagger", fmt.Sprintf("http://localhost:%s%s/swagger/index.html", cfg.Server.Port, cfg.Server.BasePath)),
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

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
	scheduler.Stop(ctx)

	logger.Info("Server exited gracefully")
}

// newFileStore selects the bucket backend configured in storage.backend
func newFileStore(cfg *config.Config, logger *zap.Logger, m *metrics.Metrics) (client.FileStore, error) {
	switch cfg.Storage.Backend {
	case "s3":
		store, err := client.NewS3FileStore(&cfg.S3, logger, m)
		if err != nil {
			return nil, err
		}
		logger.Info("S3 file store initialized", zap.String("region", cfg.S3.Region))
		return store, nil
	default:
		if cfg.Storage.BaseURL == "" {
			return nil, fmt.Errorf("storage.base_url is empty")
		}
		logger.Info("Storage API client initialized", zap.String("base_url", cfg.Storage.BaseURL))
		return client.NewStorageClient(cfg.Storage.BaseURL, cfg.Storage.Timeout, logger, m), nil
	}
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
