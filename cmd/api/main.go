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
	"github.com/go-redis/redis/v8"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"

	"ciao-api/internal/client"
	"ciao-api/internal/config"
	"ciao-api/internal/database"
	"ciao-api/internal/job"
	"ciao-api/internal/metrics"
	"ciao-api/internal/repository"
	"ciao-api/internal/router"
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

	logger.Info("Starting Ciao API",
		zap.String("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.String("base_path", cfg.Server.BasePath),
	)

	// Initialize metrics
	m := metrics.NewWithLogger(logger)

	// Initialize database; startup proceeds without it so the pod stays alive
	// and readiness reports the real state
	dbConfig := database.Config{
		DSN:             cfg.Database.GetDSN(),
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	onConnect := func(db *gorm.DB) {
		if err := database.SafeAutoMigrate(db, logger); err != nil {
			logger.Warn("Failed to run database migrations", zap.Error(err))
		}
		database.RegisterMetricsCallbacks(db, m)
		database.StartDBStatsCollector(db, m)
	}

	db, err := database.New(dbConfig)
	if err != nil {
		logger.Warn("Failed to connect to database on startup, will retry in background",
			zap.Error(err))
		database.NewAsync(dbConfig, 5*time.Second, onConnect)
	} else {
		logger.Info("Database connected successfully")
		onConnect(db)
	}

	// Redis is optional; role lookups fall back to the database without it
	var redisClient *redis.Client
	if cfg.Redis.URL != "" || cfg.Redis.Addr != "" {
		redisClient, err = database.NewRedis(cfg.Redis, logger)
		if err != nil {
			logger.Warn("Failed to connect to Redis, role cache disabled", zap.Error(err))
			redisClient = nil
		}
	}

	// S3 is optional; attachment uploads are disabled without it
	var s3Client client.S3ClientInterface
	if cfg.S3.Bucket != "" && cfg.S3.Region != "" {
		s3, err := client.NewS3Client(&cfg.S3)
		if err != nil {
			logger.Warn("Failed to initialize S3 client, attachment features disabled", zap.Error(err))
		} else {
			s3Client = s3
			logger.Info("S3 client initialized",
				zap.String("bucket", cfg.S3.Bucket),
				zap.String("region", cfg.S3.Region),
			)
		}
	} else {
		logger.Warn("S3 configuration incomplete, attachment features disabled")
	}

	// Notifier falls back to a no-op when unconfigured
	var notifier client.NotifierClient
	if cfg.Notifier.BaseURL != "" {
		notifier = client.NewNotifierClient(cfg.Notifier.BaseURL, cfg.Notifier.APIKey, cfg.Notifier.Timeout, logger, m)
		logger.Info("Notifier client initialized", zap.String("base_url", cfg.Notifier.BaseURL))
	} else {
		notifier = client.NewNoOpNotifierClient()
		logger.Warn("Notifier not configured, deadline reminders will be dropped")
	}

	// Periodic business gauges
	if db != nil {
		collector := metrics.NewBusinessMetricsCollector(db, m, logger)
		collector.Start(30 * time.Second)
	}

	// Background jobs
	scheduler := cron.New()
	if db != nil {
		assignmentRepo := repository.NewAssignmentRepository(db)
		projectRepo := repository.NewProjectRepository(db)
		attachmentRepo := repository.NewAttachmentRepository(db)

		reminderJob := job.NewReminderJob(assignmentRepo, projectRepo, notifier, logger, m)
		if _, err := scheduler.AddJob(cfg.Jobs.ReminderSchedule, reminderJob); err != nil {
			logger.Error("Failed to schedule reminder job", zap.Error(err))
		}

		if s3Client != nil {
			cleanupJob := job.NewCleanupJob(attachmentRepo, s3Client, logger)
			if _, err := scheduler.AddJob(cfg.Jobs.CleanupSchedule, cleanupJob); err != nil {
				logger.Error("Failed to schedule cleanup job", zap.Error(err))
			}
		}

		scheduler.Start()
		logger.Info("Background jobs scheduled",
			zap.String("reminder", cfg.Jobs.ReminderSchedule),
			zap.String("cleanup", cfg.Jobs.CleanupSchedule),
		)
	}

	// Setup router with all dependencies
	r := router.Setup(router.Config{
		DB:             db,
		Redis:          redisClient,
		Logger:         logger,
		JWTSecret:      cfg.JWT.Secret,
		JWTTTL:         cfg.JWT.TTL,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		BasePath:       cfg.Server.BasePath,
		Metrics:        m,
		S3Client:       s3Client,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("Ciao API started successfully", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	scheduler.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
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
