package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/SJ-Slasher/FMS/internal/config"
	"github.com/SJ-Slasher/FMS/internal/db"
	"github.com/SJ-Slasher/FMS/internal/email"
	"github.com/SJ-Slasher/FMS/internal/logger"
	"github.com/SJ-Slasher/FMS/internal/scheduler"
	"github.com/SJ-Slasher/FMS/internal/seed"
	"github.com/SJ-Slasher/FMS/internal/server"
)

// @title Futsal Arena API
// @version 1.0
// @description Court booking administration for a futsal facility.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.LogLevel, cfg.IsDevelopment())
	logger.Info("Starting futsal booking service", "environment", cfg.Environment, "log_level", cfg.LogLevel)
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Connecting to database...")
	database, err := db.Connect(context.Background(), cfg.DatabaseURL, db.PoolConfig{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
		PingTimeout:     10 * time.Second,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	defer database.Close()
	logger.Info("Database connected")

	if err := db.RunMigrations(database, cfg.MigrationsPath); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}
	logger.Info("Migrations completed")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mailer := connectMailer(ctx, cfg)
	if mailer != nil {
		defer mailer.Close()
		go mailer.Start(ctx)
	}

	services := server.NewServices(database, mailer)

	seeder := seed.NewSeeder(database, services.Courts, services.Slots, services.Customers)
	if err := seeder.Run(ctx, cfg.SeedFile); err != nil {
		logger.Fatalf("Failed to seed catalog: %v", err)
	}

	jobs, err := scheduler.New()
	if err != nil {
		logger.Fatalf("Failed to create scheduler: %v", err)
	}
	if err := scheduler.RegisterBookingJobs(jobs, services.Bookings, cfg.CompleteBookingsCron); err != nil {
		logger.Fatalf("Failed to register booking jobs: %v", err)
	}
	if mailer != nil {
		if err := scheduler.RegisterQueueGauge(jobs, mailer); err != nil {
			logger.Fatalf("Failed to register queue gauge: %v", err)
		}
	}
	jobs.Start()

	srv := server.New(cfg, services)

	serverErrChan := make(chan error, 1)
	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Infof("Received signal: %v", sig)
	case err := <-serverErrChan:
		logger.Errorf("Server error: %v", err)
	}

	logger.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}
	if err := jobs.Stop(); err != nil {
		logger.Errorf("Error stopping scheduler: %v", err)
	}
	cancel()

	logger.Info("Server stopped")
}

// connectMailer returns nil when Redis is unreachable. Bookings still work,
// only notifications are lost.
func connectMailer(ctx context.Context, cfg *config.Config) *email.Service {
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		logger.Warn("Redis unavailable, email notifications disabled", "addr", cfg.RedisAddr, "error", err)
		_ = rdb.Close()
		return nil
	}

	logger.Info("Email service initialized", "redis", cfg.RedisAddr)
	return email.New(rdb, email.SMTPConfig{
		From:     cfg.EmailFrom,
		FromName: cfg.EmailFromName,
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		User:     cfg.SMTPUser,
		Pass:     cfg.SMTPPass,
	})
}
