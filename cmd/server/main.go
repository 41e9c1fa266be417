package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	httpapi "rentit-backend/internal/api/http"
	"rentit-backend/internal/config"
	"rentit-backend/internal/jobs"
	"rentit-backend/internal/logger"
	"rentit-backend/internal/repository"
	"rentit-backend/internal/repository/memory"
	"rentit-backend/internal/repository/postgres"
	"rentit-backend/internal/scheduler"
	"rentit-backend/internal/security"
	"rentit-backend/internal/service"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting RentIt backend", "address", cfg.GetServerAddress(), "demo", cfg.Demo.Enabled)

	var store repository.Store
	if cfg.Demo.Enabled {
		logger.Info("Demo mode: serving from the in-memory store")
		memStore := memory.NewStore()
		if err := memory.Seed(context.Background(), memStore, cfg.Demo.Password); err != nil {
			log.Fatalf("Failed to seed demo data: %v", err)
		}
		store = memStore
	} else {
		db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
		defer db.Close()

		if err := db.Ping(); err != nil {
			log.Fatalf("Failed to ping database: %v", err)
		}
		logger.Info("Database connection established", "host", cfg.Database.Host, "database", cfg.Database.Database)
		store = postgres.NewStore(db)
	}

	tokens := security.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute)

	var emailSvc service.EmailService
	if cfg.SendGrid.APIKey != "" {
		emailSvc = service.NewSendGridEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	} else {
		logger.Warn("No SendGrid API key configured, emails will be dropped")
		emailSvc = service.NewNoopEmailService()
	}

	authSvc := service.NewAuthService(store.Users(), tokens)
	vehicleSvc := service.NewVehicleService(store.Vehicles())
	driverSvc := service.NewDriverService(store.Drivers())
	bookingSvc := service.NewBookingService(store.Bookings(), store.Vehicles(), store.Drivers(), store.Users(), emailSvc)
	reviewSvc := service.NewReviewService(store.Reviews(), store.Bookings())
	complaintSvc := service.NewComplaintService(store.Complaints(), store.Bookings(), store.Users())
	adminSvc := service.NewAdminService(store.Vehicles(), store.Drivers(), store.Bookings(), store.Complaints(), store.Users(), emailSvc)

	router := httpapi.NewRouter(httpapi.Handlers{
		Auth:      httpapi.NewAuthHandler(authSvc),
		Vehicle:   httpapi.NewVehicleHandler(vehicleSvc),
		Driver:    httpapi.NewDriverHandler(driverSvc),
		Booking:   httpapi.NewBookingHandler(bookingSvc, driverSvc),
		Review:    httpapi.NewReviewHandler(reviewSvc),
		Complaint: httpapi.NewComplaintHandler(complaintSvc),
		Admin:     httpapi.NewAdminHandler(adminSvc, complaintSvc),
	}, tokens)

	jobRunner := jobs.NewJobRunner(store.Vehicles(), store.Users(), emailSvc, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Forced shutdown", "error", err)
	}
}
