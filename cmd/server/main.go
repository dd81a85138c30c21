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

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	httpapi "samedayramps-backend/internal/api/http"
	"samedayramps-backend/internal/config"
	"samedayramps-backend/internal/domain"
	"samedayramps-backend/internal/integrations/calendar"
	"samedayramps-backend/internal/integrations/esign"
	"samedayramps-backend/internal/integrations/payments"
	"samedayramps-backend/internal/integrations/pricingengine"
	"samedayramps-backend/internal/jobs"
	"samedayramps-backend/internal/logger"
	"samedayramps-backend/internal/metrics"
	"samedayramps-backend/internal/pricing"
	"samedayramps-backend/internal/repository/postgres"
	"samedayramps-backend/internal/scheduler"
	"samedayramps-backend/internal/security"
	"samedayramps-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Local development secrets; ignored when the file is absent.
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Same Day Ramps backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress(), "public_base_url", cfg.Server.PublicBaseURL)
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize collaborator clients
	pricingClient := pricingengine.NewClient(cfg.Pricing.URL, time.Duration(cfg.Pricing.TimeoutSeconds)*time.Second)
	paymentsClient := payments.NewClient(cfg.Payments.URL, time.Duration(cfg.Payments.TimeoutSeconds)*time.Second)
	esignClient := esign.NewClient(cfg.Esign.URL, time.Duration(cfg.Esign.TimeoutSeconds)*time.Second)
	calendarClient := calendar.NewClient(cfg.Calendar.URL, time.Duration(cfg.Calendar.TimeoutSeconds)*time.Second)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.Token.Secret, cfg.Token.ExpiryDays)

	// Initialize Email Service
	emailSvc := service.NewSendGridService(cfg.Email.APIKey, cfg.Email.From, cfg.Email.FromName)

	// Initialize Services
	settingsSvc := service.NewSettingsService(store.PricingVariablesRepository, pricingClient)

	var quoteSvc service.QuoteService
	repricer := pricing.NewRepricer(
		pricingClient,
		time.Duration(cfg.Pricing.DebounceMillis)*time.Millisecond,
		time.Duration(cfg.Pricing.TimeoutSeconds)*time.Second,
		func(quoteID string, calcs *domain.PricingCalculations) {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := quoteSvc.ApplyPricing(ctx, quoteID, calcs); err != nil {
				logger.Error("Failed to apply pricing", "quote_id", quoteID, "error", err)
			}
		},
	)
	defer repricer.Stop()

	requestSvc := service.NewRentalRequestService(store.RentalRequestRepository)
	customerSvc := service.NewCustomerService(store.CustomerRepository, store.RentalRequestRepository)
	quoteSvc = service.NewQuoteService(
		store.QuoteRepository,
		store.CustomerRepository,
		settingsSvc,
		repricer,
		tokenManager,
		emailSvc,
		paymentsClient,
		esignClient,
		cfg.Server.PublicBaseURL,
		cfg.Esign.SigningBaseURL,
	)
	jobSvc := service.NewJobService(store.JobRepository, store.QuoteRepository, calendarClient)

	// Initialize Metrics
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New("samedayramps-backend")
		logger.Info("Metrics enabled", "path", cfg.Metrics.Path)
	}

	// Initialize Router
	router := httpapi.NewRouter(httpapi.Services{
		RentalRequests: requestSvc,
		Customers:      customerSvc,
		Quotes:         quoteSvc,
		Jobs:           jobSvc,
		Settings:       settingsSvc,
		Payments:       paymentsClient,
		Esign:          esignClient,
	}, cfg, metricsCollector)

	// Background status sync runs here only when configured; the cronjob
	// binary is the usual home for it.
	if cfg.Scheduler.InServer {
		jobRunner := jobs.NewJobRunner(store, paymentsClient, esignClient, cfg)
		cronScheduler := scheduler.NewScheduler(jobRunner)
		cronScheduler.Start()
		defer cronScheduler.Stop()
	}

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Forced shutdown", "error", err)
	}
	logger.Info("Server stopped. Goodbye!")
}
