package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/propfolio/backend/internal/api"
	"github.com/propfolio/backend/internal/avm"
	"github.com/propfolio/backend/internal/config"
	"github.com/propfolio/backend/internal/database"
	apperrors "github.com/propfolio/backend/internal/errors"
	"github.com/propfolio/backend/internal/repository"
	"github.com/propfolio/backend/internal/scheduler"
	"github.com/propfolio/backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Apply pending schema migrations
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Create repositories
	propertyRepo := repository.NewPropertyRepository(db)
	valuationRepo := repository.NewValuationRepository(db)
	loanRepo := repository.NewLoanRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// Create services
	systemService, err := service.NewSystemService(db, settingsRepo, cfg.Security.FernetKey)
	if err != nil {
		log.Fatalf("Failed to create system service: %v", err)
	}
	propertyService := service.NewPropertyService(propertyRepo)
	valuationService := service.NewValuationService(valuationRepo, propertyRepo)
	loanService := service.NewLoanService(loanRepo, propertyRepo)
	transactionService := service.NewTransactionService(transactionRepo, propertyRepo)
	portfolioService := service.NewPortfolioService(
		propertyRepo,
		valuationService,
		loanService,
		transactionService,
	)

	// Start the daily valuation refresh if an AVM token has been stored.
	// The token is set at runtime through the system API, so a missing
	// token only disables the scheduler, it is not fatal.
	var avmToken string
	if cfg.Security.FernetKey != "" {
		avmToken, err = systemService.GetAVMToken()
		if err != nil && !errors.Is(err, apperrors.ErrSettingNotFound) {
			log.Printf("Failed to read AVM token, valuation refresh disabled: %v", err)
		}
	}
	if avmToken != "" {
		avmClient := avm.NewClient(cfg.AVM.BaseURL, avmToken)
		sched, err := scheduler.New(valuationService, avmClient, cfg.AVM.Schedule)
		if err != nil {
			log.Fatalf("Failed to create scheduler: %v", err)
		}
		sched.Start()
		defer sched.Stop()
		log.Printf("Valuation refresh scheduled: %s", cfg.AVM.Schedule)
	} else {
		log.Println("No AVM token configured, valuation refresh disabled")
	}

	// Create router
	router := api.NewRouter(systemService, portfolioService, propertyService, valuationService, loanService, transactionService, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
