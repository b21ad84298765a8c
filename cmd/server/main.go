package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mphinance/yieldmax/internal/api"
	"github.com/mphinance/yieldmax/internal/config"
	"github.com/mphinance/yieldmax/internal/database"
	"github.com/mphinance/yieldmax/internal/repository"
	"github.com/mphinance/yieldmax/internal/service"
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

	// Apply migrations and seed reference data on first run
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	if err := database.Seed(db); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	// Create repositories
	etfRepo := repository.NewETFRepository(db)
	holdingRepo := repository.NewHoldingRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)

	// Create services
	systemService := service.NewSystemService(db)
	snapshotService := service.NewSnapshotService(etfRepo, holdingRepo, paymentRepo, scheduleRepo)
	if err := snapshotService.Load(context.Background()); err != nil {
		log.Fatalf("Failed to load reference data snapshot: %v", err)
	}

	projectionService := service.NewProjectionService(snapshotService, cfg.Projection)
	dividendService := service.NewDividendService(projectionService)
	holdingService := service.NewHoldingService(snapshotService, cfg.Projection)
	scheduleService := service.NewScheduleService(snapshotService)

	refreshService, err := service.NewRefreshService(snapshotService, cfg.Refresh.CronSpec)
	if err != nil {
		log.Fatalf("Failed to create refresh service: %v", err)
	}
	refreshService.Start()
	defer refreshService.Stop()

	// Create router
	router := api.NewRouter(systemService, dividendService, holdingService, scheduleService, cfg)

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
