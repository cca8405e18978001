package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"spinwheel-service/internal/config"
	"spinwheel-service/internal/database"
	"spinwheel-service/internal/handler"
	"spinwheel-service/internal/logger"
	"spinwheel-service/internal/payment"
	"spinwheel-service/internal/repository/postgres"
	"spinwheel-service/internal/service"
	"spinwheel-service/internal/worker"

	_ "spinwheel-service/docs"
)

// @title Spin Wheel Engine API
// @version 1.0
// @description Purchase, wallet and eligibility engine for the promotions spin wheel
// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	// Setup logger
	log := logger.New(cfg.Log)

	// Apply schema migrations
	if cfg.Database.Migrate {
		if err := database.MigrateUp(cfg.Database); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
	}

	// Initialize database connection
	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbPool, err := database.NewPool(dbCtx, cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer dbPool.Close()

	// Repositories
	walletRepo := postgres.NewWalletRepository(dbPool)
	wheelRepo := postgres.NewWheelRepository(dbPool)
	purchaseRepo := postgres.NewPurchaseRepository(dbPool)
	spinRepo := postgres.NewSpinRepository(dbPool)

	// Transaction manager used by services
	txManager := postgres.NewTransactionManager(dbPool)

	// Payment provider boundary
	provider := payment.NewSandboxProvider(cfg.Payment)

	// Services
	walletService := service.NewWalletService(walletRepo, txManager, log)
	purchaseService := service.NewPurchaseService(walletRepo, wheelRepo, purchaseRepo, txManager, provider, cfg.Payment.Currency, log)
	reconcileService := service.NewReconcileService(purchaseRepo, txManager, log)
	eligibilityService := service.NewEligibilityService(wheelRepo, spinRepo, log)
	spinService := service.NewSpinService(walletRepo, wheelRepo, purchaseRepo, spinRepo, txManager, service.NewDefaultPrizeSelector(), log)
	wheelService := service.NewWheelService(wheelRepo, log)
	expiryService := service.NewExpiryService(purchaseRepo, txManager, cfg.Worker.PendingTTL, log)

	// Root context to be canceled on SIGINT / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Worker for stale pending purchase expiry
	expiryWorker := worker.NewExpiryWorker(expiryService, cfg.Worker.ExpiryInterval, log)
	expiryWorker.Start(ctx)
	defer expiryWorker.Stop()

	// http handler
	h := handler.NewHandler(walletService, purchaseService, reconcileService, eligibilityService, spinService, wheelService, log)
	router := h.SetupRoutes()

	// http server configuration
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Str("port", cfg.Server.Port).Msg("Server started")

	// Wait for shutdown signal
	<-ctx.Done()
	log.Info().Msg("Shutdown signal received, starting graceful shutdown...")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown error")
	} else {
		log.Info().Msg("HTTP server stopped gracefully")
	}

	log.Info().Msg("Shutdown complete")
}
