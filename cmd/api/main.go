package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/murilosilvaof/logap-desafio-dev-junior/internal/config"
	"github.com/murilosilvaof/logap-desafio-dev-junior/internal/database"
	"github.com/murilosilvaof/logap-desafio-dev-junior/internal/handler"
	"github.com/murilosilvaof/logap-desafio-dev-junior/internal/metrics"
	"github.com/murilosilvaof/logap-desafio-dev-junior/internal/repository"
	"github.com/murilosilvaof/logap-desafio-dev-junior/internal/router"
	"github.com/murilosilvaof/logap-desafio-dev-junior/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting sales API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	// Create schema and, on an empty database, the sample data set
	if err := database.Bootstrap(ctx, pool, logger); err != nil {
		return fmt.Errorf("failed to bootstrap database: %w", err)
	}
	if cfg.Database.Seed {
		if err := database.Seed(ctx, pool, logger); err != nil {
			return fmt.Errorf("failed to seed database: %w", err)
		}
	}

	// Initialize repositories
	customerRepo := repository.NewCustomerRepository(pool, logger)
	productRepo := repository.NewProductRepository(pool, logger)
	orderRepo := repository.NewOrderRepository(pool, logger)
	reportRepo := repository.NewReportRepository(pool, logger)

	// Initialize services
	customerService := service.NewCustomerService(customerRepo, logger)
	productService := service.NewProductService(productRepo, logger)
	orderService := service.NewOrderService(orderRepo, customerRepo, productRepo, logger)
	reportService := service.NewReportService(reportRepo, logger)

	// Initialize HTTP handlers
	customerHandler := handler.NewCustomerHandler(customerService, logger)
	productHandler := handler.NewProductHandler(productService, logger)
	orderHandler := handler.NewOrderHandler(orderService, logger)
	reportHandler := handler.NewReportHandler(reportService, logger)
	analyzeHandler := handler.NewAnalyzeHandler(logger)

	// Initialize router
	m := metrics.New("sales-api")
	mux := router.New(customerHandler, productHandler, orderHandler, reportHandler, analyzeHandler, m, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
