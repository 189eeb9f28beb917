// cmd/bangazon-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bangazon/bangazon-api/internal/app"
	"github.com/bangazon/bangazon-api/internal/domain/categories"
	"github.com/bangazon/bangazon-api/internal/domain/orders"
	"github.com/bangazon/bangazon-api/internal/domain/paymenttypes"
	"github.com/bangazon/bangazon-api/internal/infrastructure/persistence"
	"github.com/bangazon/bangazon-api/internal/pkg/config"
	"github.com/bangazon/bangazon-api/internal/pkg/logger"
	"github.com/bangazon/bangazon-api/internal/pkg/telemetry"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env is fine; the variables may come from the environment
	_ = godotenv.Load()

	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize tracing
	shutdownTracer, err := telemetry.InitTracer(restConfig.Tracing, os.Stdout)
	if err != nil {
		return fmt.Errorf("failed to initialize tracer: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracer(ctx); err != nil {
			log.Warn("failed to flush traces: ", err)
		}
	}()

	// Initialize application dependencies
	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() {
		if err := persistence.CloseDB(deps.db); err != nil {
			log.Warn("failed to close database: ", err)
		}
	}()

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	db       *gorm.DB
	services *appServices
}

type appServices struct {
	category    categories.CategoryService
	paymentType paymenttypes.PaymentTypeService
	order       orders.OrderService
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := persistence.Migrate(db); err != nil {
		return nil, err
	}
	log.Info("Database migrations completed successfully")

	services, err := initializeApplicationServices(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &appDependencies{
		db:       db,
		services: services,
	}, nil
}

// initializeApplicationServices sets up the repositories and the services on top of them
func initializeApplicationServices(db *gorm.DB, log logger.Logger) (*appServices, error) {
	categoryRepo, err := persistence.NewGormCategoryRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create category repository: %w", err)
	}

	paymentTypeRepo, err := persistence.NewGormPaymentTypeRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment type repository: %w", err)
	}

	customerRepo, err := persistence.NewGormCustomerRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create customer repository: %w", err)
	}

	orderRepo, err := persistence.NewGormOrderRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create order repository: %w", err)
	}

	categoryService, err := app.NewCategoryService(categoryRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create category service: %w", err)
	}

	paymentTypeService, err := app.NewPaymentTypeService(paymentTypeRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment type service: %w", err)
	}

	orderService, err := app.NewOrderService(orderRepo, customerRepo, paymentTypeRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create order service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appServices{
		category:    categoryService,
		paymentType: paymentTypeService,
		order:       orderService,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           newRouter(cfg, deps, log),
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
