package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/furnishhq/quotation-api/docs"
	"github.com/furnishhq/quotation-api/internal/auth"
	"github.com/furnishhq/quotation-api/internal/config"
	"github.com/furnishhq/quotation-api/internal/database"
	"github.com/furnishhq/quotation-api/internal/http/handler"
	"github.com/furnishhq/quotation-api/internal/http/middleware"
	"github.com/furnishhq/quotation-api/internal/http/router"
	"github.com/furnishhq/quotation-api/internal/jobs"
	"github.com/furnishhq/quotation-api/internal/logger"
	"github.com/furnishhq/quotation-api/internal/repository"
	"github.com/furnishhq/quotation-api/internal/service"
	"github.com/furnishhq/quotation-api/internal/storage"
)

// @title Furnish Quotation API
// @version 1.0
// @description Quotation management API for curtain and upholstery businesses: customers, staff, projects, rooms, windows and deterministic pricing

// @contact.name API Support
// @contact.email support@furnishhq.in

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// Load basic configuration first so the logger can be set up
	basicCfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.NewLogger(&basicCfg.Logging, &basicCfg.App)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting application",
		zap.String("app", basicCfg.App.Name),
		zap.String("env", basicCfg.App.Environment),
		zap.Int("port", basicCfg.App.Port),
	)

	if basicCfg.App.Environment == "development" || basicCfg.App.Environment == "local" {
		docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", basicCfg.App.Port)
	}

	// Full configuration, with secrets resolved from the vault when enabled
	cfg, err := config.LoadWithSecrets(ctx, log)
	if err != nil {
		return fmt.Errorf("failed to load secrets: %w", err)
	}

	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	fileStorage, err := storage.NewStorage(&cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	log.Info("Storage initialized", zap.String("mode", cfg.Storage.Mode))

	// Repositories
	userRepo := repository.NewUserRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	salesPersonRepo := repository.NewSalesPersonRepository(db)
	tailorRepo := repository.NewTailorRepository(db)
	configRepo := repository.NewConfigurationRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	windowRepo := repository.NewWindowRepository(db)
	sequenceRepo := repository.NewQuotationSequenceRepository(db)

	// Auth
	tokens, err := auth.NewTokenManager(&cfg.Auth)
	if err != nil {
		return fmt.Errorf("failed to initialize token manager: %w", err)
	}

	// Services
	authService := service.NewAuthService(userRepo, tokens, log)
	customerService := service.NewCustomerService(customerRepo, log)
	salesPersonService := service.NewSalesPersonService(salesPersonRepo, log)
	tailorService := service.NewTailorService(tailorRepo, log)
	configurationService := service.NewConfigurationService(configRepo, fileStorage, log)
	numberService := service.NewQuotationNumberService(sequenceRepo, log)
	quotationService := service.NewQuotationService(projectRepo, log)
	projectService := service.NewProjectService(
		projectRepo, customerRepo, salesPersonRepo, tailorRepo,
		configurationService, numberService, quotationService, log,
	)
	roomService := service.NewRoomService(roomRepo, projectRepo, log)
	windowService := service.NewWindowService(windowRepo, roomRepo, projectRepo, log)
	exportService := service.NewExportService(quotationService, configurationService, fileStorage, log)

	// Middleware
	authMiddleware := auth.NewMiddleware(tokens, log)
	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit, log)

	// Handlers
	authHandler := handler.NewAuthHandler(authService, log)
	customerHandler := handler.NewCustomerHandler(customerService, log)
	salesPersonHandler := handler.NewSalesPersonHandler(salesPersonService, log)
	tailorHandler := handler.NewTailorHandler(tailorService, log)
	configurationHandler := handler.NewConfigurationHandler(configurationService, cfg.Storage.MaxUploadSizeMB, log)
	projectHandler := handler.NewProjectHandler(projectService, quotationService, exportService, log)
	roomHandler := handler.NewRoomHandler(roomService, log)
	windowHandler := handler.NewWindowHandler(windowService, log)

	rt := router.NewRouter(
		cfg,
		log,
		db,
		authMiddleware,
		rateLimiter,
		authHandler,
		customerHandler,
		salesPersonHandler,
		tailorHandler,
		configurationHandler,
		projectHandler,
		roomHandler,
		windowHandler,
	)

	// Background jobs
	var scheduler *jobs.Scheduler
	if cfg.Jobs.Enabled {
		scheduler = jobs.NewScheduler(log)
		cleanupJob := jobs.NewDraftCleanupJob(projectRepo, &cfg.Jobs, log)
		if err := cleanupJob.Register(scheduler, cfg.Jobs.CleanupSchedule); err != nil {
			log.Error("Failed to register draft cleanup job", zap.Error(err))
		} else {
			scheduler.Start()
			log.Info("Scheduler started",
				zap.String("cleanup_schedule", cfg.Jobs.CleanupSchedule),
			)
		}
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      rt.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))

		if scheduler != nil {
			ctx := scheduler.Stop()
			<-ctx.Done()
			log.Info("Scheduler stopped")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Failed to shutdown gracefully", zap.Error(err))
			return err
		}

		log.Info("Server stopped gracefully")
	}

	return nil
}
