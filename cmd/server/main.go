package main

import (
	"fmt"
	"log"

	"inventario/internal/config"
	"inventario/internal/email/noop"
	"inventario/internal/email/ses"
	"inventario/internal/handler"
	"inventario/internal/port"
	"inventario/internal/repository/postgres"
	"inventario/internal/router"
	"inventario/internal/service"
	s3storage "inventario/internal/storage/s3"
	"inventario/internal/validation"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	stateRepo := postgres.NewStateRepo(db)
	inventoryRepo := postgres.NewInventoryRepo(db)
	locationRepo := postgres.NewLocationRepo(db)
	elementRepo := postgres.NewElementRepo(db)
	reportRepo := postgres.NewReportRepo(db)
	codeRepo := postgres.NewAccessCodeRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize email sender
	var emailSender port.EmailSender
	switch cfg.Email.Provider {
	case "ses":
		emailSender, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	default:
		emailSender = noop.NewNoopSender()
	}

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	userSvc := service.NewUserService(userRepo)
	stateSvc := service.NewStateService(stateRepo)
	inventorySvc := service.NewInventoryService(inventoryRepo, codeRepo, emailSender, cfg.Share)
	locationSvc := service.NewLocationService(locationRepo, inventorySvc)
	elementSvc := service.NewElementService(elementRepo, inventorySvc, s3Client, &cfg.S3)
	reportSvc := service.NewReportService(reportRepo, elementRepo, inventorySvc)

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc, userSvc)
	userH := handler.NewUserHandler(userSvc)
	stateH := handler.NewStateHandler(stateSvc)
	inventoryH := handler.NewInventoryHandler(inventorySvc)
	locationH := handler.NewLocationHandler(locationSvc)
	elementH := handler.NewElementHandler(elementSvc)
	reportH := handler.NewReportHandler(reportSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router with the request validation registry
	registry := validation.NewRegistry()
	r := router.Setup(
		authSvc,
		registry,
		validation.DefaultBindings,
		cfg.CORS.AllowedOrigins,
		authH,
		userH,
		stateH,
		inventoryH,
		locationH,
		elementH,
		reportH,
		healthH,
	)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
