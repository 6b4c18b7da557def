package main

import (
	"fmt"
	"log"

	"credigate/internal/apiclient"
	nooparchive "credigate/internal/archive/noop"
	s3archive "credigate/internal/archive/s3"
	"credigate/internal/config"
	"credigate/internal/consulta"
	noopemail "credigate/internal/email/noop"
	sesemail "credigate/internal/email/ses"
	"credigate/internal/handler"
	"credigate/internal/port"
	"credigate/internal/repository/postgres"
	"credigate/internal/router"
	"credigate/internal/service"
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
	consultationRepo := postgres.NewConsultationRepo(db)

	// Initialize report archive
	var archive port.ReportArchive
	switch cfg.Archive.Provider {
	case "s3":
		archive, err = s3archive.NewS3Archive(&cfg.Archive)
		if err != nil {
			return fmt.Errorf("failed to initialize report archive: %w", err)
		}
	default:
		archive = nooparchive.NewNoopArchive()
	}

	// Initialize email sender
	var email port.EmailSender
	switch cfg.Email.Provider {
	case "ses":
		email, err = sesemail.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName, cfg.Email.FrontendURL)
		if err != nil {
			return fmt.Errorf("failed to initialize email sender: %w", err)
		}
	default:
		email = noopemail.NewNoopSender()
	}

	// Upstream credit bureau client
	backend := apiclient.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout)

	// Initialize services
	factory := consulta.NewFactory()
	consultationSvc := service.NewConsultationService(factory, backend, consultationRepo, archive, email)
	historySvc := service.NewHistoryService(consultationRepo)
	authSvc := service.NewAuthService(backend)
	balanceSvc := service.NewBalanceService(backend)

	// Initialize handlers
	consultaH := handler.NewConsultaHandler(consultationSvc)
	historyH := handler.NewHistoryHandler(historySvc)
	authH := handler.NewAuthHandler(authSvc)
	balanceH := handler.NewBalanceHandler(balanceSvc)
	reportH := handler.NewReportHandler(archive)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg, consultaH, historyH, authH, balanceH, reportH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
