package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"eventboard/config"
	_ "eventboard/docs"
	"eventboard/internal/adapters/auth"
	"eventboard/internal/adapters/email"
	"eventboard/internal/adapters/storage"
	delivery "eventboard/internal/delivery/http"
	"eventboard/internal/delivery/http/controllers"
	"eventboard/internal/delivery/http/middleware"
	"eventboard/internal/repository/postgres"
	"eventboard/internal/services"

	"golang.org/x/crypto/bcrypt"
)

// @title EventBoard API
// @version 1.0
// @description REST API for community events, competitions and enrollments.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger := config.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.String("port", cfg.Port), slog.String("environment", cfg.Environment))

	dbConn, err := postgres.Connect(cfg.DBUrl, 5*time.Second)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		}
	}()
	logger.Info("database connection established")

	// Object storage is optional; without it image uploads are rejected.
	var uploader storage.FileUploader
	if cfg.Upload.Bucket != "" {
		uploader, err = storage.NewR2Uploader(storage.R2Config{
			AccountID:       cfg.Upload.AccountID,
			AccessKeyID:     cfg.Upload.AccessKeyID,
			SecretAccessKey: cfg.Upload.SecretAccessKey,
			Bucket:          cfg.Upload.Bucket,
			PublicBaseURL:   cfg.Upload.PublicBaseURL,
		})
		if err != nil {
			logger.Error("failed to initialize R2 uploader", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("R2 uploader initialized", slog.String("bucket", cfg.Upload.Bucket))
	}

	mailer, err := email.NewMailer(cfg.Mailer)
	if err != nil {
		logger.Error("failed to initialize mailer", slog.Any("error", err))
		os.Exit(1)
	}

	eventRepo := postgres.NewEventRepository(dbConn)
	typeRepo := postgres.NewCompetitionTypeRepository(dbConn)
	competitionRepo := postgres.NewCompetitionRepository(dbConn)
	competitorRepo := postgres.NewCompetitorRepository(dbConn)
	personRepo := postgres.NewPersonRepository(dbConn)
	adminRepo := postgres.NewAdminRepository(dbConn)

	hasher := auth.NewBcryptHasher(bcrypt.DefaultCost)
	codec := auth.NewJWTCodec(cfg.JWTSecret)

	authService := services.NewAuthService(personRepo, adminRepo, hasher, codec, cfg.JWTExpiry)
	eventService := services.NewEventService(eventRepo)
	typeService := services.NewCompetitionTypeService(typeRepo, uploader, logger)
	competitionService := services.NewCompetitionService(competitionRepo, eventRepo, typeRepo)
	competitorService := services.NewCompetitorService(competitorRepo, competitionRepo, personRepo, mailer, logger)
	personService := services.NewPersonService(personRepo, hasher)
	adminService := services.NewAdminService(adminRepo, hasher)

	mux := delivery.NewRouter(delivery.RouterDeps{
		Logger:                    logger,
		Verifier:                  codec,
		Auth:                      authService,
		AuthController:            controllers.NewAuthController(logger, authService),
		EventController:           controllers.NewEventController(logger, eventService),
		CompetitionTypeController: controllers.NewCompetitionTypeController(logger, typeService),
		CompetitionController:     controllers.NewCompetitionController(logger, competitionService),
		CompetitorController:      controllers.NewCompetitorController(logger, competitorService),
		PersonController:          controllers.NewPersonController(logger, personService),
		AdminController:           controllers.NewAdminController(logger, adminService),
	})

	handler := middleware.CORS(cfg.CORSAllowedOrigins, middleware.LoggingMiddleware(logger, mux))

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
}
