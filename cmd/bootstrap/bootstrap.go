package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rhu-patient-portal/config"
	deliveryHttp "rhu-patient-portal/internal/delivery/http"
	"rhu-patient-portal/internal/delivery/http/handler"
	"rhu-patient-portal/internal/delivery/http/middleware"
	"rhu-patient-portal/internal/infrastructure/cache"
	"rhu-patient-portal/internal/infrastructure/database"
	"rhu-patient-portal/internal/repository"
	"rhu-patient-portal/internal/service"
	"rhu-patient-portal/internal/usecase"
	"rhu-patient-portal/pkg/jwt"
	"rhu-patient-portal/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	// Apply schema migrations
	if err := database.RunMigrations(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	// Initialize all layers
	server, err := initializeServer(cfg, db, redisClient)
	if err != nil {
		return nil, err
	}
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*http.Server, error) {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	roleRepo := repository.NewRoleRepository()
	patientRepo := repository.NewPatientRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	consultationRepo := repository.NewConsultationRepository()
	certificateRepo := repository.NewCertificateRepository()
	labResultRepo := repository.NewLaboratoryResultRepository()
	prescriptionRepo := repository.NewPrescriptionRepository()
	referralRepo := repository.NewReferralRepository()
	notificationRepo := repository.NewNotificationRepository()
	auditLogRepo := repository.NewAuditLogRepository()
	barangayRepo := repository.NewBarangayRepository()
	serviceTypeRepo := repository.NewServiceTypeRepository()

	// Initialize services
	auditService := service.NewAuditService(db, log, auditLogRepo)
	notificationService := service.NewNotificationService(log, notificationRepo)
	sequenceService := service.NewSequenceService(db, redisClient, log, consultationRepo, certificateRepo)
	documentService := service.NewCertificateDocService(cfg.Portal)

	// Re-seed display number counters before accepting traffic
	if err := sequenceService.SyncOnStartup(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to sync sequence counters: %w", err)
	}

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, cfg.Auth, userRepo, roleRepo, patientRepo, jwtService, redisClient, auditService)
	profileUsecase := usecase.NewProfileUsecase(db, log, patientRepo, barangayRepo, auditLogRepo, auditService)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, cfg.Booking, patientRepo, appointmentRepo, serviceTypeRepo, barangayRepo, auditService, notificationService)
	consultationUsecase := usecase.NewConsultationUsecase(db, log, patientRepo, consultationRepo, sequenceService, auditService, notificationService)
	certificateUsecase := usecase.NewCertificateUsecase(db, log, patientRepo, certificateRepo, sequenceService, documentService, auditService, notificationService)
	recordUsecase := usecase.NewRecordUsecase(db, log, patientRepo, labResultRepo, prescriptionRepo, referralRepo)
	notificationUsecase := usecase.NewNotificationUsecase(db, log, notificationRepo)
	dashboardUsecase := usecase.NewDashboardUsecase(db, log, patientRepo, appointmentRepo, consultationRepo, certificateRepo, notificationRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	profileHandler := handler.NewProfileHandler(profileUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	consultationHandler := handler.NewConsultationHandler(consultationUsecase, customValidator)
	certificateHandler := handler.NewCertificateHandler(certificateUsecase, customValidator)
	recordHandler := handler.NewRecordHandler(recordUsecase)
	notificationHandler := handler.NewNotificationHandler(notificationUsecase)
	dashboardHandler := handler.NewDashboardHandler(dashboardUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		profileHandler,
		appointmentHandler,
		consultationHandler,
		certificateHandler,
		recordHandler,
		notificationHandler,
		dashboardHandler,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}, nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
