package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hospital-management/config"
	deliveryHttp "hospital-management/internal/delivery/http"
	"hospital-management/internal/delivery/http/handler"
	"hospital-management/internal/delivery/http/middleware"
	"hospital-management/internal/delivery/http/view"
	"hospital-management/internal/infrastructure/cache"
	"hospital-management/internal/infrastructure/database"
	"hospital-management/internal/repository"
	"hospital-management/internal/service"
	"hospital-management/internal/usecase"
	"hospital-management/pkg/form"
	"hospital-management/pkg/jwt"
	"hospital-management/pkg/password"
	"hospital-management/pkg/validator"

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

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	log := setupLogger(cfg.App.LogLevel)
	log.Info("Configuration loaded successfully")

	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.IsDevelopment(), log)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	log.Info("Database connected successfully")

	if err := database.Migrate(db); err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	redisClient, err := cache.NewRedisClient(cfg.Redis, log)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	log.Info("Redis connected successfully")

	httpHandler, err := NewHTTPHandler(cfg, db, redisClient, log)
	if err != nil {
		app.Close()
		return nil, err
	}

	app.Server = &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           httpHandler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return app, nil
}

// Migrate creates the tables if they are absent and returns.
func Migrate() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	log := setupLogger(cfg.App.LogLevel)

	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.IsDevelopment(), log)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Info("Database migrated successfully")
	return nil
}

// setupLogger configures the logrus standard logger
func setupLogger(level string) *logrus.Logger {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)

	return logrus.StandardLogger()
}

// NewHTTPHandler wires repositories, services, usecases and handlers into
// the application router.
func NewHTTPHandler(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, log *logrus.Logger) (http.Handler, error) {
	// Initialize services
	jwtService := jwt.NewJWTService(cfg.Session.Secret, cfg.Session.Expiry)
	sessionService := service.NewSessionService(jwtService, redisClient, log)
	flashService := service.NewFlashService(redisClient, cfg.Session.FlashExpiry, log)
	hasher := password.NewHasher(cfg.App.BcryptCost)

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	prescriptionRepo := repository.NewPrescriptionRepository()

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, hasher, sessionService)
	profileUsecase := usecase.NewProfileUsecase(db, log, userRepo, hasher)
	accountUsecase := usecase.NewAccountUsecase(db, log, userRepo, appointmentRepo)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, userRepo)
	prescriptionUsecase := usecase.NewPrescriptionUsecase(db, log, prescriptionRepo, userRepo)

	// Initialize views
	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}
	flasher := middleware.NewFlasher(flashService, cfg.Session.FlashCookieName, cfg.Session.CookieSecure)
	base := handler.NewBase(renderer, flasher, form.NewDecoder(), validator.NewValidator(), log)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(base, authUsecase, cfg.Session)
	adminHandler := handler.NewAdminHandler(base, accountUsecase, appointmentUsecase, authUsecase)
	doctorHandler := handler.NewDoctorHandler(base, accountUsecase, appointmentUsecase, prescriptionUsecase)
	patientHandler := handler.NewPatientHandler(base, appointmentUsecase, prescriptionUsecase)
	profileHandler := handler.NewProfileHandler(base, profileUsecase)
	healthHandler := handler.NewHealthHandler(db)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(sessionService, authUsecase, flasher, cfg.Session.CookieName, log)
	roleMiddleware := middleware.NewRoleMiddleware(http.HandlerFunc(base.Forbidden))
	securityHeadersMiddleware := middleware.NewSecurityHeadersMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		log,
		authHandler,
		adminHandler,
		doctorHandler,
		patientHandler,
		profileHandler,
		healthHandler,
		authMiddleware,
		roleMiddleware,
		securityHeadersMiddleware,
	)
	return router.Setup(), nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() error {
	errCh := make(chan error, 1)
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	return app.waitForShutdown(errCh)
}

// waitForShutdown blocks until an interrupt signal or a server error
func (app *App) waitForShutdown(errCh <-chan error) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
	case err := <-errCh:
		app.Close()
		return fmt.Errorf("failed to start server: %w", err)
	}

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	logrus.Info("Server shutdown complete")
	return nil
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
