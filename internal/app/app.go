package app

import (
	"errors"
	"fmt"
	"time"

	"eventbridge_admin/internal/auth"
	"eventbridge_admin/internal/config"
	"eventbridge_admin/internal/handlers"
	"eventbridge_admin/internal/logger"
	"eventbridge_admin/internal/middleware"
	"eventbridge_admin/internal/models"
	"eventbridge_admin/internal/repositories"
	"eventbridge_admin/internal/routes"
	"eventbridge_admin/internal/services"
	"eventbridge_admin/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Run boots the whole application: config, database, migrations, seed,
// router, listener.
func Run() error {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)

	db, err := OpenDatabase(cfg)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	if err := SeedFirstAdmin(db, cfg); err != nil {
		return fmt.Errorf("seed first admin: %w", err)
	}

	router := SetupRouter(db, cfg)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server starting", "addr", addr, "env", cfg.Server.Env)
	return router.Run(addr)
}

// OpenDatabase connects to Postgres with GORM logging aligned to the app
// environment.
func OpenDatabase(cfg *config.Config) (*gorm.DB, error) {
	gormLogLevel := gormlogger.Error
	if cfg.Server.Env == "development" {
		gormLogLevel = gormlogger.Info
	}

	return gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormLogLevel),
	})
}

// Migrate creates or updates the schema for every model the app owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.DeletedAccount{},
		&models.VendorProfile{},
		&models.VerificationDocument{},
		&models.Booking{},
		&models.Invoice{},
		&models.SupportTicket{},
		&models.SupportTicketMessage{},
		&models.Flag{},
		&models.AdminSettings{},
		&models.PaymentSettings{},
		&models.Role{},
		&models.AuditLog{},
	)
}

// SeedFirstAdmin creates the bootstrap admin account when none exists. A
// no-op without credentials in the config, and when any admin is present.
func SeedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.FirstAdminEmail == "" || cfg.FirstAdminPassword == "" {
		logger.Warn("first admin credentials not configured, skipping seed")
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).
		Where("account_type = ?", models.AccountTypeAdmin).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(cfg.FirstAdminPassword)
	if err != nil {
		return err
	}

	admin := &models.User{
		Email:        cfg.FirstAdminEmail,
		PasswordHash: &hash,
		FirstName:    "System",
		LastName:     "Admin",
		AccountType:  models.AccountTypeAdmin,
		IsActive:     true,
	}

	userRepo := repositories.NewUserRepository(db)
	if err := userRepo.Create(admin); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil
		}
		return err
	}

	logger.Info("seeded first admin account", "email", cfg.FirstAdminEmail)
	return nil
}

// SetupRouter assembles middleware, services and handlers into a ready
// gin.Engine. Tests call this directly against their own database.
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	tokenManager := auth.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.TTLHours)*time.Hour)
	v := validator.New()

	userRepo := repositories.NewUserRepository(db)
	verificationRepo := repositories.NewVerificationRepository(db)
	supportRepo := repositories.NewSupportRepository(db)
	settingsRepo := repositories.NewSettingsRepository(db)
	earningsRepo := repositories.NewEarningsRepository(db)
	auditRepo := repositories.NewAuditRepository(db)

	auditService := services.NewAuditService(auditRepo)
	authService := services.NewAuthService(userRepo, tokenManager, auditService)
	userService := services.NewUserService(userRepo, auditService)
	verificationService := services.NewVerificationService(verificationRepo, auditService)
	dashboardService := services.NewDashboardService(userRepo, verificationRepo, supportRepo, earningsRepo)
	earningsService := services.NewEarningsService(earningsRepo)
	supportService := services.NewSupportService(supportRepo, auditService)
	settingsService := services.NewSettingsService(settingsRepo, userRepo, auditService)

	appHandlers := &handlers.AppHandlers{
		AuthHandler:         handlers.NewAuthHandler(v, authService),
		UserHandler:         handlers.NewUserHandler(v, userService),
		DashboardHandler:    handlers.NewDashboardHandler(v, dashboardService),
		VerificationHandler: handlers.NewVerificationHandler(v, verificationService),
		EarningsHandler:     handlers.NewEarningsHandler(v, earningsService),
		SupportHandler:      handlers.NewSupportHandler(v, supportService),
		SettingsHandler:     handlers.NewSettingsHandler(v, settingsService, auditService),
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.CORSMiddleware(),
	)

	routes.RegisterRoutes(router, appHandlers, tokenManager, userRepo)
	return router
}
