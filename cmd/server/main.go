package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"autobuy.backend/internal/config"
	"autobuy.backend/internal/infrastructure/notify"
	"autobuy.backend/internal/infrastructure/oauth"
	"autobuy.backend/internal/infrastructure/repositories"
	"autobuy.backend/internal/interfaces/http/handlers"
	"autobuy.backend/internal/interfaces/http/middleware"
	"autobuy.backend/internal/usecases"
	"autobuy.backend/pkg/jwt"
	"autobuy.backend/pkg/logger"
	"autobuy.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			TranslateError: true,
		})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("Connected to PostgreSQL via GORM")
	}

	// Token services
	tokenService := jwt.NewTokenService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)
	resetTokenService := jwt.NewResetTokenService(cfg.JWT.Secret, cfg.JWT.ResetMaxAge)

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	emailCodeRepo := repositories.NewEmailCodeRepository(db)
	phoneCodeRepo := repositories.NewPhoneCodeRepository(db)
	resetCodeRepo := repositories.NewPasswordResetCodeRepository(db)
	pageRepo := repositories.NewPageRepository(db)

	// Outbound notifications and social login verifiers
	notifier := notify.NewLogNotifier()
	moderation := notify.NewModerationNotifier(notifier, cfg.Moderation)
	verifiers := oauth.Verifiers{
		oauth.ProviderGoogle:   oauth.NewGoogleVerifier(cfg.OAuth.GoogleClientID),
		oauth.ProviderFacebook: oauth.NewFacebookVerifier(cfg.OAuth.FacebookAppID, cfg.OAuth.FacebookAppSecret),
		oauth.ProviderApple:    oauth.NewAppleVerifier(),
	}

	// Usecases
	registrationUsecase := usecases.NewRegistrationUsecase(userRepo, emailCodeRepo, phoneCodeRepo, tokenService, notifier, moderation)
	authUsecase := usecases.NewAuthUsecase(userRepo, tokenService, redis.NewTokenBlacklist(), verifiers)
	resetUsecase := usecases.NewPasswordResetUsecase(userRepo, resetCodeRepo, resetTokenService, notifier)
	pageUsecase := usecases.NewPageUsecase(pageRepo)
	adminUsecase := usecases.NewAdminUsecase(userRepo)

	// Handlers
	registrationHandler := handlers.NewRegistrationHandler(registrationUsecase)
	authHandler := handlers.NewAuthHandler(authUsecase)
	resetHandler := handlers.NewPasswordResetHandler(resetUsecase)
	pageHandler := handlers.NewPageHandler(pageUsecase)
	adminHandler := handlers.NewAdminHandler(adminUsecase)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		registrationHandler: registrationHandler,
		authHandler:         authHandler,
		resetHandler:        resetHandler,
		pageHandler:         pageHandler,
		adminHandler:        adminHandler,
		authMiddleware:      middleware.AuthMiddleware(tokenService),
	})

	log.Printf("Autobuy backend starting on port %s", cfg.Server.Port)
	log.Printf("API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
