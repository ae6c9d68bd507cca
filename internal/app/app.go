package app

import (
	"errors"
	"fmt"
	"os"

	"internhub_backend/database"
	"internhub_backend/internal/auth"
	"internhub_backend/internal/cache"
	"internhub_backend/internal/config"
	"internhub_backend/internal/handlers"
	"internhub_backend/internal/lock"
	"internhub_backend/internal/logger"
	"internhub_backend/internal/middleware"
	"internhub_backend/internal/models"
	"internhub_backend/internal/repositories"
	"internhub_backend/internal/routes"
	"internhub_backend/internal/services"
	"internhub_backend/internal/services/payment"
	"internhub_backend/internal/validator"

	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		logger.Fatal("Redis unavailable", "error", err, "addr", cfg.Redis.Addr)
	}
	logger.Info("Redis connected", "addr", cfg.Redis.Addr)

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}
	if err := database.SeedPlans(gormDB); err != nil {
		logger.Fatal("Failed to seed credit plans", "error", err)
	}
	if err := seedFirstIntern(gormDB); err != nil {
		logger.Fatal("Failed to seed first intern account", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB, redisClient)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB, redisClient *redis.Client) *gin.Engine {
	// 1. Репозитории
	internRepo := repositories.NewInternRepository(gormDB)
	paymentRepo := repositories.NewPaymentRepository(gormDB)
	planRepo := repositories.NewPlanRepository(gormDB)
	contentRepo := repositories.NewContentRepository(gormDB)

	// 2. Инфраструктура платежей
	gateway := payment.NewRazorpayService(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret)
	locker := lock.NewRedisLocker(redisClient, time.Duration(cfg.Payments.VerifyLockMS)*time.Millisecond)

	// 3. Сервисы
	paymentService := services.NewPaymentService(internRepo, paymentRepo, planRepo, gateway, locker)
	contentService := services.NewContentService(internRepo, contentRepo)
	jobService := services.NewJobService(internRepo, contentRepo)

	// 4. Хэндлеры
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)
	appHandlers := &handlers.AppHandlers{
		PaymentHandler: handlers.NewPaymentHandler(baseHandler, paymentService),
		ContentHandler: handlers.NewContentHandler(baseHandler, contentService),
		JobHandler:     handlers.NewJobHandler(baseHandler, jobService),
	}

	// 5. Gin и маршруты
	ginRouter := initializeGinRouter()
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeGinRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}

// seedFirstIntern создает стартовый аккаунт из окружения, чтобы свежее
// развертывание было пригодно для чекаута без внешней регистрации.
func seedFirstIntern(db *gorm.DB) error {
	email := os.Getenv("FIRST_INTERN_EMAIL")
	password := os.Getenv("FIRST_INTERN_PASSWORD")

	if email == "" || password == "" {
		logger.Warn("FIRST_INTERN_EMAIL or FIRST_INTERN_PASSWORD is not set. Skipping intern seeding.")
		return nil
	}

	internRepo := repositories.NewInternRepository(db)

	if _, err := internRepo.FindByEmail(email); err == nil {
		logger.Info("Seed intern already exists. Skipping creation.", "email", email)
		return nil
	} else if !errors.Is(err, repositories.ErrInternNotFound) {
		return fmt.Errorf("failed to check for seed intern: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash seed intern password: %w", err)
	}

	intern := &models.Intern{
		UniqueID:     "SEED-0001",
		Name:         "Seed Intern",
		Email:        email,
		PasswordHash: hash,
		FreeJobLimit: 2,
		PlanCategory: models.PlanCategoryNone,
	}
	if err := internRepo.Create(intern); err != nil {
		return fmt.Errorf("failed to create seed intern: %w", err)
	}

	logger.Info("Seeded first intern account", "email", email)
	return nil
}
