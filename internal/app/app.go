package app

import (
	"errors"
	"fmt"

	"localink_backend/database"
	"localink_backend/internal/config"
	"localink_backend/internal/handlers"
	"localink_backend/internal/logger"
	"localink_backend/internal/middleware"
	"localink_backend/internal/models"
	"localink_backend/internal/payments"
	"localink_backend/internal/repositories"
	"localink_backend/internal/routes"
	"localink_backend/internal/services"
	"localink_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
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

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	if err := SeedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	gateway := payments.NewStripeGateway(cfg.Stripe.SecretKey, cfg.Stripe.Currency)
	ginRouter := SetupRouter(cfg, gormDB, gateway)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter builds the full engine. Tests call it directly with an
// in-memory database and a fake payment gateway.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB, gateway payments.Gateway) *gin.Engine {
	serviceContainer := initializeServices(gormDB, gateway)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter()
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(gormDB *gorm.DB, gateway payments.Gateway) *services.ServiceContainer {
	explorerRepo := repositories.NewExplorerRepository(gormDB)
	businessRepo := repositories.NewBusinessRepository(gormDB)
	adminRepo := repositories.NewAdminRepository(gormDB)
	postRepo := repositories.NewPostRepository(gormDB)
	eventRepo := repositories.NewEventRepository(gormDB)
	notificationRepo := repositories.NewNotificationRepository(gormDB)
	paymentRepo := repositories.NewPaymentRepository(gormDB)
	chatRepo := repositories.NewChatRepository(gormDB)

	notificationService := services.NewNotificationService(notificationRepo)
	authService := services.NewAuthService(explorerRepo, businessRepo, adminRepo)
	businessService := services.NewBusinessService(businessRepo)
	postService := services.NewPostService(postRepo, explorerRepo, businessRepo, notificationService)
	eventService := services.NewEventService(eventRepo, explorerRepo, notificationService)
	paymentService := services.NewPaymentService(gormDB, paymentRepo, businessRepo, gateway, notificationService)
	chatService := services.NewChatService(chatRepo, explorerRepo, businessRepo)

	return &services.ServiceContainer{
		AuthService:         authService,
		BusinessService:     businessService,
		PostService:         postService,
		EventService:        eventService,
		NotificationService: notificationService,
		PaymentService:      paymentService,
		ChatService:         chatService,
	}
}

func initializeHandlers(services *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:         handlers.NewAuthHandler(baseHandler, services.AuthService),
		BusinessHandler:     handlers.NewBusinessHandler(baseHandler, services.BusinessService),
		PostHandler:         handlers.NewPostHandler(baseHandler, services.PostService),
		EventHandler:        handlers.NewEventHandler(baseHandler, services.EventService),
		NotificationHandler: handlers.NewNotificationHandler(baseHandler, services.NotificationService),
		PaymentHandler:      handlers.NewPaymentHandler(baseHandler, services.PaymentService),
		ChatHandler:         handlers.NewChatHandler(baseHandler, services.ChatService),
	}
}

func initializeGinRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}

// SeedFirstAdmin creates the bootstrap admin account when none exists for the
// configured email. Without it there is no way to approve the first business.
func SeedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	var admin models.Admin
	result := db.Where("email = ?", adminEmail).First(&admin)

	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		return nil
	}

	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	logger.Warn("No admin user found with specified email. Creating first admin...", "email", adminEmail)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.Admin{
		Email:        adminEmail,
		PasswordHash: string(hashedPassword),
	}

	if err := db.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user in database: %w", err)
	}

	logger.Info("First admin created", "email", adminEmail)
	return nil
}
