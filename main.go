package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"gudang/internal/bootstrap"
	"gudang/internal/config"
	"gudang/internal/handlers"
	"gudang/internal/middleware"
	"gudang/internal/repositories"
	"gudang/internal/services"
	"gudang/pkg/events"
)

func main() {
	// --- Configuration ---
	// Built once here and passed explicitly; there is no global settings value.
	cfg := config.Load()

	// --- Database ---
	db, err := openDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// --- Bootstrap ---
	// Explicit, idempotent: migrate the schema and ensure the default admin
	// account exists before serving anything.
	hasher := services.NewBcryptHasher()
	if err := bootstrap.Run(db, cfg, hasher); err != nil {
		log.Fatalf("Bootstrap failed: %v", err)
	}

	// --- Event Publisher (optional) ---
	var publisher services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := events.NewClient(events.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
		publisher = mqClient
	} else {
		log.Println("RABBITMQ_URL not set, product events disabled")
	}

	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)

	// --- Services ---
	tokens := services.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	authService := services.NewAuthService(userRepo, hasher, tokens)
	productService := services.NewProductService(productRepo, publisher)
	userService := services.NewUserService(userRepo, hasher)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(productService)
	userHandler := handlers.NewUserHandler(userService)

	// --- Fiber App ---
	app := fiber.New()
	app.Use(logger.New())

	// --- API Routes ---
	apiV1 := app.Group("/api/v1")

	// Public routes
	authHandler.RegisterPublicRoutes(apiV1)

	// Protected routes: any authenticated, active account
	protected := apiV1.Group("", middleware.AuthRequired(tokens, userRepo))
	authHandler.RegisterProtectedRoutes(protected)
	productHandler.RegisterRoutes(protected)

	// Admin-only routes: user management
	adminOnly := protected.Group("", middleware.AdminRequired())
	userHandler.RegisterRoutes(adminOnly)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", cfg.AppPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}

// openDatabase opens a GORM connection for the configured driver.
func openDatabase(cfg config.Config) (*gorm.DB, error) {
	switch cfg.DBDriver {
	case "postgres":
		return gorm.Open(postgres.Open(cfg.DBDSN), &gorm.Config{})
	case "sqlite":
		return gorm.Open(sqlite.Open(cfg.DBDSN), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (use postgres or sqlite)", cfg.DBDriver)
	}
}
