package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"jobcloud/backend/internal/config"
	"jobcloud/backend/internal/handlers"
	"jobcloud/backend/internal/middleware"
	"jobcloud/backend/internal/repositories"
	"jobcloud/backend/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	jobRepo := repositories.NewJobRepository(db)
	applicationRepo := repositories.NewApplicationRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath, cfg.Storage.MaxFileSize)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	passwordService := services.NewPasswordService()
	log.Println("✅ Services initialized successfully")

	// Initialize handlers
	signupHandler := handlers.NewSignupHandler(userRepo, storageService, passwordService)
	loginHandler := handlers.NewLoginHandler(userRepo, passwordService)
	applicationHandler := handlers.NewApplicationHandler(applicationRepo, storageService)
	profileHandler := handlers.NewProfileHandler(userRepo)
	jobHandler := handlers.NewJobHandler(jobRepo)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "JobCloud API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		// headroom for the text fields around the file part
		BodyLimit:    int(cfg.Storage.MaxFileSize) + (1 << 20),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Uploaded documents are served read-only under /uploads
	app.Static("/uploads", cfg.Storage.UploadPath)

	resumeIntake := middleware.ResumeIntake(storageService)

	// Routes
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Backend is running successfully!")
	})

	app.Post("/signup", resumeIntake, signupHandler.HandleSignup)
	app.Post("/login", loginHandler.HandleLogin)
	app.Post("/submit-application", resumeIntake, applicationHandler.HandleSubmit)
	app.Get("/user/:email", profileHandler.HandleGetProfile)
	app.Post("/add-job", jobHandler.HandleAddJob)
	app.Get("/jobs", jobHandler.HandleListJobs)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
