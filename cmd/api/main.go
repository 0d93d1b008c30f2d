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

	"github.com/riya0701/AI-Placement-Advisor/internal/config"
	"github.com/riya0701/AI-Placement-Advisor/internal/handlers"
	"github.com/riya0701/AI-Placement-Advisor/internal/models"
	"github.com/riya0701/AI-Placement-Advisor/internal/repositories"
	"github.com/riya0701/AI-Placement-Advisor/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Load the role catalog (immutable for the process lifetime)
	catalogService := services.NewCatalogService()
	catalog, err := loadCatalog(cfg, catalogService)
	if err != nil {
		log.Fatalf("❌ Failed to load role catalog: %v", err)
	}
	log.Printf("✅ Role catalog loaded: %d roles\n", len(catalog))

	// Build the master skill vocabulary
	vocabService := services.NewVocabularyService()
	vocabulary := vocabService.BuildVocabulary(catalog)
	if len(vocabulary) == 0 {
		log.Println("⚠️  Master vocabulary is empty; skill extraction will always return nothing")
	}
	log.Printf("✅ Master vocabulary built: %d skills\n", len(vocabulary))

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	resumeParser := services.NewResumeParserService()
	fetcherService := services.NewFetcherService(cfg.Fetch.Timeout, cfg.Fetch.MaxBytes)
	inferenceService := services.NewInferenceService()
	matcherService := services.NewMatcherService()
	log.Println("✅ Services initialized successfully")

	// Initialize Handlers
	resumeHandler := handlers.NewResumeHandler(
		storageService,
		resumeParser,
		fetcherService,
		vocabService,
		inferenceService,
		vocabulary,
		cfg.Storage.MaxFileSize,
	)
	recommendHandler := handlers.NewRecommendHandler(matcherService, catalog)
	catalogHandler := handlers.NewCatalogHandler(catalog, len(vocabulary))
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Smart Placement Advisor API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// API endpoints
	api.Post("/resume/upload", resumeHandler.HandleUpload)
	api.Post("/resume/fetch", resumeHandler.HandleFetch)
	api.Get("/roles", catalogHandler.HandleListRoles)
	api.Post("/recommend", recommendHandler.HandleRecommend)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Smart Placement Advisor API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/resume/upload",
				"POST /api/v1/resume/fetch",
				"GET /api/v1/roles",
				"POST /api/v1/recommend",
			},
		})
	})

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

// loadCatalog picks the catalog source: the CSV file directly, or the
// job_roles table (seeded from the CSV on first run).
func loadCatalog(cfg *config.Config, catalogService services.CatalogService) ([]models.RoleCatalogEntry, error) {
	switch cfg.Catalog.Source {
	case "csv":
		return catalogService.LoadFromCSV(cfg.Catalog.CSVPath)

	case "postgres":
		db, err := config.InitDatabase(cfg)
		if err != nil {
			return nil, err
		}

		catalogRepo := repositories.NewCatalogRepository(db)

		count, err := catalogRepo.Count()
		if err != nil {
			return nil, err
		}

		if count == 0 {
			seed, err := catalogService.LoadFromCSV(cfg.Catalog.CSVPath)
			if err != nil {
				return nil, fmt.Errorf("catalog table is empty and CSV seed failed: %w", err)
			}
			if err := catalogRepo.Seed(seed); err != nil {
				return nil, err
			}
			log.Printf("✅ Seeded role catalog from %s\n", cfg.Catalog.CSVPath)
		}

		catalog, err := catalogRepo.FindAll()
		if err != nil {
			return nil, err
		}
		if err := catalogService.Validate(catalog); err != nil {
			return nil, err
		}
		return catalog, nil

	default:
		return nil, fmt.Errorf("unknown catalog source: %s", cfg.Catalog.Source)
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
