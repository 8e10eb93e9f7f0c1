package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"
	"wikiquiz/internal/adapter"
	"wikiquiz/internal/adapter/fetcher"
	"wikiquiz/internal/adapter/quizgen"
	"wikiquiz/internal/cache"
	"wikiquiz/internal/config"
	"wikiquiz/internal/database"
	"wikiquiz/internal/handler"
	"wikiquiz/internal/logger"
	"wikiquiz/internal/middleware"
	"wikiquiz/internal/repository"
	"wikiquiz/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
		)

		return err
	}
}

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Connect to database and apply migrations
	db, err := database.NewSQLXSQLiteDB(cfg.DB.Path)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()
	if err := database.RunMigrations(db.DB); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}
	appLogger.Info("Database ready", zap.String("path", cfg.DB.Path))

	// Initialize pipeline components
	articleFetcher := fetcher.NewWikipediaFetcher(cfg.Fetcher)

	quizGenerator, err := quizgen.NewGeminiQuizGenerator(context.Background(), cfg.Gemini, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to create quiz generator", zap.Error(err))
	}

	quizRepository := repository.NewQuizRecordDatabaseAdapter(db)

	// Optional Redis record cache
	var recordCache service.RecordCacheService
	if cfg.CacheEnabled() {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		recordCache = service.NewRecordCacheService(adapter.NewRedisCacheAdapter(redisClient), cfg)
		appLogger.Info("Record cache enabled", zap.String("address", cfg.Redis.Address))
	}

	quizService := service.NewQuizService(articleFetcher, quizGenerator, quizRepository, recordCache)
	quizHandler := handler.NewQuizHandler(quizService)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
		MaxAge:       300,
	}))
	app.Use(recover.New())

	// Routes
	app.Get("/", quizHandler.HealthCheck)
	app.Post("/generate_quiz", quizHandler.GenerateQuiz)
	app.Get("/history", quizHandler.GetHistory)
	app.Get("/quiz/:quiz_id", quizHandler.GetQuizByID)

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", os.Getenv("ENV")))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
