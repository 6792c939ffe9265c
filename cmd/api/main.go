package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"quizbuddy/internal/adapter/genai"
	"quizbuddy/internal/cache"
	"quizbuddy/internal/config"
	"quizbuddy/internal/database"
	"quizbuddy/internal/docloader"
	"quizbuddy/internal/handler"
	"quizbuddy/internal/logger"
	"quizbuddy/internal/middleware"
	"quizbuddy/internal/repository"
	"quizbuddy/internal/service"
	"quizbuddy/internal/taskqueue"
	"quizbuddy/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
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
			zap.String("user_agent", c.Get("User-Agent")),
		)

		return err
	}
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Connect to database
	db, err := database.NewSQLXOracleDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Initialize Redis client
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	appLogger.Info("Successfully connected to Redis")

	// Initialize repositories
	quizRepository := repository.NewQuizDatabaseAdapter(db)
	subjectRepository := repository.NewSubjectDatabaseAdapter(db)
	txManager := repository.NewTransactionManagerAdapter(db)

	// Initialize task runtime backed by Redis
	taskStore := taskqueue.NewRedisTaskStore(redisClient, cfg.Worker.ResultTTL)
	runtime := taskqueue.NewRuntime(taskStore, cfg.Worker.Count, cfg.Worker.QueueSize, appLogger)
	runtimeCtx, cancelRuntime := context.WithCancel(context.Background())
	defer cancelRuntime()
	runtime.Start(runtimeCtx)

	// Initialize services
	generatorFactory := service.GeneratorFactory(genai.NewGeneratorFactory(cfg.OpenAI, appLogger))
	loader := docloader.NewFileLoader()
	creationService := service.NewQuizCreationService(runtime, quizRepository, txManager, loader, generatorFactory, cfg, appLogger)
	quizService := service.NewQuizService(quizRepository, appLogger)
	subjectService := service.NewSubjectService(subjectRepository, appLogger)
	appLogger.Info("Services initialized")

	// Initialize handlers
	validator := validation.NewValidator()
	quizHandler := handler.NewQuizHandler(quizService, creationService, subjectService, validator, cfg.Upload)
	subjectHandler := handler.NewSubjectHandler(subjectService, validator)
	taskHandler := handler.NewTaskHandler(taskStore)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		BodyLimit:    int(cfg.Upload.MaxUploadBytes),
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,PUT,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept", MaxAge: 300}))
	app.Use(recover.New())

	// API group
	apiGroup := app.Group("/api")

	quizzingGroup := apiGroup.Group("/quizzing")
	quizzingGroup.Post("/quizzes", quizHandler.CreateQuiz)
	quizzingGroup.Get("/quizzes", quizHandler.ListQuizzes)
	quizzingGroup.Get("/quizzes/:id", quizHandler.GetQuiz)
	quizzingGroup.Delete("/quizzes/:id", quizHandler.DeleteQuiz)
	quizzingGroup.Post("/quizzes/:id/share", quizHandler.ShareQuiz)

	quizzingGroup.Get("/subjects", subjectHandler.ListSubjects)
	quizzingGroup.Post("/subjects", subjectHandler.CreateSubject)
	quizzingGroup.Get("/subjects/:id", subjectHandler.GetSubject)
	quizzingGroup.Put("/subjects/:id", subjectHandler.RenameSubject)
	quizzingGroup.Delete("/subjects/:id", subjectHandler.DeleteSubject)

	apiGroup.Get("/tasks/result/:id", taskHandler.GetTaskResult)

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Env))
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

	// Let in-flight creation jobs finish before exiting.
	if err := runtime.Shutdown(); err != nil {
		appLogger.Error("Task runtime shutdown failed", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
