package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "deptrack-core/docs"
	"deptrack-core/internal/application/service"
	"deptrack-core/internal/config"
	"deptrack-core/internal/database"
	"deptrack-core/internal/github"
	"deptrack-core/internal/identity"
	"deptrack-core/internal/infrastructure/cache"
	"deptrack-core/internal/infrastructure/encryption"
	infraGitHub "deptrack-core/internal/infrastructure/github"
	"deptrack-core/internal/infrastructure/persistence"
	"deptrack-core/internal/logger"
	"deptrack-core/internal/middleware"
	"deptrack-core/internal/presentation/handlers"
	"deptrack-core/internal/tasks"
)

// @title DepTrack Core API
// @version 1.0
// @description Dependency tracking backend: GitHub repository import and sync

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Identity provider JWT, prefixed with "Bearer "

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(&logger.Config{
		Level:  envOr("LOG_LEVEL", "info"),
		Format: envOr("LOG_FORMAT", "json"),
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		appLogger.Fatal("failed to initialize database", "error", err)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		appLogger.Fatal("failed to run migrations", "error", err)
	}

	// External service clients
	identityClient := identity.NewClient(&cfg.Auth)
	githubClient := github.NewClient()
	githubService := infraGitHub.NewGitHubService(githubClient)

	vault, err := encryption.NewService()
	if err != nil {
		appLogger.Fatal("failed to initialize encryption", "error", err)
	}

	// Repository implementations
	userRepository := persistence.NewUserRepository(db, vault)
	repositoryRepository := persistence.NewRepositoryRepository(db)
	projectRepository := persistence.NewProjectRepository(db)
	favoriteRepository := persistence.NewFavoriteRepository(db)
	notificationRepository := persistence.NewNotificationRepository(db)

	// Background workers and the shared sync status store
	statusStore := cache.NewPostgresStore(db, cfg.Sync.RunningTTL, cfg.Sync.DoneTTL)
	taskQueue := tasks.NewQueue(4, 64, 5*time.Minute, appLogger)

	// Application services
	userService := service.NewUserService(userRepository, favoriteRepository, notificationRepository, projectRepository, identityClient, appLogger)
	repositoryService := service.NewRepositoryService(repositoryRepository, githubService, statusStore, taskQueue, appLogger)
	projectService := service.NewProjectService(projectRepository, repositoryRepository, githubService, appLogger)
	webhookService := service.NewWebhookService(projectRepository, notificationRepository, githubService, projectService, taskQueue, appLogger)

	// HTTP handlers
	healthHandler := handlers.NewHealthHandler(db)
	userHandler := handlers.NewUserHandler(userService)
	repositoryHandler := handlers.NewRepositoryHandler(repositoryService, userService)
	projectHandler := handlers.NewProjectHandler(projectService, userService)
	webhookHandler := handlers.NewWebhookHandler(webhookService, userService, cfg.GitHub.WebhookSecret)

	authMiddleware, err := middleware.NewAuthMiddleware(&cfg.Auth)
	if err != nil {
		appLogger.Fatal("failed to initialize auth middleware", "error", err)
	}
	rateLimiter := middleware.NewRateLimiter(cfg.Limits.RequestsPerSecond, cfg.Limits.Burst)

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestLogger(appLogger))
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Hub-Signature-256", "X-GitHub-Event"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(rateLimiter.Limit())

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthHandler.Health)

		repos := v1.Group("/repos")
		repos.Use(authMiddleware.RequireAuth())
		{
			repos.GET("", repositoryHandler.ListRepositories)
			repos.POST("/sync", repositoryHandler.TriggerSync)
			repos.GET("/:token", repositoryHandler.GetRepository)
		}

		projects := v1.Group("/projects")
		projects.Use(authMiddleware.RequireAuth())
		{
			projects.GET("", projectHandler.ListProjects)
			projects.POST("", projectHandler.ImportProject)
			projects.DELETE("", projectHandler.DeleteProjects)
		}

		hooks := v1.Group("/hooks")
		hooks.Use(authMiddleware.RequireAuth())
		{
			hooks.POST("/github/:id", webhookHandler.HandlePush)
		}

		users := v1.Group("/user")
		users.Use(authMiddleware.RequireAuth())
		{
			users.GET("", userHandler.GetProfile)
			users.GET("/favorites", userHandler.ListFavorites)
			users.POST("/favorites", userHandler.AddFavorite)
			users.DELETE("/favorites/:id", userHandler.RemoveFavorite)
			users.GET("/notifications", userHandler.ListNotifications)
			users.PUT("/notifications/:id/read", userHandler.MarkNotificationRead)
		}
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		appLogger.Info("server starting", "address", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("server forced to shutdown", "error", err)
	}

	rateLimiter.Stop()

	// Let in-flight syncs and re-imports finish before exiting.
	if err := taskQueue.Shutdown(ctx); err != nil {
		appLogger.Error("task queue did not drain", "error", err)
	}

	appLogger.Info("server exited")
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
