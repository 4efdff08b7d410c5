package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"hiretrack_backend/internal/clients/dummyjson"
	"hiretrack_backend/internal/config"
	"hiretrack_backend/internal/handlers"
	"hiretrack_backend/internal/kvstore"
	"hiretrack_backend/internal/logger"
	"hiretrack_backend/internal/middleware"
	"hiretrack_backend/internal/repositories"
	"hiretrack_backend/internal/routes"
	"hiretrack_backend/internal/services"
	"hiretrack_backend/internal/validator"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	ginRouter := SetupRouter(cfg)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("🚀 Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config) *gin.Engine {
	store, err := kvstore.NewStore(cfg.Storage.DataDir)
	if err != nil {
		logger.Fatal("Failed to initialize data store", "error", err, "dir", cfg.Storage.DataDir)
	}
	logger.Info("Data store initialized", "dir", store.Dir())

	// 1. Инициализируем сервисы
	serviceContainer := initializeServices(cfg, store)

	// 2. Опциональный сидинг кандидатов на старте
	if cfg.Seed.OnStartup {
		if _, err := serviceContainer.CandidateService.SeedFromRemote(context.Background(), cfg.Seed.Limit, 0); err != nil {
			// Пустое хранилище - рабочее состояние, сидинг можно повторить через API
			logger.Warn("Startup candidate seeding failed", "error", err.Error())
		}
	}

	// 3. Инициализируем хэндлеры
	appHandlers := initializeHandlers(serviceContainer)

	// 4. Инициализируем Gin
	ginRouter := initializeGinRouter()

	// 5. Делегируем регистрацию маршрутов пакету 'routes'
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config, store *kvstore.Store) *services.ServiceContainer {
	identityClient := dummyjson.NewClient(cfg.Identity.BaseURL)

	// --- Инициализация репозиториев ---
	candidateRepo := repositories.NewCandidateRepository(store)
	interviewRepo := repositories.NewInterviewRepository(store)
	feedbackRepo := repositories.NewFeedbackRepository(store)
	sessionRepo := repositories.NewSessionRepository(store)

	// --- Инициализация сервисов ---
	authService := services.NewAuthService(identityClient, sessionRepo)
	candidateService := services.NewCandidateService(candidateRepo, identityClient)
	interviewService := services.NewInterviewService(interviewRepo, candidateRepo)
	feedbackService := services.NewFeedbackService(feedbackRepo)
	dashboardService := services.NewDashboardService(candidateRepo, interviewRepo, feedbackRepo)

	return &services.ServiceContainer{
		AuthService:      authService,
		CandidateService: candidateService,
		InterviewService: interviewService,
		FeedbackService:  feedbackService,
		DashboardService: dashboardService,
	}
}

func initializeHandlers(services *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:      handlers.NewAuthHandler(baseHandler, services.AuthService),
		CandidateHandler: handlers.NewCandidateHandler(baseHandler, services.CandidateService),
		InterviewHandler: handlers.NewInterviewHandler(baseHandler, services.InterviewService),
		FeedbackHandler:  handlers.NewFeedbackHandler(baseHandler, services.FeedbackService),
		DashboardHandler: handlers.NewDashboardHandler(baseHandler, services.DashboardService),
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
