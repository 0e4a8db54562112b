package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"staffmatch/internal/api"
	"staffmatch/internal/api/handlers"
	"staffmatch/internal/repository"
	"staffmatch/internal/service"
	"staffmatch/internal/vectorindex"
	"staffmatch/pkg/auth"
	"staffmatch/pkg/config"
	"staffmatch/pkg/logger"
	"staffmatch/pkg/postgres"

	"go.uber.org/zap"
)

// @title StaffMatch API
// @version 1.0
// @description Staffing opportunity collector: registration, reference data, assistant chat, summarization and opportunity retrieval

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting StaffMatch service")

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Repositories
	userRepo := repository.NewUserRepository(db, appLogger)
	refRepo := repository.NewReferenceRepository(db, appLogger)
	oppRepo := repository.NewOpportunityRepository(db, appLogger)

	// JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	// Services
	authService := service.NewAuthService(userRepo, jwtManager, appLogger)
	refService := service.NewReferenceService(refRepo, appLogger)
	oppService := service.NewOpportunityService(oppRepo, appLogger)

	llmService, err := service.NewLLMService(&cfg.GigaChat, cfg.RAG.EmbeddingModel, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize LLM service", zap.Error(err))
	}
	defer llmService.Close()

	indexStore := vectorindex.NewStore(cfg.RAG.IndexPath)

	chatService := service.NewChatService(llmService, llmService, indexStore, &cfg.RAG, appLogger)
	summaryService := service.NewSummaryService(llmService, oppRepo, appLogger)
	indexService := service.NewIndexService(oppRepo, llmService, indexStore, appLogger)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, appLogger)
	refHandler := handlers.NewReferenceHandler(refService, appLogger)
	chatHandler := handlers.NewChatHandler(chatService, summaryService, indexService, appLogger)
	oppHandler := handlers.NewOpportunityHandler(oppService, appLogger)

	app := api.SetupRouter(authHandler, refHandler, chatHandler, oppHandler, jwtManager, appLogger)

	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
