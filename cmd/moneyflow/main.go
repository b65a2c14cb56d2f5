package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"moneyflow/internal/api"
	"moneyflow/internal/api/handlers"
	"moneyflow/internal/assistant"
	"moneyflow/internal/repository"
	"moneyflow/internal/service"
	"moneyflow/pkg/config"
	"moneyflow/pkg/logger"
	"moneyflow/pkg/postgres"

	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting MoneyFlow service")

	// Initialize database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := postgres.Migrate(ctx, db, appLogger); err != nil {
		appLogger.Fatal("Failed to migrate database", zap.Error(err))
	}

	// Initialize repositories
	entryRepo := repository.NewEntryRepository(db, appLogger)
	chatRepo := repository.NewChatRepository(db, appLogger)
	userRepo := repository.NewUserRepository(db, appLogger)

	// Initialize the remote assistant client
	assistantClient := assistant.NewClient(&cfg.Assistant, appLogger)

	// Initialize services
	entryService := service.NewEntryService(entryRepo, appLogger)
	chatService := service.NewChatService(entryRepo, chatRepo, assistantClient, appLogger)
	userService := service.NewUserService(userRepo, appLogger)

	// Initialize handlers
	entryHandler := handlers.NewEntryHandler(entryService, appLogger)
	chatHandler := handlers.NewChatHandler(chatService, appLogger)
	userHandler := handlers.NewUserHandler(userService, appLogger)

	// Setup router
	app := api.SetupRouter(entryHandler, chatHandler, userHandler)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
