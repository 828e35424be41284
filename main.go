// File: stayfinder/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"stayfinder/config"
	"stayfinder/cron"
	"stayfinder/database"
	historyRepo "stayfinder/database/repository/history"
	"stayfinder/handlers"
	"stayfinder/routes"
	"stayfinder/services/conversation"
	"stayfinder/services/search"
	"stayfinder/services/session"
	"stayfinder/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories and stores.
	history := historyRepo.NewMongoHistoryRepo()
	sessions := session.NewRedisStore(utils.GetSessionCacheClient(), config.SessionTTL())

	// services.
	searchClient := search.NewHotelsClient(
		config.AppConfig.HotelsAPIHost,
		config.AppConfig.HotelsAPIKey,
		config.SearchTimeout(),
	)

	collector := handlers.NewReplyCollector()
	engine := conversation.NewDefaultEngine(sessions, searchClient, history, collector)

	conversationHandler := handlers.NewConversationHandler(engine, collector, logger)
	historyHandler := handlers.NewHistoryHandler(history)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		PostMessageHandler:  conversationHandler.PostMessageHandler,
		PostOptionHandler:   conversationHandler.PostOptionHandler,
		GetHistoryHandler:   historyHandler.GetHistoryHandler,
		ClearHistoryHandler: historyHandler.ClearHistoryHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background history retention (no-op unless configured).
	cron.InitRetentionWorker(history)

	utils.StartHealthMonitor(utils.GetSessionCacheClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
