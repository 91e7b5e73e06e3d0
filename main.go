// File: scheduly/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"scheduly/config"
	"scheduly/handlers"
	"scheduly/middleware"
	"scheduly/routes"
	"scheduly/services/calendar"
	ai "scheduly/services/intelligence"
	"scheduly/services/scheduling"
	"scheduly/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	ctx := context.Background()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	// External collaborators.
	gemini, err := ai.NewGeminiClient(ctx, config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize Gemini client: %v", err)
	}

	calendarSvc, err := calendar.NewGoogleCalendarService(ctx,
		config.AppConfig.GoogleCredentialsFile,
		config.AppConfig.GoogleCredentialsJSON,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize calendar service: %v", err)
	}

	// services.
	extractor := ai.NewIntentExtractor(gemini)
	suggester := &scheduling.SlotSuggester{Calendar: calendarSvc}
	schedulingService := &scheduling.DefaultSchedulingService{
		Intent:      extractor,
		Calendar:    calendarSvc,
		Suggester:   suggester,
		CallTimeout: time.Duration(config.AppConfig.CallTimeoutSeconds) * time.Second,
	}

	scheduleHandler := handlers.NewScheduleHandler(schedulingService, logger)

	// Register routes.
	routes.RegisterRoutes(router, scheduleHandler)

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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
