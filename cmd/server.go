package cmd

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"cottagerec/config"
	"cottagerec/handlers"
	"cottagerec/middleware"
	"cottagerec/routes"
	"cottagerec/services/recommender"
	"cottagerec/utils"
)

// runServer starts the HTTP service adapter.
func runServer() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	// The service adapter runs the seasonal-aware profile unless overridden.
	variant := recommender.VariantByName(config.AppConfig.RecommenderVariant, recommender.FullVariant)
	svc := recommender.NewDefaultRecommenderService(variant, config.AppConfig.NumRecommendations, logger)

	var cache *redis.Client
	if config.AppConfig.CacheEnabled {
		cache = utils.GetCacheClient()
	}

	recommendHandler := handlers.NewRecommendHandler(svc, cache, logger)
	routes.RegisterRoutes(router, recommendHandler)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "5001"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s (variant=%s)...", srv.Addr, variant.Name)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("server stopped gracefully")
}
