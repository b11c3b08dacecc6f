// ABOUTME: Main entry point for the SearchLens API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"searchlens-api/api"
	"searchlens-api/api/handlers"
	"searchlens-api/core/ai"
	"searchlens-api/core/enrich"
	"searchlens-api/core/extract"
	"searchlens-api/core/interfaces"
	"searchlens-api/core/search"
	"searchlens-api/infrastructure/cache/memory"
	"searchlens-api/infrastructure/cache/redis"
	"searchlens-api/infrastructure/cache/sqlite"
	stdhttp "searchlens-api/infrastructure/http/standard"
	logruslogger "searchlens-api/infrastructure/logger/logrus"
	stdlogger "searchlens-api/infrastructure/logger/standard"
	"searchlens-api/infrastructure/searxng"
	"searchlens-api/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	logger := newLogger()
	logger.Info("Starting SearchLens API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
		"searxng":    cfg.Search.SearXNGURL,
		"ai_enabled": cfg.HasAI(),
	})

	// Create cache
	cache := newCache(cfg, logger)

	// Create HTTP client
	httpClient := stdhttp.NewStandardHTTPClient(cfg.Search.FetchTimeout)

	// Create dependencies container
	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	// Create services
	aggregator := searxng.NewClient(cfg.Search.SearXNGURL, httpClient, logger)
	extractor := extract.NewService(deps, cfg.Search.FetchTimeout, cfg.Search.MaxContentLength)
	enricher := enrich.NewEnricher(logger)

	// The AI provider stays a nil interface when unconfigured so the
	// pipeline's nil check disables the AI stages cleanly.
	var aiProvider interfaces.AIProvider
	if svc := ai.NewService(cfg.AI, logger); svc != nil {
		aiProvider = svc
	}

	searchService := search.NewService(deps, aggregator, extractor, enricher, aiProvider, cfg.Search)

	// Create API with middleware
	apiConfig := api.APIConfig{
		Logger:     logger,
		APIKeys:    cfg.Server.APIKeys,
		RateLimit:  cfg.Server.RateLimit,
		RateWindow: cfg.Server.RateWindow,
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	// Create and register handlers
	searchHandler := handlers.NewSearchHandler(searchService)
	searchHandler.RegisterRoutes(humaAPI)

	healthHandler := handlers.NewHealthHandler(aggregator)
	healthHandler.RegisterRoutes(humaAPI)

	// The SSE endpoint mounts on the router directly; huma cannot model a
	// progressive event stream.
	streamHandler := handlers.NewStreamHandler(searchService, logger)
	router.Method(http.MethodGet, "/api/v1/search/stream", streamHandler)

	// Create HTTP server. WriteTimeout must exceed the request budget or
	// streaming responses get cut off mid-flight.
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Search.RequestBudget + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}

// newLogger selects the logging backend. LOGGER_TYPE=standard picks the
// dependency-free stdlib adapter; anything else gets logrus.
func newLogger() interfaces.Logger {
	if os.Getenv("LOGGER_TYPE") == "standard" {
		return stdlogger.NewStandardLogger()
	}
	return logruslogger.NewLogger(os.Getenv("LOG_LEVEL"))
}

// newCache selects the cache backend from configuration, falling back to
// memory when an external backend cannot be reached.
func newCache(cfg *config.Config, logger interfaces.Logger) interfaces.Cache {
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memory.NewMemoryCache()
		}
		logger.Info("Using Redis cache", map[string]interface{}{
			"address": cfg.Cache.Redis.Address,
		})
		return redisCache
	case "sqlite":
		sqliteCache, err := sqlite.NewSQLiteCache(cfg.Cache.SQLitePath)
		if err != nil {
			logger.Error("Failed to create SQLite cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memory.NewMemoryCache()
		}
		logger.Info("Using SQLite cache", map[string]interface{}{
			"path": cfg.Cache.SQLitePath,
		})
		return sqliteCache
	default:
		logger.Info("Using memory cache", nil)
		return memory.NewMemoryCache()
	}
}
