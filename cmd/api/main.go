// ABOUTME: Main entry point for the Donald King API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"donaldking-api/api"
	"donaldking-api/api/handlers"
	"donaldking-api/api/middleware"
	"donaldking-api/core/chat"
	"donaldking-api/core/interfaces"
	"donaldking-api/core/news"
	stdhttp "donaldking-api/infrastructure/http/standard"
	"donaldking-api/infrastructure/llm/openai"
	logruslogger "donaldking-api/infrastructure/logger/logrus"
	"donaldking-api/pkg/config"
	"donaldking-api/pkg/featureflags"
)

func main() {
	// Load .env before reading the environment
	if err := config.LoadDotEnv(os.Getenv("ENV_FILE")); err != nil {
		log.Fatalf("Failed to load env file: %v", err)
	}

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
	logger, err := logruslogger.NewLogrusLogger(logruslogger.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Close()

	logger.Info("Starting Donald King API", map[string]interface{}{
		"port":         cfg.Server.Port,
		"rss_url":      cfg.News.FeedURL,
		"model":        cfg.Generation.Model,
		"http_timeout": cfg.Server.HTTPTimeout,
	})
	if !cfg.HasAPIKey() {
		logger.Warn("Generation API key is not set; /api/news and /api/chat will answer 500", map[string]interface{}{
			"env": config.APIKeyEnv,
		})
	}

	// Shared outbound client; the timeout bounds both the feed and the model call
	outbound := &http.Client{
		Timeout:   time.Duration(cfg.Server.HTTPTimeout) * time.Second,
		Transport: &middleware.LoggingRoundTripper{Logger: logger},
	}

	// Create dependencies container
	deps := interfaces.Dependencies{
		HTTPClient: stdhttp.NewStandardHTTPClient(outbound, cfg.News.UserAgent),
		Generator: openai.NewClient(openai.Config{
			BaseURL:    cfg.Generation.BaseURL,
			APIKey:     cfg.Generation.APIKey,
			HTTPClient: outbound,
		}),
		Logger: logger,
	}

	// Create services
	newsService := news.NewService(deps, news.Config{
		FeedURL: cfg.News.FeedURL,
		Model:   cfg.Generation.Model,
	})
	chatService := chat.NewService(deps, cfg.Generation.Model)

	flags := featureflags.NewEnvManager("FEATURE_", nil)
	logger.Info("Feature flags", map[string]interface{}{
		"chat_enabled": flags.IsEnabled(context.Background(), featureflags.ChatEnabled),
		"docs_enabled": flags.IsEnabled(context.Background(), featureflags.DocsEnabled),
	})

	// Create API with middleware
	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
		Logger: logger,
		Flags:  flags,
	})

	// Create and register handlers
	newsHandler := handlers.NewNewsHandler(newsService, cfg.HasAPIKey())
	newsHandler.RegisterRoutes(humaAPI)

	if flags.IsEnabled(context.Background(), featureflags.ChatEnabled) {
		chatHandler := handlers.NewChatHandler(chatService, cfg.HasAPIKey())
		chatHandler.RegisterRoutes(humaAPI)
	}

	// Create HTTP server. WriteTimeout leaves room for two sequential outbound calls.
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second,
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

func init() {
	// Print banner
	fmt.Println(`
    ____                         __    __   __ __ _
   / __ \____  ____  ____ ______/ /___/ /  / //_/(_)___  ____ _
  / / / / __ \/ __ \/ __ '/ ___/ / __  /  / ,<  / / __ \/ __ '/
 / /_/ / /_/ / / / / /_/ / /  / / /_/ /  / /| |/ / / / / /_/ /
/_____/\____/_/ /_/\__,_/_/  /_/\__,_/  /_/ |_/_/_/ /_/\__, /
                                                      /____/
	`)
}
