package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"cvgen-utils/internal/api/routes"
	"cvgen-utils/internal/config"
	"cvgen-utils/internal/cv"
	"cvgen-utils/internal/llm"
	"cvgen-utils/internal/logging"
	"cvgen-utils/internal/profile"
	"cvgen-utils/internal/scraper"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logging
	adapterConfigs := make([]logging.AdapterConfig, 0, len(cfg.Logging.Adapters))
	for _, a := range cfg.Logging.Adapters {
		adapterConfigs = append(adapterConfigs, logging.AdapterConfig{
			Name:    a.Name,
			Type:    a.Type,
			Enabled: a.Enabled,
			Options: a.Options,
		})
	}
	if err := logging.InitializeLogging(cfg.Logging.Level, adapterConfigs); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer logging.CloseLogging()

	logger := logging.GetGlobalLogger()
	logger.Info("Starting CV generation service")

	// Initialize profile store
	store, err := profile.NewStore(cfg)
	if err != nil {
		logger.Fatal("Failed to create profile store", map[string]interface{}{"error": err.Error()})
	}
	defer store.Close()

	pingCtx, cancel := context.WithTimeout(context.Background(), cfg.Redis.Timeout)
	if err := store.Ping(pingCtx); err != nil {
		logger.Warn("Redis is unreachable, profile operations will fail", map[string]interface{}{
			"error": err.Error(),
		})
	}
	cancel()

	// Initialize LLM manager
	llmManager := llm.NewManager(cfg)
	if err := llmManager.Start(); err != nil {
		logger.Fatal("Failed to start LLM manager", map[string]interface{}{"error": err.Error()})
	}

	// Initialize scraper factory and generation service
	scraperFactory := scraper.NewScraperFactory(cfg)
	svc := cv.NewService(store, llmManager, scraperFactory)

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true
	routes.SetupRoutes(e, cfg, store, llmManager, svc)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := llmManager.Stop(); err != nil {
			logger.Error("Error stopping LLM manager", map[string]interface{}{"error": err.Error()})
		}

		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("Error shutting down server", map[string]interface{}{"error": err.Error()})
		}

		logger.Info("Server shutdown complete")
	}()

	// Start server
	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", map[string]interface{}{"address": address})

	if err := e.Start(address); err != nil {
		logger.Info("Server stopped", map[string]interface{}{"reason": err.Error()})
	}
}
