package routes

import (
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"cvgen-utils/internal/api/handlers"
	"cvgen-utils/internal/api/middleware"
	"cvgen-utils/internal/config"
	"cvgen-utils/internal/cv"
	"cvgen-utils/internal/llm"
	"cvgen-utils/internal/profile"
)

// SetupRoutes configures all API routes
func SetupRoutes(e *echo.Echo, cfg *config.Config, store *profile.Store, llmManager *llm.Manager, svc *cv.Service) {
	// Global middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSConfig())
	e.Use(middleware.RequestValidation())
	e.Use(middleware.APIKeyAuth(cfg))
	e.Use(middleware.RateLimit(cfg))
	// Generation endpoints hold an LLM round trip, everything else is quick
	e.Use(middleware.SelectiveTimeout(30*time.Second, 3*time.Minute))

	// Health check routes
	health := e.Group("/health")
	{
		health.GET("", handlers.HealthHandler(store, llmManager))
		health.GET("/ready", handlers.ReadinessHandler(store))
		health.GET("/live", handlers.LivenessHandler)
	}

	// API v1 routes
	v1 := e.Group("/api/v1")
	{
		cvGroup := v1.Group("/cv")
		{
			cvGroup.POST("/generate-data", handlers.GenerateDataHandler(svc))
			cvGroup.POST("/render", handlers.RenderHandler())
			cvGroup.POST("/cover-letter/render", handlers.RenderCoverLetterHandler())
		}

		v1.GET("/profile", handlers.GetProfileHandler(store))
		v1.PUT("/profile", handlers.SaveProfileHandler(store))
		v1.DELETE("/profile", handlers.DeleteProfileHandler(store))

		v1.POST("/chat", handlers.ChatHandler(llmManager))
		v1.POST("/job/extract", handlers.ExtractJobHandler(svc))
	}
}
