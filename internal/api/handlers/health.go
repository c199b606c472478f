package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"cvgen-utils/internal/llm"
	"cvgen-utils/internal/logging"
	"cvgen-utils/internal/profile"
	"cvgen-utils/pkg/models"
)

var startTime = time.Now()

const version = "1.0.0"

// HealthHandler reports overall service health including the profile store
// and LLM provider
func HealthHandler(store *profile.Store, llmManager *llm.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		logger := logging.GetGlobalLogger()
		logger.Debug("Health check requested", map[string]interface{}{"request_id": requestID(c)})

		checks := map[string]string{
			"api": "ok",
		}
		status := "healthy"

		if err := store.Ping(c.Request().Context()); err != nil {
			checks["redis"] = "unreachable"
			status = "degraded"
		} else {
			checks["redis"] = "ok"
		}

		if llmManager.IsHealthy() {
			checks["llm"] = "ok"
		} else {
			checks["llm"] = "unavailable"
			status = "degraded"
		}

		return c.JSON(http.StatusOK, models.HealthResponse{
			Status:    status,
			Timestamp: time.Now(),
			Version:   version,
			Uptime:    time.Since(startTime),
			Checks:    checks,
		})
	}
}

// ReadinessHandler handles readiness probe requests
func ReadinessHandler(store *profile.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := store.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, models.HealthResponse{
				Status:    "not_ready",
				Timestamp: time.Now(),
				Version:   version,
				Uptime:    time.Since(startTime),
				Checks:    map[string]string{"redis": "unreachable"},
			})
		}

		return c.JSON(http.StatusOK, models.HealthResponse{
			Status:    "ready",
			Timestamp: time.Now(),
			Version:   version,
			Uptime:    time.Since(startTime),
			Checks:    map[string]string{"api": "ok", "redis": "ok"},
		})
	}
}

// LivenessHandler handles liveness probe requests
func LivenessHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "alive",
		Timestamp: time.Now(),
		Version:   version,
		Uptime:    time.Since(startTime),
	})
}
