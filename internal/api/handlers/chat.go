package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cvgen-utils/internal/llm"
	"cvgen-utils/pkg/models"
)

// ChatHandler handles POST /api/v1/chat, a raw single-turn LLM passthrough
func ChatHandler(llmManager *llm.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.ChatRequest
		if err := c.Bind(&req); err != nil {
			return badRequest(c, "invalid_request", "Invalid request body: "+err.Error())
		}
		if err := cvValidator.Struct(&req); err != nil {
			return badRequest(c, "validation_failed", "Request validation failed: "+err.Error())
		}

		response, err := llmManager.Ask(c.Request().Context(), req.Prompt, models.AskOptions{
			Model:  req.Model,
			APIKey: req.APIKey,
		})
		if err != nil {
			return writeError(c, err)
		}

		return c.JSON(http.StatusOK, models.ChatResponse{Response: response})
	}
}
