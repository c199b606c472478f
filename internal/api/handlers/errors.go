package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"cvgen-utils/internal/logging"
	"cvgen-utils/pkg/models"
	"cvgen-utils/pkg/utils"
)

// requestID pulls the ID assigned by the validation middleware
func requestID(c echo.Context) string {
	id, _ := c.Get("request_id").(string)
	if id == "" {
		id = utils.GenerateRequestID()
	}
	return id
}

// writeError maps pipeline errors onto HTTP responses. CustomError carries
// its own status code and kind; anything else is an internal error.
func writeError(c echo.Context, err error) error {
	id := requestID(c)

	if customErr, ok := err.(*utils.CustomError); ok {
		return c.JSON(customErr.Code, models.ErrorResponse{
			Error:     customErr.Kind,
			Message:   customErr.Error(),
			RequestID: id,
			Timestamp: time.Now(),
		})
	}

	logging.GetGlobalLogger().Error("Unhandled error", map[string]interface{}{
		"request_id": id,
		"error":      err.Error(),
	})

	return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:     "internal_error",
		Message:   "An internal error occurred",
		RequestID: id,
		Timestamp: time.Now(),
	})
}

// badRequest writes a 400 with the given kind and message
func badRequest(c echo.Context, kind, message string) error {
	return c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:     kind,
		Message:   message,
		RequestID: requestID(c),
		Timestamp: time.Now(),
	})
}
