package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"cvgen-utils/pkg/models"
	"cvgen-utils/pkg/utils"
)

// RequestValidation middleware assigns a request ID and enforces the request
// body size limit
func RequestValidation() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := utils.GenerateRequestID()
			c.Set("request_id", requestID)
			c.Response().Header().Set("X-Request-ID", requestID)

			if c.Request().Method == http.MethodPost || c.Request().Method == http.MethodPut {
				if c.Request().ContentLength > 1024*1024 { // 1MB limit
					return c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{
						Error:     "request_too_large",
						Message:   "Request body too large",
						RequestID: requestID,
						Timestamp: time.Now(),
					})
				}
			}

			return next(c)
		}
	}
}
