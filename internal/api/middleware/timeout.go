package middleware

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
)

// Endpoints that hold an LLM round trip get the long timeout
var generationPaths = map[string]bool{
	"/api/v1/cv/generate-data": true,
	"/api/v1/chat":             true,
	"/api/v1/job/extract":      true,
}

// SelectiveTimeout applies the default timeout to most endpoints and a longer
// one to generation endpoints that wait on upstream AI calls
func SelectiveTimeout(defaultTimeout, generationTimeout time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			timeout := defaultTimeout
			if generationPaths[c.Path()] {
				timeout = generationTimeout
			}

			ctx, cancel := context.WithTimeout(c.Request().Context(), timeout)
			defer cancel()

			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}
