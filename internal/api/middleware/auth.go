package middleware

import (
	"crypto/subtle"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"cvgen-utils/internal/config"
	"cvgen-utils/pkg/models"
)

// Paths reachable without credentials
var publicPathPrefixes = []string{"/health", "/status"}

// APIKeyAuth enforces the configured API key and IP allowlist on every
// non-public endpoint. With no key configured the middleware is a no-op, for
// local development.
func APIKeyAuth(cfg *config.Config) echo.MiddlewareFunc {
	header := cfg.Auth.APIKeyHeader
	if header == "" {
		header = "X-API-Key"
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if isPublicPath(c.Path()) {
				return next(c)
			}

			if len(cfg.Auth.AllowedIPs) > 0 && !ipAllowed(c.RealIP(), cfg.Auth.AllowedIPs) {
				return authError(c, http.StatusForbidden, "ip_not_allowed", "Client IP is not allowed")
			}

			if cfg.Auth.APIKey == "" {
				return next(c)
			}

			provided := c.Request().Header.Get(header)
			if subtle.ConstantTimeCompare([]byte(provided), []byte(cfg.Auth.APIKey)) != 1 {
				return authError(c, http.StatusUnauthorized, "unauthorized", "Invalid or missing API key")
			}

			return next(c)
		}
	}
}

func isPublicPath(path string) bool {
	for _, prefix := range publicPathPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// ipAllowed accepts plain addresses and CIDR ranges in the allowlist
func ipAllowed(clientIP string, allowed []string) bool {
	ip := net.ParseIP(clientIP)
	for _, entry := range allowed {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if strings.Contains(entry, "/") {
			if _, network, err := net.ParseCIDR(entry); err == nil && ip != nil && network.Contains(ip) {
				return true
			}
			continue
		}
		if entry == clientIP {
			return true
		}
	}
	return false
}

func authError(c echo.Context, code int, kind, message string) error {
	requestID, _ := c.Get("request_id").(string)
	return c.JSON(code, models.ErrorResponse{
		Error:     kind,
		Message:   message,
		RequestID: requestID,
		Timestamp: time.Now(),
	})
}
