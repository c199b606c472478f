package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cvgen-utils/internal/cv"
	"cvgen-utils/pkg/models"
)

// ExtractJobHandler handles POST /api/v1/job/extract, returning the raw
// normalized posting without running generation
func ExtractJobHandler(svc *cv.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.JobExtractRequest
		if err := c.Bind(&req); err != nil {
			return badRequest(c, "invalid_request", "Invalid request body: "+err.Error())
		}
		if err := cvValidator.Struct(&req); err != nil {
			return badRequest(c, "validation_failed", "Request validation failed: "+err.Error())
		}

		posting, err := svc.ExtractJob(c.Request().Context(), req.URL)
		if err != nil {
			return writeError(c, err)
		}

		return c.JSON(http.StatusOK, posting)
	}
}
