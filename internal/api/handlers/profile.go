package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"cvgen-utils/internal/logging"
	"cvgen-utils/internal/profile"
	"cvgen-utils/pkg/models"
	"cvgen-utils/pkg/utils"
)

var profileValidator = validator.New()

// GetProfileHandler handles GET /api/v1/profile
func GetProfileHandler(store *profile.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		stored, err := store.Get(c.Request().Context())
		if err != nil {
			return writeError(c, err)
		}
		if stored == nil {
			return writeError(c, utils.NewProfileNotFoundError())
		}
		return c.JSON(http.StatusOK, stored)
	}
}

// SaveProfileHandler handles PUT /api/v1/profile, creating or replacing the
// singleton profile
func SaveProfileHandler(store *profile.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.Profile
		if err := c.Bind(&req); err != nil {
			return badRequest(c, "invalid_request", "Invalid request body: "+err.Error())
		}
		if err := profileValidator.Struct(&req); err != nil {
			return badRequest(c, "validation_failed", "Profile validation failed: "+err.Error())
		}

		if err := store.Save(c.Request().Context(), &req); err != nil {
			return writeError(c, err)
		}

		logging.GetGlobalLogger().Info("Profile updated", map[string]interface{}{
			"request_id": requestID(c),
			"profile_id": req.ID,
		})

		return c.JSON(http.StatusOK, models.ProfileResponse{
			ID:      req.ID,
			Message: "Profile saved",
		})
	}
}

// DeleteProfileHandler handles DELETE /api/v1/profile
func DeleteProfileHandler(store *profile.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := store.Delete(c.Request().Context()); err != nil {
			return writeError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
