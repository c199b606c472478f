package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"cvgen-utils/internal/api/validation"
	"cvgen-utils/internal/cv"
	"cvgen-utils/internal/logging"
	"cvgen-utils/internal/renderer"
	"cvgen-utils/pkg/models"
)

var cvValidator = validator.New()

func init() {
	validation.RegisterCVValidators(cvValidator)
}

// GenerateDataHandler handles the POST /api/v1/cv/generate-data endpoint
func GenerateDataHandler(svc *cv.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		logger := logging.GetGlobalLogger()

		var req models.GenerateDataRequest
		if err := c.Bind(&req); err != nil {
			return badRequest(c, "invalid_request", "Invalid request body: "+err.Error())
		}
		if err := cvValidator.Struct(&req); err != nil {
			return badRequest(c, "validation_failed", "Request validation failed: "+err.Error())
		}

		logger.Info("Processing generate-data request", map[string]interface{}{
			"request_id":    requestID(c),
			"has_url":       req.URL != "",
			"cover_letter":  req.GenerateCoverLetter,
			"email_message": req.GenerateEmailMessage,
		})

		resp, err := svc.GenerateData(c.Request().Context(), &req)
		if err != nil {
			return writeError(c, err)
		}

		return c.JSON(http.StatusOK, resp)
	}
}

// RenderHandler handles the POST /api/v1/cv/render endpoint and streams the
// rendered document back as an attachment
func RenderHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.RenderRequest
		if err := c.Bind(&req); err != nil {
			return badRequest(c, "invalid_request", "Invalid request body: "+err.Error())
		}
		if err := cvValidator.Struct(&req); err != nil {
			return badRequest(c, "validation_failed", "Request validation failed: "+err.Error())
		}

		doc, err := renderer.RenderResume(&req)
		if err != nil {
			return writeError(c, err)
		}

		return writeDocument(c, doc)
	}
}

// RenderCoverLetterHandler handles the POST /api/v1/cv/cover-letter/render
// endpoint
func RenderCoverLetterHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.CoverLetterRenderRequest
		if err := c.Bind(&req); err != nil {
			return badRequest(c, "invalid_request", "Invalid request body: "+err.Error())
		}
		if err := cvValidator.Struct(&req); err != nil {
			return badRequest(c, "validation_failed", "Request validation failed: "+err.Error())
		}

		doc, err := renderer.RenderCoverLetter(&req)
		if err != nil {
			return writeError(c, err)
		}

		return writeDocument(c, doc)
	}
}

func writeDocument(c echo.Context, doc *renderer.Document) error {
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", doc.FileName))
	return c.Blob(http.StatusOK, doc.ContentType, doc.Data)
}
