package server

import (
	"errors"
	"net/url"
	"strconv"

	"mechmate/internal/middleware"
	"mechmate/internal/models"

	"github.com/gofiber/fiber/v2"
)

// parseID parses a numeric path parameter.
func parseID(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, models.NewValidationError("Invalid " + name + " parameter")
	}
	return uint(id), nil
}

// unescapeParam decodes a percent-encoded path parameter, e.g. a make or
// model name containing spaces.
func unescapeParam(c *fiber.Ctx, name string) (string, error) {
	decoded, err := url.PathUnescape(c.Params(name))
	if err != nil {
		return "", models.NewValidationError("Invalid " + name + " parameter")
	}
	return decoded, nil
}

// currentUserID returns the authenticated user's ID set by AuthRequired.
func currentUserID(c *fiber.Ctx) uint {
	if uid, ok := c.Locals("userID").(uint); ok {
		return uid
	}
	return 0
}

// handleServiceError maps service-layer errors onto HTTP responses. Field
// validation failures are 400s carrying the failing field; ownership
// violations are 403s; internal causes are logged with request context and
// reported as a generic 500.
func (s *Server) handleServiceError(c *fiber.Ctx, err error) error {
	var ferrs models.FieldErrors
	if errors.As(err, &ferrs) {
		return models.RespondWithError(c, fiber.StatusBadRequest, ferrs)
	}

	var appErr *models.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case models.CodeNotFound:
			return models.RespondWithError(c, fiber.StatusNotFound, appErr)
		case models.CodeUnauthorized:
			return models.RespondWithError(c, fiber.StatusForbidden, appErr)
		case models.CodeValidation, models.CodeMissingField, models.CodeInvalidDate:
			return models.RespondWithError(c, fiber.StatusBadRequest, appErr)
		case models.CodeInternalError:
			middleware.Logger.ErrorContext(c.UserContext(), "internal error",
				"path", c.Path(),
				"error", appErr.Err,
			)
			return models.RespondWithError(c, fiber.StatusInternalServerError, appErr)
		}
	}

	middleware.Logger.ErrorContext(c.UserContext(), "unhandled error",
		"path", c.Path(),
		"error", err,
	)
	return models.RespondWithError(c, fiber.StatusInternalServerError, models.NewInternalError(err))
}
