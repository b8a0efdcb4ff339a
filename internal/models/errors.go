package models

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error codes used across the API.
const (
	CodeNotFound      = "NOT_FOUND"
	CodeValidation    = "VALIDATION_ERROR"
	CodeMissingField  = "MISSING_FIELD"
	CodeInvalidDate   = "INVALID_DATE"
	CodeUnauthorized  = "UNAUTHORIZED"
	CodeInternalError = "INTERNAL_ERROR"
)

// ErrorResponse represents a standardized API error response
type ErrorResponse struct {
	Error  string       `json:"error"`
	Code   string       `json:"code,omitempty"`
	Field  string       `json:"field,omitempty"`
	Errors []FieldError `json:"errors,omitempty"`
}

// AppError represents a custom application error
type AppError struct {
	Code    string
	Message string
	Field   string // originating form field, when the error is field-tied
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// FieldError ties a validation message to the form field that caused it.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors is the failure shape of form resolution. The shape supports
// many entries but resolution short-circuits on the first failing field, so
// at most one entry is reported per attempt.
type FieldErrors []FieldError

func (fe FieldErrors) Error() string {
	if len(fe) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("%s: %s", fe[0].Field, fe[0].Message)
}

// Predefined error constructors
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s with ID %v not found", resource, id),
	}
}

func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: message,
	}
}

func NewMissingFieldError(field string) *AppError {
	return &AppError{
		Code:    CodeMissingField,
		Message: fmt.Sprintf("%s is required", field),
		Field:   field,
	}
}

func NewInvalidDateError(field string) *AppError {
	return &AppError{
		Code:    CodeInvalidDate,
		Message: fmt.Sprintf("%s must be a valid date (YYYY-MM-DD)", field),
		Field:   field,
	}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{
		Code:    CodeUnauthorized,
		Message: message,
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    CodeInternalError,
		Message: "Internal server error",
		Err:     err,
	}
}

// RespondWithError creates a standardized error response. Internal causes
// are logged by the caller, never echoed to the end user.
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	var response ErrorResponse

	switch e := err.(type) {
	case *AppError:
		response = ErrorResponse{
			Error: e.Message,
			Code:  e.Code,
			Field: e.Field,
		}
	case FieldErrors:
		response = ErrorResponse{
			Error:  e.Error(),
			Code:   CodeValidation,
			Errors: e,
		}
	default:
		response = ErrorResponse{
			Error: err.Error(),
		}
	}

	return c.Status(status).JSON(response)
}
