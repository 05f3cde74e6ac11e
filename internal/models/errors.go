package models

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error codes used across the application.
const (
	CodeNotFound         = "NOT_FOUND"
	CodePermissionDenied = "PERMISSION_DENIED"
	CodeValidation       = "VALIDATION_ERROR"
	CodeConflict         = "CONFLICT"
	CodeInternal         = "INTERNAL_ERROR"
)

// ErrorResponse represents a standardized API error response.
type ErrorResponse struct {
	Error    string `json:"error"`
	Code     string `json:"code,omitempty"`
	Details  string `json:"details,omitempty"`
	Redirect string `json:"redirect,omitempty"`
}

// AppError represents a typed application error.
type AppError struct {
	Code    string
	Message string
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

// NewNotFoundError reports that a resource id does not exist.
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s with ID %v not found", resource, id),
	}
}

// NewPermissionDeniedError reports a rejected mutation or login attempt.
func NewPermissionDeniedError(message string) *AppError {
	return &AppError{
		Code:    CodePermissionDenied,
		Message: message,
	}
}

// NewValidationError reports missing or malformed input.
func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: message,
	}
}

// NewConflictError reports a uniqueness violation not absorbed by the toggle
// engine, e.g. a duplicate den name or username.
func NewConflictError(message string) *AppError {
	return &AppError{
		Code:    CodeConflict,
		Message: message,
	}
}

// NewInternalError wraps an unexpected failure.
func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: "Internal server error",
		Err:     err,
	}
}

// HasCode reports whether err is an AppError carrying the given code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// IsNotFound reports whether err is a NotFound application error.
func IsNotFound(err error) bool { return HasCode(err, CodeNotFound) }

// IsPermissionDenied reports whether err is a PermissionDenied application error.
func IsPermissionDenied(err error) bool { return HasCode(err, CodePermissionDenied) }

// IsConflict reports whether err is a Conflict application error.
func IsConflict(err error) bool { return HasCode(err, CodeConflict) }

// IsValidation reports whether err is a Validation application error.
func IsValidation(err error) bool { return HasCode(err, CodeValidation) }

// StatusForError maps an application error onto an HTTP status code.
func StatusForError(err error) int {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return fiber.StatusInternalServerError
	}
	switch appErr.Code {
	case CodeNotFound:
		return fiber.StatusNotFound
	case CodePermissionDenied:
		return fiber.StatusForbidden
	case CodeValidation:
		return fiber.StatusBadRequest
	case CodeConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// RespondWithError writes a standardized error response.
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	var response ErrorResponse

	var appErr *AppError
	if errors.As(err, &appErr) {
		response = ErrorResponse{
			Error: appErr.Message,
			Code:  appErr.Code,
		}
		if appErr.Err != nil {
			response.Details = appErr.Err.Error()
		}
	} else {
		response = ErrorResponse{
			Error: err.Error(),
		}
	}

	return c.Status(status).JSON(response)
}
