// Package response provides standardized HTTP response builders for the
// flight search API.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Error codes returned in error payloads.
const (
	CodeInvalidRequest  = "INVALID_REQUEST"
	CodeValidationError = "VALIDATION_ERROR"
	CodeInternalError   = "INTERNAL_ERROR"
	CodeTimeout         = "TIMEOUT"
)

// ErrorDetail is the body of every error response.
type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status"`
}

// Health writes a health check response.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, &HealthResponse{Status: "ok"})
}

// OK writes a 200 response with the given payload.
func OK(c echo.Context, payload interface{}) error {
	return c.JSON(http.StatusOK, payload)
}

// InvalidRequestBody writes a 400 response for malformed request bodies.
func InvalidRequestBody(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, &ErrorDetail{
		Code:    CodeInvalidRequest,
		Message: "request body is malformed",
	})
}

// ValidationError writes a 400 response with a validation message.
func ValidationError(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, &ErrorDetail{
		Code:    CodeValidationError,
		Message: message,
	})
}

// ValidationErrors writes a 400 response with field-level details.
func ValidationErrors(c echo.Context, details map[string]string) error {
	return c.JSON(http.StatusBadRequest, &ErrorDetail{
		Code:    CodeValidationError,
		Message: "validation failed",
		Details: details,
	})
}

// RequestTimeout writes a 504 response for cancelled or timed-out requests.
func RequestTimeout(c echo.Context) error {
	return c.JSON(http.StatusGatewayTimeout, &ErrorDetail{
		Code:    CodeTimeout,
		Message: "the request timed out or was cancelled",
	})
}

// InternalServerError writes a 500 response.
func InternalServerError(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, &ErrorDetail{
		Code:    CodeInternalError,
		Message: "an unexpected error occurred",
	})
}
