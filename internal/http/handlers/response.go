// Package handlers provides HTTP handler implementations for the public API.
//
// This file defines the standard response utilities used across all endpoints.
// Every error response carries the `{error, details?}` envelope (plus the
// request correlation ID), and `fail()` centralizes error logging so 5xx
// responses are always logged with request context.
//
// Example error response:
//
//	HTTP/1.1 404 Not Found
//	{
//	  "request_id": "123e4567-e89b-12d3-a456-426614174000",
//	  "error": "Feature not found"
//	}
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-votes-backend/internal/http/middleware"
)

// ErrorResponse is the standard error envelope returned by all endpoints.
//
// Fields:
//   - RequestID: optional correlation ID, echoed from X-Request-ID, used to
//     correlate server logs with client-side errors.
//   - Error: a human-readable error description, safe for display to users.
//   - Details: optional raw underlying error text (storage failures only).
type ErrorResponse struct {
	// Correlates server logs and client errors
	RequestID string `json:"request_id,omitempty" example:"123e4567-e89b-12d3-a456-426614174000"`
	// Human-readable message (safe to show to users)
	Error string `json:"error" example:"Feature not found"`
	// Underlying error detail, present on storage failures
	Details string `json:"details,omitempty" example:"database is locked"`
}

// fail aborts the request with a structured error and logs server-side errors.
func fail(c *gin.Context, status int, msg string) {
	failDetails(c, status, msg, "")
}

// failDetails is fail with an optional details string attached, used for
// storage failures where the raw error is part of the contract.
func failDetails(c *gin.Context, status int, msg, details string) {
	resp := ErrorResponse{
		RequestID: c.Writer.Header().Get("X-Request-ID"),
		Error:     msg,
		Details:   details,
	}

	// Log 5xx (server-side) with request-scoped logger
	if status >= http.StatusInternalServerError {
		lg := middleware.LoggerFrom(c)
		lg.Error().
			Int("status", status).
			Str("error", msg).
			Str("details", details).
			Msg("api error")
	}

	c.AbortWithStatusJSON(status, resp)
}

// Fail is the exported variant of fail().
//
// External packages (e.g., router setup) should call Fail to return
// consistent error envelopes without directly depending on unexported helpers.
func Fail(c *gin.Context, status int, msg string) { fail(c, status, msg) }

// ok writes a success JSON response with the given status code.
func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}

// MessageResponse is the `{message}` body returned by delete endpoints.
type MessageResponse struct {
	Message string `json:"message" example:"Feature deleted successfully"`
}
