// Package middleware provides HTTP middleware for cross-cutting concerns:
// request ID propagation, request logging, and panic recovery.
package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

const (
	// RequestIDHeader is the HTTP header carrying the request ID.
	RequestIDHeader = "X-Request-ID"

	// requestIDKey is the echo context key for the request ID.
	requestIDKey = "request_id"
)

// Setup registers the middleware stack in order: request ID first so every
// log line can carry it, then request logging, then recovery.
func Setup(e *echo.Echo, log zerolog.Logger) {
	e.Use(RequestID())
	e.Use(RequestLogger(log))
	e.Use(Recover(log))
}

// RequestID returns middleware that propagates or generates request IDs.
// An incoming X-Request-ID is reused; otherwise a new UUID is minted. The ID
// is stored on the context and echoed back in the response headers.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			reqID := c.Request().Header.Get(RequestIDHeader)
			if reqID == "" {
				reqID = uuid.New().String()
			}

			c.Set(requestIDKey, reqID)
			c.Response().Header().Set(RequestIDHeader, reqID)

			return next(c)
		}
	}
}

// GetRequestID retrieves the request ID from the echo context, or "" when
// the RequestID middleware did not run.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// RequestLogger returns middleware that logs each request on completion with
// method, path, status, and duration. 5xx responses log at error level and
// 4xx at warn.
func RequestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			status := c.Response().Status

			var event *zerolog.Event
			switch {
			case status >= 500:
				event = log.Error()
			case status >= 400:
				event = log.Warn()
			default:
				event = log.Info()
			}

			event.
				Str("request_id", GetRequestID(c)).
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", status).
				Int64("duration_ms", time.Since(start).Milliseconds()).
				Str("client_ip", c.RealIP()).
				Msg("HTTP request")

			return nil
		}
	}
}

// Recover returns middleware that converts handler panics into 500 responses
// and logs the stack trace instead of crashing the server.
func Recover(log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					log.Error().
						Str("request_id", GetRequestID(c)).
						Str("panic", fmt.Sprintf("%v", r)).
						Bytes("stack", debug.Stack()).
						Msg("handler panic recovered")

					err = echo.NewHTTPError(http.StatusInternalServerError)
				}
			}()
			return next(c)
		}
	}
}
