// Package integration verifies the full wiring of the flight search gateway:
// HTTP handlers, the retrieval gateway, the airport cache, and the synthetic
// fallback working together.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/labstack/echo/v4"

	httpAdapter "github.com/skysearch/flight-search-gateway/internal/adapter/http"
	"github.com/skysearch/flight-search-gateway/internal/cache"
	"github.com/skysearch/flight-search-gateway/internal/directory"
	"github.com/skysearch/flight-search-gateway/internal/domain"
	"github.com/skysearch/flight-search-gateway/internal/infrastructure/logger"
	"github.com/skysearch/flight-search-gateway/internal/infrastructure/timeutil"
	"github.com/skysearch/flight-search-gateway/internal/usecase"
)

// TestServer wraps an Echo instance with helpers for exercising the API.
type TestServer struct {
	Echo    *echo.Echo
	Gateway *usecase.Gateway
	Clock   *timeutil.MockClock
}

// NewTestServer wires a gateway from the given sources with a mock clock
// behind the airport cache.
func NewTestServer(opts usecase.Options) *TestServer {
	clock := timeutil.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	airportCache := cache.New[[]domain.Airport](10*time.Minute, clock)
	opts.Log = logger.Nop()

	gateway := usecase.NewGateway(directory.New(), airportCache, opts)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	handler := httpAdapter.NewHandler(gateway)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:    e,
		Gateway: gateway,
		Clock:   clock,
	}
}

// Response wraps a recorded HTTP response.
type Response struct {
	Code int
	Body []byte
}

// GET executes a GET request against the server.
func (ts *TestServer) GET(target string) Response {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, req)
	return Response{Code: rec.Code, Body: rec.Body.Bytes()}
}

// POST executes a POST request with a JSON body against the server.
func (ts *TestServer) POST(target string, body interface{}) Response {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, req)
	return Response{Code: rec.Code, Body: rec.Body.Bytes()}
}

// Decode unmarshals the response body into out.
func (r Response) Decode(out interface{}) error {
	return json.Unmarshal(r.Body, out)
}

// DefaultSearchRequest returns a valid flight search request body.
func DefaultSearchRequest() map[string]interface{} {
	return map[string]interface{}{
		"origin":      "KHI",
		"destination": "DXB",
		"date":        "2026-04-10",
	}
}
