package http

import (
	"context"
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/skysearch/flight-search-gateway/internal/adapter/http/response"
	"github.com/skysearch/flight-search-gateway/internal/domain"
	"github.com/skysearch/flight-search-gateway/internal/usecase"
)

// Handler handles HTTP requests for airport and flight search.
type Handler struct {
	gateway *usecase.Gateway
}

// NewHandler creates a Handler over the retrieval gateway.
func NewHandler(gateway *usecase.Gateway) *Handler {
	return &Handler{gateway: gateway}
}

// SearchAirports handles GET /api/v1/airports/search
//
//	@Summary		Search airports
//	@Description	Resolves a free-text query to airport suggestions, serving cached or local results when possible
//	@Tags			airports
//	@Produce		json
//	@Param			query	query		string	true	"Free-text airport query (min 3 characters)"
//	@Success		200		{object}	AirportSearchResponse
//	@Router			/airports/search [get]
func (h *Handler) SearchAirports(c echo.Context) error {
	query := c.QueryParam("query")

	airports, err := h.gateway.SearchAirports(c.Request().Context(), query)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, &AirportSearchResponse{
		Query:    query,
		Total:    len(airports),
		Airports: airports,
	})
}

// NearbyAirports handles GET /api/v1/airports/nearby
//
//	@Summary		Nearby airports
//	@Description	Looks up airports close to a coordinate pair
//	@Tags			airports
//	@Produce		json
//	@Param			lat	query		number	true	"Latitude"
//	@Param			lng	query		number	true	"Longitude"
//	@Success		200	{object}	AirportSearchResponse
//	@Failure		400	{object}	response.ErrorDetail
//	@Router			/airports/nearby [get]
func (h *Handler) NearbyAirports(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return response.ValidationError(c, "lat must be a valid number")
	}
	lng, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil {
		return response.ValidationError(c, "lng must be a valid number")
	}

	airports, err := h.gateway.NearbyAirports(c.Request().Context(), lat, lng)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, &AirportSearchResponse{
		Total:    len(airports),
		Airports: airports,
	})
}

// SearchFlights handles POST /api/v1/flights/search
//
//	@Summary		Search flights
//	@Description	Retrieves, filters, and ranks flight offers for the given criteria
//	@Tags			flights
//	@Accept			json
//	@Produce		json
//	@Param			request	body		SearchFlightsRequest	true	"Search criteria"
//	@Success		200		{object}	SearchFlightsResponse
//	@Failure		400		{object}	response.ErrorDetail	"Validation error"
//	@Failure		504		{object}	response.ErrorDetail	"Timeout"
//	@Router			/flights/search [post]
func (h *Handler) SearchFlights(c echo.Context) error {
	var req SearchFlightsRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if details := req.missingFields(); details != nil {
		return response.ValidationErrors(c, details)
	}

	criteria := toDomainCriteria(&req)
	criteria.SetDefaults()

	result, err := h.gateway.SearchFlights(c.Request().Context(), criteria, toDomainFilters(req.Filters))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, &SearchFlightsResponse{
		Criteria: criteria,
		Metadata: result.Metadata,
		Offers:   result.Offers,
	})
}

// Health handles GET /health.
func (h *Handler) Health(c echo.Context) error {
	return response.Health(c)
}

// handleError maps domain errors to HTTP responses. Transport and schema
// failures never reach this point for flight search - the gateway degrades
// to the fallback source - so anything unrecognized is a genuine 500.
func (h *Handler) handleError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		return response.ValidationError(c, err.Error())
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return response.RequestTimeout(c)
	default:
		return response.InternalServerError(c)
	}
}
