// Package skyapi is the HTTP client for the third-party flight data API
// (a Sky-Scrapper style RapidAPI service). Authentication uses static
// credential headers supplied through configuration; credential rotation is
// a deployment concern, not handled here.
//
// The client performs at most one request per call. Failure recovery
// (fallback to local or synthetic data) is the gateway's job, so errors are
// reported as domain.TransportError / domain.SchemaError and never retried.
package skyapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/skysearch/flight-search-gateway/internal/domain"
)

// Default endpoint configuration.
const (
	DefaultBaseURL = "https://sky-scrapper.p.rapidapi.com/api/v1"
	DefaultHost    = "sky-scrapper.p.rapidapi.com"
	DefaultTimeout = 10 * time.Second
)

// Config holds the client configuration.
type Config struct {
	// BaseURL is the API root, without a trailing slash
	BaseURL string

	// APIKey and APIHost are the static RapidAPI credential headers
	APIKey  string
	APIHost string

	// Timeout bounds each request; the gateway enforces no timeout itself
	Timeout time.Duration
}

// Client talks to the remote flight data API.
type Client struct {
	baseURL    string
	apiKey     string
	apiHost    string
	httpClient *http.Client
	log        zerolog.Logger
}

// New creates a Client. Zero-value config fields fall back to defaults.
func New(cfg Config, log zerolog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.APIHost == "" {
		cfg.APIHost = DefaultHost
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		apiHost: cfg.APIHost,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		log: log.With().Str("component", "skyapi").Logger(),
	}
}

// SearchAirports queries the remote airport autocomplete endpoint.
// Records without any usable identifier are dropped during normalization.
func (c *Client) SearchAirports(ctx context.Context, query string) ([]domain.Airport, error) {
	const op = "searchAirport"

	params := url.Values{}
	params.Set("query", query)

	var envelope airportEnvelope
	if err := c.get(ctx, op, "/flights/searchAirport", params, &envelope); err != nil {
		return nil, err
	}

	if envelope.Data == nil {
		return nil, &domain.SchemaError{Op: op, Reason: "data is missing or not a sequence"}
	}
	return normalizeAirports(envelope.Data), nil
}

// NearbyAirports queries the remote for airports close to a coordinate pair.
func (c *Client) NearbyAirports(ctx context.Context, lat, lng float64) ([]domain.Airport, error) {
	const op = "getNearByAirports"

	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lng", strconv.FormatFloat(lng, 'f', -1, 64))

	var envelope airportEnvelope
	if err := c.get(ctx, op, "/flights/getNearByAirports", params, &envelope); err != nil {
		return nil, err
	}

	if envelope.Data == nil {
		return nil, &domain.SchemaError{Op: op, Reason: "data is missing or not a sequence"}
	}
	return normalizeAirports(envelope.Data), nil
}

// Search queries the remote flight search endpoint with the full criteria.
// The response is accepted only when data.flights is present and is a
// sequence; anything else is a SchemaError so the gateway can degrade to the
// synthetic source.
func (c *Client) Search(ctx context.Context, criteria domain.SearchCriteria) ([]domain.FlightOffer, error) {
	const op = "searchFlights"

	params := url.Values{}
	params.Set("originSkyId", criteria.OriginCode)
	params.Set("destinationSkyId", criteria.DestinationCode)
	params.Set("originEntityId", criteria.OriginEntityID)
	params.Set("destinationEntityId", criteria.DestinationEntityID)
	params.Set("date", criteria.Date)
	params.Set("cabinClass", criteria.CabinClass)
	params.Set("adults", strconv.Itoa(criteria.Adults))
	params.Set("sortBy", string(criteria.SortBy))
	params.Set("currency", criteria.Currency)
	params.Set("market", criteria.Market)
	params.Set("countryCode", criteria.CountryCode)

	var envelope flightEnvelope
	if err := c.get(ctx, op, "/flights/searchFlights", params, &envelope); err != nil {
		return nil, err
	}

	if envelope.Data == nil || envelope.Data.Flights == nil {
		return nil, &domain.SchemaError{Op: op, Reason: "data.flights is missing or not a sequence"}
	}
	return normalizeOffers(envelope.Data.Flights), nil
}

// Name identifies this source in logs and response metadata.
func (c *Client) Name() string {
	return "remote"
}

// get issues a single GET request and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, op, path string, params url.Values, out any) error {
	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("X-RapidAPI-Key", c.apiKey)
	req.Header.Set("X-RapidAPI-Host", c.apiHost)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &domain.TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &domain.TransportError{Op: op, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &domain.SchemaError{Op: op, Reason: "invalid JSON: " + err.Error()}
	}
	return nil
}
