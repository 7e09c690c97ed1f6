package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchFlightsRequest_MissingFields(t *testing.T) {
	tests := []struct {
		name    string
		request SearchFlightsRequest
		want    []string
	}{
		{
			name:    "all required fields present",
			request: SearchFlightsRequest{Origin: "KHI", Destination: "DXB", Date: "2026-04-10"},
			want:    nil,
		},
		{
			name:    "everything missing",
			request: SearchFlightsRequest{},
			want:    []string{"origin", "destination", "date"},
		},
		{
			name:    "only date missing",
			request: SearchFlightsRequest{Origin: "KHI", Destination: "DXB"},
			want:    []string{"date"},
		},
		{
			name:    "only origin missing",
			request: SearchFlightsRequest{Destination: "DXB", Date: "2026-04-10"},
			want:    []string{"origin"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			details := tt.request.missingFields()

			if tt.want == nil {
				assert.Nil(t, details)
				return
			}
			assert.Len(t, details, len(tt.want))
			for _, field := range tt.want {
				assert.Contains(t, details, field)
			}
		})
	}
}

func TestToDomainCriteria(t *testing.T) {
	req := &SearchFlightsRequest{
		Origin:      "KHI",
		Destination: "DXB",
		Date:        "2026-04-10",
		CabinClass:  "business",
		Adults:      2,
		SortBy:      "best",
		Currency:    "EUR",
	}

	criteria := toDomainCriteria(req)

	assert.Equal(t, "KHI", criteria.OriginCode)
	assert.Equal(t, "DXB", criteria.DestinationCode)
	assert.Equal(t, "2026-04-10", criteria.Date)
	assert.Equal(t, "business", criteria.CabinClass)
	assert.Equal(t, 2, criteria.Adults)
	assert.Equal(t, "best", string(criteria.SortBy))
	assert.Equal(t, "EUR", criteria.Currency)
}

func TestToDomainFilters_NilPassesThrough(t *testing.T) {
	assert.Nil(t, toDomainFilters(nil))
}

func TestToDomainFilters_MapsAllFields(t *testing.T) {
	maxPrice := 750.0
	maxStops := 1
	dto := &FilterDTO{
		MaxPrice: &maxPrice,
		MaxStops: &maxStops,
		Carriers: []string{"EK", "QR"},
	}

	opts := toDomainFilters(dto)

	assert.Equal(t, &maxPrice, opts.MaxPrice)
	assert.Equal(t, &maxStops, opts.MaxStops)
	assert.Equal(t, []string{"EK", "QR"}, opts.Carriers)
	assert.Nil(t, opts.DepartureWindow)
}
