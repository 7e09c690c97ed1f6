package directory

import "github.com/skysearch/flight-search-gateway/internal/domain"

// defaultAirports is the static reference table backing the directory.
// It covers the routes the product is most commonly used for, so typeahead
// stays useful even when the remote API is unreachable.
var defaultAirports = []domain.Airport{
	{
		Code:        "KHI",
		Name:        "Jinnah International Airport",
		City:        "Karachi",
		Country:     "Pakistan",
		EntityID:    "KHI",
		DisplayCode: "KHI",
		Lat:         24.9008,
		Lng:         67.1681,
	},
	{
		Code:        "LHE",
		Name:        "Allama Iqbal International Airport",
		City:        "Lahore",
		Country:     "Pakistan",
		EntityID:    "LHE",
		DisplayCode: "LHE",
		Lat:         31.5216,
		Lng:         74.4036,
	},
	{
		Code:        "ISB",
		Name:        "Islamabad International Airport",
		City:        "Islamabad",
		Country:     "Pakistan",
		EntityID:    "ISB",
		DisplayCode: "ISB",
		Lat:         33.6162,
		Lng:         73.0996,
	},
	{
		Code:        "DXB",
		Name:        "Dubai International Airport",
		City:        "Dubai",
		Country:     "United Arab Emirates",
		EntityID:    "DXB",
		DisplayCode: "DXB",
		Lat:         25.2532,
		Lng:         55.3657,
	},
	{
		Code:        "LHR",
		Name:        "London Heathrow Airport",
		City:        "London",
		Country:     "United Kingdom",
		EntityID:    "LHR",
		DisplayCode: "LHR",
		Lat:         51.47,
		Lng:         -0.4543,
	},
	{
		Code:        "CDG",
		Name:        "Charles de Gaulle Airport",
		City:        "Paris",
		Country:     "France",
		EntityID:    "CDG",
		DisplayCode: "CDG",
		Lat:         49.0097,
		Lng:         2.5479,
	},
	{
		Code:        "SIN",
		Name:        "Singapore Changi Airport",
		City:        "Singapore",
		Country:     "Singapore",
		EntityID:    "SIN",
		DisplayCode: "SIN",
		Lat:         1.3644,
		Lng:         103.9915,
	},
	{
		Code:        "JFK",
		Name:        "John F. Kennedy International Airport",
		City:        "New York",
		Country:     "United States",
		EntityID:    "JFK",
		DisplayCode: "JFK",
		Lat:         40.6413,
		Lng:         -73.7781,
	},
	{
		Code:        "LAX",
		Name:        "Los Angeles International Airport",
		City:        "Los Angeles",
		Country:     "United States",
		EntityID:    "LAX",
		DisplayCode: "LAX",
		Lat:         33.9425,
		Lng:         -118.4081,
	},
	{
		Code:        "ORD",
		Name:        "O'Hare International Airport",
		City:        "Chicago",
		Country:     "United States",
		EntityID:    "ORD",
		DisplayCode: "ORD",
		Lat:         41.9742,
		Lng:         -87.9073,
	},
	{
		Code:        "NRT",
		Name:        "Narita International Airport",
		City:        "Tokyo",
		Country:     "Japan",
		EntityID:    "NRT",
		DisplayCode: "NRT",
		Lat:         35.7763,
		Lng:         140.387,
	},
	{
		Code:        "ICN",
		Name:        "Incheon International Airport",
		City:        "Seoul",
		Country:     "South Korea",
		EntityID:    "ICN",
		DisplayCode: "ICN",
		Lat:         37.4602,
		Lng:         126.4407,
	},
}
