package http

import "github.com/skysearch/flight-search-gateway/internal/domain"

// toDomainCriteria converts a search request to domain criteria. Defaulting
// happens in the use case, not here.
func toDomainCriteria(req *SearchFlightsRequest) domain.SearchCriteria {
	return domain.SearchCriteria{
		OriginCode:          req.Origin,
		DestinationCode:     req.Destination,
		OriginEntityID:      req.OriginEntityID,
		DestinationEntityID: req.DestinationEntityID,
		Date:                req.Date,
		CabinClass:          req.CabinClass,
		Adults:              req.Adults,
		SortBy:              domain.SortOption(req.SortBy),
		Currency:            req.Currency,
		Market:              req.Market,
		CountryCode:         req.CountryCode,
	}
}

// toDomainFilters converts the optional filter DTO to domain filter options.
func toDomainFilters(dto *FilterDTO) *domain.FilterOptions {
	if dto == nil {
		return nil
	}

	opts := &domain.FilterOptions{
		MaxPrice: dto.MaxPrice,
		MaxStops: dto.MaxStops,
		Carriers: dto.Carriers,
	}
	if dto.DepartureWindow != nil {
		opts.DepartureWindow = &domain.TimeWindow{
			Start: dto.DepartureWindow.Start,
			End:   dto.DepartureWindow.End,
		}
	}
	return opts
}
