package services

import (
	"flight-price-service/internal/domain"
)

// Reject trips that are faster than the minimum flight time for their route.
//
// Routes missing from the table are never rejected on timing grounds.
// The boundary is inclusive: a duration equal to the minimum is accepted.
func ValidateTiming(trip domain.TripRequest, table *domain.MinTravelTimeTable) error {
	if table == nil {
		table = domain.DefaultMinTravelTimes
	}

	route := trip.Route()
	minHours, ok := table.Lookup(route)
	if !ok {
		return nil
	}

	duration := trip.DurationHours()
	if duration < minHours {
		return &domain.TimingError{
			Route:         route,
			MinHours:      minHours,
			DurationHours: duration,
		}
	}

	return nil
}
