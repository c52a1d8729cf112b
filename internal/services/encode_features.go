package services

import (
	"flight-price-service/internal/domain"
)

// Build the model input row for a validated trip.
//
// Categories outside the known vocabularies leave their one-hot block all
// zero; callers are expected to have parsed inputs through the domain
// Parse functions first.
func EncodeFeatures(trip domain.TripRequest) domain.FeatureVector {
	var v domain.FeatureVector

	v[domain.ColTotalStops] = float64(trip.TotalStops)
	v[domain.ColDay] = float64(trip.Date.Day())
	v[domain.ColMonth] = float64(trip.Date.Month())
	v[domain.ColYear] = float64(trip.Date.Year())
	v[domain.ColDepartureHour] = float64(trip.Departure.Hour)
	v[domain.ColDepartureMinute] = float64(trip.Departure.Minute)
	v[domain.ColArrivalHour] = float64(trip.Arrival.Hour)
	v[domain.ColArrivalMinute] = float64(trip.Arrival.Minute)
	v[domain.ColDurationHours] = trip.DurationHours()
	v[domain.ColPlaceholder] = 0

	if i, ok := domain.AirlineColumn(trip.Airline); ok {
		v[i] = 1
	}
	if i, ok := domain.SourceColumn(trip.Source); ok {
		v[i] = 1
	}
	if i, ok := domain.DestinationColumn(trip.Destination); ok {
		v[i] = 1
	}
	for _, tag := range trip.AdditionalInfo.Tags() {
		if i, ok := domain.InfoTagColumn(tag); ok {
			v[i] = 1
		}
	}

	return v
}
