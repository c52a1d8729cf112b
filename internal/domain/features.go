package domain

// Number of model input columns.
const FeatureCount = 43

// Fixed-order numeric model input derived from one TripRequest.
//
// Layout: 10 scalar columns, then one-hot blocks for airline (12),
// source (5), destination (6) and info tags (10). The block orders match
// the column order the model was trained with and must not change.
type FeatureVector [FeatureCount]float64

// Scalar column indexes.
const (
	ColTotalStops = iota
	ColDay
	ColMonth
	ColYear
	ColDepartureHour
	ColDepartureMinute
	ColArrivalHour
	ColArrivalMinute
	ColDurationHours
	ColPlaceholder

	scalarColumns
)

var (
	airlineColumns = []Airline{
		AirAsia, AirIndia, GoAir, IndiGo, JetAirways, JetAirwaysBusiness, MultipleCarriers,
		MultipleCarriersPremiumEconomy, SpiceJet, Trujet, Vistara, VistaraPremiumEconomy,
	}
	sourceColumns = []SourceCity{
		SourceBangalore, SourceChennai, SourceDelhi, SourceKolkata, SourceMumbai,
	}
	destinationColumns = []DestinationCity{
		DestinationNewDelhi, DestinationBangalore, DestinationCochin,
		DestinationKolkata, DestinationDelhi, DestinationHyderabad,
	}
	infoTagColumns = []InfoTag{
		OneLongLayover, OneShortLayover, TwoLongLayover, BusinessClass, ChangeAirports,
		MealNotIncluded, NoCheckInBaggage, NoInfo1, NoInfo2, RedEyeFlight,
	}
)

// Block offsets within a FeatureVector.
var (
	AirlineOffset     = scalarColumns
	SourceOffset      = AirlineOffset + len(airlineColumns)
	DestinationOffset = SourceOffset + len(sourceColumns)
	InfoTagOffset     = DestinationOffset + len(destinationColumns)
)

var (
	airlineIndex     = indexOf(airlineColumns)
	sourceIndex      = indexOf(sourceColumns)
	destinationIndex = indexOf(destinationColumns)
	infoTagIndex     = indexOf(infoTagColumns)
)

func indexOf[T comparable](cols []T) map[T]int {
	m := make(map[T]int, len(cols))
	for i, c := range cols {
		m[c] = i
	}
	return m
}

// Column holding the indicator for a.
func AirlineColumn(a Airline) (int, bool) {
	i, ok := airlineIndex[a]
	return AirlineOffset + i, ok
}

func SourceColumn(c SourceCity) (int, bool) {
	i, ok := sourceIndex[c]
	return SourceOffset + i, ok
}

func DestinationColumn(c DestinationCity) (int, bool) {
	i, ok := destinationIndex[c]
	return DestinationOffset + i, ok
}

func InfoTagColumn(t InfoTag) (int, bool) {
	i, ok := infoTagIndex[t]
	return InfoTagOffset + i, ok
}

// Column names in vector order, for diagnostics and model artifacts.
func FeatureNames() []string {
	names := []string{
		"Total_Stops", "Journey_day", "Journey_month", "Journey_year",
		"Dep_hour", "Dep_min", "Arrival_hour", "Arrival_min", "Duration_hours", "Placeholder",
	}
	for _, a := range airlineColumns {
		names = append(names, "Airline_"+string(a))
	}
	for _, c := range sourceColumns {
		names = append(names, "Source_"+string(c))
	}
	for _, c := range destinationColumns {
		names = append(names, "Destination_"+string(c))
	}
	for _, t := range infoTagColumns {
		names = append(names, "Additional_Info_"+string(t))
	}
	return names
}

func (v FeatureVector) Slice() []float64 {
	out := make([]float64, FeatureCount)
	copy(out, v[:])
	return out
}
