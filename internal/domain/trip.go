package domain

import (
	"fmt"
	"time"
)

// Carrier operating the flight.
type Airline string

const (
	AirAsia                        Airline = "Air Asia"
	AirIndia                       Airline = "Air India"
	GoAir                          Airline = "GoAir"
	IndiGo                         Airline = "IndiGo"
	JetAirways                     Airline = "Jet Airways"
	JetAirwaysBusiness             Airline = "Jet Airways Business"
	MultipleCarriers               Airline = "Multiple carriers"
	MultipleCarriersPremiumEconomy Airline = "Multiple carriers Premium economy"
	SpiceJet                       Airline = "SpiceJet"
	Trujet                         Airline = "Trujet"
	Vistara                        Airline = "Vistara"
	VistaraPremiumEconomy          Airline = "Vistara Premium economy"
)

// Airlines in the order they are offered to users.
var Airlines = []Airline{
	IndiGo, AirIndia, JetAirways, SpiceJet, MultipleCarriers, GoAir, Vistara,
	AirAsia, VistaraPremiumEconomy, JetAirwaysBusiness, MultipleCarriersPremiumEconomy, Trujet,
}

// City a flight departs from.
type SourceCity string

const (
	SourceBangalore SourceCity = "Bangalore"
	SourceChennai   SourceCity = "Chennai"
	SourceDelhi     SourceCity = "Delhi"
	SourceKolkata   SourceCity = "Kolkata"
	SourceMumbai    SourceCity = "Mumbai"
)

var SourceCities = []SourceCity{SourceMumbai, SourceDelhi, SourceBangalore, SourceChennai, SourceKolkata}

// City a flight lands in. "New Delhi" and "Delhi" are distinct categories.
type DestinationCity string

const (
	DestinationNewDelhi  DestinationCity = "New Delhi"
	DestinationBangalore DestinationCity = "Bangalore"
	DestinationCochin    DestinationCity = "Cochin"
	DestinationKolkata   DestinationCity = "Kolkata"
	DestinationDelhi     DestinationCity = "Delhi"
	DestinationHyderabad DestinationCity = "Hyderabad"
)

var DestinationCities = []DestinationCity{
	DestinationNewDelhi, DestinationBangalore, DestinationCochin,
	DestinationKolkata, DestinationDelhi, DestinationHyderabad,
}

// Free-form extra information attached to a fare, from a closed vocabulary.
type InfoTag string

const (
	NoInfo1          InfoTag = "No info 1"
	NoInfo2          InfoTag = "No info 2"
	MealNotIncluded  InfoTag = "In-flight meal not included"
	NoCheckInBaggage InfoTag = "No check-in baggage included"
	OneShortLayover  InfoTag = "1 Short layover"
	OneLongLayover   InfoTag = "1 Long layover"
	ChangeAirports   InfoTag = "Change airports"
	BusinessClass    InfoTag = "Business class"
	RedEyeFlight     InfoTag = "Red-eye flight"
	TwoLongLayover   InfoTag = "2 Long layover"
)

var InfoTags = []InfoTag{
	NoInfo1, NoInfo2, MealNotIncluded, NoCheckInBaggage, OneShortLayover,
	OneLongLayover, ChangeAirports, BusinessClass, RedEyeFlight, TwoLongLayover,
}

const MaxStops = 4

func ParseAirline(s string) (Airline, error) {
	for _, a := range Airlines {
		if string(a) == s {
			return a, nil
		}
	}
	return "", ValidationError{Field: "airline", Msg: fmt.Sprintf("unknown airline %q", s), Err: ErrUnknownCategory}
}

func ParseSourceCity(s string) (SourceCity, error) {
	for _, c := range SourceCities {
		if string(c) == s {
			return c, nil
		}
	}
	return "", ValidationError{Field: "source", Msg: fmt.Sprintf("unknown source city %q", s), Err: ErrUnknownCategory}
}

func ParseDestinationCity(s string) (DestinationCity, error) {
	for _, c := range DestinationCities {
		if string(c) == s {
			return c, nil
		}
	}
	return "", ValidationError{Field: "destination", Msg: fmt.Sprintf("unknown destination city %q", s), Err: ErrUnknownCategory}
}

func ParseInfoTag(s string) (InfoTag, error) {
	for _, t := range InfoTags {
		if string(t) == s {
			return t, nil
		}
	}
	return "", ValidationError{Field: "additional_info", Msg: fmt.Sprintf("unknown info tag %q", s), Err: ErrUnknownCategory}
}

// Wall-clock time of day with minute precision.
type ClockTime struct {
	Hour   int
	Minute int
}

// Parse "HH:MM" (24-hour).
func ParseClockTime(s string) (ClockTime, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return ClockTime{}, fmt.Errorf("parse clock time %q: %w", s, err)
	}
	return ClockTime{Hour: t.Hour(), Minute: t.Minute()}, nil
}

func (c ClockTime) minutes() int { return c.Hour*60 + c.Minute }

func (c ClockTime) String() string { return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute) }

// Set of info tags. Selecting either "No info" tag collapses the set to
// exactly {No info 1, No info 2}; nothing else can be added afterwards.
// Add never mutates a map another copy of the set can see.
type InfoSet struct {
	tags map[InfoTag]struct{}
}

func NewInfoSet(tags ...InfoTag) InfoSet {
	var s InfoSet
	for _, t := range tags {
		s.Add(t)
	}
	return s
}

func (s *InfoSet) Add(t InfoTag) {
	if s.hasNoInfo() || s.Contains(t) {
		return
	}
	if t == NoInfo1 || t == NoInfo2 {
		s.tags = map[InfoTag]struct{}{NoInfo1: {}, NoInfo2: {}}
		return
	}

	tags := make(map[InfoTag]struct{}, len(s.tags)+1)
	for k := range s.tags {
		tags[k] = struct{}{}
	}
	tags[t] = struct{}{}
	s.tags = tags
}

func (s InfoSet) Contains(t InfoTag) bool {
	_, ok := s.tags[t]
	return ok
}

func (s InfoSet) Len() int { return len(s.tags) }

// Tags returned in vocabulary order.
func (s InfoSet) Tags() []InfoTag {
	out := make([]InfoTag, 0, len(s.tags))
	for _, t := range InfoTags {
		if s.Contains(t) {
			out = append(out, t)
		}
	}
	return out
}

func (s InfoSet) hasNoInfo() bool {
	return s.Contains(NoInfo1) || s.Contains(NoInfo2)
}

// Represents the trip parameters a user submits for a price estimate.
// A TripRequest is built per submission and discarded once a price is produced.
type TripRequest struct {
	Date           time.Time
	Departure      ClockTime
	Arrival        ClockTime
	Source         SourceCity
	Destination    DestinationCity
	TotalStops     int
	Airline        Airline
	AdditionalInfo InfoSet
}

// Route travelled by this request.
func (r TripRequest) Route() Route {
	return Route{Source: string(r.Source), Destination: string(r.Destination)}
}

// Flight duration in fractional hours. An arrival earlier than the departure
// is an overnight flight and wraps past midnight.
func (r TripRequest) DurationHours() float64 {
	diff := r.Arrival.minutes() - r.Departure.minutes()
	if diff < 0 {
		diff += 24 * 60
	}
	return float64(diff) / 60
}
