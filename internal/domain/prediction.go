package domain

import "time"

// Represents one completed price estimate.
// A Prediction is produced only for trips that passed timing validation
// and were scored by the model.
type Prediction struct {
	RequestID      string
	Trip           TripRequest
	Features       FeatureVector
	DurationHours  float64
	Price          float64
	FormattedPrice string
	Model          string
	Cached         bool
	CreatedAt      time.Time
}
