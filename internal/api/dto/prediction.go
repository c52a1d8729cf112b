package dto

import "time"

type PredictionRequest struct {
	Date           string   `json:"date" validate:"required,datetime=2006-01-02"`
	DepartureTime  string   `json:"departure_time" validate:"required,datetime=15:04"`
	ArrivalTime    string   `json:"arrival_time" validate:"required,datetime=15:04"`
	Source         string   `json:"source" validate:"required"`
	Destination    string   `json:"destination" validate:"required"`
	TotalStops     *int     `json:"total_stops" validate:"required,min=0,max=4"`
	Airline        string   `json:"airline" validate:"required"`
	AdditionalInfo []string `json:"additional_info" validate:"omitempty,dive,required"`
}

type PredictionResponse struct {
	RequestID      string    `json:"request_id"`
	Message        string    `json:"message"`
	Price          float64   `json:"price"`
	FormattedPrice string    `json:"formatted_price"`
	Currency       string    `json:"currency"`
	DurationHours  float64   `json:"duration_hours"`
	Model          string    `json:"model"`
	Cached         bool      `json:"cached"`
	Features       []float64 `json:"features"`
}

// Returned with 422 when a trip is faster than its route allows.
type TimingErrorResponse struct {
	Error         string  `json:"error"`
	Route         string  `json:"route"`
	MinHours      float64 `json:"min_hours"`
	DurationHours float64 `json:"duration_hours"`
}

type PredictionSummary struct {
	RequestID      string    `json:"request_id"`
	Date           string    `json:"date"`
	DepartureTime  string    `json:"departure_time"`
	ArrivalTime    string    `json:"arrival_time"`
	Source         string    `json:"source"`
	Destination    string    `json:"destination"`
	TotalStops     int       `json:"total_stops"`
	Airline        string    `json:"airline"`
	AdditionalInfo []string  `json:"additional_info"`
	DurationHours  float64   `json:"duration_hours"`
	Price          float64   `json:"price"`
	FormattedPrice string    `json:"formatted_price"`
	Model          string    `json:"model"`
	CreatedAt      time.Time `json:"created_at"`
}

type ListPredictionsResponse struct {
	Predictions []PredictionSummary `json:"predictions"`
}
