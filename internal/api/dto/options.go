package dto

// Closed vocabularies a client needs to build the trip form.
type OptionsResponse struct {
	Sources      []string `json:"sources"`
	Destinations []string `json:"destinations"`
	Airlines     []string `json:"airlines"`
	InfoTags     []string `json:"additional_info"`
	MinStops     int      `json:"min_stops"`
	MaxStops     int      `json:"max_stops"`
}
