package dto

// csv tags drive the CSV rendering of the travel-time table.
type RouteTimeResponse struct {
	Route           string  `json:"route" csv:"Route"`
	Source          string  `json:"source" csv:"Source"`
	Destination     string  `json:"destination" csv:"Destination"`
	MinHours        float64 `json:"min_hours" csv:"-"`
	ApproximateTime string  `json:"approximate_time" csv:"Approximate Time"`
}

type ListRoutesResponse struct {
	Routes []RouteTimeResponse `json:"routes"`
}
