package handlers

import (
	"flight-price-service/internal/api/dto"
	"flight-price-service/internal/domain"
	"net/http"
)

// RouteHandler exposes the minimum travel-time table.
type RouteHandler struct {
	Table *domain.MinTravelTimeTable
}

// List returns the table as JSON, or as CSV with ?format=csv.
func (h *RouteHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	routes := RouteTimes(h.Table)

	switch r.URL.Query().Get("format") {
	case "", "json":
		writeJSON(w, r, http.StatusOK, dto.ListRoutesResponse{Routes: routes})
	case "csv":
		writeCSV(w, r, "travel_times.csv", routes)
	default:
		writeError(w, r, http.StatusBadRequest, "format must be json or csv")
	}
}

// RouteTimes lists table entries in their defined order.
func RouteTimes(table *domain.MinTravelTimeTable) []dto.RouteTimeResponse {
	if table == nil {
		table = domain.DefaultMinTravelTimes
	}

	entries := table.Entries()
	out := make([]dto.RouteTimeResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.RouteTimeResponse{
			Route:           e.Route.String(),
			Source:          e.Route.Source,
			Destination:     e.Route.Destination,
			MinHours:        e.MinHours,
			ApproximateTime: domain.FormatHours(e.MinHours) + " hours",
		})
	}
	return out
}
