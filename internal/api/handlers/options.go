package handlers

import (
	"flight-price-service/internal/api/dto"
	"flight-price-service/internal/domain"
	"net/http"
)

// Options lists the accepted values for each categorical trip field.
func Options(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	res := dto.OptionsResponse{MinStops: 0, MaxStops: domain.MaxStops}
	for _, c := range domain.SourceCities {
		res.Sources = append(res.Sources, string(c))
	}
	for _, c := range domain.DestinationCities {
		res.Destinations = append(res.Destinations, string(c))
	}
	for _, a := range domain.Airlines {
		res.Airlines = append(res.Airlines, string(a))
	}
	for _, t := range domain.InfoTags {
		res.InfoTags = append(res.InfoTags, string(t))
	}

	writeJSON(w, r, http.StatusOK, res)
}
