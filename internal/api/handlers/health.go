package handlers

import (
	"flight-price-service/internal/ports"
	"net/http"
)

// HealthHandler reports liveness and which model is serving predictions.
type HealthHandler struct {
	Model ports.PriceModel
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	res := map[string]string{"status": "ok"}
	if h.Model != nil {
		res["model"] = h.Model.Name()
	}
	writeJSON(w, r, http.StatusOK, res)
}
