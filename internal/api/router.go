package api

import (
	"flight-price-service/internal/api/handlers"
	"flight-price-service/internal/domain"
	"flight-price-service/internal/services"
	"net/http"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(predictor *services.PricePredictor, historyLimit int) http.Handler {
	mux := http.NewServeMux()

	table := predictor.Table
	if table == nil {
		table = domain.DefaultMinTravelTimes
	}

	predictionHandler := &handlers.PredictionHandler{
		Predictor:    predictor,
		HistoryLimit: historyLimit,
	}
	routeHandler := &handlers.RouteHandler{Table: table}
	healthHandler := &handlers.HealthHandler{Model: predictor.Model}

	mux.HandleFunc("/health", healthHandler.Health)
	mux.HandleFunc("/options", handlers.Options)
	mux.HandleFunc("/routes", routeHandler.List)
	mux.HandleFunc("/predictions", predictionHandler.Predictions)

	// request id must be outermost so the logger can see it
	return requestIDMiddleware(loggingMiddleware(recoverMiddleware(mux)))
}
