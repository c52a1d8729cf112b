package ports

import (
	"context"
	"flight-price-service/internal/domain"
)

// Port: an append-only log of completed predictions.
type PredictionStore interface {
	// Record a completed prediction.
	SavePrediction(ctx context.Context, p *domain.Prediction) error
	// Return up to limit predictions, newest first.
	ListRecent(ctx context.Context, limit int) ([]*domain.Prediction, error)
}
