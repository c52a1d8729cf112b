package ports

import (
	"context"
	"flight-price-service/internal/domain"
)

// Optional lookaside cache of model outputs keyed by feature vector.
type PredictionCache interface {
	// Return the cached price and true on a hit.
	GetPrice(ctx context.Context, features domain.FeatureVector) (float64, bool, error)
	PutPrice(ctx context.Context, features domain.FeatureVector, price float64) error
}
