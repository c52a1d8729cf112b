package ports

import "context"

// Contract for a trained regression model that scores feature rows.
type PriceModel interface {
	// Return one prediction per input row, in input order.
	Predict(ctx context.Context, rows [][]float64) ([]float64, error)
	// Human-readable model identifier, reported alongside predictions.
	Name() string
}
