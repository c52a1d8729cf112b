package repositories

import (
	"context"
	"database/sql"
	"errors"
	"flight-price-service/internal/domain"
	"flight-price-service/internal/platform/obs"
	"fmt"
)

// SQLPredictionRepository is a Postgres-backed PredictionStore.
type SQLPredictionRepository struct {
	DB *sql.DB
}

func NewSQLPredictionRepository(db *sql.DB) *SQLPredictionRepository {
	return &SQLPredictionRepository{DB: db}
}

// Insert one completed prediction.
func (s *SQLPredictionRepository) SavePrediction(ctx context.Context, p *domain.Prediction) (err error) {
	defer obs.Time(ctx, "prediction.store.Save")(&err)

	if s.DB == nil {
		return errors.New("prediction repository: db is nil")
	}

	args, err := predictionArgs(p)
	if err != nil {
		return fmt.Errorf("save prediction: %w", err)
	}

	q := `
	INSERT INTO predictions (
		request_id, journey_date, departure_time, arrival_time, source, destination,
		total_stops, airline, additional_info, duration_hours, price, model, created_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	if _, err := s.DB.ExecContext(ctx, q, args...); err != nil {
		return fmt.Errorf("save prediction: insert request_id=%s: %w", p.RequestID, err)
	}

	return nil
}

// Return the newest predictions first.
func (s *SQLPredictionRepository) ListRecent(ctx context.Context, limit int) (_ []*domain.Prediction, err error) {
	defer obs.Time(ctx, "prediction.store.ListRecent")(&err)

	if s.DB == nil {
		return nil, errors.New("prediction repository: db is nil")
	}
	if limit <= 0 {
		return []*domain.Prediction{}, nil
	}

	q := `SELECT` + selectPredictionColumns + `
	FROM predictions
	ORDER BY created_at DESC, id DESC
	LIMIT $1;
	`
	rows, err := s.DB.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("list predictions: query predictions table: %w", err)
	}
	defer rows.Close()

	preds, err := scanPredictions(rows)
	if err != nil {
		return nil, fmt.Errorf("list predictions: %w", err)
	}
	return preds, nil
}
