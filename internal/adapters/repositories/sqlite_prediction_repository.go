package repositories

import (
	"context"
	"database/sql"
	"errors"
	"flight-price-service/internal/domain"
	"flight-price-service/internal/platform/obs"
	"fmt"
)

// SQLite-backed implementation of the PredictionStore port.
type SqlitePredictionRepository struct{ DB *sql.DB }

func NewSqlitePredictionRepository(db *sql.DB) *SqlitePredictionRepository {
	return &SqlitePredictionRepository{DB: db}
}

// Insert one completed prediction.
func (s *SqlitePredictionRepository) SavePrediction(ctx context.Context, p *domain.Prediction) (err error) {
	defer obs.Time(ctx, "prediction.store.Save")(&err)

	if s.DB == nil {
		return errors.New("sqlite prediction repository: DB is nil")
	}

	args, err := predictionArgs(p)
	if err != nil {
		return fmt.Errorf("save prediction: %w", err)
	}

	query := `
	INSERT INTO predictions (
		request_id, journey_date, departure_time, arrival_time, source, destination,
		total_stops, airline, additional_info, duration_hours, price, model, created_at
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	if _, err := s.DB.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save prediction: insert request_id=%s: %w", p.RequestID, err)
	}

	return nil
}

// Return the newest predictions first.
func (s *SqlitePredictionRepository) ListRecent(ctx context.Context, limit int) (_ []*domain.Prediction, err error) {
	defer obs.Time(ctx, "prediction.store.ListRecent")(&err)

	if s.DB == nil {
		return nil, errors.New("sqlite prediction repository: DB is nil")
	}
	if limit <= 0 {
		return []*domain.Prediction{}, nil
	}

	query := `SELECT` + selectPredictionColumns + `
	FROM predictions
	ORDER BY created_at DESC, id DESC
	LIMIT ?;
	`
	rows, err := s.DB.QueryContext(ctx, query, limit)
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
