package services

import (
	"context"
	"errors"
	"flight-price-service/internal/domain"
	"flight-price-service/internal/platform/obs"
	"flight-price-service/internal/ports"
	"fmt"
	"log"
	"time"
)

var ErrNoStore = errors.New("prediction store not configured")

// PricePredictor turns a submitted trip into a priced Prediction.
//
// Model is required and is shared read-only across requests. Cache and
// Store are optional; their failures are logged and never fail a request.
type PricePredictor struct {
	Model ports.PriceModel
	Table *domain.MinTravelTimeTable
	Cache ports.PredictionCache
	Store ports.PredictionStore
	Now   func() time.Time
}

// Validate timing, encode features and score them with the model.
//
// A trip rejected on timing yields an error matching *domain.TimingError
// and the model is not called.
func (p *PricePredictor) Predict(ctx context.Context, trip domain.TripRequest) (*domain.Prediction, error) {
	if p.Model == nil {
		return nil, errors.New("predict price: model must be non-nil")
	}

	if err := ValidateTiming(trip, p.Table); err != nil {
		return nil, fmt.Errorf("predict price: %w", err)
	}

	features := EncodeFeatures(trip)

	price, cached := p.cachedPrice(ctx, features)
	if !cached {
		var err error
		price, err = p.score(ctx, features)
		if err != nil {
			return nil, fmt.Errorf("predict price: %w", err)
		}
		p.storeCache(ctx, features, price)
	}

	pred := &domain.Prediction{
		RequestID:      obs.RequestID(ctx),
		Trip:           trip,
		Features:       features,
		DurationHours:  trip.DurationHours(),
		Price:          price,
		FormattedPrice: FormatPrice(price),
		Model:          p.Model.Name(),
		Cached:         cached,
		CreatedAt:      p.now(),
	}

	if p.Store != nil {
		if err := p.Store.SavePrediction(ctx, pred); err != nil {
			log.Printf("req_id=%s op=prediction.store.Save err=%v", pred.RequestID, err)
		}
	}

	return pred, nil
}

// Recent predictions from the configured store.
func (p *PricePredictor) Recent(ctx context.Context, limit int) ([]*domain.Prediction, error) {
	if p.Store == nil {
		return nil, ErrNoStore
	}
	preds, err := p.Store.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("recent predictions: %w", err)
	}
	return preds, nil
}

func (p *PricePredictor) score(ctx context.Context, features domain.FeatureVector) (_ float64, err error) {
	defer obs.Time(ctx, "model.Predict")(&err)

	out, err := p.Model.Predict(ctx, [][]float64{features.Slice()})
	if err != nil {
		return 0, fmt.Errorf("model predict: %w", err)
	}
	if len(out) != 1 {
		return 0, fmt.Errorf("model predict: got %d outputs for 1 row", len(out))
	}

	return out[0], nil
}

func (p *PricePredictor) cachedPrice(ctx context.Context, features domain.FeatureVector) (float64, bool) {
	if p.Cache == nil {
		return 0, false
	}
	price, ok, err := p.Cache.GetPrice(ctx, features)
	if err != nil {
		log.Printf("req_id=%s op=prediction.cache.Get err=%v", obs.RequestID(ctx), err)
		return 0, false
	}
	return price, ok
}

func (p *PricePredictor) storeCache(ctx context.Context, features domain.FeatureVector, price float64) {
	if p.Cache == nil {
		return
	}
	if err := p.Cache.PutPrice(ctx, features, price); err != nil {
		log.Printf("req_id=%s op=prediction.cache.Put err=%v", obs.RequestID(ctx), err)
	}
}

func (p *PricePredictor) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}
