package cache

import (
	"context"
	"encoding/binary"
	"errors"
	"flight-price-service/internal/domain"
	"flight-price-service/internal/platform/obs"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/redis/go-redis/v9"
)

// RedisPredictionCache stores model outputs keyed by a hash of the
// feature vector. Keys are namespaced by model name so a new artifact
// never serves prices computed by an old one.
type RedisPredictionCache struct {
	Client *redis.Client
	Model  string
	TTL    time.Duration
}

func NewRedisPredictionCache(client *redis.Client, model string, ttl time.Duration) *RedisPredictionCache {
	return &RedisPredictionCache{Client: client, Model: model, TTL: ttl}
}

func (c *RedisPredictionCache) key(features domain.FeatureVector) string {
	var buf [8]byte
	d := xxhash.New()
	for _, f := range features {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
		_, _ = d.Write(buf[:])
	}
	return fmt.Sprintf("price:%s:%016x", c.Model, d.Sum64())
}

// Fetch a cached price for the given features.
func (c *RedisPredictionCache) GetPrice(ctx context.Context, features domain.FeatureVector) (_ float64, _ bool, err error) {
	defer obs.Time(ctx, "prediction.cache.Get")(&err)

	if c.Client == nil {
		return 0, false, errors.New("prediction cache: client is nil")
	}

	v, err := c.Client.Get(ctx, c.key(features)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("get prediction cache: %w", err)
	}

	price, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false, fmt.Errorf("get prediction cache: parse %q: %w", v, err)
	}
	return price, true, nil
}

// Store a price for the given features.
func (c *RedisPredictionCache) PutPrice(ctx context.Context, features domain.FeatureVector, price float64) error {
	if c.Client == nil {
		return errors.New("prediction cache: client is nil")
	}

	v := strconv.FormatFloat(price, 'g', -1, 64)
	if err := c.Client.Set(ctx, c.key(features), v, c.TTL).Err(); err != nil {
		return fmt.Errorf("put prediction cache: %w", err)
	}
	return nil
}
