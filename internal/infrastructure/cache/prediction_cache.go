package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ressKim-io/duygu-analizi/internal/domain/service"
)

const keyPrefix = "sentiment:v1"

// ErrCacheMiss is returned when no predictions are cached for a text
var ErrCacheMiss = errors.New("cache miss")

// PredictionCache stores backend predictions keyed by model and text
type PredictionCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPredictionCache creates a cache on top of an existing client
func NewPredictionCache(client *redis.Client, ttl time.Duration) *PredictionCache {
	return &PredictionCache{client: client, ttl: ttl}
}

// Key returns the Redis key for a model/text pair
func Key(model, text string) string {
	sum := sha256.Sum256([]byte(text))
	return fmt.Sprintf("%s:%s:%s", keyPrefix, model, hex.EncodeToString(sum[:]))
}

// Get returns cached predictions or ErrCacheMiss
func (c *PredictionCache) Get(ctx context.Context, model, text string) ([]service.Prediction, error) {
	raw, err := c.client.Get(ctx, Key(model, text)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to read cache: %w", err)
	}

	var predictions []service.Prediction
	if err := json.Unmarshal(raw, &predictions); err != nil {
		return nil, fmt.Errorf("failed to decode cached predictions: %w", err)
	}
	return predictions, nil
}

// Set stores predictions with the configured TTL
func (c *PredictionCache) Set(ctx context.Context, model, text string, predictions []service.Prediction) error {
	raw, err := json.Marshal(predictions)
	if err != nil {
		return fmt.Errorf("failed to encode predictions: %w", err)
	}
	if err := c.client.Set(ctx, Key(model, text), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write cache: %w", err)
	}
	return nil
}
