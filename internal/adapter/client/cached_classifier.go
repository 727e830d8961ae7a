package client

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/ressKim-io/duygu-analizi/internal/domain/service"
	"github.com/ressKim-io/duygu-analizi/internal/infrastructure/cache"
	"github.com/ressKim-io/duygu-analizi/internal/infrastructure/logger"
	"github.com/ressKim-io/duygu-analizi/internal/infrastructure/metrics"
)

// PredictionStore is the cache used by CachedClassifier
type PredictionStore interface {
	Get(ctx context.Context, model, text string) ([]service.Prediction, error)
	Set(ctx context.Context, model, text string, predictions []service.Prediction) error
}

// CachedClassifier memoizes successful predictions of another classifier.
// Cache failures are logged and never fail a classification.
type CachedClassifier struct {
	next    service.Classifier
	store   PredictionStore
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// NewCachedClassifier wraps next with a prediction cache
func NewCachedClassifier(next service.Classifier, store PredictionStore, log *zap.Logger, m *metrics.Metrics) *CachedClassifier {
	return &CachedClassifier{
		next:    next,
		store:   store,
		logger:  log,
		metrics: m,
	}
}

// Load loads the wrapped classifier
func (c *CachedClassifier) Load(ctx context.Context) error {
	return c.next.Load(ctx)
}

// Classify returns cached predictions when present, otherwise classifies
// and stores the result
func (c *CachedClassifier) Classify(ctx context.Context, text string) ([]service.Prediction, error) {
	model := c.next.Model()
	log := logger.FromContext(ctx, c.logger)

	predictions, err := c.store.Get(ctx, model, text)
	switch {
	case err == nil && len(predictions) > 0:
		c.metrics.ObserveCache("hit")
		return predictions, nil
	case err == nil, errors.Is(err, cache.ErrCacheMiss):
		c.metrics.ObserveCache("miss")
	default:
		c.metrics.ObserveCache("error")
		log.Warn("Prediction cache read failed", zap.Error(err))
	}

	predictions, err = c.next.Classify(ctx, text)
	if err != nil {
		return nil, err
	}

	if len(predictions) > 0 {
		if err := c.store.Set(ctx, model, text, predictions); err != nil {
			log.Warn("Prediction cache write failed", zap.Error(err))
		}
	}

	return predictions, nil
}

// Model returns the wrapped model identifier
func (c *CachedClassifier) Model() string {
	return c.next.Model()
}
