package client

import (
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/ressKim-io/duygu-analizi/internal/domain/service"
	"github.com/ressKim-io/duygu-analizi/internal/infrastructure/cache"
	"github.com/ressKim-io/duygu-analizi/internal/infrastructure/config"
	"github.com/ressKim-io/duygu-analizi/internal/infrastructure/metrics"
)

// NewClassifier builds the backend selected by configuration. When a
// Redis client is given the backend is wrapped with a prediction cache.
func NewClassifier(cfg *config.Config, redisClient *redis.Client, log *zap.Logger, m *metrics.Metrics) (service.Classifier, error) {
	var classifier service.Classifier

	switch cfg.Backend.Provider {
	case config.ProviderHuggingFace:
		hf := NewHFClient(cfg.Backend.BaseURL, cfg.Backend.Token, cfg.Backend.Timeout)
		classifier = NewHFClassifier(hf, cfg.Backend.Model)
	case config.ProviderLexicon:
		classifier = NewLexiconClassifier(cfg.Backend.LexiconFile)
	default:
		return nil, fmt.Errorf("unknown backend provider %q", cfg.Backend.Provider)
	}

	if redisClient != nil {
		store := cache.NewPredictionCache(redisClient, cfg.Redis.TTL)
		classifier = NewCachedClassifier(classifier, store, log, m)
	}

	return classifier, nil
}
