package client

import (
	"context"
	"fmt"

	"github.com/ressKim-io/duygu-analizi/internal/domain/service"
)

// warmupText is sent once by Load so the model is resident before serving
const warmupText = "Merhaba"

// HFClassifier adapts HFClient to the Classifier interface for one model
type HFClassifier struct {
	client *HFClient
	model  string
}

// NewHFClassifier creates a classifier bound to model
func NewHFClassifier(client *HFClient, model string) *HFClassifier {
	return &HFClassifier{client: client, model: model}
}

// Load runs a warm-up classification and fails if the model is unusable
func (c *HFClassifier) Load(ctx context.Context) error {
	candidates, err := c.client.Classify(ctx, c.model, warmupText)
	if err != nil {
		return fmt.Errorf("failed to load model %s: %w", c.model, err)
	}
	if len(candidates) == 0 {
		return fmt.Errorf("failed to load model %s: %w", c.model, service.ErrEmptyPrediction)
	}
	return nil
}

// Classify classifies a single text
func (c *HFClassifier) Classify(ctx context.Context, text string) ([]service.Prediction, error) {
	candidates, err := c.client.Classify(ctx, c.model, text)
	if err != nil {
		return nil, err
	}

	predictions := make([]service.Prediction, len(candidates))
	for i, cand := range candidates {
		predictions[i] = service.Prediction{
			Label: cand.Label,
			Score: cand.Score,
		}
	}

	return predictions, nil
}

// Model returns the bound model identifier
func (c *HFClassifier) Model() string {
	return c.model
}
