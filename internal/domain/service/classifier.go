package service

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// Errors describing unexpected backend responses
var (
	ErrEmptyPrediction = errors.New("backend returned no predictions")
	ErrScoreOutOfRange = errors.New("backend score out of range")
)

// Prediction is a single ranked candidate returned by a backend
type Prediction struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Classifier defines the contract of a sentiment backend
type Classifier interface {
	// Load performs the one-time initialization of the model.
	// It must succeed before Classify is called.
	Load(ctx context.Context) error

	// Classify returns ranked candidates for a single text, best first
	Classify(ctx context.Context, text string) ([]Prediction, error)

	// Model returns the identifier of the model bound at startup
	Model() string
}

// Outcome is the result of one backend invocation: either a top
// prediction or a failure carrying its cause.
type Outcome struct {
	Top Prediction
	Err error
}

// Failed reports whether the invocation failed
func (o Outcome) Failed() bool {
	return o.Err != nil
}

// Invoke calls the classifier and folds the response into an Outcome.
// Only the first candidate is kept.
func Invoke(ctx context.Context, c Classifier, text string) Outcome {
	predictions, err := c.Classify(ctx, text)
	if err != nil {
		return Outcome{Err: err}
	}
	if len(predictions) == 0 {
		return Outcome{Err: ErrEmptyPrediction}
	}

	top := predictions[0]
	if math.IsNaN(top.Score) || top.Score < 0 || top.Score > 1 {
		return Outcome{Err: fmt.Errorf("%w: %v", ErrScoreOutOfRange, top.Score)}
	}

	return Outcome{Top: top}
}
