package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"go.uber.org/zap"

	"github.com/ressKim-io/duygu-analizi/internal/domain/entity"
	"github.com/ressKim-io/duygu-analizi/internal/domain/service"
	"github.com/ressKim-io/duygu-analizi/internal/infrastructure/logger"
	"github.com/ressKim-io/duygu-analizi/internal/infrastructure/metrics"
)

// errUnknownBackend replaces backend errors that carry no message
var errUnknownBackend = errors.New("unknown backend error")

// SentimentUsecase defines the normalization layer around the backend
type SentimentUsecase interface {
	// Analyze never fails: backend errors become a degraded result
	Analyze(ctx context.Context, text string) *entity.Result

	// Model returns the backend model identifier
	Model() string
}

type sentimentUsecase struct {
	classifier service.Classifier
	labels     *entity.LabelMap
	logger     *zap.Logger
	metrics    *metrics.Metrics
}

// NewSentimentUsecase creates a new sentiment usecase. The classifier must
// already be loaded.
func NewSentimentUsecase(classifier service.Classifier, labels *entity.LabelMap, log *zap.Logger, m *metrics.Metrics) SentimentUsecase {
	if labels == nil {
		labels = entity.DefaultLabelMap()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &sentimentUsecase{
		classifier: classifier,
		labels:     labels,
		logger:     log,
		metrics:    m,
	}
}

func (u *sentimentUsecase) Analyze(ctx context.Context, text string) *entity.Result {
	if isBlank(text) {
		result := entity.NewEmptyInputResult()
		u.metrics.ObserveAnalysis(metrics.OutcomeEmpty, string(result.Sentiment))
		return result
	}

	log := logger.FromContext(ctx, u.logger)

	start := time.Now()
	outcome := u.invoke(ctx, text)
	u.metrics.ObserveBackend(u.classifier.Model(), time.Since(start), outcome.Failed())

	if outcome.Failed() {
		log.Warn("Sentiment backend failed",
			zap.String("model", u.classifier.Model()),
			zap.Error(outcome.Err),
		)
		result := entity.NewDegradedResult(diagnostic(outcome.Err))
		u.metrics.ObserveAnalysis(metrics.OutcomeDegraded, string(result.Sentiment))
		return result
	}

	label := strings.ToUpper(outcome.Top.Label)
	result := entity.NewResult(u.labels.Translate(label), outcome.Top.Score)

	log.Debug("Sentiment analyzed",
		zap.String("label", label),
		zap.String("sentiment", string(result.Sentiment)),
		zap.Float64("score", result.Score),
		zap.Duration("latency", time.Since(start)),
	)
	u.metrics.ObserveAnalysis(metrics.OutcomeSuccess, string(result.Sentiment))

	return result
}

func (u *sentimentUsecase) Model() string {
	return u.classifier.Model()
}

// invoke turns a panicking backend into a failed outcome
func (u *sentimentUsecase) invoke(ctx context.Context, text string) (outcome service.Outcome) {
	defer func() {
		if r := recover(); r != nil {
			outcome = service.Outcome{Err: fmt.Errorf("backend panic: %v", r)}
		}
	}()
	return service.Invoke(ctx, u.classifier, text)
}

// isBlank treats the ASCII information separators (U+001C..U+001F) as
// whitespace in addition to unicode.IsSpace
func isBlank(text string) bool {
	return strings.TrimFunc(text, func(r rune) bool {
		return unicode.IsSpace(r) || (r >= '\x1c' && r <= '\x1f')
	}) == ""
}

func diagnostic(err error) string {
	if msg := err.Error(); msg != "" {
		return msg
	}
	return errUnknownBackend.Error()
}
