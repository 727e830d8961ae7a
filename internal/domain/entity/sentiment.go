package entity

import "strconv"

// Sentiment represents a label in the target vocabulary
type Sentiment string

const (
	SentimentPositive Sentiment = "pozitif"
	SentimentNegative Sentiment = "negatif"
	SentimentNeutral  Sentiment = "nötr"
)

// Scores used by the fixed outcomes
const (
	EmptyInputScore = 0.0
	DegradedScore   = 0.5
)

// IsValid reports whether s belongs to the target vocabulary
func (s Sentiment) IsValid() bool {
	switch s {
	case SentimentPositive, SentimentNegative, SentimentNeutral:
		return true
	}
	return false
}

// Result is the normalized outcome of a single analysis.
//
// Confidence is nil for empty input, so the key is omitted from the JSON
// form in that case only. Error is set only when the backend failed.
type Result struct {
	Sentiment  Sentiment `json:"sentiment"`
	Score      float64   `json:"score"`
	Confidence *float64  `json:"confidence,omitempty"`
	Error      string    `json:"error,omitempty"`
}

// NewEmptyInputResult returns the result for empty or whitespace-only text
func NewEmptyInputResult() *Result {
	return &Result{
		Sentiment: SentimentNeutral,
		Score:     EmptyInputScore,
	}
}

// NewResult returns a successful result with confidence equal to score
func NewResult(sentiment Sentiment, score float64) *Result {
	score = RoundScore(score)
	confidence := score
	return &Result{
		Sentiment:  sentiment,
		Score:      score,
		Confidence: &confidence,
	}
}

// NewDegradedResult returns the neutral result used when the backend fails
func NewDegradedResult(reason string) *Result {
	confidence := DegradedScore
	return &Result{
		Sentiment:  SentimentNeutral,
		Score:      DegradedScore,
		Confidence: &confidence,
		Error:      reason,
	}
}

// HasConfidence reports whether the confidence field is present
func (r *Result) HasConfidence() bool {
	return r.Confidence != nil
}

// IsDegraded reports whether the result carries a backend diagnostic
func (r *Result) IsDegraded() bool {
	return r.Error != ""
}

// RoundScore rounds a score to two decimal places. The exact binary value
// is rounded and exact ties go to the even digit, so 0.125 becomes 0.12.
func RoundScore(score float64) float64 {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(score, 'f', 2, 64), 64)
	if err != nil {
		return score
	}
	return rounded
}
