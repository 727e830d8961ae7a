package entity

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidLabelMap is returned when a label table maps to an unknown sentiment
var ErrInvalidLabelMap = errors.New("invalid label map")

// Backend labels understood without configuration
const (
	LabelPositive = "POSITIVE"
	LabelNegative = "NEGATIVE"
	LabelNeutral  = "NEUTRAL"
)

// LabelMap translates backend labels into the target vocabulary.
// Keys are stored uppercased; lookups of unknown labels yield nötr.
type LabelMap struct {
	entries map[string]Sentiment
}

// DefaultLabelMap returns the POSITIVE/NEGATIVE/NEUTRAL table
func DefaultLabelMap() *LabelMap {
	return &LabelMap{
		entries: map[string]Sentiment{
			LabelPositive: SentimentPositive,
			LabelNegative: SentimentNegative,
			LabelNeutral:  SentimentNeutral,
		},
	}
}

// NewLabelMap builds a table from the defaults plus the given overrides.
// Every value must be a member of the target vocabulary.
func NewLabelMap(overrides map[string]string) (*LabelMap, error) {
	m := DefaultLabelMap()
	for label, value := range overrides {
		sentiment := Sentiment(strings.ToLower(strings.TrimSpace(value)))
		if !sentiment.IsValid() {
			return nil, fmt.Errorf("%w: %q maps to %q", ErrInvalidLabelMap, label, value)
		}
		key := strings.ToUpper(strings.TrimSpace(label))
		if key == "" {
			return nil, fmt.Errorf("%w: empty label", ErrInvalidLabelMap)
		}
		m.entries[key] = sentiment
	}
	return m, nil
}

// Translate maps a backend label, case-insensitively, to a sentiment
func (m *LabelMap) Translate(label string) Sentiment {
	if s, ok := m.entries[strings.ToUpper(label)]; ok {
		return s
	}
	return SentimentNeutral
}

// Len returns the number of known labels
func (m *LabelMap) Len() int {
	return len(m.entries)
}
