package client

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/ressKim-io/duygu-analizi/internal/domain/entity"
	"github.com/ressKim-io/duygu-analizi/internal/domain/service"
)

// LexiconModel is the model identifier reported by the keyword backend
const LexiconModel = "lexicon/turkish-keywords"

// Scores reported by the keyword backend
const (
	lexiconMatchScore   = 0.75
	lexiconNeutralScore = 0.5
)

//go:embed lexicon.yaml
var defaultLexicon []byte

// Lexicon holds the keyword lists of the keyword backend
type Lexicon struct {
	Positive []string `yaml:"positive"`
	Negative []string `yaml:"negative"`
}

// ParseLexicon decodes a YAML lexicon and normalizes its keywords
func ParseLexicon(data []byte) (*Lexicon, error) {
	var lex Lexicon
	if err := yaml.Unmarshal(data, &lex); err != nil {
		return nil, fmt.Errorf("failed to parse lexicon: %w", err)
	}
	if len(lex.Positive) == 0 && len(lex.Negative) == 0 {
		return nil, errors.New("lexicon has no keywords")
	}

	lex.Positive = normalizeKeywords(lex.Positive)
	lex.Negative = normalizeKeywords(lex.Negative)
	return &lex, nil
}

// LexiconClassifier scores text by counting Turkish sentiment keywords.
// It needs no network and serves as an offline backend.
type LexiconClassifier struct {
	path    string
	lexicon *Lexicon
}

// NewLexiconClassifier creates a keyword backend. An empty path selects
// the built-in word lists.
func NewLexiconClassifier(path string) *LexiconClassifier {
	return &LexiconClassifier{path: path}
}

// Load reads the word lists
func (c *LexiconClassifier) Load(_ context.Context) error {
	data := defaultLexicon
	if c.path != "" {
		raw, err := os.ReadFile(c.path)
		if err != nil {
			return fmt.Errorf("failed to read lexicon file: %w", err)
		}
		data = raw
	}

	lex, err := ParseLexicon(data)
	if err != nil {
		return err
	}
	c.lexicon = lex
	return nil
}

// Classify counts keyword hits; the side with more hits wins
func (c *LexiconClassifier) Classify(_ context.Context, text string) ([]service.Prediction, error) {
	if c.lexicon == nil {
		return nil, errors.New("lexicon not loaded")
	}

	lower := turkishLower(text)
	positive := countMatches(lower, c.lexicon.Positive)
	negative := countMatches(lower, c.lexicon.Negative)

	switch {
	case positive > negative:
		return []service.Prediction{
			{Label: entity.LabelPositive, Score: lexiconMatchScore},
			{Label: entity.LabelNegative, Score: 1 - lexiconMatchScore},
		}, nil
	case negative > positive:
		return []service.Prediction{
			{Label: entity.LabelNegative, Score: lexiconMatchScore},
			{Label: entity.LabelPositive, Score: 1 - lexiconMatchScore},
		}, nil
	default:
		return []service.Prediction{
			{Label: entity.LabelNeutral, Score: lexiconNeutralScore},
		}, nil
	}
}

// Model returns the keyword backend identifier
func (c *LexiconClassifier) Model() string {
	return LexiconModel
}

func countMatches(text string, keywords []string) int {
	n := 0
	for _, k := range keywords {
		if strings.Contains(text, k) {
			n++
		}
	}
	return n
}

func normalizeKeywords(keywords []string) []string {
	seen := make(map[string]bool, len(keywords))
	out := make([]string, 0, len(keywords))
	for _, k := range keywords {
		k = turkishLower(strings.TrimSpace(k))
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}

// turkishLower applies Turkish casing rules (I → ı, İ → i)
func turkishLower(s string) string {
	return cases.Lower(language.Turkish).String(s)
}
