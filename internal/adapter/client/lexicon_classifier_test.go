package client

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ressKim-io/duygu-analizi/internal/domain/entity"
)

func loadedLexicon(t *testing.T) *LexiconClassifier {
	t.Helper()
	c := NewLexiconClassifier("")
	require.NoError(t, c.Load(context.Background()))
	return c
}

func TestLexiconClassifier_Classify(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		expectedLabel string
		expectedScore float64
	}{
		{name: "positive", text: "Bugün harika bir gün!", expectedLabel: entity.LabelPositive, expectedScore: 0.75},
		{name: "negative", text: "Çok üzgünüm ve mutsuzum.", expectedLabel: entity.LabelNegative, expectedScore: 0.75},
		{name: "neutral", text: "Merhaba, nasılsın?", expectedLabel: entity.LabelNeutral, expectedScore: 0.5},
		{name: "tie is neutral", text: "güzel ama sıkıcı", expectedLabel: entity.LabelNeutral, expectedScore: 0.5},
		{name: "turkish uppercase", text: "İYİ BİR FİLM", expectedLabel: entity.LabelPositive, expectedScore: 0.75},
		{name: "dotless uppercase", text: "SIKICI", expectedLabel: entity.LabelNegative, expectedScore: 0.75},
	}

	c := loadedLexicon(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			predictions, err := c.Classify(context.Background(), tt.text)

			require.NoError(t, err)
			require.NotEmpty(t, predictions)
			assert.Equal(t, tt.expectedLabel, predictions[0].Label)
			assert.Equal(t, tt.expectedScore, predictions[0].Score)
		})
	}
}

func TestLexiconClassifier_Load(t *testing.T) {
	t.Run("classify before load fails", func(t *testing.T) {
		_, err := NewLexiconClassifier("").Classify(context.Background(), "harika")

		assert.Error(t, err)
	})

	t.Run("custom lexicon file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "lexicon.yaml")
		require.NoError(t, os.WriteFile(path, []byte("positive: [Şahane]\nnegative: [fena]\n"), 0o600))

		c := NewLexiconClassifier(path)
		require.NoError(t, c.Load(context.Background()))

		predictions, err := c.Classify(context.Background(), "şahane bir akşam")
		require.NoError(t, err)
		assert.Equal(t, entity.LabelPositive, predictions[0].Label)

		predictions, err = c.Classify(context.Background(), "harika")
		require.NoError(t, err)
		assert.Equal(t, entity.LabelNeutral, predictions[0].Label)
	})

	t.Run("missing file fails", func(t *testing.T) {
		c := NewLexiconClassifier(filepath.Join(t.TempDir(), "missing.yaml"))

		assert.Error(t, c.Load(context.Background()))
	})

	t.Run("model identifier", func(t *testing.T) {
		assert.Equal(t, LexiconModel, NewLexiconClassifier("").Model())
	})
}

func TestParseLexicon(t *testing.T) {
	t.Run("deduplicates and lowercases", func(t *testing.T) {
		lex, err := ParseLexicon([]byte("positive: [İyi, iyi, ' ']\nnegative: [berbat, berbat]\n"))

		require.NoError(t, err)
		assert.Equal(t, []string{"iyi"}, lex.Positive)
		assert.Equal(t, []string{"berbat"}, lex.Negative)
	})

	t.Run("rejects empty lexicon", func(t *testing.T) {
		_, err := ParseLexicon([]byte("positive: []\n"))

		assert.Error(t, err)
	})

	t.Run("rejects invalid yaml", func(t *testing.T) {
		_, err := ParseLexicon([]byte("positive: [unclosed"))

		assert.Error(t, err)
	})

	t.Run("built-in lexicon parses", func(t *testing.T) {
		lex, err := ParseLexicon(defaultLexicon)

		require.NoError(t, err)
		assert.Len(t, lex.Positive, 15)
		assert.Len(t, lex.Negative, 14)
	})
}
