package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ressKim-io/duygu-analizi/internal/domain/service"
)

func TestHFClassifier_Classify(t *testing.T) {
	t.Run("maps candidates to predictions best first", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`[[{"label":"negative","score":0.1},{"label":"positive","score":0.9}]]`))
		}))
		defer server.Close()

		classifier := NewHFClassifier(NewHFClient(server.URL, "", 5*time.Second), testModel)

		predictions, err := classifier.Classify(context.Background(), "Bugün harika bir gün!")

		require.NoError(t, err)
		assert.Equal(t, []service.Prediction{
			{Label: "positive", Score: 0.9},
			{Label: "negative", Score: 0.1},
		}, predictions)
		assert.Equal(t, testModel, classifier.Model())
	})

	t.Run("server error returns error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		classifier := NewHFClassifier(NewHFClient(server.URL, "", 5*time.Second), testModel)

		predictions, err := classifier.Classify(context.Background(), "text")

		assert.Error(t, err)
		assert.Nil(t, predictions)
	})
}

func TestHFClassifier_Load(t *testing.T) {
	t.Run("warm-up succeeds", func(t *testing.T) {
		calls := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls++
			_, _ = w.Write([]byte(`[[{"label":"positive","score":0.6}]]`))
		}))
		defer server.Close()

		classifier := NewHFClassifier(NewHFClient(server.URL, "", 5*time.Second), testModel)

		assert.NoError(t, classifier.Load(context.Background()))
		assert.Equal(t, 1, calls)
	})

	t.Run("unknown model fails", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"Model not found"}`))
		}))
		defer server.Close()

		classifier := NewHFClassifier(NewHFClient(server.URL, "", 5*time.Second), "missing/model")

		err := classifier.Load(context.Background())

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "missing/model")
		assert.Contains(t, err.Error(), "Model not found")
	})

	t.Run("empty warm-up response fails", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`[]`))
		}))
		defer server.Close()

		classifier := NewHFClassifier(NewHFClient(server.URL, "", 5*time.Second), testModel)

		assert.ErrorIs(t, classifier.Load(context.Background()), service.ErrEmptyPrediction)
	})
}
