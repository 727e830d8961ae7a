package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testModel = "savasy/bert-base-turkish-sentiment-cased"

func TestHFClient_Classify(t *testing.T) {
	t.Run("successful classification with nested response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/models/"+testModel, r.URL.Path)
			assert.Equal(t, "POST", r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.Equal(t, "Bearer hf_test", r.Header.Get("Authorization"))

			var req InferenceRequest
			err := json.NewDecoder(r.Body).Decode(&req)
			require.NoError(t, err)
			assert.Equal(t, "Bugün harika bir gün!", req.Inputs)
			require.NotNil(t, req.Options)
			assert.True(t, req.Options.WaitForModel)

			w.Header().Set("Content-Type", "application/json")
			_, err = w.Write([]byte(`[[{"label":"negative","score":0.0269},{"label":"positive","score":0.9731}]]`))
			require.NoError(t, err)
		}))
		defer server.Close()

		client := NewHFClient(server.URL+"/", "hf_test", 5*time.Second)
		result, err := client.Classify(context.Background(), testModel, "Bugün harika bir gün!")

		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, "positive", result[0].Label)
		assert.Equal(t, 0.9731, result[0].Score)
		assert.Equal(t, "negative", result[1].Label)
	})

	t.Run("accepts flat response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.Header.Get("Authorization"))
			_, _ = w.Write([]byte(`[{"label":"NEGATIVE","score":0.88}]`))
		}))
		defer server.Close()

		client := NewHFClient(server.URL, "", 5*time.Second)
		result, err := client.Classify(context.Background(), testModel, "Çok üzgünüm")

		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "NEGATIVE", result[0].Label)
	})

	t.Run("server error with API error body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"error":"Model is currently loading","estimated_time":20.0}`))
		}))
		defer server.Close()

		client := NewHFClient(server.URL, "", 5*time.Second)
		_, err := client.Classify(context.Background(), testModel, "test")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "503")
		assert.Contains(t, err.Error(), "Model is currently loading")
	})

	t.Run("server error with plain body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte("internal error"))
		}))
		defer server.Close()

		client := NewHFClient(server.URL, "", 5*time.Second)
		_, err := client.Classify(context.Background(), testModel, "test")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "500")
		assert.Contains(t, err.Error(), "internal error")
	})

	t.Run("malformed response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"unexpected":true}`))
		}))
		defer server.Close()

		client := NewHFClient(server.URL, "", 5*time.Second)
		_, err := client.Classify(context.Background(), testModel, "test")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode response")
	})

	t.Run("timeout", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			time.Sleep(200 * time.Millisecond)
			_, _ = w.Write([]byte(`[]`))
		}))
		defer server.Close()

		client := NewHFClient(server.URL, "", 50*time.Millisecond)
		_, err := client.Classify(context.Background(), testModel, "test")

		assert.Error(t, err)
	})

	t.Run("oversized response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"label":"POSITIVE","score":0.9,"pad":"`))
			_, _ = w.Write(bytes.Repeat([]byte("x"), MaxResponseBytes))
			_, _ = w.Write([]byte(`"}]`))
		}))
		defer server.Close()

		client := NewHFClient(server.URL, "", 5*time.Second)
		_, err := client.Classify(context.Background(), testModel, "test")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "exceeds")
	})

	t.Run("connection error", func(t *testing.T) {
		client := NewHFClient("http://localhost:99999", "", 1*time.Second)
		_, err := client.Classify(context.Background(), testModel, "test")

		assert.Error(t, err)
	})
}

func TestDecodeCandidates(t *testing.T) {
	t.Run("empty nested list", func(t *testing.T) {
		result, err := decodeCandidates([]byte(`[]`))

		require.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("not a list", func(t *testing.T) {
		_, err := decodeCandidates([]byte(`"oops"`))

		assert.Error(t, err)
	})
}
