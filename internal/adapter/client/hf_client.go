package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"
)

// MaxResponseBytes caps the size of an inference response body
const MaxResponseBytes = 4 << 20

// InferenceRequest represents a request to the Hugging Face Inference API
type InferenceRequest struct {
	Inputs  string            `json:"inputs"`
	Options *InferenceOptions `json:"options,omitempty"`
}

// InferenceOptions controls model loading on the inference side
type InferenceOptions struct {
	WaitForModel bool `json:"wait_for_model"`
	UseCache     bool `json:"use_cache"`
}

// LabelScore is a single candidate in an inference response
type LabelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// InferenceError is the error body returned by the inference API
type InferenceError struct {
	Error         string  `json:"error"`
	EstimatedTime float64 `json:"estimated_time,omitempty"`
}

// HFClient is an HTTP client for the Hugging Face Inference API
type HFClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewHFClient creates a new inference API client
func NewHFClient(baseURL, token string, timeout time.Duration) *HFClient {
	return &HFClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Classify sends a single text to the given model and returns the
// candidates sorted by score, best first.
func (c *HFClient) Classify(ctx context.Context, model, text string) ([]LabelScore, error) {
	reqBody := InferenceRequest{
		Inputs:  text,
		Options: &InferenceOptions{WaitForModel: true, UseCache: true},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.modelURL(model), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if len(respBody) > MaxResponseBytes {
		return nil, fmt.Errorf("inference response exceeds %d bytes", MaxResponseBytes)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr InferenceError
		if err := json.Unmarshal(respBody, &apiErr); err == nil && apiErr.Error != "" {
			return nil, fmt.Errorf("inference API returned status %d: %s", resp.StatusCode, apiErr.Error)
		}
		return nil, fmt.Errorf("inference API returned status %d: %s", resp.StatusCode, string(respBody))
	}

	candidates, err := decodeCandidates(respBody)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	return candidates, nil
}

func (c *HFClient) modelURL(model string) string {
	return c.baseURL + "/models/" + model
}

// decodeCandidates accepts both the nested [[...]] and the flat [...]
// response shapes of text-classification pipelines.
func decodeCandidates(body []byte) ([]LabelScore, error) {
	var nested [][]LabelScore
	if err := json.Unmarshal(body, &nested); err == nil {
		if len(nested) == 0 {
			return []LabelScore{}, nil
		}
		return nested[0], nil
	}

	var flat []LabelScore
	if err := json.Unmarshal(body, &flat); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return flat, nil
}
