package handler

import (
	"encoding/json"
	"fmt"

	"github.com/gin-gonic/gin"
)

// AnalyzeRequest is the body of POST /api/v1/analyze
type AnalyzeRequest struct {
	Text string `json:"text"`
}

// PredictRequest is the gradio-style body of POST /api/predict
type PredictRequest struct {
	Data []json.RawMessage `json:"data"`
}

// PredictResponse is the gradio-style response of POST /api/predict
type PredictResponse struct {
	Data []any `json:"data"`
}

// BindAnalyzeRequest decodes the analyze body. A missing text field is
// treated as empty text.
func BindAnalyzeRequest(c *gin.Context) (string, error) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	return req.Text, nil
}

// BindPredictRequest decodes a gradio-style body and returns data[0]
func BindPredictRequest(c *gin.Context) (string, error) {
	var req PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	if len(req.Data) == 0 {
		return "", ErrMissingInput
	}

	var text string
	if err := json.Unmarshal(req.Data[0], &text); err != nil {
		return "", ErrInvalidInput
	}
	return text, nil
}
