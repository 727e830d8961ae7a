package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ressKim-io/duygu-analizi/internal/domain/entity"
)

// Error codes carried by the envelope
const (
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeInternalError  = "INTERNAL_ERROR"
)

// ModelKey is the gin context key naming the backend model that served
// the request
const ModelKey = "model"

// Response represents the standard API response structure
type Response struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
	Meta    *MetaInfo  `json:"meta"`
}

// ErrorInfo represents error details
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MetaInfo represents response metadata. Model and Degraded are filled on
// analysis responses: Degraded marks a result produced without the backend.
type MetaInfo struct {
	Timestamp string `json:"timestamp"`
	RequestID string `json:"request_id"`
	Model     string `json:"model,omitempty"`
	Degraded  bool   `json:"degraded,omitempty"`
}

func newMeta(c *gin.Context) *MetaInfo {
	requestID := c.GetString("request_id")
	if requestID == "" {
		requestID = uuid.New().String()
	}
	return &MetaInfo{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		RequestID: requestID,
		Model:     c.GetString(ModelKey),
	}
}

func respondSuccess(c *gin.Context, status int, data any) {
	c.JSON(status, Response{
		Success: true,
		Data:    data,
		Meta:    newMeta(c),
	})
}

// respondAnalysis wraps a normalized result, recording which model served it
func respondAnalysis(c *gin.Context, status int, model string, result *entity.Result) {
	c.Set(ModelKey, model)
	meta := newMeta(c)
	meta.Degraded = result.IsDegraded()
	c.JSON(status, Response{
		Success: true,
		Data:    result,
		Meta:    meta,
	})
}

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, errorResponse(c, code, message))
}

// AbortWithError writes an error envelope and stops the handler chain
func AbortWithError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, errorResponse(c, code, message))
}

func errorResponse(c *gin.Context, code, message string) Response {
	return Response{
		Success: false,
		Error: &ErrorInfo{
			Code:    code,
			Message: message,
		},
		Meta: newMeta(c),
	}
}
