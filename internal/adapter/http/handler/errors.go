package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Request errors detected before the usecase is called
var (
	ErrMalformedBody = errors.New("malformed request body")
	ErrMissingInput  = errors.New("missing input")
	ErrInvalidInput  = errors.New("input must be a string")
)

// ErrorResponse represents a structured error response
type ErrorResponse struct {
	StatusCode int
	Code       string
	Message    string
}

// MapRequestError maps request errors to HTTP error responses.
// Backend failures never reach this point: the usecase turns them into
// degraded results.
func MapRequestError(err error) ErrorResponse {
	switch {
	case errors.Is(err, ErrMalformedBody):
		return ErrorResponse{
			StatusCode: http.StatusBadRequest,
			Code:       CodeInvalidRequest,
			Message:    "malformed request body",
		}
	case errors.Is(err, ErrMissingInput):
		return ErrorResponse{
			StatusCode: http.StatusBadRequest,
			Code:       CodeInvalidRequest,
			Message:    "data must contain one input",
		}
	case errors.Is(err, ErrInvalidInput):
		return ErrorResponse{
			StatusCode: http.StatusBadRequest,
			Code:       CodeInvalidRequest,
			Message:    "input must be a string",
		}
	default:
		return ErrorResponse{
			StatusCode: http.StatusInternalServerError,
			Code:       CodeInternalError,
			Message:    "internal server error",
		}
	}
}

// HandleRequestError sends the JSON error response for err
func HandleRequestError(c *gin.Context, err error) {
	errResp := MapRequestError(err)
	respondError(c, errResp.StatusCode, errResp.Code, errResp.Message)
}
