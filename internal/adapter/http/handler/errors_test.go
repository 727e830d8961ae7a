package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapRequestError(t *testing.T) {
	tests := []struct {
		name               string
		err                error
		expectedStatusCode int
		expectedCode       string
		expectedMessage    string
	}{
		{
			name:               "malformed body",
			err:                fmt.Errorf("%w: unexpected EOF", ErrMalformedBody),
			expectedStatusCode: http.StatusBadRequest,
			expectedCode:       "INVALID_REQUEST",
			expectedMessage:    "malformed request body",
		},
		{
			name:               "missing input",
			err:                ErrMissingInput,
			expectedStatusCode: http.StatusBadRequest,
			expectedCode:       "INVALID_REQUEST",
			expectedMessage:    "data must contain one input",
		},
		{
			name:               "invalid input",
			err:                ErrInvalidInput,
			expectedStatusCode: http.StatusBadRequest,
			expectedCode:       "INVALID_REQUEST",
			expectedMessage:    "input must be a string",
		},
		{
			name:               "unknown error",
			err:                errors.New("boom"),
			expectedStatusCode: http.StatusInternalServerError,
			expectedCode:       "INTERNAL_ERROR",
			expectedMessage:    "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := MapRequestError(tt.err)

			assert.Equal(t, tt.expectedStatusCode, resp.StatusCode)
			assert.Equal(t, tt.expectedCode, resp.Code)
			assert.Equal(t, tt.expectedMessage, resp.Message)
		})
	}
}

func TestHandleRequestError(t *testing.T) {
	router := gin.New()
	router.GET("/test", func(c *gin.Context) {
		HandleRequestError(c, ErrMissingInput)
	})

	req, _ := http.NewRequest("GET", "/test", http.NoBody)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.False(t, response.Success)
	assert.Equal(t, "INVALID_REQUEST", response.Error.Code)
}
