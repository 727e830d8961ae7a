package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ressKim-io/duygu-analizi/internal/usecase"
)

// Form texts
const (
	FormTitle       = "💭 Türkçe Duygu Analizi"
	FormDescription = "Mesajınızı yazın, duygusunu analiz edelim!"
)

// Examples are the sample inputs offered by the form
var Examples = []string{
	"Bugün harika bir gün!",
	"Çok üzgünüm ve mutsuzum.",
	"Merhaba, nasılsın?",
}

// ExamplesOutput is the payload of GET /api/v1/examples
type ExamplesOutput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Examples    []string `json:"examples"`
}

// SentimentHandler handles sentiment analysis API requests
type SentimentHandler struct {
	sentimentUC usecase.SentimentUsecase
}

// NewSentimentHandler creates a new sentiment handler
func NewSentimentHandler(sentimentUC usecase.SentimentUsecase) *SentimentHandler {
	return &SentimentHandler{sentimentUC: sentimentUC}
}

// Analyze handles POST /api/v1/analyze
func (h *SentimentHandler) Analyze(c *gin.Context) {
	model := h.sentimentUC.Model()
	c.Set(ModelKey, model)

	text, err := BindAnalyzeRequest(c)
	if err != nil {
		HandleRequestError(c, err)
		return
	}

	result := h.sentimentUC.Analyze(c.Request.Context(), text)

	respondAnalysis(c, http.StatusOK, model, result)
}

// Predict handles POST /api/predict with a gradio-style payload
func (h *SentimentHandler) Predict(c *gin.Context) {
	text, err := BindPredictRequest(c)
	if err != nil {
		HandleRequestError(c, err)
		return
	}

	result := h.sentimentUC.Analyze(c.Request.Context(), text)

	c.JSON(http.StatusOK, PredictResponse{Data: []any{result}})
}

// Examples handles GET /api/v1/examples
func (h *SentimentHandler) Examples(c *gin.Context) {
	c.Set(ModelKey, h.sentimentUC.Model())
	respondSuccess(c, http.StatusOK, ExamplesOutput{
		Title:       FormTitle,
		Description: FormDescription,
		Examples:    Examples,
	})
}
