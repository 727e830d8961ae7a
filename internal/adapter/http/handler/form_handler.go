package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ressKim-io/duygu-analizi/internal/domain/entity"
	"github.com/ressKim-io/duygu-analizi/internal/usecase"
)

// FormTemplate is the name of the HTML template rendered by FormHandler
const FormTemplate = "index.html"

// FormPage is the data passed to the form template
type FormPage struct {
	Title       string
	Description string
	Examples    []string
	Text        string
	Result      *entity.Result
	ResultJSON  string
}

// FormHandler serves the single-field web form
type FormHandler struct {
	sentimentUC usecase.SentimentUsecase
	logger      *zap.Logger
}

// NewFormHandler creates a new form handler
func NewFormHandler(sentimentUC usecase.SentimentUsecase, logger *zap.Logger) *FormHandler {
	return &FormHandler{sentimentUC: sentimentUC, logger: logger}
}

// Show handles GET /
func (h *FormHandler) Show(c *gin.Context) {
	c.HTML(http.StatusOK, FormTemplate, newFormPage(c.Query("text")))
}

// Submit handles POST / with a form-encoded text field
func (h *FormHandler) Submit(c *gin.Context) {
	text := c.PostForm("text")
	page := newFormPage(text)

	page.Result = h.sentimentUC.Analyze(c.Request.Context(), text)

	body, err := json.MarshalIndent(page.Result, "", "  ")
	if err != nil {
		h.logger.Error("Failed to encode result", zap.Error(err))
		c.HTML(http.StatusInternalServerError, FormTemplate, page)
		return
	}
	page.ResultJSON = string(body)

	c.HTML(http.StatusOK, FormTemplate, page)
}

func newFormPage(text string) *FormPage {
	return &FormPage{
		Title:       FormTitle,
		Description: FormDescription,
		Examples:    Examples,
		Text:        text,
	}
}
