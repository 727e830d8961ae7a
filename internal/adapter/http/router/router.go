package router

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/ressKim-io/duygu-analizi/internal/adapter/http/handler"
	"github.com/ressKim-io/duygu-analizi/internal/adapter/http/middleware"
	"github.com/ressKim-io/duygu-analizi/internal/adapter/http/web"
	"github.com/ressKim-io/duygu-analizi/internal/usecase"
)

// Options holds the dependencies of the router
type Options struct {
	SentimentUC    usecase.SentimentUsecase
	Redis          *redis.Client
	Logger         *zap.Logger
	AllowedOrigins []string
	// Gatherer backs /metrics; nil means the default registry
	Gatherer prometheus.Gatherer
}

// Setup creates and configures the Gin router
func Setup(opts Options) (*gin.Engine, error) {
	router := gin.New()

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(opts.Logger))
	router.Use(middleware.Recovery(opts.Logger))
	router.Use(middleware.CORS(opts.AllowedOrigins...))

	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	router.SetHTMLTemplate(tmpl)

	// Health endpoints
	healthHandler := handler.NewHealthHandler(opts.Redis, opts.SentimentUC.Model())
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	// Prometheus metrics
	gatherer := opts.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	// Initialize handlers
	formHandler := handler.NewFormHandler(opts.SentimentUC, opts.Logger)
	sentimentHandler := handler.NewSentimentHandler(opts.SentimentUC)

	// Web form
	router.GET("/", formHandler.Show)
	router.POST("/", formHandler.Submit)

	// Gradio-compatible endpoint
	router.POST("/api/predict", sentimentHandler.Predict)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.POST("/analyze", sentimentHandler.Analyze)
		v1.GET("/examples", sentimentHandler.Examples)
	}

	return router, nil
}
