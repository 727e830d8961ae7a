package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/ressKim-io/duygu-analizi/internal/adapter/client"
	"github.com/ressKim-io/duygu-analizi/internal/adapter/http/router"
	"github.com/ressKim-io/duygu-analizi/internal/domain/entity"
	"github.com/ressKim-io/duygu-analizi/internal/infrastructure/cache"
	"github.com/ressKim-io/duygu-analizi/internal/infrastructure/config"
	"github.com/ressKim-io/duygu-analizi/internal/infrastructure/logger"
	"github.com/ressKim-io/duygu-analizi/internal/infrastructure/metrics"
	"github.com/ressKim-io/duygu-analizi/internal/usecase"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	log, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	// Set Gin mode
	gin.SetMode(cfg.Server.Mode)

	labels, err := entity.NewLabelMap(cfg.Labels.Map)
	if err != nil {
		return fmt.Errorf("failed to build label map: %w", err)
	}

	// Initialize Redis (optional, continue without it)
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedisClient(&cfg.Redis)
		if err != nil {
			log.Warn("Failed to connect to Redis, continuing without cache", zap.Error(err))
			redisClient = nil
		} else {
			log.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr()))
		}
	}

	m := metrics.New(prometheus.DefaultRegisterer)

	classifier, err := client.NewClassifier(cfg, redisClient, log, m)
	if err != nil {
		return fmt.Errorf("failed to create backend: %w", err)
	}

	// Load the model once; the server does not start without it
	log.Info("Loading sentiment model",
		zap.String("provider", cfg.Backend.Provider),
		zap.String("model", classifier.Model()),
	)
	loadStart := time.Now()
	if err := classifier.Load(context.Background()); err != nil {
		log.Error("Failed to load sentiment model", zap.Error(err))
		return fmt.Errorf("failed to load sentiment model: %w", err)
	}
	log.Info("Sentiment model loaded", zap.Duration("duration", time.Since(loadStart)))

	sentimentUC := usecase.NewSentimentUsecase(classifier, labels, log, m)

	// Setup router
	r, err := router.Setup(router.Options{
		SentimentUC:    sentimentUC,
		Redis:          redisClient,
		Logger:         log,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	})
	if err != nil {
		return fmt.Errorf("failed to setup router: %w", err)
	}

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.Backend.Timeout + 30*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server", zap.String("address", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal or server failure
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	log.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	// Close Redis connection
	if redisClient != nil {
		_ = redisClient.Close()
	}

	log.Info("Server exited")
	return nil
}
