package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"house-price/internal/artifact"
	"house-price/internal/config"
	apihttp "house-price/internal/http"
	"house-price/internal/service"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	loaded, err := artifact.LoadConfigured(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("load model artifact", zap.Error(err))
	}
	schema := loaded.Artifact.Schema()
	service.LogCoverage(logger, schema)

	predictionSvc := service.NewPredictionService(
		logger,
		schema,
		loaded.Predictor,
		service.NewPriceFormatter(cfg.CurrencySymbol),
		loaded.Artifact.Name,
	)

	window := time.Duration(cfg.PredictRateWindowSeconds) * time.Second
	limiter := service.NewMemoryRateLimiter(window, cfg.PredictRateLimit)
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer redisClient.Close()
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed, using in-memory rate limiter", zap.Error(err))
		} else {
			limiter = service.NewRedisRateLimiter(redisClient, logger, window, cfg.PredictRateLimit)
		}
		cancel()
	}

	predictionHandler := apihttp.NewPredictionHandler(logger, predictionSvc)
	router := apihttp.NewRouter(logger, predictionHandler, limiter)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
