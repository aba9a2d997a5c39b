package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/lmittmann/tint"
	"github.com/vietddude/stylelog"

	"github.com/dharmasatrya/flightpredict/internal/apierror"
	"github.com/dharmasatrya/flightpredict/internal/cache"
	"github.com/dharmasatrya/flightpredict/internal/client"
	"github.com/dharmasatrya/flightpredict/internal/config"
	"github.com/dharmasatrya/flightpredict/internal/handler"
	"github.com/dharmasatrya/flightpredict/internal/history"
	"github.com/dharmasatrya/flightpredict/internal/prediction"
	"github.com/dharmasatrya/flightpredict/internal/ratelimit"
	"github.com/dharmasatrya/flightpredict/internal/retry"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	isDebug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	envErr := godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		stylelog.InitDefault()
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	slogLevel := slog.LevelInfo
	if *isDebug || cfg.App.LogLevel == "debug" || cfg.Development() {
		slogLevel = slog.LevelDebug
	}
	stylelog.InitDefault(
		&tint.Options{
			Level:      slogLevel,
			TimeFormat: time.RFC3339,
		})
	if envErr != nil {
		slog.Debug("No .env file found, using system environment")
	}
	slog.Info("Logger initialized", "level", slogLevel.String(), "mode", cfg.App.Mode)

	credentials := client.NewCredentials(cfg.API.Token)

	limiter := ratelimit.NewEndpointLimiter(ratelimit.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
		BurstSize:         cfg.RateLimit.Burst,
	}, client.PathPredict, client.PathModelInfo)
	// Health and options are cheap; predictions hit the model.
	limiter.SetEndpointLimit(client.PathHealth, cfg.RateLimit.RequestsPerSecond*2, cfg.RateLimit.Burst*2)
	limiter.SetEndpointLimit(client.PathOptions, cfg.RateLimit.RequestsPerSecond*2, cfg.RateLimit.Burst*2)

	apiClient := client.New(client.Config{
		Mode:          cfg.App.Mode,
		ProductionURL: cfg.API.URL,
		DevProxyURL:   cfg.API.DevProxyURL,
		Timeout:       cfg.API.Timeout,
		Limiter:       limiter,
		Logger:        slog.Default(),
	}, credentials)
	defer apiClient.Close()

	debugCfg := apiClient.Config()
	slog.Info("API client configured", "base_url", debugCfg.BaseURL, "environment", debugCfg.Environment)

	classifier := apierror.NewClassifier(credentials, slog.Default())
	retrier := retry.New(retry.Config{
		MaxRetries: cfg.Retry.MaxRetries,
		BaseDelay:  cfg.Retry.BaseDelay,
		Logger:     slog.Default(),
	}, classifier.Classify)

	var predictionCache cache.Cache
	if cfg.Cache.Enabled {
		redisCache, err := cache.NewRedisCache(cache.RedisConfig{
			Host: cfg.Cache.RedisHost,
			Port: cfg.Cache.RedisPort,
			TTL:  cfg.Cache.TTL,
		})
		if err != nil {
			slog.Error("Failed to connect to Redis", "error", err)
			os.Exit(1)
		}
		predictionCache = redisCache
		slog.Info("Redis cache enabled", "host", cfg.Cache.RedisHost, "port", cfg.Cache.RedisPort, "ttl", cfg.Cache.TTL)
	} else {
		predictionCache = cache.NewNoOpCache()
		slog.Info("Cache disabled")
	}
	defer predictionCache.Close()

	service := prediction.NewService(apiClient, retrier, prediction.Config{
		Cache:   predictionCache,
		History: history.NewStore(history.DefaultCapacity),
		Logger:  slog.Default(),
	})

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())

	handler.Register(e, handler.NewPredictionHandler(service, apiClient))

	go func() {
		slog.Info("Starting flight price gateway", "port", cfg.App.Port)
		if err := e.Start(":" + cfg.App.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	slog.Info("Received signal, shutting down...", "signal", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
}
