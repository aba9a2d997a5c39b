package prediction

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dharmasatrya/flightpredict/internal/cache"
	"github.com/dharmasatrya/flightpredict/internal/formatter"
	"github.com/dharmasatrya/flightpredict/internal/history"
	"github.com/dharmasatrya/flightpredict/internal/metrics"
	"github.com/dharmasatrya/flightpredict/internal/models"
	"github.com/dharmasatrya/flightpredict/internal/ranking"
	"github.com/dharmasatrya/flightpredict/internal/retry"
	"github.com/dharmasatrya/flightpredict/internal/validation"
	"github.com/dharmasatrya/flightpredict/pkg/currency"
)

type Config struct {
	Cache   cache.Cache
	History *history.Store
	Logger  *slog.Logger
}

type Service struct {
	predictor Predictor
	retrier   *retry.Retrier
	cache     cache.Cache
	history   *history.Store
	logger    *slog.Logger
	now       func() time.Time
}

func NewService(predictor Predictor, retrier *retry.Retrier, config Config) *Service {
	if config.Cache == nil {
		config.Cache = cache.NewNoOpCache()
	}
	if config.History == nil {
		config.History = history.NewStore(history.DefaultCapacity)
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}

	return &Service{
		predictor: predictor,
		retrier:   retrier,
		cache:     config.Cache,
		history:   config.History,
		logger:    config.Logger,
		now:       time.Now,
	}
}

// Predict validates and formats raw input, then asks the backend for a price.
// Validation failures return before any network call is made.
func (s *Service) Predict(ctx context.Context, raw models.RawQuery) (models.PredictionResult, error) {
	if result := validation.Validate(raw); !result.Valid {
		metrics.PredictionsTotal.WithLabelValues("invalid").Inc()
		return models.PredictionResult{}, result.Err()
	}

	query := formatter.Format(raw)

	// Cache hits get their own history entry.
	if cached, found := s.cache.Get(ctx, query); found {
		cached.ID = uuid.NewString()
		cached.Timestamp = s.now()
		s.history.Add(cached)
		metrics.PredictionsTotal.WithLabelValues("cached").Inc()
		return cached, nil
	}

	resp, err := retry.Call(ctx, s.retrier, func(ctx context.Context) (models.PredictResponseV1, error) {
		body, err := s.predictor.Predict(ctx, query)
		if err != nil {
			return models.PredictResponseV1{}, err
		}
		return models.AdaptPredictResponse(body)
	})
	if err != nil {
		metrics.PredictionsTotal.WithLabelValues("failed").Inc()
		s.logger.Error("prediction failed", "route", query.Route(), "airline", query.Airline, "error", err)
		return models.PredictionResult{}, err
	}

	result := models.PredictionResult{
		ID:             uuid.NewString(),
		Success:        true,
		PredictedPrice: resp.PredictedPrice,
		FormattedPrice: currency.FormatINR(resp.PredictedPrice),
		PriceLevel:     ranking.PriceLevel(resp.PredictedPrice),
		Query:          query,
		Timestamp:      s.now(),
		Raw:            resp.Raw,
	}

	s.history.Add(result)
	if err := s.cache.Set(ctx, query, result); err != nil {
		s.logger.Warn("failed to cache prediction", "error", err)
	}

	metrics.PredictionsTotal.WithLabelValues("success").Inc()
	s.logger.Info("prediction completed", "route", query.Route(), "price", result.FormattedPrice)
	return result, nil
}

func (s *Service) Health(ctx context.Context) (models.HealthStatus, error) {
	return retry.Call(ctx, s.retrier, s.predictor.CheckHealth)
}

func (s *Service) ModelInfo(ctx context.Context) (models.ModelInfo, error) {
	return retry.Call(ctx, s.retrier, s.predictor.GetModelInfo)
}

func (s *Service) Options(ctx context.Context) (models.Options, error) {
	return retry.Call(ctx, s.retrier, s.predictor.GetOptions)
}

func (s *Service) History() *history.Store {
	return s.history
}

// Outcome collapses a Predict result into the value handed to the UI. Only
// the user-facing message of an error crosses this boundary.
func Outcome(result models.PredictionResult, err error) models.Outcome {
	if err == nil {
		return models.Outcome{Success: true, Data: &result}
	}

	var apiErr *models.APIError
	if errors.As(err, &apiErr) {
		return models.Outcome{Success: false, Error: apiErr.Message, Fields: apiErr.Fields}
	}
	return models.Outcome{Success: false, Error: models.MsgUnknown}
}
