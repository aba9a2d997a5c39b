package retry

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dharmasatrya/flightpredict/internal/metrics"
	"github.com/dharmasatrya/flightpredict/internal/models"
)

type State int

const (
	StateIdle State = iota
	StateAttempting
	StateSuccess
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAttempting:
		return "attempting"
	case StateSuccess:
		return "success"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

type SleepFunc func(ctx context.Context, d time.Duration) error

type ClassifyFunc func(err error) *models.APIError

type Config struct {
	MaxRetries int
	BaseDelay  time.Duration
	// Sleep waits out a backoff delay. Tests swap it to record delays.
	Sleep  SleepFunc
	Logger *slog.Logger
}

func DefaultConfig() Config {
	return Config{
		MaxRetries: 3,
		BaseDelay:  time.Second,
	}
}

type Operation func(ctx context.Context) error

// Run is the state of one orchestrated call. Attempt is zero-based.
type Run struct {
	State     State
	Attempt   int
	LastError *models.APIError
	Delays    []time.Duration
}

func (r Run) Attempts() int {
	if r.State == StateIdle {
		return 0
	}
	return r.Attempt + 1
}

type Retrier struct {
	config   Config
	classify ClassifyFunc
}

func New(config Config, classify ClassifyFunc) *Retrier {
	if config.MaxRetries < 0 {
		config.MaxRetries = 0
	}
	if config.Sleep == nil {
		config.Sleep = sleep
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	if classify == nil {
		classify = asAPIError
	}
	return &Retrier{config: config, classify: classify}
}

// Backoff returns BaseDelay * 2^attempt.
func (r *Retrier) Backoff(attempt int) time.Duration {
	return r.config.BaseDelay << attempt
}

// Execute drives op through Idle -> Attempting(n) -> Success|Failed. A 4xx or
// VALIDATION failure is terminal straight away; anything else is retried until
// MaxRetries is used up, and the last error is returned.
func (r *Retrier) Execute(ctx context.Context, op Operation) (Run, error) {
	run := Run{State: StateIdle}

	for {
		run.State = StateAttempting

		err := op(ctx)
		if err == nil {
			run.State = StateSuccess
			return run, nil
		}

		apiErr := r.classify(err)
		run.LastError = apiErr

		if !apiErr.Retryable() || run.Attempt >= r.config.MaxRetries {
			run.State = StateFailed
			return run, apiErr
		}

		delay := r.Backoff(run.Attempt)
		if err := r.config.Sleep(ctx, delay); err != nil {
			run.State = StateFailed
			return run, r.classify(err)
		}
		run.Delays = append(run.Delays, delay)
		run.Attempt++

		metrics.RetriesTotal.Inc()
		r.config.Logger.Info("retrying request",
			"attempt", run.Attempt+1,
			"max_attempts", r.config.MaxRetries+1,
			"delay", delay,
			"classification", apiErr.Classification,
		)
	}
}

// Call is Execute for operations that produce a value.
func Call[T any](ctx context.Context, r *Retrier, op func(ctx context.Context) (T, error)) (T, error) {
	var result T
	_, err := r.Execute(ctx, func(ctx context.Context) error {
		v, err := op(ctx)
		if err != nil {
			return err
		}
		result = v
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func asAPIError(err error) *models.APIError {
	var apiErr *models.APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return &models.APIError{Message: models.MsgUnknown, Classification: models.ClassUnknown, Err: err}
}
