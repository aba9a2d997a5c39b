package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dharmasatrya/flightpredict/internal/metrics"
	"github.com/dharmasatrya/flightpredict/internal/models"
	"github.com/dharmasatrya/flightpredict/internal/ratelimit"
)

const (
	ModeDevelopment = "development"
	ModeProduction  = "production"

	DefaultProductionURL = "https://flight-price-predictor-7pj6.onrender.com"
	DefaultDevProxyURL   = "http://localhost:5000"
	DefaultTimeout       = 30 * time.Second
)

const (
	PathPredict   = "/api/predict"
	PathHealth    = "/api/health"
	PathModelInfo = "/api/model-info"
	PathOptions   = "/api/options"

	// PathHealthFallback is the unprefixed health route some deployments serve.
	PathHealthFallback = "/health"
)

var Endpoints = map[string]string{
	"PREDICT":    PathPredict,
	"HEALTH":     PathHealth,
	"MODEL_INFO": PathModelInfo,
	"OPTIONS":    PathOptions,
}

type Config struct {
	Mode          string
	ProductionURL string
	// DevProxyURL is the same-origin reverse proxy that relative paths are
	// sent to in development mode.
	DevProxyURL string
	Timeout     time.Duration
	Limiter     *ratelimit.EndpointLimiter
	Logger      *slog.Logger
}

type Client struct {
	mode        string
	baseURL     string
	devProxyURL string
	httpClient  *http.Client
	credentials *Credentials
	limiter     *ratelimit.EndpointLimiter
	logger      *slog.Logger
}

type DebugConfig struct {
	BaseURL       string                      `json:"base_url"`
	Environment   string                      `json:"environment"`
	Endpoints     map[string]string           `json:"endpoints"`
	FullEndpoints map[string]string           `json:"full_endpoints"`
	RateLimits    map[string]ratelimit.Status `json:"rate_limits,omitempty"`
}

// ResolveBaseURL picks the backend origin once at construction. Development
// uses an empty base so requests stay same-origin behind a proxy.
func ResolveBaseURL(mode, productionURL string) string {
	if mode == ModeDevelopment {
		return ""
	}
	if productionURL != "" {
		return strings.TrimRight(productionURL, "/")
	}
	return DefaultProductionURL
}

func New(cfg Config, credentials *Credentials) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.DevProxyURL == "" {
		cfg.DevProxyURL = DefaultDevProxyURL
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return &Client{
		mode:        cfg.Mode,
		baseURL:     ResolveBaseURL(cfg.Mode, cfg.ProductionURL),
		devProxyURL: strings.TrimRight(cfg.DevProxyURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		credentials: credentials,
		limiter:     cfg.Limiter,
		logger:      cfg.Logger,
	}
}

func (c *Client) Predict(ctx context.Context, q models.FlightQuery) ([]byte, error) {
	return c.do(ctx, http.MethodPost, PathPredict, q)
}

// CheckHealth tries /api/health and falls back to /health when the backend
// does not know the prefixed route.
func (c *Client) CheckHealth(ctx context.Context) (models.HealthStatus, error) {
	path := PathHealth
	body, err := c.do(ctx, http.MethodGet, path, nil)

	var statusErr *StatusError
	if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
		path = PathHealthFallback
		body, err = c.do(ctx, http.MethodGet, path, nil)
	}
	if err != nil {
		return models.HealthStatus{}, err
	}

	var health models.HealthStatus
	if err := decode(path, body, &health); err != nil {
		return models.HealthStatus{}, err
	}
	return health, nil
}

func (c *Client) GetModelInfo(ctx context.Context) (models.ModelInfo, error) {
	body, err := c.do(ctx, http.MethodGet, PathModelInfo, nil)
	if err != nil {
		return nil, err
	}

	var info models.ModelInfo
	if err := decode(PathModelInfo, body, &info); err != nil {
		return nil, err
	}
	return info, nil
}

func (c *Client) GetOptions(ctx context.Context) (models.Options, error) {
	var resp models.OptionsResponse
	body, err := c.do(ctx, http.MethodGet, PathOptions, nil)
	if err != nil {
		return models.Options{}, err
	}
	if err := decode(PathOptions, body, &resp); err != nil {
		return models.Options{}, err
	}
	return resp.Options, nil
}

func (c *Client) Config() DebugConfig {
	full := make(map[string]string, len(Endpoints))
	for name, path := range Endpoints {
		full[name] = c.baseURL + path
	}
	debug := DebugConfig{
		BaseURL:       c.baseURL,
		Environment:   c.mode,
		Endpoints:     Endpoints,
		FullEndpoints: full,
	}
	if c.limiter != nil {
		debug.RateLimits = c.limiter.Snapshot()
	}
	return debug
}

func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

func (c *Client) url(path string) string {
	if c.baseURL == "" {
		return c.devProxyURL + path
	}
	return c.baseURL + path
}

func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx, path); err != nil {
			return nil, fmt.Errorf("rate limit %s: %w", path, limiterError(ctx, err))
		}
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshal %s request: %w", path, err)
		}
		body = bytes.NewReader(data)
		c.debug("api request", "method", method, "url", c.url(path), "base_url", c.baseURL, "data", string(data))
	} else {
		c.debug("api request", "method", method, "url", c.url(path), "base_url", c.baseURL)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), body)
	if err != nil {
		return nil, fmt.Errorf("create %s request: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token := c.credentials.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.APILatency.WithLabelValues(path).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.APIRequestsTotal.WithLabelValues(path, "error").Inc()
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	metrics.APIRequestsTotal.WithLabelValues(path, strconv.Itoa(resp.StatusCode)).Inc()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", path, err)
	}
	c.debug("api response", "status", resp.StatusCode, "url", c.url(path), "data", string(respBody))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return respBody, &StatusError{StatusCode: resp.StatusCode, Path: path, Body: respBody}
	}

	return respBody, nil
}

// limiterError maps a failed limiter wait onto the context error it stands
// for. rate.Limiter refuses up front when the wait would outlast the deadline,
// before ctx itself has expired.
func limiterError(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if _, ok := ctx.Deadline(); ok {
		return fmt.Errorf("%w: %v", context.DeadlineExceeded, err)
	}
	return err
}

// debug logs only in development; it is a diagnostic, not part of the contract.
func (c *Client) debug(msg string, args ...any) {
	if c.mode != ModeDevelopment {
		return
	}
	c.logger.Debug(msg, args...)
}

func decode(path string, body []byte, v any) error {
	if err := json.Unmarshal(body, v); err != nil {
		return &models.APIError{
			Message:        models.MsgServer,
			Classification: models.ClassServer,
			Err:            fmt.Errorf("decode %s response: %w", path, err),
		}
	}
	return nil
}
