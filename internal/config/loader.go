package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v2"
)

// Load builds the configuration. path may be empty or point at a missing
// file, in which case only defaults and the environment are used.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		default:
			expanded := os.ExpandEnv(string(data))
			if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.App.Mode = getEnv("APP_ENV", getEnv("NODE_ENV", cfg.App.Mode))
	cfg.App.Port = getEnv("PORT", cfg.App.Port)
	cfg.App.LogLevel = getEnv("LOG_LEVEL", cfg.App.LogLevel)

	cfg.API.URL = getEnv("PREDICTOR_API_URL", cfg.API.URL)
	cfg.API.DevProxyURL = getEnv("DEV_PROXY_URL", cfg.API.DevProxyURL)
	cfg.API.Timeout = getEnvDuration("API_TIMEOUT", cfg.API.Timeout)
	cfg.API.Token = getEnv("API_TOKEN", cfg.API.Token)

	cfg.Retry.MaxRetries = getEnvInt("MAX_RETRIES", cfg.Retry.MaxRetries)
	cfg.Retry.BaseDelay = getEnvDuration("RETRY_BASE_DELAY", cfg.Retry.BaseDelay)

	cfg.Cache.Enabled = getEnvBool("CACHE_ENABLED", cfg.Cache.Enabled)
	cfg.Cache.RedisHost = getEnv("REDIS_HOST", cfg.Cache.RedisHost)
	cfg.Cache.RedisPort = getEnv("REDIS_PORT", cfg.Cache.RedisPort)
	cfg.Cache.TTL = getEnvDuration("REDIS_TTL", cfg.Cache.TTL)

	cfg.RateLimit.RequestsPerSecond = getEnvFloat("RATE_LIMIT_RPS", cfg.RateLimit.RequestsPerSecond)
	cfg.RateLimit.Burst = getEnvInt("RATE_LIMIT_BURST", cfg.RateLimit.Burst)
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.App.Mode) == "" {
		return errors.New("app mode is required")
	}
	if c.App.Port == "" {
		return errors.New("port is required")
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("api timeout must be positive, got %v", c.API.Timeout)
	}
	if c.Retry.MaxRetries < 0 {
		return fmt.Errorf("max retries must not be negative, got %d", c.Retry.MaxRetries)
	}
	if c.Retry.BaseDelay < 0 {
		return fmt.Errorf("retry base delay must not be negative, got %v", c.Retry.BaseDelay)
	}
	if c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0 {
		return errors.New("rate limit requires positive requests per second and burst")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return f
}
