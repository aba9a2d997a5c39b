package config

import (
	"time"

	"github.com/dharmasatrya/flightpredict/internal/client"
)

// Config is the gateway configuration. Values come from defaults, then an
// optional YAML file, then environment variables.
type Config struct {
	App       AppConfig       `yaml:"app"`
	API       APIConfig       `yaml:"api"`
	Retry     RetryConfig     `yaml:"retry"`
	Cache     CacheConfig     `yaml:"cache"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

type AppConfig struct {
	Mode     string `yaml:"mode"`
	Port     string `yaml:"port"`
	LogLevel string `yaml:"log_level"`
}

type APIConfig struct {
	URL         string        `yaml:"url"`
	DevProxyURL string        `yaml:"dev_proxy_url"`
	Timeout     time.Duration `yaml:"timeout"`
	Token       string        `yaml:"token"`
}

type RetryConfig struct {
	MaxRetries int           `yaml:"max_retries"`
	BaseDelay  time.Duration `yaml:"base_delay"`
}

type CacheConfig struct {
	Enabled   bool          `yaml:"enabled"`
	RedisHost string        `yaml:"redis_host"`
	RedisPort string        `yaml:"redis_port"`
	TTL       time.Duration `yaml:"ttl"`
}

type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

func Default() Config {
	return Config{
		App: AppConfig{
			Mode:     client.ModeDevelopment,
			Port:     "8080",
			LogLevel: "info",
		},
		API: APIConfig{
			URL:         client.DefaultProductionURL,
			DevProxyURL: client.DefaultDevProxyURL,
			Timeout:     client.DefaultTimeout,
		},
		Retry: RetryConfig{
			MaxRetries: 3,
			BaseDelay:  time.Second,
		},
		Cache: CacheConfig{
			Enabled:   false,
			RedisHost: "localhost",
			RedisPort: "6379",
			TTL:       10 * time.Minute,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 5,
			Burst:             10,
		},
	}
}

func (c Config) Development() bool {
	return c.App.Mode == client.ModeDevelopment
}
