package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dharmasatrya/flightpredict/internal/models"
)

// Cache stores predictions keyed by the canonical query.
type Cache interface {
	Get(ctx context.Context, q models.FlightQuery) (models.PredictionResult, bool)
	Set(ctx context.Context, q models.FlightQuery, result models.PredictionResult) error
	Close() error
}

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

func DefaultRedisConfig() RedisConfig {
	return RedisConfig{
		Host:     "localhost",
		Port:     "6379",
		Password: "",
		DB:       0,
		TTL:      10 * time.Minute,
	}
}

func NewRedisCache(cfg RedisConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Host + ":" + cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return &RedisCache{
		client: client,
		ttl:    cfg.TTL,
	}, nil
}

func (c *RedisCache) Get(ctx context.Context, q models.FlightQuery) (models.PredictionResult, bool) {
	data, err := c.client.Get(ctx, generateKey(q)).Bytes()
	if err != nil {
		return models.PredictionResult{}, false
	}

	var result models.PredictionResult
	if err := json.Unmarshal(data, &result); err != nil {
		return models.PredictionResult{}, false
	}

	return result, true
}

func (c *RedisCache) Set(ctx context.Context, q models.FlightQuery, result models.PredictionResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, generateKey(q), data, c.ttl).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

type NoOpCache struct{}

func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

func (c *NoOpCache) Get(ctx context.Context, q models.FlightQuery) (models.PredictionResult, bool) {
	return models.PredictionResult{}, false
}

func (c *NoOpCache) Set(ctx context.Context, q models.FlightQuery, result models.PredictionResult) error {
	return nil
}

func (c *NoOpCache) Close() error {
	return nil
}

func generateKey(q models.FlightQuery) string {
	data, _ := json.Marshal(q)
	hash := sha256.Sum256(data)
	return "prediction:" + hex.EncodeToString(hash[:])
}
