// Package cache provides the Redis-backed evaluation cache. Cached
// entries are a read-through convenience only; the audit log remains
// the source of truth.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"veristate/internal/models"

	"github.com/redis/go-redis/v9"
)

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

func NewRedisClient(cfg *RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// EvaluationCache caches the latest evaluation record per transaction
// and the catalog's required-documents listing.
type EvaluationCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewEvaluationCache(client *redis.Client, ttl time.Duration) *EvaluationCache {
	return &EvaluationCache{client: client, ttl: ttl}
}

func (c *EvaluationCache) GetEvaluation(ctx context.Context, ref string) (*models.EvaluationRecord, error) {
	val, err := c.client.Get(ctx, evaluationKey(ref)).Result()
	if err != nil {
		return nil, err
	}
	var record models.EvaluationRecord
	if err := json.Unmarshal([]byte(val), &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (c *EvaluationCache) SetEvaluation(ctx context.Context, record *models.EvaluationRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, evaluationKey(record.TransactionRef), data, c.ttl).Err()
}

func (c *EvaluationCache) InvalidateEvaluation(ctx context.Context, ref string) error {
	return c.client.Del(ctx, evaluationKey(ref)).Err()
}

func (c *EvaluationCache) HealthCheck(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection failed: %w", err)
	}
	return nil
}

func (c *EvaluationCache) Close() error {
	return c.client.Close()
}

func evaluationKey(ref string) string {
	return fmt.Sprintf("evaluation:%s", ref)
}
