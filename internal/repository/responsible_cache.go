package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"legal-board-api/internal/domain"
)

const responsiblesCacheKey = "legal-board:responsables:activos"

// CacheRecorder receives cache hit and miss events
type CacheRecorder interface {
	RecordCacheLookup(hit bool)
}

// cachedResponsibleRepository serves ListActive from redis when it can
type cachedResponsibleRepository struct {
	base     ResponsibleRepository
	redis    *redis.Client
	ttl      time.Duration
	recorder CacheRecorder
	logger   *zap.Logger
}

// NewCachedResponsibleRepository wraps base with a redis read-through cache.
// A nil client disables caching.
func NewCachedResponsibleRepository(base ResponsibleRepository, client *redis.Client, ttl time.Duration, recorder CacheRecorder, logger *zap.Logger) ResponsibleRepository {
	if ttl < 0 {
		ttl = 0
	}
	return &cachedResponsibleRepository{
		base:     base,
		redis:    client,
		ttl:      ttl,
		recorder: recorder,
		logger:   logger,
	}
}

func (c *cachedResponsibleRepository) ListActive(ctx context.Context) ([]domain.Responsible, error) {
	if list, ok := c.load(ctx); ok {
		c.record(true)
		return list, nil
	}
	c.record(false)

	list, err := c.base.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	c.store(ctx, list)
	return list, nil
}

// Invalidate drops the cached list
func (c *cachedResponsibleRepository) Invalidate(ctx context.Context) {
	if c.redis == nil {
		return
	}
	_ = c.redis.Del(ctx, responsiblesCacheKey).Err()
}

func (c *cachedResponsibleRepository) load(ctx context.Context) ([]domain.Responsible, bool) {
	if c.redis == nil {
		return nil, false
	}
	data, err := c.redis.Get(ctx, responsiblesCacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("Responsible cache read failed, falling back to store", zap.Error(err))
			_ = c.redis.Del(ctx, responsiblesCacheKey).Err()
		}
		return nil, false
	}
	var list []domain.Responsible
	if err := json.Unmarshal(data, &list); err != nil {
		_ = c.redis.Del(ctx, responsiblesCacheKey).Err()
		return nil, false
	}
	return list, true
}

func (c *cachedResponsibleRepository) store(ctx context.Context, list []domain.Responsible) {
	if c.redis == nil || c.ttl == 0 {
		return
	}
	data, err := json.Marshal(list)
	if err != nil {
		return
	}
	if err := c.redis.Set(ctx, responsiblesCacheKey, data, c.ttl).Err(); err != nil {
		c.logger.Warn("Responsible cache write failed", zap.Error(err))
	}
}

func (c *cachedResponsibleRepository) record(hit bool) {
	if c.recorder != nil && c.redis != nil {
		c.recorder.RecordCacheLookup(hit)
	}
}
