package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/flaviorefit/projetos/internal/procurement/entity"
)

const snapshotKey = "projetos:snapshot:all"

// SnapshotCache keeps the full record set in Redis for a short TTL so a burst
// of dashboard reads does not hammer the database. It is bounded by
// construction (one key per query shape, and the service issues exactly one)
// and deleted on every successful write. Cache trouble is never an error for
// the caller: a failed read is a miss, a failed write is a log line.
type SnapshotCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewSnapshotCache builds the cache. A nil client disables caching entirely;
// every Get is then a miss.
func NewSnapshotCache(rdb *redis.Client, ttl time.Duration, logger *zap.Logger) *SnapshotCache {
	return &SnapshotCache{rdb: rdb, ttl: ttl, logger: logger}
}

func (c *SnapshotCache) Get(ctx context.Context) ([]entity.Project, bool) {
	if c.rdb == nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, snapshotKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("Snapshot cache read failed", zap.Error(err))
		}
		return nil, false
	}
	var records []entity.Project
	if err := json.Unmarshal(raw, &records); err != nil {
		c.logger.Warn("Snapshot cache payload corrupt", zap.Error(err))
		return nil, false
	}
	return records, true
}

func (c *SnapshotCache) Set(ctx context.Context, records []entity.Project) {
	if c.rdb == nil {
		return
	}
	raw, err := json.Marshal(records)
	if err != nil {
		c.logger.Warn("Snapshot cache encode failed", zap.Error(err))
		return
	}
	if err := c.rdb.Set(ctx, snapshotKey, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("Snapshot cache write failed", zap.Error(err))
	}
}

// Invalidate drops the snapshot after a write so the next read sees fresh
// rows instead of waiting out the TTL.
func (c *SnapshotCache) Invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, snapshotKey).Err(); err != nil {
		c.logger.Warn("Snapshot cache invalidation failed", zap.Error(err))
	}
}
