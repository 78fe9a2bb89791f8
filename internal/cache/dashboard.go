package cache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Sandeep-Rana-1094/newV2-md-dashboard/internal/config"
	"github.com/Sandeep-Rana-1094/newV2-md-dashboard/internal/domain"
)

const (
	dashboardSummaryKeyPrefix = "dashboard:summary"
	scanBatchSize             = 100
)

// DashboardSummaryCache memoizes the derived dashboard summary between
// refresh cycles. Keys incorporate the snapshot timestamp, so entries go
// cold naturally when a new snapshot lands.
type DashboardSummaryCache interface {
	GetSummary(ctx context.Context, snapshotAt time.Time) (*domain.DashboardSummary, bool, error)
	SetSummary(ctx context.Context, snapshotAt time.Time, summary *domain.DashboardSummary) error
	InvalidateAll(ctx context.Context) error
}

type redisDashboardCache struct {
	client *redis.Client
	ttl    time.Duration
}

type noopDashboardCache struct{}

func NewDashboardCache(cfg config.CacheConfig) (DashboardSummaryCache, error) {
	if !cfg.Enabled {
		return &noopDashboardCache{}, nil
	}

	client, ttl, err := newRedisClient(cfg)
	if err != nil {
		return nil, err
	}

	return &redisDashboardCache{
		client: client,
		ttl:    ttl,
	}, nil
}

func NewNoopDashboardCache() DashboardSummaryCache {
	return &noopDashboardCache{}
}

func (c *redisDashboardCache) GetSummary(ctx context.Context, snapshotAt time.Time) (*domain.DashboardSummary, bool, error) {
	key := buildDashboardSummaryKey(snapshotAt)

	payload, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get failed: %w", err)
	}

	var summary domain.DashboardSummary
	if err := json.Unmarshal(payload, &summary); err != nil {
		return nil, false, fmt.Errorf("decode dashboard summary cache: %w", err)
	}

	return &summary, true, nil
}

func (c *redisDashboardCache) SetSummary(ctx context.Context, snapshotAt time.Time, summary *domain.DashboardSummary) error {
	key := buildDashboardSummaryKey(snapshotAt)
	payload, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("encode dashboard summary cache: %w", err)
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}

	return nil
}

func (c *redisDashboardCache) InvalidateAll(ctx context.Context) error {
	return deleteKeysWithPrefix(ctx, c.client, dashboardSummaryKeyPrefix, scanBatchSize)
}

func (n *noopDashboardCache) GetSummary(ctx context.Context, snapshotAt time.Time) (*domain.DashboardSummary, bool, error) {
	return nil, false, nil
}

func (n *noopDashboardCache) SetSummary(ctx context.Context, snapshotAt time.Time, summary *domain.DashboardSummary) error {
	return nil
}

func (n *noopDashboardCache) InvalidateAll(ctx context.Context) error {
	return nil
}

func buildDashboardSummaryKey(snapshotAt time.Time) string {
	raw := snapshotAt.UTC().Format(time.RFC3339Nano)
	hash := sha1.Sum([]byte(raw))
	return fmt.Sprintf("%s:%s", dashboardSummaryKeyPrefix, hex.EncodeToString(hash[:]))
}
