package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"shop_backend/internal/feature/deal/domain/entity"
	"shop_backend/internal/feature/deal/usecase"
)

// CachingDealRepository caches the active-deal read until the next local
// midnight, when the set of running deals can change.
type CachingDealRepository struct {
	inner     usecase.DealRepository
	rdb       *redis.Client
	loc       *time.Location
	namespace string
	now       func() time.Time
}

var _ usecase.DealRepository = (*CachingDealRepository)(nil)

// NewCachingDealRepository wraps inner. A nil rdb disables caching.
func NewCachingDealRepository(rdb *redis.Client, loc *time.Location, inner usecase.DealRepository, namespace string) *CachingDealRepository {
	if loc == nil {
		loc = time.UTC
	}
	if namespace == "" {
		namespace = "deals"
	}
	return &CachingDealRepository{inner: inner, rdb: rdb, loc: loc, namespace: namespace, now: time.Now}
}

func (c *CachingDealRepository) ListActive(ctx context.Context, day time.Time) ([]entity.Deal, error) {
	if c.rdb == nil {
		return c.inner.ListActive(ctx, day)
	}
	key := c.namespace + ":active:" + day.Format(time.DateOnly)
	ttl := TimeUntilNextMidnight(c.now(), c.loc)
	return readThrough(ctx, c.rdb, key, ttl, func() ([]entity.Deal, error) {
		return c.inner.ListActive(ctx, day)
	})
}

func (c *CachingDealRepository) List(ctx context.Context) ([]entity.Deal, error) {
	return c.inner.List(ctx)
}

func (c *CachingDealRepository) Create(ctx context.Context, d *entity.Deal) error {
	if err := c.inner.Create(ctx, d); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

func (c *CachingDealRepository) Delete(ctx context.Context, id uint) error {
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

func (c *CachingDealRepository) invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	if err := deleteByPattern(ctx, c.rdb, c.namespace+":*"); err != nil {
		slog.Warn("deal cache invalidation failed", "error", err)
	}
}
