package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"shop_backend/internal/feature/catalog/domain/entity"
	"shop_backend/internal/feature/catalog/usecase"
)

// CachingProductRepository decorates a ProductRepository with Redis caching
// of list and single-product reads. Every write clears the namespace.
type CachingProductRepository struct {
	inner     usecase.ProductRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.ProductRepository = (*CachingProductRepository)(nil)

// NewCachingProductRepository wraps inner. A nil rdb disables caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "products".
func NewCachingProductRepository(rdb *redis.Client, ttl time.Duration, inner usecase.ProductRepository, namespace string) *CachingProductRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "products"
	}
	return &CachingProductRepository{inner: inner, rdb: rdb, ttl: ttl, namespace: namespace}
}

func (c *CachingProductRepository) List(ctx context.Context, f entity.ProductFilter) ([]entity.Product, error) {
	if c.rdb == nil {
		return c.inner.List(ctx, f)
	}
	return readThrough(ctx, c.rdb, c.listKey(f), c.ttl, func() ([]entity.Product, error) {
		return c.inner.List(ctx, f)
	})
}

func (c *CachingProductRepository) FindByID(ctx context.Context, id uint) (*entity.Product, error) {
	if c.rdb == nil {
		return c.inner.FindByID(ctx, id)
	}
	return readThrough(ctx, c.rdb, fmt.Sprintf("%s:id:%d", c.namespace, id), c.ttl, func() (*entity.Product, error) {
		return c.inner.FindByID(ctx, id)
	})
}

func (c *CachingProductRepository) Create(ctx context.Context, p *entity.Product) error {
	return c.write(ctx, func() error { return c.inner.Create(ctx, p) })
}

func (c *CachingProductRepository) Update(ctx context.Context, p *entity.Product) error {
	return c.write(ctx, func() error { return c.inner.Update(ctx, p) })
}

func (c *CachingProductRepository) Delete(ctx context.Context, id uint) error {
	return c.write(ctx, func() error { return c.inner.Delete(ctx, id) })
}

func (c *CachingProductRepository) AddImage(ctx context.Context, img *entity.ProductImage) error {
	return c.write(ctx, func() error { return c.inner.AddImage(ctx, img) })
}

// Invalidate drops every cached product read. Stock changes made outside this
// repository (checkout, cancellation) call it.
func (c *CachingProductRepository) Invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	if err := deleteByPattern(ctx, c.rdb, c.namespace+":*"); err != nil {
		slog.Warn("product cache invalidation failed", "error", err)
	}
}

func (c *CachingProductRepository) write(ctx context.Context, fn func() error) error {
	if err := fn(); err != nil {
		return err
	}
	c.Invalidate(ctx)
	return nil
}

func (c *CachingProductRepository) listKey(f entity.ProductFilter) string {
	return fmt.Sprintf("%s:list:c%s:b%s:s%s:l%d:o%d:i%t",
		c.namespace,
		optID(f.CategoryID),
		optID(f.BrandID),
		searchKey(f.Search),
		f.Limit,
		f.Offset,
		f.WithImages,
	)
}

func optID(id *uint) string {
	if id == nil {
		return "_"
	}
	return fmt.Sprint(*id)
}
