// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"movie_backend/internal/feature/catalog/domain/entity"
	"movie_backend/internal/feature/catalog/usecase"
)

// CachingCatalogRepository decorates a CatalogRepository with Redis caching
// for the slow-moving lookups (movie details, the genre list). It
// implements the decorator pattern, transparently adding caching without
// modifying the underlying repository.
//
// Membership state is never cached here; only provider catalog data is.
// The TTL is an advisory freshness hint, not a contract: an expired entry
// just means the next call goes upstream again.
type CachingCatalogRepository struct {
	inner     usecase.CatalogRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// CachingCatalogRepositoryがCatalogRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.CatalogRepository = (*CachingCatalogRepository)(nil)

// NewCachingCatalogRepository decorates a CatalogRepository with Redis caching.
// If ttl is 0, it defaults to 12 hours. If namespace is empty, it uses "catalog".
// A nil Redis client disables caching entirely: every call goes straight through.
func NewCachingCatalogRepository(rdb *redis.Client, ttl time.Duration, inner usecase.CatalogRepository, namespace string) *CachingCatalogRepository {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	if namespace == "" {
		namespace = "catalog"
	}
	return &CachingCatalogRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Details retrieves a movie detail, checking cache first then falling back
// to the provider.
func (c *CachingCatalogRepository) Details(ctx context.Context, id int) (*entity.MovieDetail, error) {
	if c.rdb == nil {
		return c.inner.Details(ctx, id)
	}

	key := fmt.Sprintf("%s:movie:%d", c.namespace, id)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.MovieDetail
		if err := json.Unmarshal(b, &out); err == nil {
			return &out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to the provider
	out, err := c.inner.Details(ctx, id)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// Genres retrieves the genre list, checking cache first then falling back
// to the provider.
func (c *CachingCatalogRepository) Genres(ctx context.Context) ([]entity.Genre, error) {
	if c.rdb == nil {
		return c.inner.Genres(ctx)
	}

	key := c.namespace + ":genres"

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Genre
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.Genres(ctx)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// The list endpoints change too often to be worth caching; they pass
// straight through to the provider.

func (c *CachingCatalogRepository) Trending(ctx context.Context) (*entity.Page, error) {
	return c.inner.Trending(ctx)
}

func (c *CachingCatalogRepository) Popular(ctx context.Context, page int) (*entity.Page, error) {
	return c.inner.Popular(ctx, page)
}

func (c *CachingCatalogRepository) TopRated(ctx context.Context, page int) (*entity.Page, error) {
	return c.inner.TopRated(ctx, page)
}

func (c *CachingCatalogRepository) Search(ctx context.Context, query string, page int) (*entity.Page, error) {
	return c.inner.Search(ctx, query, page)
}

func (c *CachingCatalogRepository) ByGenre(ctx context.Context, genreID, page int) (*entity.Page, error) {
	return c.inner.ByGenre(ctx, genreID, page)
}
