package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	appErrors "github.com/exemplo/crudmongo-api/pkg/errors"
)

// CacheRepository abstracts persistence for cached payloads.
type CacheRepository interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
	Generation(ctx context.Context, key string) (int64, error)
	Incr(ctx context.Context, key string) (int64, error)
}

// CacheService is a best-effort read-through cache: backend failures are
// logged and reported as misses, never returned to callers.
//
// Entries are keyed by the collection's generation, which every write bumps.
// A read that loaded from the store before a concurrent write can only fill a
// generation no reader looks at anymore; stale entries expire with the TTL.
type CacheService struct {
	repo    CacheRepository
	metrics *MetricsService
	ttl     time.Duration
	logger  *zap.Logger
}

// NewCacheService constructs a cache service. A nil repo disables caching.
func NewCacheService(repo CacheRepository, metrics *MetricsService, ttl time.Duration, logger *zap.Logger) *CacheService {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CacheService{repo: repo, metrics: metrics, ttl: ttl, logger: logger}
}

// Enabled indicates whether caching is active.
func (s *CacheService) Enabled() bool {
	return s != nil && s.repo != nil
}

// Lookup fills dest and reports true on a hit.
func (s *CacheService) Lookup(ctx context.Context, key string, dest interface{}) bool {
	if !s.Enabled() {
		return false
	}
	err := s.repo.Get(ctx, key, dest)
	s.metrics.RecordCacheLookup(err == nil)
	if err != nil && !errors.Is(err, appErrors.ErrCacheMiss) {
		s.logger.Warn("cache get failed", zap.String("key", key), zap.Error(err))
	}
	return err == nil
}

// Store caches value under key with the configured TTL.
func (s *CacheService) Store(ctx context.Context, key string, value interface{}) {
	if !s.Enabled() {
		return
	}
	start := time.Now()
	err := s.repo.Set(ctx, key, value, s.ttl)
	s.metrics.ObserveCacheWrite(time.Since(start))
	if err != nil {
		s.logger.Warn("cache set failed", zap.String("key", key), zap.Error(err))
	}
}

// Invalidate moves the collection to a new generation and drops the previous one.
func (s *CacheService) Invalidate(ctx context.Context, collection string) {
	if !s.Enabled() {
		return
	}
	gen, err := s.repo.Incr(ctx, generationKey(collection))
	if err != nil {
		s.logger.Warn("cache generation bump failed", zap.String("collection", collection), zap.Error(err))
		return
	}
	pattern := fmt.Sprintf("%s:g%d:*", collection, gen-1)
	if err := s.repo.DeleteByPattern(ctx, pattern); err != nil {
		s.logger.Warn("cache invalidate failed", zap.String("pattern", pattern), zap.Error(err))
	}
}

// generation returns the current generation of collection; false means the
// cache must be bypassed for this call.
func (s *CacheService) generation(ctx context.Context, collection string) (int64, bool) {
	if !s.Enabled() {
		return 0, false
	}
	gen, err := s.repo.Generation(ctx, generationKey(collection))
	if err != nil {
		s.logger.Warn("cache generation lookup failed", zap.String("collection", collection), zap.Error(err))
		return 0, false
	}
	return gen, true
}

func generationKey(collection string) string {
	return collection + ":gen"
}

func listCacheKey(collection string, gen int64) string {
	return fmt.Sprintf("%s:g%d:list", collection, gen)
}

func itemCacheKey(collection string, gen int64, id string) string {
	return fmt.Sprintf("%s:g%d:id:%s", collection, gen, id)
}

// cached serves the key built by keyFn from cache when possible, otherwise
// calls load and caches its result under the generation read before loading.
func cached[V any](ctx context.Context, cache *CacheService, collection string, keyFn func(gen int64) string, load func(context.Context) (V, error)) (V, error) {
	gen, ok := cache.generation(ctx, collection)
	if !ok {
		return load(ctx)
	}
	key := keyFn(gen)

	var hit V
	if cache.Lookup(ctx, key, &hit) {
		return hit, nil
	}
	value, err := load(ctx)
	if err != nil {
		return value, err
	}
	cache.Store(ctx, key, value)
	return value, nil
}
