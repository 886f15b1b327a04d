package server

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/exemplo/crudmongo-api/internal/models"
	"github.com/exemplo/crudmongo-api/internal/repository"
	"github.com/exemplo/crudmongo-api/internal/service"
	"github.com/exemplo/crudmongo-api/internal/store"
	"github.com/exemplo/crudmongo-api/pkg/cache"
	"github.com/exemplo/crudmongo-api/pkg/config"
	"github.com/exemplo/crudmongo-api/pkg/database"
)

// OpenStore connects the document store selected by cfg.Store.Driver.
func OpenStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (store.Store, error) {
	switch cfg.Store.Driver {
	case config.DriverMongo:
		client, err := database.NewMongo(ctx, cfg.Mongo)
		if err != nil {
			return nil, err
		}
		logger.Info("mongo store connected", zap.String("database", cfg.Mongo.Database))
		return store.NewMongoStore(client, cfg.Mongo.Database, cfg.Store.Timeout), nil
	case config.DriverPostgres:
		db, err := database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		pg := store.NewPostgresStore(db, cfg.Store.Timeout)
		for _, collection := range models.Collections {
			if err := pg.EnsureCollection(ctx, collection); err != nil {
				_ = db.Close()
				return nil, fmt.Errorf("prepare collection %s: %w", collection, err)
			}
		}
		logger.Info("postgres store connected", zap.String("database", cfg.Database.Name))
		return pg, nil
	case config.DriverMemory:
		logger.Warn("using in-memory store; data is lost on restart")
		return store.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
	}
}

// OpenCache returns the read-through cache and the Redis client behind it.
// An unreachable Redis disables caching instead of failing startup.
func OpenCache(ctx context.Context, cfg *config.Config, metrics *service.MetricsService, logger *zap.Logger) (*service.CacheService, *redis.Client) {
	if !cfg.Cache.Enabled {
		return service.NewCacheService(nil, metrics, cfg.Cache.TTL, logger), nil
	}

	client, err := cache.NewRedis(ctx, cfg.Redis, cfg.Store.Timeout)
	if err != nil {
		logger.Warn("redis unavailable, cache disabled", zap.Error(err))
		return service.NewCacheService(nil, metrics, cfg.Cache.TTL, logger), nil
	}

	logger.Info("redis cache enabled", zap.Duration("ttl", cfg.Cache.TTL))
	return service.NewCacheService(repository.NewCacheRepository(client), metrics, cfg.Cache.TTL, logger), client
}
