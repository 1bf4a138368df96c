package cache

//go:generate go run go.uber.org/mock/mockgen -source=./cache.go -destination=./mocks/cache_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"todolist/infras/otel"
)

const (
	otelScopeName         = "cache"
	otelCacheKeyAttribute = "cache.key"
)

type RedisCache interface {
	// Increment bumps the counter at key and returns the new value. The
	// window starts with the first increment and is not extended by later
	// ones.
	Increment(ctx context.Context, key string, windowSeconds int) (int64, error)
}

type redisCache struct {
	client *redis.Client
	otel   otel.Otel
}

func NewRedisCache(client *redis.Client, ot otel.Otel) RedisCache {
	return &redisCache{
		client: client,
		otel:   ot,
	}
}

// Increment implements RedisCache.
func (cache *redisCache) Increment(ctx context.Context, key string, windowSeconds int) (count int64, err error) {
	ctx, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Increment")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	window := time.Second * time.Duration(windowSeconds)

	pipe := cache.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	ttl := pipe.TTL(ctx, key)

	if _, err = pipe.Exec(ctx); err != nil {
		log.Error().Err(err).Str("key", key).Str("RedisCache", "Increment").Msg("failed to increment counter")

		return 0, fmt.Errorf("failed to increment cache value: %w", err)
	}

	// A negative TTL means the window is not set yet. EXPIRE NX needs
	// Redis 7, so the expiry is applied separately.
	if ttl.Val() < 0 {
		if err = cache.client.Expire(ctx, key, window).Err(); err != nil {
			log.Error().Err(err).Str("key", key).Str("RedisCache", "Increment").Msg("failed to set counter window")

			return 0, fmt.Errorf("failed to set cache expiry: %w", err)
		}
	}

	return incr.Val(), nil
}
