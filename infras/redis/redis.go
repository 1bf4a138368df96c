package redis

import (
	"context"
	"net"
	"time"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"todolist/config"
)

const pingTimeout = 2 * time.Second

// New builds the client backing the rate limiter. The client dials lazily;
// it is only pinged when the limiter is enabled, and a failed ping is logged
// because the limiter lets requests through when the cache is down.
func New(config *config.Config) (*goRedis.Client, func()) {
	redisConfig := config.Cache.Redis

	client := goRedis.NewClient(&goRedis.Options{
		Addr:     net.JoinHostPort(redisConfig.Host, redisConfig.Port),
		Password: redisConfig.Password,
		DB:       redisConfig.DB,
	})

	cleanup := func() {
		if err := client.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close Redis client")
		}
	}

	if !config.App.RateLimiter.Enable {
		return client, cleanup
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Str("host", redisConfig.Host).Msg("Redis unreachable, rate limiting will let requests through")

		return client, cleanup
	}

	log.Info().
		Int("db", redisConfig.DB).
		Str("host", redisConfig.Host).
		Str("port", redisConfig.Port).
		Msg("Connected to Redis")

	return client, cleanup
}
