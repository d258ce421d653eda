package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/reef-world/finsync/pkg/domain/interfaces"
	"github.com/reef-world/finsync/pkg/repository/memory"
	"github.com/reef-world/finsync/pkg/repository/redis"
	"github.com/reef-world/finsync/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// ScoreCache holds CLI flags for the location average cache backend
type ScoreCache struct {
	backend  string
	redisURL string
}

// Flags returns CLI flags for score cache configuration
func (c *ScoreCache) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "score-cache-backend",
			Usage:       "Score cache backend type (redis or memory)",
			Value:       "memory",
			Sources:     cli.EnvVars("FINSYNC_SCORE_CACHE_BACKEND"),
			Destination: &c.backend,
		},
		&cli.StringFlag{
			Name:        "redis-url",
			Usage:       "Redis connection URL (required when using redis backend)",
			Sources:     cli.EnvVars("FINSYNC_REDIS_URL"),
			Destination: &c.redisURL,
		},
	}
}

// LogValue masks the Redis URL, which may embed credentials
func (c ScoreCache) LogValue() slog.Value {
	configured := "(not set)"
	if c.redisURL != "" {
		configured = "(configured)"
	}
	return slog.GroupValue(
		slog.String("backend", c.backend),
		slog.String("redis_url", configured),
	)
}

// Configure initializes the score cache for the configured backend
func (c *ScoreCache) Configure(ctx context.Context) (interfaces.ScoreCache, error) {
	switch c.backend {
	case "redis":
		if c.redisURL == "" {
			return nil, goerr.New("redis-url is required when using redis backend")
		}
		cache, err := redis.New(ctx, c.redisURL)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to initialize redis score cache")
		}
		logging.Default().Info("Using Redis score cache")
		return cache, nil

	case "memory":
		logging.Default().Info("Using in-memory score cache (development mode)")
		return memory.NewScoreCache(), nil

	default:
		return nil, goerr.New("invalid score cache backend", goerr.V("backend", c.backend))
	}
}
