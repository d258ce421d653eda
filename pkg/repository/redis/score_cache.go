package redis

import (
	"context"
	"errors"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/redis/go-redis/v9"
	"github.com/reef-world/finsync/pkg/domain/interfaces"
	"github.com/reef-world/finsync/pkg/domain/model"
)

const keyPrefix = "finsync:score_avg:"

// ScoreCache stores location averages in Redis. TTL handling is native:
// entries disappear on their own after the configured expiry.
type ScoreCache struct {
	client *redis.Client
}

var _ interfaces.ScoreCache = &ScoreCache{}

// New parses redisURL, verifies connectivity and returns a ScoreCache
func New(ctx context.Context, redisURL string) (*ScoreCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse redis URL")
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, goerr.Wrap(err, "redis ping failed")
	}

	return &ScoreCache{client: client}, nil
}

func (c *ScoreCache) Put(ctx context.Context, averages []model.LocationAverage, ttl time.Duration) error {
	pipe := c.client.Pipeline()
	for _, avg := range averages {
		pipe.Set(ctx, keyPrefix+avg.Key(), avg.Average, ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return goerr.Wrap(err, "failed to store location averages", goerr.V("count", len(averages)))
	}
	return nil
}

func (c *ScoreCache) Get(ctx context.Context, country, location string) (float64, error) {
	key := keyPrefix + model.LocationAverage{Country: country, Location: location}.Key()

	avg, err := c.client.Get(ctx, key).Float64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, goerr.Wrap(model.ErrScoreNotFound, "no cached average",
				goerr.V("country", country), goerr.V("location", location))
		}
		return 0, goerr.Wrap(err, "failed to get location average", goerr.V("key", key))
	}
	return avg, nil
}

func (c *ScoreCache) Close() error {
	return c.client.Close()
}
