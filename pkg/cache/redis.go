package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

type redisCache struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

// NewRedis returns a cache shared by every process connected to client. Keys
// are namespaced with prefix.
func NewRedis(client *redis.Client, ttl time.Duration, prefix string) Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &redisCache{
		client: client,
		ttl:    ttl,
		prefix: prefix,
	}
}

func (r *redisCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		logrus.WithField("key", key).Debug("Cache miss")
		return false, nil
	} else if err != nil {
		return false, err
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, err
	}

	logrus.WithField("key", key).Debug("Cache hit")
	return true, nil
}

func (r *redisCache) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.prefix+key, data, r.ttl).Err()
}

func (r *redisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	prefixed := make([]string, 0, len(keys))
	for _, key := range keys {
		prefixed = append(prefixed, r.prefix+key)
	}
	return r.client.Del(ctx, prefixed...).Err()
}
