package conversation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"GlamoraBackend/pkg/intent"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "chat:session:"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type redisStore struct {
	client *redis.Client
	ttl    time.Duration
	now    func() time.Time
}

// NewRedisStore keeps contexts in redis as JSON documents that expire ttl
// after their last write. Callers serialise updates of one session with
// KeyedMutex; the store itself does not lock.
func NewRedisStore(client *redis.Client, ttl time.Duration) Store {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &redisStore{
		client: client,
		ttl:    ttl,
		now:    time.Now,
	}
}

func (r *redisStore) Get(ctx context.Context, sessionID string) (*Context, error) {
	convo, found, err := r.read(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if found {
		return convo, nil
	}

	convo = newContext(sessionID, r.now())
	if err := r.write(ctx, convo); err != nil {
		return nil, err
	}
	return convo, nil
}

func (r *redisStore) Update(ctx context.Context, sessionID string, in intent.Intent, query string, preferences ...string) error {
	convo, found, err := r.read(ctx, sessionID)
	if err != nil {
		return err
	}
	if !found {
		convo = newContext(sessionID, r.now())
	}

	convo.apply(in, query, preferences, r.now())
	return r.write(ctx, convo)
}

func (r *redisStore) Delete(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, sessionKeyPrefix+sessionID).Err()
}

func (r *redisStore) Exists(ctx context.Context, sessionID string) (bool, error) {
	n, err := r.client.Exists(ctx, sessionKeyPrefix+sessionID).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check session %s: %w", sessionID, err)
	}
	return n > 0, nil
}

func (r *redisStore) read(ctx context.Context, sessionID string) (*Context, bool, error) {
	data, err := r.client.Get(ctx, sessionKeyPrefix+sessionID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	} else if err != nil {
		return nil, false, fmt.Errorf("failed to read session %s: %w", sessionID, err)
	}

	var convo Context
	if err := json.Unmarshal(data, &convo); err != nil {
		return nil, false, fmt.Errorf("failed to decode session %s: %w", sessionID, err)
	}
	return &convo, true, nil
}

func (r *redisStore) write(ctx context.Context, convo *Context) error {
	data, err := json.Marshal(convo)
	if err != nil {
		return fmt.Errorf("failed to encode session %s: %w", convo.SessionID, err)
	}
	return r.client.Set(ctx, sessionKeyPrefix+convo.SessionID, data, r.ttl).Err()
}
