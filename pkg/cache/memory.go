package cache

import (
	"context"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

type memoryCache struct {
	store *gocache.Cache
	ttl   time.Duration
}

// NewMemory returns an in-process cache. Expired entries are invisible to Get
// immediately and are purged by a janitor every ttl.
func NewMemory(ttl time.Duration) Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &memoryCache{
		store: gocache.New(ttl, ttl),
		ttl:   ttl,
	}
}

func (m *memoryCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	raw, ok := m.store.Get(key)
	if !ok {
		return false, nil
	}

	data, ok := raw.([]byte)
	if !ok {
		m.store.Delete(key)
		return false, fmt.Errorf("unexpected cache entry type %T for key %s", raw, key)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (m *memoryCache) Set(_ context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.store.Set(key, data, m.ttl)
	return nil
}

func (m *memoryCache) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		m.store.Delete(key)
	}
	return nil
}
