// Package cache memoises expensive catalog queries for a fixed time-to-live.
// Values are stored JSON encoded, so a hit is a copy of the value as it was
// written and never aliases caller memory.
package cache

import (
	"context"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

const DefaultTTL = 10 * time.Minute

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Cache interface {
	// Get decodes the value stored under key into dest and reports whether
	// a live entry was found.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	// Set stores value under key with the cache's fixed TTL.
	Set(ctx context.Context, key string, value interface{}) error
	Delete(ctx context.Context, keys ...string) error
}

// Key builds a deterministic cache key from normalised parts.
func Key(parts ...string) string {
	normalized := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.Join(strings.Fields(strings.ToLower(part)), " ")
		if part != "" {
			normalized = append(normalized, part)
		}
	}
	return strings.Join(normalized, ":")
}

// Remember returns the cached value for key, or computes, stores and returns
// it. Cache failures are logged and never change the result.
func Remember[T any](ctx context.Context, c Cache, key string, compute func(ctx context.Context) (T, error)) (T, error) {
	var cached T
	if c == nil {
		return compute(ctx)
	}

	found, err := c.Get(ctx, key, &cached)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"key":   key,
			"error": err.Error(),
		}).Warn("Cache read failed, computing value")
	}
	if found && err == nil {
		return cached, nil
	}

	value, err := compute(ctx)
	if err != nil {
		return value, err
	}

	if err := c.Set(ctx, key, value); err != nil {
		logrus.WithFields(logrus.Fields{
			"key":   key,
			"error": err.Error(),
		}).Warn("Cache write failed")
	}

	return value, nil
}

type nopCache struct{}

// NewNop returns a cache that never stores anything.
func NewNop() Cache {
	return nopCache{}
}

func (nopCache) Get(context.Context, string, interface{}) (bool, error) { return false, nil }
func (nopCache) Set(context.Context, string, interface{}) error         { return nil }
func (nopCache) Delete(context.Context, ...string) error                { return nil }
