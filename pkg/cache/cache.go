package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// DefaultTTL is how long reference data (groups, role definitions) is kept.
const DefaultTTL = 3 * time.Hour

// Cache is a best-effort cache-aside helper over redis. A nil *Cache is
// valid and always falls through to the fetch function.
type Cache struct {
	client     redis.UniversalClient
	logContext logrus.FieldLogger
}

func NewCache(address string, password string, logContext logrus.FieldLogger) *Cache {
	client := redis.NewClient(&redis.Options{
		Addr:     address,
		Password: password,
	})

	return &Cache{
		client:     client,
		logContext: logContext,
	}
}

// GetOrSet returns the cached value under key, or invokes fetch and stores
// the result with the given TTL. Cache failures are logged and swallowed,
// the fetched value is always returned.
func (c *Cache) GetOrSet(ctx context.Context, key string, ttl time.Duration, target interface{}, fetch func() (interface{}, error)) error {
	if c != nil {
		cached, err := c.client.Get(ctx, key).Result()
		if err == nil {
			if err := json.Unmarshal([]byte(cached), target); err == nil {
				return nil
			}
			// Unreadable entries are dropped and refetched.
			c.client.Del(ctx, key)
		} else if err != redis.Nil {
			c.logContext.WithFields(logrus.Fields{
				"error": err,
				"key":   key,
			}).Warn("cache lookup failed")
		}
	}

	value, err := fetch()
	if err != nil {
		return err
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}

	if c != nil {
		if err := c.client.Set(ctx, key, encoded, ttl).Err(); err != nil {
			c.logContext.WithFields(logrus.Fields{
				"error": err,
				"key":   key,
			}).Warn("cache store failed")
		}
	}

	return json.Unmarshal(encoded, target)
}

// Delete removes a cached entry, used when reference data is known to change.
func (c *Cache) Delete(ctx context.Context, key string) {
	if c == nil {
		return
	}
	if err := c.client.Del(ctx, key).Err(); err != nil {
		c.logContext.WithFields(logrus.Fields{
			"error": err,
			"key":   key,
		}).Warn("cache delete failed")
	}
}
