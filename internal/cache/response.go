// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// response.go provides a Valkey-backed cache for serialized JSON API
// responses. Category trees and menus are expensive to assemble (several
// queries plus tree shaping), so the encoded response body is stored per
// locale and country and served directly on subsequent requests.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// respKeyPrefix is the Valkey key prefix for cached responses.
	respKeyPrefix = "resp:"

	// DefaultResponseTTL is how long an assembled response stays cached.
	DefaultResponseTTL = time.Hour
)

// ResponseCache manages JSON response caching in Valkey.
type ResponseCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewResponseCache creates a response cache backed by the given Valkey client.
func NewResponseCache(client *redis.Client, ttl time.Duration) *ResponseCache {
	if ttl == 0 {
		ttl = DefaultResponseTTL
	}
	return &ResponseCache{client: client, ttl: ttl}
}

// Get retrieves a cached response body. Returns false on miss.
func (rc *ResponseCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := rc.client.Get(ctx, respKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("response cache get error", "key", key, "error", err)
		return nil, false
	}
	slog.Debug("response cache hit", "key", key)
	return val, true
}

// Set stores an encoded response body with the configured TTL.
func (rc *ResponseCache) Set(ctx context.Context, key string, body []byte) {
	if err := rc.client.Set(ctx, respKeyPrefix+key, body, rc.ttl).Err(); err != nil {
		slog.Warn("response cache set error", "key", key, "error", err)
	}
}

// Invalidate removes a single cached response.
func (rc *ResponseCache) Invalidate(ctx context.Context, key string) {
	if err := rc.client.Del(ctx, respKeyPrefix+key).Err(); err != nil {
		slog.Warn("response cache invalidate error", "key", key, "error", err)
	}
	slog.Debug("response cache invalidated", "key", key)
}

// InvalidateAll removes every cached response by scanning for the prefix.
// Used after any category, article or product write, since trees and
// menus for every locale and country could be affected.
func (rc *ResponseCache) InvalidateAll(ctx context.Context) {
	var cursor uint64
	var deleted int
	for {
		keys, nextCursor, err := rc.client.Scan(ctx, cursor, respKeyPrefix+"*", 100).Result()
		if err != nil {
			slog.Warn("response cache scan error", "error", err)
			return
		}
		if len(keys) > 0 {
			if err := rc.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("response cache bulk delete error", "error", err)
			}
			deleted += len(keys)
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		slog.Info("response cache fully cleared", "deleted", deleted)
	}
}

// MenuKey returns the cache key for an assembled menu.
func MenuKey(locale, country string) string {
	if country == "" {
		country = "any"
	}
	return "menu:" + locale + ":" + country
}

// CategoriesKey returns the cache key for a category tree.
func CategoriesKey(locale, country string) string {
	if country == "" {
		country = "any"
	}
	return "categories:" + locale + ":" + country
}
