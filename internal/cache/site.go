// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// site.go provides a Valkey-backed cache of resolved published sites.
// When a public site is looked up by slug, the serialized result is
// stored so subsequent viewers skip the store entirely. Invalidated
// whenever a project changes.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// siteKeyPrefix is the Valkey key prefix for cached sites.
	siteKeyPrefix = "site:"

	// DefaultSiteTTL is how long a resolved site stays cached.
	DefaultSiteTTL = 5 * time.Minute
)

// SiteCache caches serialized published sites by slug. A nil *SiteCache
// is valid and behaves as a cache that always misses, so callers need no
// enabled/disabled branching.
type SiteCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSiteCache creates a site cache backed by the given Valkey client.
func NewSiteCache(client *redis.Client, ttl time.Duration) *SiteCache {
	if ttl == 0 {
		ttl = DefaultSiteTTL
	}
	return &SiteCache{client: client, ttl: ttl}
}

// Get retrieves the cached site payload for a slug. Returns false on miss.
func (sc *SiteCache) Get(ctx context.Context, slug string) ([]byte, bool) {
	if sc == nil {
		return nil, false
	}
	val, err := sc.client.Get(ctx, siteKeyPrefix+slug).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("site cache get error", "slug", slug, "error", err)
		return nil, false
	}
	slog.Debug("site cache hit", "slug", slug)
	return val, true
}

// Set stores a serialized site for a slug with the configured TTL.
func (sc *SiteCache) Set(ctx context.Context, slug string, payload []byte) {
	if sc == nil {
		return
	}
	if err := sc.client.Set(ctx, siteKeyPrefix+slug, payload, sc.ttl).Err(); err != nil {
		slog.Warn("site cache set error", "slug", slug, "error", err)
	}
}

// Invalidate removes a single site from the cache by its slug.
func (sc *SiteCache) Invalidate(ctx context.Context, slug string) {
	if sc == nil {
		return
	}
	if err := sc.client.Del(ctx, siteKeyPrefix+slug).Err(); err != nil {
		slog.Warn("site cache invalidate error", "slug", slug, "error", err)
	}
	slog.Debug("site cache invalidated", "slug", slug)
}
