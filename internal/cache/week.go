// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// week.go provides a Valkey-backed cache for week content lookups. A
// generated week's item list changes rarely between reads, so responses
// are cached for a few minutes and invalidated on any save into the week.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"greenpress/internal/models"
)

const (
	// weekKeyPrefix is the Valkey key prefix for cached week lookups.
	weekKeyPrefix = "week:"

	// DefaultWeekTTL is how long a week's item list stays cached.
	DefaultWeekTTL = 5 * time.Minute
)

// WeekCache caches week lookup results in Valkey. All failures degrade to
// a cache miss with a warning; callers always fall through to the store.
type WeekCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewWeekCache creates a week cache backed by the given Valkey client.
func NewWeekCache(client *redis.Client, ttl time.Duration) *WeekCache {
	if ttl == 0 {
		ttl = DefaultWeekTTL
	}
	return &WeekCache{client: client, ttl: ttl}
}

// Get retrieves the cached item list for a week id. The second return is
// false on a miss or any cache error.
func (wc *WeekCache) Get(ctx context.Context, weekID string) ([]models.ContentItem, bool) {
	val, err := wc.client.Get(ctx, weekKeyPrefix+weekID).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("week cache get error", "week_id", weekID, "error", err)
		return nil, false
	}

	var items []models.ContentItem
	if err := json.Unmarshal(val, &items); err != nil {
		slog.Warn("week cache decode error", "week_id", weekID, "error", err)
		return nil, false
	}
	slog.Debug("week cache hit", "week_id", weekID)
	return items, true
}

// Set stores a week's item list with the configured TTL.
func (wc *WeekCache) Set(ctx context.Context, weekID string, items []models.ContentItem) {
	val, err := json.Marshal(items)
	if err != nil {
		slog.Warn("week cache encode error", "week_id", weekID, "error", err)
		return
	}
	if err := wc.client.Set(ctx, weekKeyPrefix+weekID, val, wc.ttl).Err(); err != nil {
		slog.Warn("week cache set error", "week_id", weekID, "error", err)
	}
}

// Invalidate removes a week from the cache after any write into it.
func (wc *WeekCache) Invalidate(ctx context.Context, weekID string) {
	if err := wc.client.Del(ctx, weekKeyPrefix+weekID).Err(); err != nil {
		slog.Warn("week cache invalidate error", "week_id", weekID, "error", err)
	}
	slog.Debug("week cache invalidated", "week_id", weekID)
}

// Ping verifies cache reachability for the health probe.
func (wc *WeekCache) Ping(ctx context.Context) error {
	return wc.client.Ping(ctx).Err()
}
