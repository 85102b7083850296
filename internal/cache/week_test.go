// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"greenpress/internal/models"
)

// testValkeyClient returns a Redis client for tests.
// Skips if Valkey is unavailable.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15, // Use DB 15 for tests.
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping integration test: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, "week:*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})

	return client
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func cachedItems() []models.ContentItem {
	now := time.Date(2025, time.July, 8, 9, 0, 0, 0, time.UTC)
	return []models.ContentItem{
		{
			ID:        uuid.New(),
			Title:     "Cached Item",
			Body:      "<p>Body.</p>",
			Platform:  models.PlatformBlog,
			Subtype:   models.SubtypeBlogPost,
			Status:    models.StatusDraft,
			Keywords:  []string{"gardening"},
			WeekID:    "week-2025-07-07",
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

func TestWeekCacheSetGet(t *testing.T) {
	client := testValkeyClient(t)
	wc := NewWeekCache(client, time.Minute)
	ctx := context.Background()

	weekID := "week-2025-07-07-cache"
	items := cachedItems()

	if _, hit := wc.Get(ctx, weekID); hit {
		t.Fatal("unexpected hit before set")
	}

	wc.Set(ctx, weekID, items)

	got, hit := wc.Get(ctx, weekID)
	if !hit {
		t.Fatal("miss after set")
	}
	if len(got) != 1 || got[0].Title != "Cached Item" {
		t.Errorf("cached items: %+v", got)
	}
	if got[0].ID != items[0].ID {
		t.Errorf("id changed through cache: %s vs %s", got[0].ID, items[0].ID)
	}
}

func TestWeekCacheInvalidate(t *testing.T) {
	client := testValkeyClient(t)
	wc := NewWeekCache(client, time.Minute)
	ctx := context.Background()

	weekID := "week-2025-07-07-invalidate"
	wc.Set(ctx, weekID, cachedItems())
	wc.Invalidate(ctx, weekID)

	if _, hit := wc.Get(ctx, weekID); hit {
		t.Error("hit after invalidation")
	}
}

func TestWeekCacheTTL(t *testing.T) {
	client := testValkeyClient(t)
	wc := NewWeekCache(client, time.Minute)
	ctx := context.Background()

	weekID := "week-2025-07-07-ttl"
	wc.Set(ctx, weekID, cachedItems())

	ttl, err := client.TTL(ctx, "week:"+weekID).Result()
	if err != nil {
		t.Fatal(err)
	}
	if ttl <= 0 || ttl > time.Minute {
		t.Errorf("ttl: %v", ttl)
	}
}

func TestWeekCacheEmptyList(t *testing.T) {
	client := testValkeyClient(t)
	wc := NewWeekCache(client, time.Minute)
	ctx := context.Background()

	// An empty week caches as a hit with zero items, not a miss.
	weekID := "week-2025-07-07-empty"
	wc.Set(ctx, weekID, []models.ContentItem{})

	got, hit := wc.Get(ctx, weekID)
	if !hit {
		t.Fatal("miss for cached empty list")
	}
	if len(got) != 0 {
		t.Errorf("items: %+v", got)
	}
}

func TestWeekCacheDefaultTTL(t *testing.T) {
	wc := NewWeekCache(nil, 0)
	if wc.ttl != DefaultWeekTTL {
		t.Errorf("ttl: %v", wc.ttl)
	}
}
