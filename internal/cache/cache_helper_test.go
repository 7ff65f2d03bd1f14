package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestCache(t *testing.T) (*CacheHelper, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewCacheHelper(client, "test:"), mr
}

func TestCacheHelper_SetAndGet(t *testing.T) {
	ctx := context.Background()
	helper, mr := newTestCache(t)

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	if err := helper.Set(ctx, "key", payload{Name: "math", Count: 3}, time.Minute); err != nil {
		t.Fatalf("Failed to set cache value: %v", err)
	}

	var got payload
	if err := helper.Get(ctx, "key", &got); err != nil {
		t.Fatalf("Failed to get cache value: %v", err)
	}
	if got.Name != "math" || got.Count != 3 {
		t.Errorf("Unexpected cached value: %+v", got)
	}

	// Expired entries behave like misses.
	mr.FastForward(2 * time.Minute)
	if err := helper.Get(ctx, "key", &got); !errors.Is(err, ErrCacheNotFound) {
		t.Errorf("Expected ErrCacheNotFound after TTL, got %v", err)
	}
}

func TestCacheHelper_GetMiss(t *testing.T) {
	ctx := context.Background()
	helper, _ := newTestCache(t)

	var dest string
	if err := helper.Get(ctx, "missing", &dest); !errors.Is(err, ErrCacheNotFound) {
		t.Errorf("Expected ErrCacheNotFound, got %v", err)
	}
}

func TestCacheHelper_Delete(t *testing.T) {
	ctx := context.Background()
	helper, _ := newTestCache(t)

	if err := helper.Set(ctx, "a", "1", time.Minute); err != nil {
		t.Fatalf("Failed to set cache value: %v", err)
	}
	if err := helper.Set(ctx, "b", "2", time.Minute); err != nil {
		t.Fatalf("Failed to set cache value: %v", err)
	}

	if err := helper.Delete(ctx, "a", "b"); err != nil {
		t.Fatalf("Failed to delete cache values: %v", err)
	}

	var dest string
	if err := helper.Get(ctx, "a", &dest); !errors.Is(err, ErrCacheNotFound) {
		t.Errorf("Expected ErrCacheNotFound after delete, got %v", err)
	}
}

func TestCacheHelper_CacheOrExecute(t *testing.T) {
	ctx := context.Background()
	helper, _ := newTestCache(t)

	calls := 0
	fetch := func() (interface{}, error) {
		calls++
		return []string{"math", "science"}, nil
	}

	var first []string
	if err := helper.CacheOrExecute(ctx, "categories", &first, time.Minute, fetch); err != nil {
		t.Fatalf("Failed first cache-or-execute: %v", err)
	}
	if calls != 1 {
		t.Errorf("Expected 1 fetch call, got %d", calls)
	}

	var second []string
	if err := helper.CacheOrExecute(ctx, "categories", &second, time.Minute, fetch); err != nil {
		t.Fatalf("Failed second cache-or-execute: %v", err)
	}
	if calls != 1 {
		t.Errorf("Expected cached result without a second fetch, got %d calls", calls)
	}
	if len(second) != 2 || second[0] != "math" {
		t.Errorf("Unexpected cached result: %v", second)
	}
}

func TestCacheHelper_NilClientDegradesGracefully(t *testing.T) {
	ctx := context.Background()
	helper := NewCacheHelper(nil, "test:")

	if err := helper.Set(ctx, "key", "value", time.Minute); err != nil {
		t.Errorf("Expected nil-client set to be a no-op, got %v", err)
	}

	var dest string
	if err := helper.Get(ctx, "key", &dest); !errors.Is(err, ErrCacheNotAvailable) {
		t.Errorf("Expected ErrCacheNotAvailable, got %v", err)
	}

	// CacheOrExecute still serves data straight from the fetch function.
	var out []string
	err := helper.CacheOrExecute(ctx, "key", &out, time.Minute, func() (interface{}, error) {
		return []string{"math"}, nil
	})
	if err != nil {
		t.Fatalf("Failed cache-or-execute without client: %v", err)
	}
	if len(out) != 1 {
		t.Errorf("Unexpected result: %v", out)
	}
}

func TestCacheManager_NilClient(t *testing.T) {
	cm := NewCacheManager(nil)
	if err := cm.HealthCheck(context.Background()); !errors.Is(err, ErrCacheNotAvailable) {
		t.Errorf("Expected ErrCacheNotAvailable, got %v", err)
	}
}
