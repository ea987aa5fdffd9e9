package redis

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"reels-app-api/core/interfaces"
	"reels-app-api/pkg/config"
)

// These are integration tests against a live Redis; set REDIS_TEST=1 to run them.

func newTestCache(t *testing.T) *RedisCache {
	t.Helper()
	if os.Getenv("REDIS_TEST") != "1" {
		t.Skip("Skipping Redis integration tests - set REDIS_TEST=1 to run")
	}

	addr := os.Getenv("REDIS_ADDRESS")
	if addr == "" {
		addr = "localhost:6379"
	}
	cache, err := NewRedisCache(config.RedisConfig{Address: addr})
	if err != nil {
		t.Fatalf("Failed to create cache: %v", err)
	}
	t.Cleanup(func() { cache.Close() })
	return cache
}

func TestNewRedisCache_InvalidAddress(t *testing.T) {
	cache, err := NewRedisCache(config.RedisConfig{})

	if err == nil {
		t.Error("NewRedisCache should return error for empty address")
	}
	if cache != nil {
		t.Error("NewRedisCache should return nil cache for invalid config")
	}
}

func TestRedisCache_SetGet(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	if err := cache.Set(ctx, "test:profile", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	got, err := cache.Get(ctx, "test:profile")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if string(got) != "v" {
		t.Errorf("Get returned %s, want v", got)
	}
	cache.Delete(ctx, "test:profile")
}

func TestRedisCache_Get_Miss(t *testing.T) {
	cache := newTestCache(t)

	_, err := cache.Get(context.Background(), "test:never-set")

	if !errors.Is(err, interfaces.ErrCacheMiss) {
		t.Errorf("Get error = %v, want ErrCacheMiss", err)
	}
}

func TestRedisCache_Set_AppliesTTL(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	cache.Set(ctx, "test:ttl", []byte("v"), 100*time.Millisecond)
	time.Sleep(200 * time.Millisecond)

	if _, err := cache.Get(ctx, "test:ttl"); !errors.Is(err, interfaces.ErrCacheMiss) {
		t.Errorf("expired key should miss, got %v", err)
	}
}

func TestRedisCache_Delete(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	cache.Set(ctx, "test:del", []byte("v"), time.Minute)
	if err := cache.Delete(ctx, "test:del"); err != nil {
		t.Errorf("Delete returned error: %v", err)
	}
	if err := cache.Delete(ctx, "test:del"); err != nil {
		t.Errorf("Delete of missing key returned error: %v", err)
	}
	if _, err := cache.Get(ctx, "test:del"); err == nil {
		t.Error("Get should fail for deleted key")
	}
}
