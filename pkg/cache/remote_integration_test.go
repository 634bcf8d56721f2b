//go:build integration

package cache

import (
	"context"
	"os"
	"testing"
	"time"
)

// exercise runs the shared contract against a live backend.
func exercise(t *testing.T, c Cache) {
	t.Helper()
	ctx := context.Background()

	if err := c.Set(ctx, "it:key", []byte("value"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, hit, err := c.Get(ctx, "it:key")
	if err != nil || !hit || string(data) != "value" {
		t.Fatalf("Get = %q, %v, %v", data, hit, err)
	}
	if err := c.Delete(ctx, "it:key"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "it:key"); hit {
		t.Error("Get after Delete should miss")
	}

	if err := c.Set(ctx, "it:short", []byte("x"), time.Second); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(1500 * time.Millisecond)
	if _, hit, _ := c.Get(ctx, "it:short"); hit {
		t.Error("expired entry should miss")
	}
}

func TestRedisCache_Integration(t *testing.T) {
	addr := os.Getenv("BRICKSTACK_REDIS_ADDR")
	if addr == "" {
		t.Skip("BRICKSTACK_REDIS_ADDR not set")
	}
	c, err := NewRedisCache(context.Background(), RedisOptions{Addr: addr, Prefix: "brickstack-test:"})
	if err != nil {
		t.Fatalf("NewRedisCache: %v", err)
	}
	defer c.Close()
	exercise(t, c)
	if _, err := c.Clear(context.Background()); err != nil {
		t.Errorf("Clear: %v", err)
	}
}

func TestMongoCache_Integration(t *testing.T) {
	uri := os.Getenv("BRICKSTACK_MONGO_URI")
	if uri == "" {
		t.Skip("BRICKSTACK_MONGO_URI not set")
	}
	c, err := NewMongoCache(context.Background(), MongoOptions{URI: uri, Database: "brickstack_test"})
	if err != nil {
		t.Fatalf("NewMongoCache: %v", err)
	}
	defer c.Close()
	exercise(t, c)
	if _, err := c.Clear(context.Background()); err != nil {
		t.Errorf("Clear: %v", err)
	}
}
