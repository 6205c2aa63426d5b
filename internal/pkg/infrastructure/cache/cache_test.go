package cache

import (
	"context"
	"testing"
	"time"

	"github.com/matryer/is"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestInMemoryRoundTrip(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()
	c := NewInMemory()

	c.Set(ctx, "assets:demo", payload{Name: "orders", Count: 3}, time.Minute)

	var got payload
	is.True(c.Get(ctx, "assets:demo", &got))
	is.Equal("orders", got.Name)
	is.Equal(3, got.Count)

	c.Delete(ctx, "assets:demo")
	is.True(!c.Get(ctx, "assets:demo", &got))
}

func TestInMemoryExpiry(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()
	c := NewInMemory()

	c.Set(ctx, "query:abc", payload{Name: "stale"}, -time.Second)

	var got payload
	is.True(!c.Get(ctx, "query:abc", &got))
}

func TestInMemoryDeletePattern(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()
	c := NewInMemory()

	c.Set(ctx, LineageKey("analytics.orders", "both", 3), payload{}, time.Minute)
	c.Set(ctx, LineageKey("analytics.users", "both", 3), payload{}, time.Minute)
	c.Set(ctx, AssetsKey("demo"), payload{}, time.Minute)

	n := c.DeletePattern(ctx, "lineage:*")
	is.Equal(2, n)

	var got payload
	is.True(!c.Get(ctx, LineageKey("analytics.orders", "both", 3), &got))
	is.True(c.Get(ctx, AssetsKey("demo"), &got))
}

func TestInMemoryStats(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()
	c := NewInMemory()

	c.Set(ctx, "schema:demo", payload{}, time.Minute)

	var got payload
	c.Get(ctx, "schema:demo", &got)
	c.Get(ctx, "schema:missing", &got)

	stats := c.Stats(ctx)
	is.True(stats.Connected)
	is.Equal(int64(1), stats.TotalKeys)
	is.Equal(uint64(1), stats.Hits)
	is.Equal(uint64(1), stats.Misses)
	is.Equal(0.5, stats.HitRate)
}

func TestFlush(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()
	c := NewInMemory()

	c.Set(ctx, "a", payload{}, time.Minute)
	c.Set(ctx, "b", payload{}, time.Minute)

	err := c.Flush(ctx)
	is.NoErr(err)
	is.Equal(int64(0), c.Stats(ctx).TotalKeys)
}

func TestKeys(t *testing.T) {
	is := is.New(t)

	is.Equal("lineage:analytics.orders:both:3", LineageKey("analytics.orders", "both", 3))
	is.Equal("assets:demo", AssetsKey("demo"))
	is.Equal("schema:demo", SchemaKey("demo"))

	is.Equal(QueryKey("SELECT 1"), QueryKey("SELECT 1"))
	is.True(QueryKey("SELECT 1") != QueryKey("SELECT 2"))
}

func TestRedisRoundTrip(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	c, err := New(ctx, NewConfig("localhost", "6379", ""))
	if err != nil {
		t.SkipNow()
	}
	defer c.Close()

	key := QueryKey("SELECT count(*) FROM demo.orders")
	c.Set(ctx, key, payload{Name: "count", Count: 42}, time.Minute)

	var got payload
	is.True(c.Get(ctx, key, &got))
	is.Equal(42, got.Count)

	c.Delete(ctx, key)
	is.True(!c.Get(ctx, key, &got))
}
