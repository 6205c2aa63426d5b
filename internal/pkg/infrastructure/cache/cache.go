package cache

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"path"
	"sync"
	"sync/atomic"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/redis/go-redis/v9"
)

const (
	AssetsTTL  = 6 * time.Hour
	LineageTTL = 1 * time.Hour
	SchemaTTL  = 12 * time.Hour
	QueryTTL   = 5 * time.Minute
)

func AssetsKey(project string) string {
	return "assets:" + project
}

func LineageKey(tableID, direction string, depth int) string {
	return fmt.Sprintf("lineage:%s:%s:%d", tableID, direction, depth)
}

func SchemaKey(project string) string {
	return "schema:" + project
}

func QueryKey(query string) string {
	return fmt.Sprintf("query:%x", md5.Sum([]byte(query)))
}

func CellKey(explorationID, cellID, query string) string {
	return fmt.Sprintf("exp:%s:cell:%s:%x", explorationID, cellID, md5.Sum([]byte(query)))
}

type Stats struct {
	Connected bool    `json:"connected"`
	TotalKeys int64   `json:"totalKeys"`
	Hits      uint64  `json:"hits"`
	Misses    uint64  `json:"misses"`
	HitRate   float64 `json:"hitRate"`
}

// Cache is a lookaside store for expensive warehouse responses. Failures
// never propagate to callers, a broken backend behaves as a miss.
type Cache interface {
	Get(ctx context.Context, key string, dest any) bool
	Set(ctx context.Context, key string, value any, ttl time.Duration)
	Delete(ctx context.Context, keys ...string)
	DeletePattern(ctx context.Context, pattern string) int
	Flush(ctx context.Context) error
	Stats(ctx context.Context) Stats
	Close() error
}

type Config struct {
	host     string
	port     string
	password string
}

func NewConfig(host, port, password string) Config {
	return Config{
		host:     host,
		port:     port,
		password: password,
	}
}

type redisCache struct {
	client *redis.Client
	hits   atomic.Uint64
	misses atomic.Uint64
}

func New(ctx context.Context, config Config) (Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.host + ":" + config.port,
		Password: config.password,
	})

	err := client.Ping(ctx).Err()
	if err != nil {
		return nil, fmt.Errorf("redis unavailable: %w", err)
	}

	return &redisCache{client: client}, nil
}

func (c *redisCache) Get(ctx context.Context, key string, dest any) bool {
	b, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logging.GetFromContext(ctx).Debug("cache get failed", "key", key, "err", err.Error())
		}
		c.misses.Add(1)
		return false
	}

	err = json.Unmarshal(b, dest)
	if err != nil {
		logging.GetFromContext(ctx).Debug("cache entry could not be decoded", "key", key, "err", err.Error())
		c.misses.Add(1)
		return false
	}

	c.hits.Add(1)

	return true
}

func (c *redisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) {
	b, err := json.Marshal(value)
	if err != nil {
		logging.GetFromContext(ctx).Debug("cache entry could not be encoded", "key", key, "err", err.Error())
		return
	}

	err = c.client.Set(ctx, key, b, ttl).Err()
	if err != nil {
		logging.GetFromContext(ctx).Debug("cache set failed", "key", key, "err", err.Error())
	}
}

func (c *redisCache) Delete(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}

	err := c.client.Del(ctx, keys...).Err()
	if err != nil {
		logging.GetFromContext(ctx).Debug("cache delete failed", "err", err.Error())
	}
}

func (c *redisCache) DeletePattern(ctx context.Context, pattern string) int {
	keys := []string{}

	iter := c.client.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}

	if err := iter.Err(); err != nil {
		logging.GetFromContext(ctx).Debug("cache scan failed", "pattern", pattern, "err", err.Error())
		return 0
	}

	c.Delete(ctx, keys...)

	return len(keys)
}

func (c *redisCache) Flush(ctx context.Context) error {
	return c.client.FlushDB(ctx).Err()
}

func (c *redisCache) Stats(ctx context.Context) Stats {
	stats := Stats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
	}

	size, err := c.client.DBSize(ctx).Result()
	if err == nil {
		stats.Connected = true
		stats.TotalKeys = size
	}

	stats.HitRate = hitRate(stats.Hits, stats.Misses)

	return stats
}

func (c *redisCache) Close() error {
	return c.client.Close()
}

type memoryEntry struct {
	data    []byte
	expires time.Time
}

type memoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	hits    atomic.Uint64
	misses  atomic.Uint64
}

// NewInMemory returns a process local cache used when no redis backend is
// configured or reachable.
func NewInMemory() Cache {
	return &memoryCache{entries: map[string]memoryEntry{}}
}

func (c *memoryCache) Get(ctx context.Context, key string, dest any) bool {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || time.Now().After(entry.expires) {
		c.misses.Add(1)
		return false
	}

	err := json.Unmarshal(entry.data, dest)
	if err != nil {
		c.misses.Add(1)
		return false
	}

	c.hits.Add(1)

	return true
}

func (c *memoryCache) Set(ctx context.Context, key string, value any, ttl time.Duration) {
	b, err := json.Marshal(value)
	if err != nil {
		return
	}

	c.mu.Lock()
	c.entries[key] = memoryEntry{data: b, expires: time.Now().Add(ttl)}
	c.mu.Unlock()
}

func (c *memoryCache) Delete(ctx context.Context, keys ...string) {
	c.mu.Lock()
	for _, key := range keys {
		delete(c.entries, key)
	}
	c.mu.Unlock()
}

func (c *memoryCache) DeletePattern(ctx context.Context, pattern string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for key := range c.entries {
		if ok, _ := path.Match(pattern, key); ok {
			delete(c.entries, key)
			n++
		}
	}

	return n
}

func (c *memoryCache) Flush(ctx context.Context) error {
	c.mu.Lock()
	c.entries = map[string]memoryEntry{}
	c.mu.Unlock()

	return nil
}

func (c *memoryCache) Stats(ctx context.Context) Stats {
	now := time.Now()

	c.mu.Lock()
	for key, entry := range c.entries {
		if now.After(entry.expires) {
			delete(c.entries, key)
		}
	}
	total := int64(len(c.entries))
	c.mu.Unlock()

	stats := Stats{
		Connected: true,
		TotalKeys: total,
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
	}
	stats.HitRate = hitRate(stats.Hits, stats.Misses)

	return stats
}

func (c *memoryCache) Close() error {
	return nil
}

func hitRate(hits, misses uint64) float64 {
	if hits+misses == 0 {
		return 0
	}
	return float64(hits) / float64(hits+misses)
}
