// Package cache keeps AppNexus lookup results in Redis so that campaigns
// sharing geography and category settings do not hit the database on every
// sync.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/gomodule/redigo/redis"
)

// Lookups resolves local reference ids into AppNexus ids.
type Lookups interface {
	CountryIDs(ctx context.Context, ids []int64) ([]int64, error)
	RegionIDs(ctx context.Context, ids []int64) ([]int64, error)
	DMAIDs(ctx context.Context, ids []int64) ([]int64, error)
	CityIDs(ctx context.Context, ids []int64) ([]int64, error)
	CategoryCodes(ctx context.Context, ids []int64) (map[int64]int64, error)
	SegmentCodes(ctx context.Context, ids []int64) (map[int64]int64, error)
	ConversionPixel(ctx context.Context, id int64) (*int64, error)
}

type Config struct {
	Addr      string
	TTL       time.Duration
	KeyPrefix string
}

// LookupCache is a read-through cache in front of Lookups. Redis failures
// are logged and fall through to the wrapped store.
type LookupCache struct {
	next   Lookups
	pool   *redis.Pool
	ttl    time.Duration
	prefix string
	logger *slog.Logger
}

func NewPool(addr string) *redis.Pool {
	return &redis.Pool{
		MaxIdle:     3,
		IdleTimeout: 240 * time.Second,
		DialContext: func(ctx context.Context) (redis.Conn, error) {
			return redis.DialContext(ctx, "tcp", addr)
		},
	}
}

func NewLookupCache(next Lookups, pool *redis.Pool, cfg Config, logger *slog.Logger) *LookupCache {
	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = "campaign_syncer"
	}
	return &LookupCache{
		next:   next,
		pool:   pool,
		ttl:    cfg.TTL,
		prefix: prefix,
		logger: logger.With("component", "lookup_cache"),
	}
}

func (c *LookupCache) CountryIDs(ctx context.Context, ids []int64) ([]int64, error) {
	return readThrough(ctx, c, c.key("countries", ids), func() ([]int64, error) {
		return c.next.CountryIDs(ctx, ids)
	})
}

func (c *LookupCache) RegionIDs(ctx context.Context, ids []int64) ([]int64, error) {
	return readThrough(ctx, c, c.key("regions", ids), func() ([]int64, error) {
		return c.next.RegionIDs(ctx, ids)
	})
}

func (c *LookupCache) DMAIDs(ctx context.Context, ids []int64) ([]int64, error) {
	return readThrough(ctx, c, c.key("dmas", ids), func() ([]int64, error) {
		return c.next.DMAIDs(ctx, ids)
	})
}

func (c *LookupCache) CityIDs(ctx context.Context, ids []int64) ([]int64, error) {
	return readThrough(ctx, c, c.key("cities", ids), func() ([]int64, error) {
		return c.next.CityIDs(ctx, ids)
	})
}

func (c *LookupCache) CategoryCodes(ctx context.Context, ids []int64) (map[int64]int64, error) {
	return readThrough(ctx, c, c.key("categories", ids), func() (map[int64]int64, error) {
		return c.next.CategoryCodes(ctx, ids)
	})
}

func (c *LookupCache) SegmentCodes(ctx context.Context, ids []int64) (map[int64]int64, error) {
	return readThrough(ctx, c, c.key("segments", ids), func() (map[int64]int64, error) {
		return c.next.SegmentCodes(ctx, ids)
	})
}

// ConversionPixel caches resolved pixels only; a pixel that is not yet on
// AppNexus is looked up again next time.
func (c *LookupCache) ConversionPixel(ctx context.Context, id int64) (*int64, error) {
	key := c.key("pixel", []int64{id})

	var remote int64
	if c.get(ctx, key, &remote) {
		return &remote, nil
	}

	pixel, err := c.next.ConversionPixel(ctx, id)
	if err != nil || pixel == nil {
		return pixel, err
	}
	c.set(ctx, key, *pixel)
	return pixel, nil
}

// readThrough caches non-empty results only; ids with no AppNexus mapping yet
// are looked up again next time.
func readThrough[T []int64 | map[int64]int64](ctx context.Context, c *LookupCache, key string, load func() (T, error)) (T, error) {
	var value T
	if c.get(ctx, key, &value) {
		return value, nil
	}

	value, err := load()
	if err != nil || len(value) == 0 {
		return value, err
	}
	c.set(ctx, key, value)
	return value, nil
}

// key builds an order independent key for a set of ids.
func (c *LookupCache) key(kind string, ids []int64) string {
	sorted := slices.Clone(ids)
	slices.Sort(sorted)

	parts := make([]string, len(sorted))
	for i, id := range sorted {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return fmt.Sprintf("%s:lookup:%s:%s", c.prefix, kind, strings.Join(parts, ","))
}

func (c *LookupCache) get(ctx context.Context, key string, dest any) bool {
	conn, err := c.pool.GetContext(ctx)
	if err != nil {
		c.logger.Warn("redis unavailable", "error", err)
		return false
	}
	defer conn.Close()

	raw, err := redis.Bytes(conn.Do("GET", key))
	if errors.Is(err, redis.ErrNil) {
		return false
	}
	if err != nil {
		c.logger.Warn("cache read failed", "key", key, "error", err)
		return false
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		c.logger.Warn("cache entry unreadable", "key", key, "error", err)
		return false
	}
	return true
}

func (c *LookupCache) set(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}

	conn, err := c.pool.GetContext(ctx)
	if err != nil {
		c.logger.Warn("redis unavailable", "error", err)
		return
	}
	defer conn.Close()

	args := redis.Args{key, raw}
	if c.ttl > 0 {
		args = args.Add("PX", c.ttl.Milliseconds())
	}
	if _, err := conn.Do("SET", args...); err != nil {
		c.logger.Warn("cache write failed", "key", key, "error", err)
	}
}
