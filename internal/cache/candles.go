// Package cache provides a Redis cache-aside decorator for candle sources.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"time"

	goredis "github.com/go-redis/redis/v8"

	"solana-signal-lab/internal/candles"
	"solana-signal-lab/internal/domain"
	"solana-signal-lab/internal/observability"
)

const (
	// DefaultTTL is how long a closed window stays cached.
	DefaultTTL = 6 * time.Hour
	// DefaultPrefix namespaces all keys written by the cache.
	DefaultPrefix = "signal-lab:candles:"

	backend = "redis"
)

// CandleCache serves closed candle windows from Redis and falls back to
// the wrapped source. Windows whose end is not yet in the past may still
// change upstream and are never cached. Redis failures are logged and
// the upstream result is returned.
type CandleCache struct {
	next   candles.Source
	rdb    *goredis.Client
	ttl    time.Duration
	prefix string
	now    func() time.Time
	logger *log.Logger
}

// Options configures a CandleCache.
type Options struct {
	TTL    time.Duration
	Prefix string
	Logger *log.Logger
	// Now overrides the clock, for tests.
	Now func() time.Time
}

// NewCandleCache wraps next with a Redis cache.
func NewCandleCache(next candles.Source, rdb *goredis.Client, opts Options) *CandleCache {
	c := &CandleCache{
		next:   next,
		rdb:    rdb,
		ttl:    opts.TTL,
		prefix: opts.Prefix,
		now:    opts.Now,
		logger: opts.Logger,
	}
	if c.ttl <= 0 {
		c.ttl = DefaultTTL
	}
	if c.prefix == "" {
		c.prefix = DefaultPrefix
	}
	if c.now == nil {
		c.now = time.Now
	}
	if c.logger == nil {
		c.logger = log.New(io.Discard, "", 0)
	}
	return c
}

var _ candles.Source = (*CandleCache)(nil)

// Fetch implements candles.Source.
func (c *CandleCache) Fetch(ctx context.Context, q candles.Query) ([]domain.Candle, error) {
	if !c.cacheable(q) {
		return c.next.Fetch(ctx, q)
	}

	key := c.prefix + q.Key()
	if cached, ok := c.get(ctx, key); ok {
		return cached, nil
	}

	out, err := c.next.Fetch(ctx, q)
	if err != nil {
		return nil, err
	}
	c.set(ctx, key, out)
	return out, nil
}

// Invalidate drops a cached window.
func (c *CandleCache) Invalidate(ctx context.Context, q candles.Query) error {
	return c.rdb.Del(ctx, c.prefix+q.Key()).Err()
}

func (c *CandleCache) cacheable(q candles.Query) bool {
	return c.rdb != nil && q.Validate() == nil && q.To.Before(c.now())
}

func (c *CandleCache) get(ctx context.Context, key string) ([]domain.Candle, bool) {
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, goredis.Nil) {
			observability.RecordCacheError(backend, "get")
			c.logger.Printf("WARNING: cache get %s: %v", key, err)
		}
		observability.RecordCacheLookup(backend, false)
		return nil, false
	}

	var out []domain.Candle
	if err := json.Unmarshal(data, &out); err != nil {
		observability.RecordCacheError(backend, "decode")
		c.logger.Printf("WARNING: cache decode %s: %v", key, err)
		observability.RecordCacheLookup(backend, false)
		return nil, false
	}
	if out == nil {
		out = []domain.Candle{}
	}
	observability.RecordCacheLookup(backend, true)
	return out, true
}

func (c *CandleCache) set(ctx context.Context, key string, value []domain.Candle) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		observability.RecordCacheError(backend, "set")
		c.logger.Printf("WARNING: cache set %s: %v", key, err)
	}
}
