package cli

import (
	"context"
	"fmt"
	"log"
	"time"

	goredis "github.com/go-redis/redis/v8"

	"solana-signal-lab/internal/cache"
	"solana-signal-lab/internal/candles"
	"solana-signal-lab/internal/config"
	"solana-signal-lab/internal/graphql"
	"solana-signal-lab/internal/storage"
	chstore "solana-signal-lab/internal/storage/clickhouse"
	"solana-signal-lab/internal/storage/memory"
	"solana-signal-lab/internal/storage/migrations"
	pgstore "solana-signal-lab/internal/storage/postgres"
)

// Stores holds all storage implementations.
type Stores struct {
	Strategies storage.StrategyStore
	Metadata   storage.TokenMetadataStore
	// Candles is nil when no archive is configured.
	Candles storage.CandleStore

	cleanup []func()
}

// Close releases database connections.
func (s *Stores) Close() {
	for i := len(s.cleanup) - 1; i >= 0; i-- {
		s.cleanup[i]()
	}
}

// OpenStores creates memory stores or connects to Postgres and, when a DSN
// is set, ClickHouse. Migrations are applied when migrate is true.
func OpenStores(ctx context.Context, cfg *config.Config, migrate bool) (*Stores, error) {
	if cfg.Storage.UseMemory {
		return &Stores{
			Strategies: memory.NewStrategyStore(),
			Metadata:   memory.NewTokenMetadataStore(),
			Candles:    memory.NewCandleStore(),
		}, nil
	}

	s := &Stores{}

	pool, err := pgstore.NewPool(ctx, cfg.Storage.PostgresDSN)
	if err != nil {
		return nil, err
	}
	s.cleanup = append(s.cleanup, pool.Close)
	if migrate {
		if err := migrations.RunPostgresMigrations(ctx, pool); err != nil {
			s.Close()
			return nil, fmt.Errorf("postgres migrations: %w", err)
		}
	}
	s.Strategies = pgstore.NewStrategyStore(pool)
	s.Metadata = pgstore.NewTokenMetadataStore(pool)

	if cfg.Storage.ClickHouseDSN != "" {
		var conn *chstore.Conn
		if migrate {
			conn, err = migrations.RunClickhouseMigrations(ctx, cfg.Storage.ClickHouseDSN)
		} else {
			conn, err = chstore.NewConn(ctx, cfg.Storage.ClickHouseDSN)
		}
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("connect to clickhouse: %w", err)
		}
		s.cleanup = append(s.cleanup, func() { conn.Close() })
		s.Candles = chstore.NewCandleStore(conn)
	}

	return s, nil
}

// NewGraphQLClient builds the price API client from config.
func NewGraphQLClient(cfg *config.Config) *graphql.Client {
	return graphql.NewClient(cfg.API.Endpoint,
		graphql.WithTimeout(cfg.API.Timeout),
		graphql.WithMaxRetries(cfg.API.MaxRetries),
	)
}

// NewCandleSource layers the candle sources: archive first when present,
// then upstream, wrapped by the Redis cache when an address is set.
// The returned func closes the Redis client.
func NewCandleSource(ctx context.Context, cfg *config.Config, upstream candles.Source, archive storage.CandleStore, logger *log.Logger) (candles.Source, func()) {
	var src candles.Source = upstream
	if archive != nil {
		src = candles.ArchiveFirst{Archive: candles.NewStoreSource(archive), Upstream: upstream}
	}

	if cfg.Cache.RedisAddr == "" {
		return src, func() {}
	}

	rdb := goredis.NewClient(&goredis.Options{Addr: cfg.Cache.RedisAddr, DB: cfg.Cache.RedisDB})
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		logger.Printf("WARNING: redis at %s unreachable, cache will fall back to upstream: %v", cfg.Cache.RedisAddr, err)
	}

	cached := cache.NewCandleCache(src, rdb, cache.Options{TTL: cfg.Cache.TTL, Logger: logger})
	return cached, func() { rdb.Close() }
}
