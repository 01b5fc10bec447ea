package storage

import (
	"context"

	"solana-signal-lab/internal/domain"
)

// CandleStore archives sanitized candles per (mint, interval).
// Append-only: existing (mint, interval, timestamp) rows are never replaced.
type CandleStore interface {
	// InsertBulk adds candles for one series. Fails entire batch on duplicate timestamp.
	InsertBulk(ctx context.Context, mint string, interval domain.Interval, candles []domain.Candle) error

	// GetByTimeRange retrieves candles within [start, end] ms (inclusive), ordered by timestamp ASC.
	GetByTimeRange(ctx context.Context, mint string, interval domain.Interval, start, end int64) ([]domain.Candle, error)

	// GetTimeRange returns the earliest and latest archived timestamps (ms).
	// Both are 0 when the series is empty.
	GetTimeRange(ctx context.Context, mint string, interval domain.Interval) (minTs, maxTs int64, err error)
}

// StrategyStore persists user-defined comparison strategies.
type StrategyStore interface {
	// Insert adds a strategy. Returns ErrDuplicateKey if the id exists.
	Insert(ctx context.Context, s *domain.Strategy) error

	// GetByID returns ErrNotFound if the id does not exist.
	GetByID(ctx context.Context, id string) (*domain.Strategy, error)

	// List returns all strategies ordered by creation time ASC, then id.
	List(ctx context.Context) ([]*domain.Strategy, error)

	// Delete removes a strategy. Returns ErrNotFound if the id does not exist.
	Delete(ctx context.Context, id string) error

	// DeleteAll removes every strategy.
	DeleteAll(ctx context.Context) error
}

// TokenMetadataStore caches on-chain token metadata.
type TokenMetadataStore interface {
	// Insert adds metadata. Returns ErrDuplicateKey if the mint exists.
	Insert(ctx context.Context, m *domain.TokenMetadata) error

	// GetByMint returns ErrNotFound if the mint is unknown.
	GetByMint(ctx context.Context, mint string) (*domain.TokenMetadata, error)
}
