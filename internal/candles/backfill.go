package candles

import (
	"context"
	"fmt"
	"log"
	"time"

	"solana-signal-lab/internal/domain"
	"solana-signal-lab/internal/storage"
)

// Backfiller copies candle windows from an upstream source into the archive.
type Backfiller struct {
	upstream  Source
	store     storage.CandleStore
	batchSize int
	logger    *log.Logger
}

// BackfillOptions contains configuration for creating a Backfiller.
type BackfillOptions struct {
	Upstream  Source
	Store     storage.CandleStore
	BatchSize int
	Logger    *log.Logger
}

// NewBackfiller creates a new candle backfiller.
func NewBackfiller(opts BackfillOptions) *Backfiller {
	batchSize := opts.BatchSize
	if batchSize == 0 {
		batchSize = 1000
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	return &Backfiller{
		upstream:  opts.Upstream,
		store:     opts.Store,
		batchSize: batchSize,
		logger:    logger,
	}
}

// BackfillResult contains statistics from a backfill operation.
type BackfillResult struct {
	Fetched           int
	Stored            int
	DuplicatesSkipped int
	Duration          time.Duration
}

// Backfill fetches the query window and archives candles not stored yet.
func (b *Backfiller) Backfill(ctx context.Context, q Query) (*BackfillResult, error) {
	start := time.Now()
	result := &BackfillResult{}

	if err := q.Validate(); err != nil {
		return result, err
	}

	b.logger.Printf("Starting backfill for %s", q)

	fetched, err := b.upstream.Fetch(ctx, q)
	if err != nil {
		return result, fmt.Errorf("fetch candles: %w", err)
	}
	result.Fetched = len(fetched)

	existing, err := b.store.GetByTimeRange(ctx, q.Mint, q.Interval, q.From.UnixMilli(), q.To.UnixMilli())
	if err != nil {
		return result, fmt.Errorf("load archived candles: %w", err)
	}
	seen := make(map[int64]struct{}, len(existing))
	for _, c := range existing {
		seen[c.TimestampMs()] = struct{}{}
	}

	fresh := make([]domain.Candle, 0, len(fetched))
	for _, c := range fetched {
		ts := c.TimestampMs()
		if _, ok := seen[ts]; ok {
			result.DuplicatesSkipped++
			continue
		}
		seen[ts] = struct{}{}
		fresh = append(fresh, c)
	}

	for i := 0; i < len(fresh); i += b.batchSize {
		end := i + b.batchSize
		if end > len(fresh) {
			end = len(fresh)
		}
		if err := b.store.InsertBulk(ctx, q.Mint, q.Interval, fresh[i:end]); err != nil {
			return result, fmt.Errorf("store candles: %w", err)
		}
		result.Stored += end - i
	}

	result.Duration = time.Since(start)
	b.logger.Printf("Backfill complete: %d fetched, %d stored, %d dupes in %v",
		result.Fetched, result.Stored, result.DuplicatesSkipped, result.Duration)

	return result, nil
}
