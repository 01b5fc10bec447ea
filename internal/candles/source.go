// Package candles defines where price candles come from: the upstream
// price API, the ClickHouse archive or deterministic fixtures.
package candles

import (
	"context"
	"errors"
	"fmt"
	"time"

	"solana-signal-lab/internal/domain"
)

// ErrInvalidQuery is returned for queries that cannot be sent upstream.
var ErrInvalidQuery = errors.New("invalid candle query")

// Query selects one candle window for one token.
type Query struct {
	Mint     string
	Interval domain.Interval
	From     time.Time
	To       time.Time
}

// Validate checks that the query is complete and From < To.
func (q Query) Validate() error {
	if q.Mint == "" {
		return fmt.Errorf("%w: mint is required", ErrInvalidQuery)
	}
	if q.Interval.Duration() == 0 {
		return fmt.Errorf("%w: unsupported interval %q", ErrInvalidQuery, q.Interval)
	}
	if q.From.IsZero() || q.To.IsZero() || !q.From.Before(q.To) {
		return fmt.Errorf("%w: from must be before to", ErrInvalidQuery)
	}
	return nil
}

// Key identifies the query for caching. Times are in milliseconds.
func (q Query) Key() string {
	return fmt.Sprintf("%s:%s:%d:%d", q.Mint, q.Interval, q.From.UnixMilli(), q.To.UnixMilli())
}

func (q Query) String() string {
	return fmt.Sprintf("%s %s [%s, %s]", q.Mint, q.Interval.Short(),
		q.From.UTC().Format(time.RFC3339), q.To.UTC().Format(time.RFC3339))
}

// Source fetches sanitized candles for a query, ordered by time.
// An empty, non-nil slice means the window holds no usable data.
type Source interface {
	Fetch(ctx context.Context, q Query) ([]domain.Candle, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context, q Query) ([]domain.Candle, error)

// Fetch calls f.
func (f SourceFunc) Fetch(ctx context.Context, q Query) ([]domain.Candle, error) {
	return f(ctx, q)
}
