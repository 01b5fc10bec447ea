package candles

import (
	"context"
	"fmt"
	"time"

	"solana-signal-lab/internal/domain"
	"solana-signal-lab/internal/storage"
)

// StoreSource serves candles from the archive.
type StoreSource struct {
	store storage.CandleStore
}

// NewStoreSource creates a Source backed by a CandleStore.
func NewStoreSource(store storage.CandleStore) *StoreSource {
	return &StoreSource{store: store}
}

var _ Source = (*StoreSource)(nil)

// Fetch returns archived candles within [From, To].
func (s *StoreSource) Fetch(ctx context.Context, q Query) ([]domain.Candle, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	out, err := s.store.GetByTimeRange(ctx, q.Mint, q.Interval, q.From.UnixMilli(), q.To.UnixMilli())
	if err != nil {
		return nil, fmt.Errorf("load archived candles: %w", err)
	}
	if out == nil {
		out = []domain.Candle{}
	}
	return out, nil
}

// ArchiveFirst serves a window from the archive when the archived candles
// cover it, else from upstream. Covered means the first candle starts
// within one interval of From and the last within one interval of the
// window end (To, capped at now). Gaps inside the window are not checked.
// Archive errors are not fatal.
type ArchiveFirst struct {
	Archive  Source
	Upstream Source
	Now      func() time.Time
}

var _ Source = ArchiveFirst{}

// Fetch implements Source.
func (a ArchiveFirst) Fetch(ctx context.Context, q Query) ([]domain.Candle, error) {
	if a.Archive != nil {
		if out, err := a.Archive.Fetch(ctx, q); err == nil && a.covers(q, out) {
			return out, nil
		}
	}
	return a.Upstream.Fetch(ctx, q)
}

func (a ArchiveFirst) covers(q Query, series []domain.Candle) bool {
	if len(series) == 0 {
		return false
	}
	now := time.Now
	if a.Now != nil {
		now = a.Now
	}
	end := q.To
	if n := now(); n.Before(end) {
		end = n
	}
	step := q.Interval.Duration()
	first, last := series[0].Time, series[len(series)-1].Time
	return first.Sub(q.From) <= step && end.Sub(last) <= step
}
