package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"solana-signal-lab/internal/domain"
	"solana-signal-lab/internal/storage"
)

// CandleStore is an in-memory implementation of storage.CandleStore.
type CandleStore struct {
	mu     sync.RWMutex
	series map[string]map[int64]domain.Candle // series key -> timestamp_ms -> candle
}

// NewCandleStore creates a new in-memory candle store.
func NewCandleStore() *CandleStore {
	return &CandleStore{
		series: make(map[string]map[int64]domain.Candle),
	}
}

func seriesKey(mint string, interval domain.Interval) string {
	return fmt.Sprintf("%s|%s", mint, interval)
}

// InsertBulk adds candles for one series. Fails entire batch on duplicate.
func (s *CandleStore) InsertBulk(_ context.Context, mint string, interval domain.Interval, candles []domain.Candle) error {
	if len(candles) == 0 {
		return nil
	}
	if mint == "" || interval == "" {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := seriesKey(mint, interval)
	existing := s.series[key]

	batch := make(map[int64]struct{}, len(candles))
	for _, c := range candles {
		ts := c.TimestampMs()
		if _, ok := existing[ts]; ok {
			return storage.ErrDuplicateKey
		}
		if _, ok := batch[ts]; ok {
			return storage.ErrDuplicateKey
		}
		batch[ts] = struct{}{}
	}

	if existing == nil {
		existing = make(map[int64]domain.Candle, len(candles))
		s.series[key] = existing
	}
	for _, c := range candles {
		existing[c.TimestampMs()] = c
	}

	return nil
}

// GetByTimeRange retrieves candles within [start, end] (inclusive), ordered by timestamp ASC.
func (s *CandleStore) GetByTimeRange(_ context.Context, mint string, interval domain.Interval, start, end int64) ([]domain.Candle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []domain.Candle
	for ts, c := range s.series[seriesKey(mint, interval)] {
		if ts >= start && ts <= end {
			result = append(result, c)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Time.Before(result[j].Time)
	})

	return result, nil
}

// GetTimeRange returns min and max timestamps of a series.
func (s *CandleStore) GetTimeRange(_ context.Context, mint string, interval domain.Interval) (minTs, maxTs int64, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	first := true
	for ts := range s.series[seriesKey(mint, interval)] {
		if first {
			minTs, maxTs = ts, ts
			first = false
			continue
		}
		if ts < minTs {
			minTs = ts
		}
		if ts > maxTs {
			maxTs = ts
		}
	}

	return minTs, maxTs, nil
}

var _ storage.CandleStore = (*CandleStore)(nil)
