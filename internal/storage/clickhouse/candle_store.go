package clickhouse

import (
	"context"
	"fmt"
	"time"

	"solana-signal-lab/internal/domain"
	"solana-signal-lab/internal/observability"
	"solana-signal-lab/internal/storage"
)

// CandleStore implements storage.CandleStore using ClickHouse.
type CandleStore struct {
	conn *Conn
}

// NewCandleStore creates a new CandleStore.
func NewCandleStore(conn *Conn) *CandleStore {
	return &CandleStore{conn: conn}
}

// Compile-time interface check.
var _ storage.CandleStore = (*CandleStore)(nil)

// InsertBulk adds candles for one series. Fails entire batch on duplicate
// (mint, interval, timestamp_ms).
func (s *CandleStore) InsertBulk(ctx context.Context, mint string, interval domain.Interval, candles []domain.Candle) (err error) {
	if len(candles) == 0 {
		return nil
	}
	if mint == "" || interval == "" {
		return storage.ErrInvalidInput
	}

	start := time.Now()
	defer func() {
		observability.RecordDBQuery("clickhouse", "insert_candles", time.Since(start).Seconds(), err)
	}()

	// MergeTree does not enforce uniqueness, so check the batch and the
	// archived window explicitly.
	seen := make(map[int64]struct{}, len(candles))
	minTs, maxTs := candles[0].TimestampMs(), candles[0].TimestampMs()
	for _, c := range candles {
		ts := c.TimestampMs()
		if _, exists := seen[ts]; exists {
			return storage.ErrDuplicateKey
		}
		seen[ts] = struct{}{}
		if ts < minTs {
			minTs = ts
		}
		if ts > maxTs {
			maxTs = ts
		}
	}

	existing, err := s.timestampsIn(ctx, mint, interval, minTs, maxTs)
	if err != nil {
		return fmt.Errorf("check existing: %w", err)
	}
	for ts := range seen {
		if _, exists := existing[ts]; exists {
			return storage.ErrDuplicateKey
		}
	}

	batch, err := s.conn.PrepareBatch(ctx, `
		INSERT INTO price_candles (
			mint, candle_interval, timestamp_ms, open, high, low, close
		)
	`)
	if err != nil {
		return fmt.Errorf("prepare batch: %w", err)
	}

	for _, c := range candles {
		err = batch.Append(
			mint, string(interval), uint64(c.TimestampMs()),
			c.Open, c.High, c.Low, c.Close,
		)
		if err != nil {
			return fmt.Errorf("append to batch: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("send batch: %w", err)
	}

	return nil
}

// GetByTimeRange retrieves candles within [start, end] (inclusive), ordered by timestamp ASC.
func (s *CandleStore) GetByTimeRange(ctx context.Context, mint string, interval domain.Interval, start, end int64) ([]domain.Candle, error) {
	query := `
		SELECT timestamp_ms, open, high, low, close
		FROM price_candles
		WHERE mint = ? AND candle_interval = ? AND timestamp_ms >= ? AND timestamp_ms <= ?
		ORDER BY timestamp_ms ASC
	`

	began := time.Now()
	rows, err := s.conn.Query(ctx, query, mint, string(interval), clampUint(start), clampUint(end))
	observability.RecordDBQuery("clickhouse", "select_candles", time.Since(began).Seconds(), err)
	if err != nil {
		return nil, fmt.Errorf("query by time range: %w", err)
	}
	defer rows.Close()

	return scanCandles(rows)
}

// GetTimeRange returns min and max archived timestamps of a series.
func (s *CandleStore) GetTimeRange(ctx context.Context, mint string, interval domain.Interval) (minTs, maxTs int64, err error) {
	query := `
		SELECT count(*), min(timestamp_ms), max(timestamp_ms)
		FROM price_candles
		WHERE mint = ? AND candle_interval = ?
	`

	var count, lo, hi uint64
	if err := s.conn.QueryRow(ctx, query, mint, string(interval)).Scan(&count, &lo, &hi); err != nil {
		return 0, 0, fmt.Errorf("query time range: %w", err)
	}
	if count == 0 {
		return 0, 0, nil
	}
	return int64(lo), int64(hi), nil
}

// timestampsIn returns archived timestamps within [start, end].
func (s *CandleStore) timestampsIn(ctx context.Context, mint string, interval domain.Interval, start, end int64) (map[int64]struct{}, error) {
	query := `
		SELECT timestamp_ms FROM price_candles
		WHERE mint = ? AND candle_interval = ? AND timestamp_ms >= ? AND timestamp_ms <= ?
	`

	rows, err := s.conn.Query(ctx, query, mint, string(interval), clampUint(start), clampUint(end))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[int64]struct{})
	for rows.Next() {
		var ts uint64
		if err := rows.Scan(&ts); err != nil {
			return nil, err
		}
		out[int64(ts)] = struct{}{}
	}
	return out, rows.Err()
}

// scanCandles scans multiple rows.
func scanCandles(rows chRows) ([]domain.Candle, error) {
	var candles []domain.Candle

	for rows.Next() {
		var c domain.Candle
		var timestampMs uint64

		if err := rows.Scan(&timestampMs, &c.Open, &c.High, &c.Low, &c.Close); err != nil {
			return nil, fmt.Errorf("scan candle row: %w", err)
		}

		c.Time = time.UnixMilli(int64(timestampMs)).UTC()
		candles = append(candles, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate candle rows: %w", err)
	}

	return candles, nil
}

func clampUint(v int64) uint64 {
	if v < 0 {
		return 0
	}
	return uint64(v)
}
