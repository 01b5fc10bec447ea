package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"solana-signal-lab/internal/domain"
	"solana-signal-lab/internal/storage"
)

const testMint = "EKpQGSJtjMFqKZ9KQanSqYXRcF8fBopzLHYxdM65zcjm"

func hourlyCandles(startMs int64, closes ...float64) []domain.Candle {
	out := make([]domain.Candle, len(closes))
	for i, c := range closes {
		out[i] = domain.Candle{
			Time:  time.UnixMilli(startMs + int64(i)*3600000).UTC(),
			Open:  c,
			High:  c * 1.01,
			Low:   c * 0.99,
			Close: c,
		}
	}
	return out
}

func TestCandleStore_InsertAndGetByTimeRange(t *testing.T) {
	store := NewCandleStore()
	ctx := context.Background()

	// Insert out of order to check sorting.
	batch := hourlyCandles(1704067200000, 1.0, 1.1, 1.2, 1.3)
	batch[0], batch[3] = batch[3], batch[0]

	if err := store.InsertBulk(ctx, testMint, domain.Interval1H, batch); err != nil {
		t.Fatalf("InsertBulk failed: %v", err)
	}

	got, err := store.GetByTimeRange(ctx, testMint, domain.Interval1H, 1704067200000, 1704067200000+2*3600000)
	if err != nil {
		t.Fatalf("GetByTimeRange failed: %v", err)
	}

	if len(got) != 3 {
		t.Fatalf("expected 3 candles (inclusive range), got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if !got[i].Time.After(got[i-1].Time) {
			t.Errorf("expected ascending order at %d", i)
		}
	}
	if got[0].Close != 1.0 {
		t.Errorf("expected first close 1.0, got %v", got[0].Close)
	}
}

func TestCandleStore_SeriesIsolation(t *testing.T) {
	store := NewCandleStore()
	ctx := context.Background()

	if err := store.InsertBulk(ctx, testMint, domain.Interval1H, hourlyCandles(0, 1)); err != nil {
		t.Fatalf("InsertBulk failed: %v", err)
	}
	// Same timestamp under another interval is a different series.
	if err := store.InsertBulk(ctx, testMint, domain.Interval4H, hourlyCandles(0, 2)); err != nil {
		t.Fatalf("InsertBulk other interval failed: %v", err)
	}

	got, _ := store.GetByTimeRange(ctx, testMint, domain.Interval4H, 0, 1)
	if len(got) != 1 || got[0].Close != 2 {
		t.Errorf("expected isolated 4H series, got %+v", got)
	}
}

func TestCandleStore_DuplicateKey(t *testing.T) {
	store := NewCandleStore()
	ctx := context.Background()

	batch := hourlyCandles(1000, 1, 2)
	if err := store.InsertBulk(ctx, testMint, domain.Interval1H, batch); err != nil {
		t.Fatalf("InsertBulk failed: %v", err)
	}

	err := store.InsertBulk(ctx, testMint, domain.Interval1H, batch[:1])
	if !errors.Is(err, storage.ErrDuplicateKey) {
		t.Errorf("expected ErrDuplicateKey, got %v", err)
	}

	// Intra-batch duplicate leaves the store untouched.
	dup := hourlyCandles(1000+10*3600000, 5)
	err = store.InsertBulk(ctx, testMint, domain.Interval1H, append(dup, dup...))
	if !errors.Is(err, storage.ErrDuplicateKey) {
		t.Errorf("expected ErrDuplicateKey for intra-batch duplicate, got %v", err)
	}
	got, _ := store.GetByTimeRange(ctx, testMint, domain.Interval1H, 0, 1<<62)
	if len(got) != 2 {
		t.Errorf("expected batch to be rejected atomically, got %d candles", len(got))
	}
}

func TestCandleStore_InvalidInput(t *testing.T) {
	store := NewCandleStore()
	err := store.InsertBulk(context.Background(), "", domain.Interval1H, hourlyCandles(0, 1))
	if !errors.Is(err, storage.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCandleStore_GetTimeRange(t *testing.T) {
	store := NewCandleStore()
	ctx := context.Background()

	minTs, maxTs, err := store.GetTimeRange(ctx, testMint, domain.Interval1H)
	if err != nil || minTs != 0 || maxTs != 0 {
		t.Errorf("expected empty range, got %d-%d (%v)", minTs, maxTs, err)
	}

	_ = store.InsertBulk(ctx, testMint, domain.Interval1H, hourlyCandles(7200000, 1, 2, 3))

	minTs, maxTs, err = store.GetTimeRange(ctx, testMint, domain.Interval1H)
	if err != nil {
		t.Fatalf("GetTimeRange failed: %v", err)
	}
	if minTs != 7200000 || maxTs != 7200000+2*3600000 {
		t.Errorf("unexpected range %d-%d", minTs, maxTs)
	}
}
