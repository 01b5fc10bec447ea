package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solana-signal-lab/internal/domain"
	"solana-signal-lab/internal/storage"
)

func newTestStrategy(created time.Time) *domain.Strategy {
	return &domain.Strategy{
		ID:          uuid.NewString(),
		Mint:        "EKpQGSJtjMFqKZ9KQanSqYXRcF8fBopzLHYxdM65zcjm",
		Symbol:      "WIF",
		Interval:    domain.Interval4H,
		Direction:   domain.DirectionShort,
		From:        created.Add(-7 * 24 * time.Hour),
		To:          created,
		CandleCount: 42,
		Profit:      -3.25,
		CreatedAt:   created,
	}
}

func TestStrategyStore_InsertAndGetByID(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	store := NewStrategyStore(pool)

	created := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	st := newTestStrategy(created)

	require.NoError(t, store.Insert(ctx, st))

	got, err := store.GetByID(ctx, st.ID)
	require.NoError(t, err)

	assert.Equal(t, st.ID, got.ID)
	assert.Equal(t, st.Mint, got.Mint)
	assert.Equal(t, "WIF", got.Symbol)
	assert.Equal(t, domain.Interval4H, got.Interval)
	assert.Equal(t, domain.DirectionShort, got.Direction)
	assert.True(t, st.From.Equal(got.From))
	assert.True(t, st.To.Equal(got.To))
	assert.Equal(t, 42, got.CandleCount)
	assert.InDelta(t, -3.25, got.Profit, 1e-9)
	assert.True(t, created.Equal(got.CreatedAt))
}

func TestStrategyStore_InsertDuplicate(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	store := NewStrategyStore(pool)

	st := newTestStrategy(time.Now().UTC())
	require.NoError(t, store.Insert(ctx, st))

	err := store.Insert(ctx, st)
	assert.ErrorIs(t, err, storage.ErrDuplicateKey)
}

func TestStrategyStore_NotFound(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	store := NewStrategyStore(pool)

	_, err := store.GetByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, err = store.GetByID(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	err = store.Delete(ctx, uuid.NewString())
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStrategyStore_ListAndDelete(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	store := NewStrategyStore(pool)

	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	later := newTestStrategy(base.Add(time.Hour))
	earlier := newTestStrategy(base)

	require.NoError(t, store.Insert(ctx, later))
	require.NoError(t, store.Insert(ctx, earlier))

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, earlier.ID, list[0].ID)
	assert.Equal(t, later.ID, list[1].ID)

	require.NoError(t, store.Delete(ctx, earlier.ID))
	list, err = store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, store.DeleteAll(ctx))
	list, err = store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
