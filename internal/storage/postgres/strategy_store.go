package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"solana-signal-lab/internal/domain"
	"solana-signal-lab/internal/observability"
	"solana-signal-lab/internal/storage"
)

// StrategyStore implements storage.StrategyStore using PostgreSQL.
type StrategyStore struct {
	pool *Pool
}

// NewStrategyStore creates a new StrategyStore.
func NewStrategyStore(pool *Pool) *StrategyStore {
	return &StrategyStore{pool: pool}
}

// Compile-time interface check.
var _ storage.StrategyStore = (*StrategyStore)(nil)

const strategyColumns = `
	id, mint, symbol, candle_interval, direction, range_from, range_to,
	candle_count, profit, created_at
`

// Insert adds a strategy. Returns ErrDuplicateKey if the id exists.
func (s *StrategyStore) Insert(ctx context.Context, st *domain.Strategy) (err error) {
	if st == nil || st.ID == "" {
		return storage.ErrInvalidInput
	}

	start := time.Now()
	defer func() {
		observability.RecordDBQuery("postgres", "insert_strategy", time.Since(start).Seconds(), err)
	}()

	query := `INSERT INTO strategies (` + strategyColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	createdAt := st.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err = s.pool.Exec(ctx, query,
		st.ID,
		st.Mint,
		st.Symbol,
		string(st.Interval),
		string(st.Direction),
		st.From,
		st.To,
		st.CandleCount,
		st.Profit,
		createdAt,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return storage.ErrDuplicateKey
		}
		return fmt.Errorf("insert strategy: %w", err)
	}
	return nil
}

// GetByID retrieves a strategy. Returns ErrNotFound if not exists.
func (s *StrategyStore) GetByID(ctx context.Context, id string) (*domain.Strategy, error) {
	query := `SELECT ` + strategyColumns + ` FROM strategies WHERE id = $1`

	st, err := scanStrategy(s.pool.QueryRow(ctx, query, id))
	if err != nil {
		if isNotFoundError(err) || isInvalidTextError(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get strategy by id: %w", err)
	}
	return st, nil
}

// List returns all strategies ordered by creation time, then id.
func (s *StrategyStore) List(ctx context.Context) ([]*domain.Strategy, error) {
	query := `SELECT ` + strategyColumns + ` FROM strategies ORDER BY created_at ASC, id ASC`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list strategies: %w", err)
	}
	defer rows.Close()

	var result []*domain.Strategy
	for rows.Next() {
		st, err := scanStrategy(rows)
		if err != nil {
			return nil, fmt.Errorf("scan strategy: %w", err)
		}
		result = append(result, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate strategies: %w", err)
	}

	return result, nil
}

// Delete removes a strategy. Returns ErrNotFound if not exists.
func (s *StrategyStore) Delete(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM strategies WHERE id = $1`, id)
	if err != nil {
		if isInvalidTextError(err) {
			return storage.ErrNotFound
		}
		return fmt.Errorf("delete strategy: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// DeleteAll removes every strategy.
func (s *StrategyStore) DeleteAll(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM strategies`); err != nil {
		return fmt.Errorf("delete all strategies: %w", err)
	}
	return nil
}

func scanStrategy(row pgx.Row) (*domain.Strategy, error) {
	var st domain.Strategy
	var interval, direction string

	err := row.Scan(
		&st.ID,
		&st.Mint,
		&st.Symbol,
		&interval,
		&direction,
		&st.From,
		&st.To,
		&st.CandleCount,
		&st.Profit,
		&st.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	st.Interval = domain.Interval(interval)
	st.Direction = domain.Direction(direction)
	st.From = st.From.UTC()
	st.To = st.To.UTC()
	st.CreatedAt = st.CreatedAt.UTC()
	return &st, nil
}
