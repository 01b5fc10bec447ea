// Package strategies manages user-defined comparison strategies and builds
// their comparison bundle.
package strategies

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"solana-signal-lab/internal/candles"
	"solana-signal-lab/internal/comparison"
	"solana-signal-lab/internal/domain"
	"solana-signal-lab/internal/metrics"
	"solana-signal-lab/internal/normalization"
	"solana-signal-lab/internal/observability"
	"solana-signal-lab/internal/storage"
	"solana-signal-lab/internal/timerange"
	"solana-signal-lab/internal/tokens"
)

// ViewKey is the Latest key of the strategy comparison.
const ViewKey = "strategies"

// DefaultConcurrency bounds parallel candle fetches.
const DefaultConcurrency = 4

var (
	// ErrNoData is returned when the requested window has no usable candles.
	ErrNoData = errors.New("no price data for the selected range")

	// ErrInvalidRequest is returned for malformed add requests.
	ErrInvalidRequest = errors.New("invalid strategy request")
)

// AddRequest describes a strategy to add.
type AddRequest struct {
	// Token is a directory symbol or a mint address.
	Token     string           `json:"token"`
	Interval  domain.Interval  `json:"interval"`
	Direction domain.Direction `json:"direction"`
	Preset    timerange.Preset `json:"preset"`
	// From and To are used with the custom preset.
	From time.Time `json:"from,omitempty"`
	To   time.Time `json:"to,omitempty"`
}

// Comparison is the result of one recomputation.
type Comparison struct {
	Bundle     domain.Bundle        `json:"bundle"`
	Strategies []*domain.Strategy   `json:"strategies"`
	Labels     map[string]string    `json:"labels"`
	Stats      metrics.OutcomeStats `json:"stats"`
	Failed     []string             `json:"failed,omitempty"`
	Stale      bool                 `json:"stale"`
}

// Service manages strategies.
type Service struct {
	source      candles.Source
	store       storage.StrategyStore
	latest      *comparison.Latest
	concurrency int
	now         func() time.Time
	logger      *log.Logger
}

// Options contains configuration for creating a Service.
type Options struct {
	Source      candles.Source
	Store       storage.StrategyStore
	Latest      *comparison.Latest
	Concurrency int
	Logger      *log.Logger
	Now         func() time.Time
}

// NewService creates a strategy service.
func NewService(opts Options) *Service {
	s := &Service{
		source:      opts.Source,
		store:       opts.Store,
		latest:      opts.Latest,
		concurrency: opts.Concurrency,
		now:         opts.Now,
		logger:      opts.Logger,
	}
	if s.latest == nil {
		s.latest = comparison.NewLatest()
	}
	if s.concurrency <= 0 {
		s.concurrency = DefaultConcurrency
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard, "", 0)
	}
	return s
}

// Add validates the request, fetches its window and stores the strategy.
func (s *Service) Add(ctx context.Context, req AddRequest) (*domain.Strategy, error) {
	tok, err := tokens.Resolve(req.Token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	interval, ok := domain.ParseInterval(string(req.Interval))
	if !ok {
		return nil, fmt.Errorf("%w: unsupported interval %q", ErrInvalidRequest, req.Interval)
	}
	dir, err := domain.ParseDirection(string(req.Direction))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	preset := req.Preset
	if preset == "" {
		preset = timerange.Preset1D
	}
	rng, err := timerange.Resolve(preset, req.From, req.To, s.now())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	q := candles.Query{Mint: tok.Address, Interval: interval, From: rng.From, To: rng.To}
	series, err := s.source.Fetch(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("fetch candles: %w", err)
	}
	if len(series) == 0 {
		return nil, ErrNoData
	}

	points, err := normalization.Normalize(series, normalization.FirstOpen(series), dir)
	if err != nil {
		return nil, ErrNoData
	}

	st := &domain.Strategy{
		ID:          uuid.NewString(),
		Mint:        tok.Address,
		Symbol:      tok.Symbol,
		Interval:    interval,
		Direction:   dir,
		From:        rng.From.UTC(),
		To:          rng.To.UTC(),
		CandleCount: len(series),
		Profit:      points[len(points)-1].Value,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.store.Insert(ctx, st); err != nil {
		return nil, fmt.Errorf("store strategy: %w", err)
	}

	s.logger.Printf("Added strategy %s (%s): %d candles, profit %.2f%%", st.ID, st.Label(), st.CandleCount, st.Profit)
	s.refreshGauge(ctx)
	return st, nil
}

// List returns all strategies in creation order.
func (s *Service) List(ctx context.Context) ([]*domain.Strategy, error) {
	list, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list strategies: %w", err)
	}
	if list == nil {
		list = []*domain.Strategy{}
	}
	return list, nil
}

// Remove deletes one strategy. Returns storage.ErrNotFound if unknown.
func (s *Service) Remove(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.refreshGauge(ctx)
	return nil
}

// Clear deletes every strategy and drops the committed bundle.
func (s *Service) Clear(ctx context.Context) error {
	if err := s.store.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear strategies: %w", err)
	}
	s.latest.Forget(ViewKey)
	observability.SetStrategiesTracked(0)
	return nil
}

// Compare refetches every strategy window and builds the bundle.
//
// Curves are ordered by window start so outcome stats follow time.
// Windows that fail to load are logged and left out. The result is
// committed unless a newer Compare started meanwhile, in which case it is
// returned with Stale set.
func (s *Service) Compare(ctx context.Context) (*Comparison, error) {
	ticket := s.latest.Begin(ViewKey)

	list, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	chrono := byWindowStart(list)

	series := make([][]domain.Candle, len(list))
	fetchErrs := make([]error, len(list))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, st := range chrono {
		g.Go(func() error {
			q := candles.Query{Mint: st.Mint, Interval: st.Interval, From: st.From, To: st.To}
			out, err := s.source.Fetch(gctx, q)
			if err != nil {
				fetchErrs[i] = err
				return nil
			}
			series[i] = out
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &Comparison{
		Strategies: list,
		Labels:     make(map[string]string, len(list)),
	}

	inputs := make([]comparison.Input, 0, len(list))
	for i, st := range chrono {
		result.Labels[st.ID] = st.Label()
		if fetchErrs[i] != nil {
			s.logger.Printf("WARNING: strategy %s (%s) omitted: %v", st.ID, st.Label(), fetchErrs[i])
			observability.RecordSeriesOmitted(ViewKey, "fetch_failed")
			result.Failed = append(result.Failed, st.ID)
			continue
		}
		inputs = append(inputs, comparison.StrategyInput(st.ID, series[i], st.Direction))
	}

	result.Bundle = comparison.BuildBundle(inputs)
	result.Stats = metrics.ComputeOutcomes(comparison.Outcomes(result.Bundle))
	observability.RecordBundle(ViewKey, len(result.Bundle.Curves), result.Bundle.Omitted)

	if !s.latest.Commit(ticket, result.Bundle) {
		result.Stale = true
		observability.RecordStaleResult(ViewKey)
		s.logger.Printf("Discarded stale comparison (ticket %d)", ticket.Seq)
	}
	return result, nil
}

// byWindowStart returns a copy of list ordered by window start, then
// creation time.
func byWindowStart(list []*domain.Strategy) []*domain.Strategy {
	out := make([]*domain.Strategy, len(list))
	copy(out, list)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].From.Equal(out[j].From) {
			return out[i].From.Before(out[j].From)
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// Current returns the last committed comparison bundle.
func (s *Service) Current() (domain.Bundle, bool) {
	return s.latest.Current(ViewKey)
}

func (s *Service) refreshGauge(ctx context.Context) {
	if list, err := s.store.List(ctx); err == nil {
		observability.SetStrategiesTracked(len(list))
	}
}
