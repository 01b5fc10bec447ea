// Package signals builds the signal list rows and the per-signal trigger
// comparison.
package signals

import (
	"context"
	"fmt"
	"io"
	"log"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"solana-signal-lab/internal/candles"
	"solana-signal-lab/internal/comparison"
	"solana-signal-lab/internal/domain"
	"solana-signal-lab/internal/metrics"
	"solana-signal-lab/internal/normalization"
	"solana-signal-lab/internal/observability"
	"solana-signal-lab/internal/timerange"
)

const view = "signal_detail"

// DefaultConcurrency bounds parallel trigger window fetches.
const DefaultConcurrency = 4

// Catalog lists published signals.
type Catalog interface {
	List(ctx context.Context) ([]domain.Signal, error)
	// Get returns an error wrapping a not-found sentinel for unknown ids.
	Get(ctx context.Context, id string) (*domain.Signal, error)
}

// Service serves signal views.
type Service struct {
	catalog     Catalog
	source      candles.Source
	latest      *comparison.Latest
	concurrency int
	now         func() time.Time
	logger      *log.Logger
}

// Options contains configuration for creating a Service.
type Options struct {
	Catalog     Catalog
	Source      candles.Source
	Latest      *comparison.Latest
	Concurrency int
	Logger      *log.Logger
	Now         func() time.Time
}

// NewService creates a signal service.
func NewService(opts Options) *Service {
	s := &Service{
		catalog:     opts.Catalog,
		source:      opts.Source,
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

// DirectionFilter selects list rows by direction.
type DirectionFilter string

const (
	FilterAll   DirectionFilter = "all"
	FilterLong  DirectionFilter = "LONG"
	FilterShort DirectionFilter = "SHORT"
)

// ParseFilter maps empty and unknown values to FilterAll.
func ParseFilter(s string) DirectionFilter {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "LONG":
		return FilterLong
	case "SHORT":
		return FilterShort
	}
	return FilterAll
}

func (f DirectionFilter) match(d domain.Direction) bool {
	return f == FilterAll || f == "" || string(f) == string(d)
}

// Summary is one row of the signal list.
type Summary struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Symbol      string           `json:"symbol"`
	Icon        string           `json:"icon,omitempty"`
	Direction   domain.Direction `json:"direction"`
	TriggerText string           `json:"trigger_price"`
	SinceSignal float64          `json:"since_signal"` // percent, direction-aware
	PastROI     float64          `json:"past_roi"`     // percent
	WinRate     float64          `json:"win_rate"`     // percent
	RR          string           `json:"rr"`
	TimeAgo     string           `json:"time_ago"`
}

// Summaries returns list rows for every signal matching filter.
func (s *Service) Summaries(ctx context.Context, filter DirectionFilter) ([]Summary, error) {
	list, err := s.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list signals: %w", err)
	}

	now := s.now()
	out := []Summary{}
	for _, sig := range list {
		if !filter.match(sig.Direction) {
			continue
		}
		out = append(out, summarize(sig, now))
	}
	return out, nil
}

func summarize(sig domain.Signal, now time.Time) Summary {
	row := Summary{
		ID:          sig.ID,
		Name:        sig.Name,
		Symbol:      sig.Symbol(),
		Icon:        sig.Token.Icon,
		Direction:   sig.Direction,
		TriggerText: "N/A",
		TimeAgo:     "just now",
		RR:          "0.00",
	}

	if lt := sig.LastTrigger; lt != nil {
		if price, ok := lt.Price.Float(); ok && price > 0 {
			row.TriggerText = FormatPrice(price)
			if current, ok := sig.Token.PriceUSD.Float(); ok {
				if pct, ok := normalization.PercentChange(price, current, sig.Direction); ok {
					row.SinceSignal = pct
				}
			}
		}
		if ts, ok := lt.Time(); ok {
			row.TimeAgo = timerange.Ago(ts, now)
		}
	}

	if len(sig.Stats) > 0 {
		st := sig.Stats[0]
		row.PastROI = metrics.BPSToPercent(st.PastROIBPS)
		row.WinRate = metrics.BPSToPercent(st.WinRateBPS)
		row.RR = formatRR(st.RR)
	}
	return row
}

// FormatPrice renders a USD price with 6 decimals below $1, else 2.
func FormatPrice(p float64) string {
	if p < 1 {
		return fmt.Sprintf("$%.6f", p)
	}
	return fmt.Sprintf("$%.2f", p)
}

func formatRR(n domain.Numeric) string {
	v, ok := n.Float()
	if !ok {
		return "0.00"
	}
	return fmt.Sprintf("%.2f", v)
}

// Header is the stats block shown above a signal chart.
type Header struct {
	Timeframe      domain.Timeframe `json:"timeframe"`
	TimeframeLabel string           `json:"timeframe_label"`
	PastROI        float64          `json:"past_roi"`
	WinRate        float64          `json:"win_rate"`
	RR             string           `json:"rr"`
	Frequency      float64          `json:"frequency"`
	SinceTrigger   float64          `json:"since_trigger"`
	TriggerText    string           `json:"trigger_price"`
	TimeAgo        string           `json:"time_ago"`
}

// TriggerRow describes one completed trigger in the detail table.
type TriggerRow struct {
	ID          string  `json:"id"`
	TriggeredAt string  `json:"triggered_at"`
	PriceText   string  `json:"price"`
	ROI         float64 `json:"roi"` // percent
	Drawn       bool    `json:"drawn"`
}

// Detail is the full signal view.
type Detail struct {
	Signal   domain.Signal        `json:"signal"`
	Header   Header               `json:"header"`
	Triggers []TriggerRow         `json:"triggers"`
	Bundle   domain.Bundle        `json:"bundle"`
	Labels   map[string]string    `json:"labels"`
	Stats    metrics.OutcomeStats `json:"stats"`
	Failed   []string             `json:"failed,omitempty"`
	Stale    bool                 `json:"stale"`
}

// ActiveCurveID is the curve id of the in-progress trigger.
func ActiveCurveID(triggerID string) string {
	return "active:" + triggerID
}

// Detail loads a signal and compares its trigger windows for timeframe.
//
// Each completed trigger is fetched over its timeframe window and anchored
// at the trigger price. The last trigger is drawn as the active curve up to
// now. Windows that fail to load or cannot be normalized are left out;
// failed loads and triggers without a usable time or price are listed in
// Failed. Completed curves are ordered by trigger time.
func (s *Service) Detail(ctx context.Context, id string, tf domain.Timeframe) (*Detail, error) {
	tf = domain.ParseTimeframe(string(tf))
	ticket := s.latest.Begin(viewKey(id, tf))

	sig, err := s.catalog.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	_, interval := timerange.TimeframeWindow(tf)

	type window struct {
		id     string
		label  string
		price  float64
		from   time.Time
		to     time.Time
		active bool
	}

	stats, _ := sig.StatsFor(tf)
	var windows []window
	var rows []TriggerRow
	var unusable []string
	for _, tr := range stats.LastCompletedTriggers {
		row := TriggerRow{ID: tr.ID, TriggeredAt: tr.TriggeredAt, PriceText: "N/A", ROI: metrics.BPSToPercent(tr.ROIBPS)}
		price, okPrice := tr.Price.Float()
		okPrice = okPrice && price > 0
		if okPrice {
			row.PriceText = FormatPrice(price)
		}
		ts, okTime := tr.Time()
		if okTime && okPrice {
			w := timerange.TriggerWindow(ts, tf)
			windows = append(windows, window{id: tr.ID, label: ts.UTC().Format("2006-01-02 15:04"), price: price, from: w.From, to: w.To})
		} else {
			unusable = append(unusable, tr.ID)
		}
		rows = append(rows, row)
	}
	// Oldest first; outcome drawdown and loss streaks are order dependent.
	sort.SliceStable(windows, func(i, j int) bool {
		return windows[i].from.Before(windows[j].from)
	})
	if lt := sig.LastTrigger; lt != nil {
		price, okPrice := lt.Price.Float()
		ts, okTime := lt.Time()
		if okPrice && okTime && ts.Before(now) {
			w := timerange.ActiveWindow(ts, now)
			windows = append(windows, window{id: ActiveCurveID(lt.ID), label: "current", price: price, from: w.From, to: w.To, active: true})
		}
	}

	series := make([][]domain.Candle, len(windows))
	fetchErrs := make([]error, len(windows))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, w := range windows {
		g.Go(func() error {
			q := candles.Query{Mint: sig.Token.Address, Interval: interval, From: w.from, To: w.to}
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

	d := &Detail{
		Signal:   *sig,
		Header:   header(*sig, stats, tf, now),
		Triggers: rows,
		Labels:   make(map[string]string, len(windows)),
	}
	if d.Triggers == nil {
		d.Triggers = []TriggerRow{}
	}

	for _, id := range unusable {
		s.logger.Printf("WARNING: signal %s trigger %s omitted: unusable trigger time or price", sig.ID, id)
		observability.RecordSeriesOmitted(view, "invalid_trigger")
		d.Failed = append(d.Failed, id)
	}

	inputs := make([]comparison.Input, 0, len(windows))
	for i, w := range windows {
		d.Labels[w.id] = w.label
		if fetchErrs[i] != nil {
			s.logger.Printf("WARNING: signal %s trigger %s omitted: %v", sig.ID, w.id, fetchErrs[i])
			observability.RecordSeriesOmitted(view, "fetch_failed")
			d.Failed = append(d.Failed, w.id)
			continue
		}
		inputs = append(inputs, comparison.TriggerInput(w.id, series[i], w.price, sig.Direction, w.active))
	}

	d.Bundle = comparison.BuildBundle(inputs)
	d.Stats = metrics.ComputeOutcomes(comparison.Outcomes(d.Bundle))
	observability.RecordBundle(view, len(d.Bundle.Curves), d.Bundle.Omitted)

	drawn := make(map[string]bool, len(d.Bundle.Curves))
	for _, c := range d.Bundle.Curves {
		drawn[c.ID] = true
	}
	for i := range d.Triggers {
		d.Triggers[i].Drawn = drawn[d.Triggers[i].ID]
	}

	if !s.latest.Commit(ticket, d.Bundle) {
		d.Stale = true
		observability.RecordStaleResult(view)
		s.logger.Printf("Discarded stale detail for %s %s", id, tf)
	}
	return d, nil
}

// Current returns the last committed bundle for a signal and timeframe.
func (s *Service) Current(id string, tf domain.Timeframe) (domain.Bundle, bool) {
	return s.latest.Current(viewKey(id, domain.ParseTimeframe(string(tf))))
}

func viewKey(id string, tf domain.Timeframe) string {
	return "signal:" + id + ":" + string(tf)
}

func header(sig domain.Signal, st domain.SignalStats, tf domain.Timeframe, now time.Time) Header {
	h := Header{
		Timeframe:      tf,
		TimeframeLabel: tf.Label(),
		PastROI:        metrics.BPSToPercent(st.PastROIBPS),
		WinRate:        metrics.BPSToPercent(st.WinRateBPS),
		RR:             formatRR(st.RR),
		Frequency:      st.Frequency,
		TriggerText:    "N/A",
		TimeAgo:        "just now",
	}
	row := summarize(sig, now)
	h.SinceTrigger = row.SinceSignal
	h.TriggerText = row.TriggerText
	h.TimeAgo = row.TimeAgo
	return h
}
