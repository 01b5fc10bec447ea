package reporting

import (
	"fmt"
	"time"

	"solana-signal-lab/internal/signals"
	"solana-signal-lab/internal/strategies"
)

// Generator turns service results into reports.
type Generator struct {
	now func() time.Time // Injectable clock for deterministic output
}

// NewGenerator creates a new report generator.
func NewGenerator() *Generator {
	return &Generator{
		now: func() time.Time { return time.Now().UTC() },
	}
}

// WithClock sets a custom clock function for deterministic output.
func (g *Generator) WithClock(now func() time.Time) *Generator {
	g.now = now
	return g
}

// FromComparison builds the strategy comparison report.
func (g *Generator) FromComparison(c *strategies.Comparison) *Report {
	return &Report{
		Title:       fmt.Sprintf("Strategy comparison (%d strategies)", len(c.Strategies)),
		GeneratedAt: g.now(),
		Bundle:      c.Bundle,
		Labels:      c.Labels,
		Stats:       c.Stats,
		Failed:      c.Failed,
	}
}

// FromDetail builds the signal trigger report.
func (g *Generator) FromDetail(d *signals.Detail) *Report {
	return &Report{
		Title:       fmt.Sprintf("%s %s triggers (%s)", d.Signal.Symbol(), d.Signal.Direction, d.Header.TimeframeLabel),
		GeneratedAt: g.now(),
		Bundle:      d.Bundle,
		Labels:      d.Labels,
		Stats:       d.Stats,
		Failed:      d.Failed,
	}
}
