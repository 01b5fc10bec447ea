// Package reporting renders comparison bundles as Markdown, CSV, terminal
// tables and HTML charts.
package reporting

import (
	"sort"
	"time"

	"solana-signal-lab/internal/domain"
	"solana-signal-lab/internal/metrics"
)

// Report is a rendered comparison view.
type Report struct {
	Title       string
	GeneratedAt time.Time
	Bundle      domain.Bundle

	// Labels maps curve IDs to display names. Missing IDs render as-is.
	Labels map[string]string

	Stats  metrics.OutcomeStats
	Failed []string
}

// Label returns the display name of a curve.
func (r *Report) Label(c domain.Curve) string {
	if name, ok := r.Labels[c.ID]; ok && name != "" {
		return name
	}
	switch c.Role {
	case domain.RoleHistoricalAverage:
		return "Historical average"
	case domain.RoleBaseline:
		return "Baseline"
	case domain.RoleMinReference:
		return "Min"
	case domain.RoleMaxReference:
		return "Max"
	}
	return c.ID
}

// CurveRow is one summary line per curve.
type CurveRow struct {
	ID    string
	Label string
	Role  domain.Role
	metrics.CurveSummary
}

// Rows summarizes the data curves and the average, in bundle order.
func (r *Report) Rows() []CurveRow {
	curves := append([]domain.Curve{}, r.Bundle.Curves...)
	if r.Bundle.Average != nil {
		curves = append(curves, *r.Bundle.Average)
	}
	rows := make([]CurveRow, 0, len(curves))
	for _, c := range curves {
		rows = append(rows, CurveRow{
			ID:           c.ID,
			Label:        r.Label(c),
			Role:         c.Role,
			CurveSummary: metrics.Summarize(c.Points),
		})
	}
	return rows
}

// failedLabels returns display names of series that failed to load.
func (r *Report) failedLabels() []string {
	out := make([]string, 0, len(r.Failed))
	for _, id := range r.Failed {
		if name, ok := r.Labels[id]; ok && name != "" {
			out = append(out, name)
			continue
		}
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
