// Package comparison assembles normalized curves into chart bundles.
package comparison

import (
	"solana-signal-lab/internal/domain"
	"solana-signal-lab/internal/metrics"
	"solana-signal-lab/internal/normalization"
)

// AverageID is the curve ID of the historical average.
const AverageID = "average"

// Reference curve IDs.
const (
	BaselineID     = "baseline"
	MinReferenceID = "min"
	MaxReferenceID = "max"
)

// Input is one series to place on the chart.
type Input struct {
	ID          string
	Series      []domain.Candle
	AnchorPrice float64
	Direction   domain.Direction

	// Role is RoleCompleted or RoleActive. Empty means completed.
	Role domain.Role
}

// StrategyInput anchors a strategy series at its first open.
func StrategyInput(id string, series []domain.Candle, dir domain.Direction) Input {
	return Input{
		ID:          id,
		Series:      series,
		AnchorPrice: normalization.FirstOpen(series),
		Direction:   dir,
		Role:        domain.RoleCompleted,
	}
}

// TriggerInput anchors a trigger window at the trigger price.
func TriggerInput(id string, series []domain.Candle, triggerPrice float64, dir domain.Direction, active bool) Input {
	role := domain.RoleCompleted
	if active {
		role = domain.RoleActive
	}
	return Input{
		ID:          id,
		Series:      series,
		AnchorPrice: triggerPrice,
		Direction:   dir,
		Role:        role,
	}
}

// BuildBundle normalizes every input and derives the average, extrema and
// reference lines.
//
// Inputs that cannot be normalized are skipped and counted in Omitted.
// Active curves are drawn and count toward extrema and length, but are
// kept out of the average. When nothing is computable the empty bundle is
// returned.
func BuildBundle(inputs []Input) domain.Bundle {
	var (
		curves   []domain.Curve
		averaged [][]domain.Point
		extrema  [][]domain.Point
		omitted  int
	)

	for _, in := range inputs {
		points, err := normalization.Normalize(in.Series, in.AnchorPrice, in.Direction)
		if err != nil {
			omitted++
			continue
		}

		role := in.Role
		if role == "" {
			role = domain.RoleCompleted
		}

		curves = append(curves, domain.Curve{ID: in.ID, Role: role, Points: points})
		extrema = append(extrema, points)
		if role != domain.RoleActive {
			averaged = append(averaged, points)
		}
	}

	if len(curves) == 0 {
		b := domain.EmptyBundle()
		b.Omitted = omitted
		return b
	}

	agg := metrics.Aggregate(averaged, extrema)

	b := domain.Bundle{
		Curves:    curves,
		GlobalMin: agg.GlobalMin,
		GlobalMax: agg.GlobalMax,
		MaxLength: agg.MaxLength,
		Omitted:   omitted,
	}

	if agg.Average != nil {
		b.Average = &domain.Curve{ID: AverageID, Role: domain.RoleHistoricalAverage, Points: agg.Average}
	}

	b.Baseline = referenceLine(BaselineID, domain.RoleBaseline, 0, agg.MaxLength)
	b.MinReference = referenceLine(MinReferenceID, domain.RoleMinReference, agg.GlobalMin, agg.MaxLength)
	b.MaxReference = referenceLine(MaxReferenceID, domain.RoleMaxReference, agg.GlobalMax, agg.MaxLength)

	return b
}

// referenceLine is a horizontal segment over [0, maxLength-1].
func referenceLine(id string, role domain.Role, value float64, maxLength int) *domain.Curve {
	last := maxLength - 1
	if last < 0 {
		last = 0
	}
	return &domain.Curve{
		ID:   id,
		Role: role,
		Points: []domain.Point{
			{Index: 0, Value: value},
			{Index: last, Value: value},
		},
	}
}

// Outcomes returns the final value of each completed curve in bundle order.
func Outcomes(b domain.Bundle) []float64 {
	var out []float64
	for _, c := range b.Curves {
		if c.Role == domain.RoleCompleted {
			out = append(out, c.Last())
		}
	}
	return out
}
