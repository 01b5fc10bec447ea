package metrics

import "solana-signal-lab/internal/domain"

// Aggregation is the result of combining normalized curves.
type Aggregation struct {
	// Average is the per-index mean. Nil unless more than one curve was averaged.
	Average []domain.Point

	// GlobalMin and GlobalMax always include 0.
	GlobalMin float64
	GlobalMax float64

	// MaxLength is the longest curve length, 0 when there are no curves.
	MaxLength int
}

// AggregateCurves aggregates a single set: every curve feeds both the
// average and the extrema.
func AggregateCurves(curves [][]domain.Point) Aggregation {
	return Aggregate(curves, curves)
}

// Aggregate computes the average over averaged and the extrema over extrema.
//
// At index i only curves with more than i points contribute to the mean.
// Shorter curves are left out rather than padded, so later indices may be
// averaged over fewer curves. Indices nobody reaches are omitted.
// MaxLength is taken from the extrema set and bounds the averaging.
func Aggregate(averaged, extrema [][]domain.Point) Aggregation {
	agg := Aggregation{}

	for _, pts := range extrema {
		if len(pts) > agg.MaxLength {
			agg.MaxLength = len(pts)
		}
		for _, p := range pts {
			if p.Value < agg.GlobalMin {
				agg.GlobalMin = p.Value
			}
			if p.Value > agg.GlobalMax {
				agg.GlobalMax = p.Value
			}
		}
	}

	if len(averaged) > 1 {
		agg.Average = averagePoints(averaged, agg.MaxLength)
	}

	return agg
}

func averagePoints(curves [][]domain.Point, maxLength int) []domain.Point {
	for _, pts := range curves {
		if len(pts) > maxLength {
			maxLength = len(pts)
		}
	}

	out := make([]domain.Point, 0, maxLength)
	for i := 0; i < maxLength; i++ {
		sum := 0.0
		n := 0
		for _, pts := range curves {
			if i < len(pts) {
				sum += pts[i].Value
				n++
			}
		}
		if n == 0 {
			continue
		}
		out = append(out, domain.Point{Index: i, Value: sum / float64(n)})
	}
	return out
}

// CurveSummary describes a single curve's path.
type CurveSummary struct {
	Final  float64 `json:"final"`
	Peak   float64 `json:"peak"`
	Trough float64 `json:"trough"`
}

// Summarize returns final, highest and lowest values. Peak and trough
// start at 0 like the chart extrema.
func Summarize(points []domain.Point) CurveSummary {
	var s CurveSummary
	for _, p := range points {
		if p.Value > s.Peak {
			s.Peak = p.Value
		}
		if p.Value < s.Trough {
			s.Trough = p.Value
		}
	}
	if len(points) > 0 {
		s.Final = points[len(points)-1].Value
	}
	return s
}
