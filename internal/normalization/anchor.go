package normalization

import (
	"errors"
	"math"

	"solana-signal-lab/internal/domain"
)

// ErrNotComputable is returned when a series cannot be normalized:
// the anchor is missing, zero, negative or non-finite, or the series is empty.
var ErrNotComputable = errors.New("series not computable")

// Normalize converts a sanitized series into percent change since anchor.
//
// The first point is always (0, 0), the anchor itself. Candle i becomes
// point i+1 using its close:
//
//	LONG:  (close - anchor) / anchor * 100
//	SHORT: (anchor - close) / anchor * 100
//
// A close that is not finite and positive yields 0 for that index.
func Normalize(series []domain.Candle, anchor float64, dir domain.Direction) ([]domain.Point, error) {
	if !validPrice(anchor) || len(series) == 0 || !dir.Valid() {
		return nil, ErrNotComputable
	}

	points := make([]domain.Point, 0, len(series)+1)
	points = append(points, domain.Point{Index: 0, Value: 0})

	for i, c := range series {
		v, _ := PercentChange(anchor, c.Close, dir)
		points = append(points, domain.Point{Index: i + 1, Value: v})
	}

	return points, nil
}

// PercentChange returns the direction-adjusted percent move from anchor
// to price. ok is false, and the value 0, when either price is unusable.
func PercentChange(anchor, price float64, dir domain.Direction) (float64, bool) {
	if !validPrice(anchor) || !validPrice(price) {
		return 0, false
	}
	v := (price - anchor) / anchor * 100
	if dir == domain.DirectionShort {
		v = (anchor - price) / anchor * 100
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// FirstOpen returns the open of the earliest candle, or 0 for an empty series.
func FirstOpen(series []domain.Candle) float64 {
	if len(series) == 0 {
		return 0
	}
	return series[0].Open
}
