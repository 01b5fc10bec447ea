package metrics

import (
	"math"
	"sort"
)

// OutcomeStats summarizes the final outcomes of a set of completed curves.
type OutcomeStats struct {
	Count   int     `json:"count"`
	Wins    int     `json:"wins"`
	Losses  int     `json:"losses"`
	WinRate float64 `json:"win_rate"` // wins / count

	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	P10    float64 `json:"p10"`
	P90    float64 `json:"p90"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Stddev float64 `json:"stddev"`

	MaxDrawdown          float64 `json:"max_drawdown"`
	MaxConsecutiveLosses int     `json:"max_consecutive_losses"`
}

// ComputeOutcomes calculates outcome statistics.
// outcomes must be in chronological order; order-dependent metrics
// (MaxDrawdown, MaxConsecutiveLosses) rely on it.
func ComputeOutcomes(outcomes []float64) OutcomeStats {
	n := len(outcomes)
	if n == 0 {
		return OutcomeStats{}
	}

	wins := 0
	for _, o := range outcomes {
		if o > 0 {
			wins++
		}
	}

	sorted := make([]float64, n)
	copy(sorted, outcomes)
	sort.Float64s(sorted)

	mean := computeMean(outcomes)

	return OutcomeStats{
		Count:   n,
		Wins:    wins,
		Losses:  n - wins,
		WinRate: computeWinRate(wins, n),

		Mean:   mean,
		Median: computePercentile(sorted, 0.50),
		P10:    computePercentile(sorted, 0.10),
		P90:    computePercentile(sorted, 0.90),
		Min:    sorted[0],
		Max:    sorted[n-1],
		Stddev: computeStddev(outcomes, mean),

		MaxDrawdown:          computeMaxDrawdown(outcomes),
		MaxConsecutiveLosses: computeMaxConsecutiveLosses(outcomes),
	}
}

// computeWinRate calculates win rate as wins / total.
func computeWinRate(wins, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(wins) / float64(total)
}

func computeMean(outcomes []float64) float64 {
	if len(outcomes) == 0 {
		return 0
	}
	sum := 0.0
	for _, o := range outcomes {
		sum += o
	}
	return sum / float64(len(outcomes))
}

// computeStddev calculates sample standard deviation (n-1 denominator).
func computeStddev(outcomes []float64, mean float64) float64 {
	n := len(outcomes)
	if n < 2 {
		return 0
	}
	sumSq := 0.0
	for _, o := range outcomes {
		diff := o - mean
		sumSq += diff * diff
	}
	return math.Sqrt(sumSq / float64(n-1))
}

// computePercentile uses linear interpolation. sorted must be ASC.
func computePercentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return sorted[0]
	}

	idx := p * float64(n-1)
	lower := int(idx)
	upper := lower + 1
	if upper >= n {
		return sorted[n-1]
	}

	frac := idx - float64(lower)
	return sorted[lower] + frac*(sorted[upper]-sorted[lower])
}

// computeMaxDrawdown is the worst peak-to-trough on cumulative outcomes.
func computeMaxDrawdown(outcomes []float64) float64 {
	cumulative := 0.0
	peak := 0.0
	maxDrawdown := 0.0

	for _, o := range outcomes {
		cumulative += o
		if cumulative > peak {
			peak = cumulative
		}
		if dd := peak - cumulative; dd > maxDrawdown {
			maxDrawdown = dd
		}
	}
	return maxDrawdown
}

// computeMaxConsecutiveLosses finds the longest streak of outcome <= 0.
func computeMaxConsecutiveLosses(outcomes []float64) int {
	maxStreak := 0
	streak := 0
	for _, o := range outcomes {
		if o <= 0 {
			streak++
			if streak > maxStreak {
				maxStreak = streak
			}
		} else {
			streak = 0
		}
	}
	return maxStreak
}

// BPSToPercent converts basis points to percent.
func BPSToPercent(bps float64) float64 {
	return bps / 100
}

// PercentToBPS converts percent to basis points, rounded.
func PercentToBPS(pct float64) int64 {
	return int64(math.Round(pct * 100))
}
