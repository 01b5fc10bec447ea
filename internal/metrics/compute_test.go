package metrics

import (
	"math"
	"testing"
)

func TestComputeOutcomes_Empty(t *testing.T) {
	stats := ComputeOutcomes(nil)
	if stats.Count != 0 || stats.WinRate != 0 {
		t.Errorf("expected zero stats, got %+v", stats)
	}
}

func TestComputeOutcomes_Basic(t *testing.T) {
	// Chronological: win, loss, loss, win
	stats := ComputeOutcomes([]float64{10, -5, -5, 20})

	if stats.Count != 4 {
		t.Errorf("expected count 4, got %d", stats.Count)
	}
	if stats.Wins != 2 || stats.Losses != 2 {
		t.Errorf("expected 2 wins and 2 losses, got %d/%d", stats.Wins, stats.Losses)
	}
	if stats.WinRate != 0.5 {
		t.Errorf("expected win rate 0.5, got %f", stats.WinRate)
	}
	if stats.Mean != 5 {
		t.Errorf("expected mean 5, got %f", stats.Mean)
	}
	if stats.Min != -5 || stats.Max != 20 {
		t.Errorf("expected min -5 max 20, got %f/%f", stats.Min, stats.Max)
	}
	// Sorted: -5, -5, 10, 20 → median at 1.5 = (-5 + 10) / 2
	if stats.Median != 2.5 {
		t.Errorf("expected median 2.5, got %f", stats.Median)
	}
	// Cumulative: 10, 5, 0, 20 → peak 10, trough 0
	if stats.MaxDrawdown != 10 {
		t.Errorf("expected max drawdown 10, got %f", stats.MaxDrawdown)
	}
	if stats.MaxConsecutiveLosses != 2 {
		t.Errorf("expected 2 consecutive losses, got %d", stats.MaxConsecutiveLosses)
	}
}

func TestComputeOutcomes_ZeroIsLoss(t *testing.T) {
	stats := ComputeOutcomes([]float64{0, 0, 1})
	if stats.Wins != 1 {
		t.Errorf("expected 1 win, got %d", stats.Wins)
	}
	if stats.MaxConsecutiveLosses != 2 {
		t.Errorf("expected streak 2, got %d", stats.MaxConsecutiveLosses)
	}
}

func TestComputeStddev(t *testing.T) {
	outcomes := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	mean := computeMean(outcomes)
	got := computeStddev(outcomes, mean)
	// Sample stddev with n-1 = 7: sqrt(32/7)
	want := math.Sqrt(32.0 / 7.0)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("expected %f, got %f", want, got)
	}

	if computeStddev([]float64{1}, 1) != 0 {
		t.Error("expected 0 stddev for single sample")
	}
}

func TestComputePercentile(t *testing.T) {
	sorted := []float64{1, 2, 3, 4, 5}

	tests := []struct {
		p    float64
		want float64
	}{
		{0.0, 1},
		{0.5, 3},
		{1.0, 5},
		{0.1, 1.4},
		{0.9, 4.6},
	}

	for _, tt := range tests {
		got := computePercentile(sorted, tt.p)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("p=%v: expected %v, got %v", tt.p, tt.want, got)
		}
	}

	if computePercentile(nil, 0.5) != 0 {
		t.Error("expected 0 for empty input")
	}
}

func TestBPSConversions(t *testing.T) {
	if BPSToPercent(1250) != 12.5 {
		t.Errorf("expected 12.5, got %f", BPSToPercent(1250))
	}
	if PercentToBPS(-3.456) != -346 {
		t.Errorf("expected -346, got %d", PercentToBPS(-3.456))
	}
}
