package comparison

import (
	"math"
	"testing"
	"time"

	"solana-signal-lab/internal/domain"
)

func candles(closes ...float64) []domain.Candle {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	out := make([]domain.Candle, len(closes))
	for i, c := range closes {
		out[i] = domain.Candle{Time: base.Add(time.Duration(i) * time.Hour), Open: c, High: c, Low: c, Close: c}
	}
	return out
}

func TestBuildBundle_EndToEnd(t *testing.T) {
	b := BuildBundle([]Input{{
		ID:          "s1",
		Series:      candles(100, 110, 90),
		AnchorPrice: 100,
		Direction:   domain.DirectionLong,
	}})

	if len(b.Curves) != 1 {
		t.Fatalf("expected 1 curve, got %d", len(b.Curves))
	}

	want := []float64{0, 0, 10, -10}
	got := b.Curves[0].Points
	if len(got) != len(want) {
		t.Fatalf("expected %d points, got %d", len(want), len(got))
	}
	for i, w := range want {
		if got[i].Index != i || math.Abs(got[i].Value-w) > 1e-9 {
			t.Errorf("point %d: expected (%d, %v), got %+v", i, i, w, got[i])
		}
	}

	if b.GlobalMin != -10 || b.GlobalMax != 10 {
		t.Errorf("expected min -10 max 10, got %v/%v", b.GlobalMin, b.GlobalMax)
	}
	if b.MaxLength != 4 {
		t.Errorf("expected max length 4, got %d", b.MaxLength)
	}
	if b.Average != nil {
		t.Error("expected no average for a single curve")
	}
	if b.Curves[0].Role != domain.RoleCompleted {
		t.Errorf("expected default role completed, got %s", b.Curves[0].Role)
	}
}

func TestBuildBundle_ReferenceLines(t *testing.T) {
	b := BuildBundle([]Input{
		StrategyInput("a", candles(100, 120, 130), domain.DirectionLong),
		StrategyInput("b", candles(100, 80), domain.DirectionLong),
	})

	if b.Baseline == nil || b.MinReference == nil || b.MaxReference == nil {
		t.Fatal("expected all reference lines")
	}

	checkLine := func(name string, c *domain.Curve, value float64) {
		t.Helper()
		if len(c.Points) != 2 {
			t.Fatalf("%s: expected 2 points, got %d", name, len(c.Points))
		}
		if c.Points[0].Index != 0 || c.Points[1].Index != b.MaxLength-1 {
			t.Errorf("%s: expected span [0, %d], got [%d, %d]", name, b.MaxLength-1, c.Points[0].Index, c.Points[1].Index)
		}
		if c.Points[0].Value != value || c.Points[1].Value != value {
			t.Errorf("%s: expected value %v, got %+v", name, value, c.Points)
		}
	}

	checkLine("baseline", b.Baseline, 0)
	checkLine("min", b.MinReference, b.GlobalMin)
	checkLine("max", b.MaxReference, b.GlobalMax)

	if b.MinReference.Role != domain.RoleMinReference || b.MaxReference.Role != domain.RoleMaxReference {
		t.Error("unexpected reference roles")
	}
}

func TestBuildBundle_OmitsNotComputable(t *testing.T) {
	b := BuildBundle([]Input{
		{ID: "zero-anchor", Series: candles(1, 2), AnchorPrice: 0, Direction: domain.DirectionLong},
		{ID: "empty", Series: nil, AnchorPrice: 1, Direction: domain.DirectionLong},
		{ID: "ok", Series: candles(2, 3), AnchorPrice: 2, Direction: domain.DirectionShort},
	})

	if len(b.Curves) != 1 || b.Curves[0].ID != "ok" {
		t.Fatalf("expected only the computable curve, got %+v", b.Curves)
	}
	if b.Omitted != 2 {
		t.Errorf("expected 2 omitted, got %d", b.Omitted)
	}
}

func TestBuildBundle_EmptyInputs(t *testing.T) {
	for _, inputs := range [][]Input{
		nil,
		{{ID: "bad", Series: candles(1), AnchorPrice: math.NaN(), Direction: domain.DirectionLong}},
	} {
		b := BuildBundle(inputs)
		if !b.IsEmpty() {
			t.Errorf("expected empty bundle, got %+v", b)
		}
		if b.Curves == nil {
			t.Error("expected non-nil curves slice on empty bundle")
		}
		if b.Average != nil || b.Baseline != nil {
			t.Error("expected no derived curves on empty bundle")
		}
	}
}

func TestBuildBundle_ActiveExcludedFromAverage(t *testing.T) {
	b := BuildBundle([]Input{
		TriggerInput("t1", candles(110), 100, domain.DirectionLong, false),
		TriggerInput("t2", candles(130), 100, domain.DirectionLong, false),
		TriggerInput("live", candles(50, 60, 200), 100, domain.DirectionLong, true),
	})

	if b.Average == nil {
		t.Fatal("expected average over two completed curves")
	}
	if len(b.Average.Points) != 2 {
		t.Fatalf("expected average over completed indices only, got %d points", len(b.Average.Points))
	}
	if math.Abs(b.Average.Points[1].Value-20) > 1e-9 {
		t.Errorf("expected average 20 at index 1, got %v", b.Average.Points[1].Value)
	}

	if b.MaxLength != 4 {
		t.Errorf("expected active curve to set max length 4, got %d", b.MaxLength)
	}
	if b.GlobalMin != -50 || b.GlobalMax != 100 {
		t.Errorf("expected extrema from active curve -50/100, got %v/%v", b.GlobalMin, b.GlobalMax)
	}

	active := b.CurvesByRole(domain.RoleActive)
	if len(active) != 1 || active[0].ID != "live" {
		t.Errorf("expected one active curve, got %+v", active)
	}
}

func TestBuildBundle_SingleCompletedWithActive(t *testing.T) {
	b := BuildBundle([]Input{
		TriggerInput("t1", candles(110), 100, domain.DirectionLong, false),
		TriggerInput("live", candles(90), 100, domain.DirectionLong, true),
	})
	if b.Average != nil {
		t.Error("expected no average with a single completed curve")
	}
}

func TestStrategyInput_AnchorsAtFirstOpen(t *testing.T) {
	s := candles(5, 6)
	s[0].Open = 4
	in := StrategyInput("x", s, domain.DirectionLong)
	if in.AnchorPrice != 4 {
		t.Errorf("expected anchor 4, got %v", in.AnchorPrice)
	}

	empty := StrategyInput("y", nil, domain.DirectionLong)
	if empty.AnchorPrice != 0 {
		t.Errorf("expected anchor 0 for empty series, got %v", empty.AnchorPrice)
	}
}

func TestOutcomes(t *testing.T) {
	b := BuildBundle([]Input{
		TriggerInput("t1", candles(110), 100, domain.DirectionLong, false),
		TriggerInput("live", candles(90), 100, domain.DirectionLong, true),
		TriggerInput("t2", candles(95), 100, domain.DirectionLong, false),
	})
	got := Outcomes(b)
	if len(got) != 2 || math.Abs(got[0]-10) > 1e-9 || math.Abs(got[1]+5) > 1e-9 {
		t.Errorf("unexpected outcomes %v", got)
	}
}
