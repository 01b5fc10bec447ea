package timerange

import (
	"errors"
	"testing"
	"time"

	"solana-signal-lab/internal/domain"
)

var now = time.Date(2024, 6, 15, 12, 30, 0, 0, time.UTC)

func TestFromPreset(t *testing.T) {
	tests := []struct {
		preset   Preset
		lookback time.Duration
	}{
		{Preset1D, 24 * time.Hour},
		{Preset7D, 7 * 24 * time.Hour},
		{Preset1M, 30 * 24 * time.Hour},
		{Preset3M, 90 * 24 * time.Hour},
		{Preset1Y, 365 * 24 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			r, err := FromPreset(tt.preset, now)
			if err != nil {
				t.Fatalf("FromPreset: %v", err)
			}
			if !r.To.Equal(now.Add(time.Millisecond)) {
				t.Errorf("expected to = now+1ms, got %s", r.To)
			}
			if r.Duration() != tt.lookback {
				t.Errorf("expected lookback %v, got %v", tt.lookback, r.Duration())
			}
		})
	}

	if _, err := FromPreset(PresetCustom, now); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("custom preset needs bounds, got %v", err)
	}
}

func TestParsePreset(t *testing.T) {
	for in, want := range map[string]Preset{"1d": Preset1D, "7D": Preset7D, " 3m ": Preset3M, "Custom": PresetCustom} {
		got, err := ParsePreset(in)
		if err != nil || got != want {
			t.Errorf("ParsePreset(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParsePreset("2W"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestCustom(t *testing.T) {
	if _, err := Custom(now, now); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("equal bounds must fail, got %v", err)
	}
	if _, err := Custom(now, now.Add(-time.Hour)); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("inverted bounds must fail, got %v", err)
	}
	r, err := Resolve(PresetCustom, now.Add(-time.Hour), now, time.Time{})
	if err != nil || r.Duration() != time.Hour {
		t.Errorf("unexpected custom range %+v %v", r, err)
	}
}

func TestTimeframeWindows(t *testing.T) {
	trig := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	d, iv := TimeframeWindow(domain.TimeframeOneDay)
	if d != 24*time.Hour || iv != domain.Interval1H {
		t.Errorf("ONE_DAY: %v %s", d, iv)
	}
	d, iv = TimeframeWindow(domain.TimeframeOneWeek)
	if d != 7*24*time.Hour || iv != domain.Interval4H {
		t.Errorf("ONE_WEEK: %v %s", d, iv)
	}
	d, _ = TimeframeWindow("ONE_MONTH")
	if d != 24*time.Hour {
		t.Errorf("unknown timeframe should default to ONE_DAY, got %v", d)
	}

	w := TriggerWindow(trig, domain.TimeframeOneWeek)
	if !w.From.Equal(trig) || !w.To.Equal(trig.Add(7*24*time.Hour+time.Millisecond)) {
		t.Errorf("unexpected trigger window %+v", w)
	}

	a := ActiveWindow(trig, now)
	if !a.To.Equal(now.Add(time.Millisecond)) {
		t.Errorf("unexpected active window %+v", a)
	}
}

func TestAgo(t *testing.T) {
	tests := []struct {
		elapsed time.Duration
		want    string
	}{
		{30 * time.Second, "just now"},
		{time.Minute, "1 minute ago"},
		{59 * time.Minute, "59 minutes ago"},
		{time.Hour, "1 hour ago"},
		{23 * time.Hour, "23 hours ago"},
		{24 * time.Hour, "1 day ago"},
		{50 * time.Hour, "2 days ago"},
		{-time.Hour, "just now"},
	}
	for _, tt := range tests {
		if got := Ago(now.Add(-tt.elapsed), now); got != tt.want {
			t.Errorf("Ago(%v) = %q, want %q", tt.elapsed, got, tt.want)
		}
	}
}
