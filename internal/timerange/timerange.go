// Package timerange turns presets and signal timeframes into concrete
// candle windows.
package timerange

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"solana-signal-lab/internal/domain"
)

// ErrInvalidRange is returned when from is not before to.
var ErrInvalidRange = errors.New("invalid time range")

// Preset is a relative range ending now.
type Preset string

const (
	Preset1D     Preset = "1D"
	Preset7D     Preset = "7D"
	Preset1M     Preset = "1M"
	Preset3M     Preset = "3M"
	Preset1Y     Preset = "1Y"
	PresetCustom Preset = "custom"
)

const day = 24 * time.Hour

var presetLookback = map[Preset]time.Duration{
	Preset1D: day,
	Preset7D: 7 * day,
	Preset1M: 30 * day,
	Preset3M: 90 * day,
	Preset1Y: 365 * day,
}

// Presets lists the relative presets, shortest first.
func Presets() []Preset {
	return []Preset{Preset1D, Preset7D, Preset1M, Preset3M, Preset1Y}
}

// ParsePreset accepts the preset labels case-insensitively.
func ParsePreset(s string) (Preset, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, string(PresetCustom)) {
		return PresetCustom, nil
	}
	p := Preset(strings.ToUpper(s))
	if _, ok := presetLookback[p]; !ok {
		return "", fmt.Errorf("unknown time range preset %q", s)
	}
	return p, nil
}

// Lookback returns the preset length, or 0 for custom/unknown.
func (p Preset) Lookback() time.Duration {
	return presetLookback[p]
}

// Range is a closed time window.
type Range struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// Duration returns To - From.
func (r Range) Duration() time.Duration {
	return r.To.Sub(r.From)
}

// Validate checks From < To.
func (r Range) Validate() error {
	if r.From.IsZero() || r.To.IsZero() || !r.From.Before(r.To) {
		return fmt.Errorf("%w: from must be before to", ErrInvalidRange)
	}
	return nil
}

// FromPreset resolves a relative preset. The window ends 1ms after now so
// the candle covering now is included.
func FromPreset(p Preset, now time.Time) (Range, error) {
	lookback, ok := presetLookback[p]
	if !ok {
		return Range{}, fmt.Errorf("%w: preset %q needs explicit bounds", ErrInvalidRange, p)
	}
	to := now.Add(time.Millisecond)
	return Range{From: to.Add(-lookback), To: to}, nil
}

// Custom builds an explicit range.
func Custom(from, to time.Time) (Range, error) {
	r := Range{From: from, To: to}
	if err := r.Validate(); err != nil {
		return Range{}, err
	}
	return r, nil
}

// Resolve picks FromPreset or Custom depending on p.
func Resolve(p Preset, from, to, now time.Time) (Range, error) {
	if p == PresetCustom {
		return Custom(from, to)
	}
	return FromPreset(p, now)
}

// TimeframeWindow returns the trigger window length and candle interval
// for a signal timeframe. Unknown timeframes use the ONE_DAY settings.
func TimeframeWindow(tf domain.Timeframe) (time.Duration, domain.Interval) {
	if tf == domain.TimeframeOneWeek {
		return 7 * day, domain.Interval4H
	}
	return day, domain.Interval1H
}

// TriggerWindow is the window following a completed trigger.
func TriggerWindow(triggeredAt time.Time, tf domain.Timeframe) Range {
	length, _ := TimeframeWindow(tf)
	return Range{From: triggeredAt, To: triggeredAt.Add(length + time.Millisecond)}
}

// ActiveWindow is the window of a trigger still in progress.
func ActiveWindow(triggeredAt, now time.Time) Range {
	return Range{From: triggeredAt, To: now.Add(time.Millisecond)}
}

// Ago renders the coarsest whole unit elapsed since t.
func Ago(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d >= day:
		return plural(int(d/day), "day") + " ago"
	case d >= time.Hour:
		return plural(int(d/time.Hour), "hour") + " ago"
	case d >= time.Minute:
		return plural(int(d/time.Minute), "minute") + " ago"
	}
	return "just now"
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
