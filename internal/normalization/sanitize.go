package normalization

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"solana-signal-lab/internal/domain"
)

// Timestamp layouts accepted besides RFC 3339. Zone-less values are UTC.
var zonelessLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// Sanitize converts raw candles into a validated series ordered by time.
//
// A candle is dropped when its timestamp does not parse or when any of
// open/high/low/close is not a finite number > 0. Dropped candles are not
// repaired. Candles with equal timestamps keep their input order.
// The result is always non-nil.
func Sanitize(raw []domain.RawCandle) []domain.Candle {
	out := make([]domain.Candle, 0, len(raw))
	for _, rc := range raw {
		c, ok := sanitizeCandle(rc)
		if !ok {
			continue
		}
		out = append(out, c)
	}

	SortCandles(out)
	return out
}

// SortCandles orders candles by time ASC, stable on ties.
func SortCandles(candles []domain.Candle) {
	sort.SliceStable(candles, func(i, j int) bool {
		return candles[i].Time.Before(candles[j].Time)
	})
}

func sanitizeCandle(rc domain.RawCandle) (domain.Candle, bool) {
	ts, ok := ParseTimestamp(string(rc.Timestamp))
	if !ok {
		return domain.Candle{}, false
	}

	var prices [4]float64
	for i, n := range [4]domain.Numeric{rc.Open, rc.High, rc.Low, rc.Close} {
		v, ok := n.Float()
		if !ok || !validPrice(v) {
			return domain.Candle{}, false
		}
		prices[i] = v
	}

	return domain.Candle{
		Time:  ts,
		Open:  prices[0],
		High:  prices[1],
		Low:   prices[2],
		Close: prices[3],
	}, true
}

// ParseTimestamp parses RFC 3339, zone-less ISO 8601 (as UTC) and
// integer Unix epochs. Integers of 1e11 or more are milliseconds.
func ParseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	if ts, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return ts.UTC(), true
	}
	for _, layout := range zonelessLayouts {
		if ts, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return ts, true
		}
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil && n > 0 {
		if n >= 1e11 {
			return time.UnixMilli(n).UTC(), true
		}
		return time.Unix(n, 0).UTC(), true
	}

	return time.Time{}, false
}

func validPrice(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}
