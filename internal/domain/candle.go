package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Numeric is a price field as delivered upstream: a JSON number or a
// numeric string. The raw text is kept; use Float to coerce.
type Numeric string

// UnmarshalJSON accepts numbers, strings and null.
func (n *Numeric) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = Numeric(s)
		return nil
	}
	*n = Numeric(data)
	return nil
}

// MarshalJSON writes the raw text back as a JSON string.
func (n Numeric) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(n))
}

// Float parses the value as a decimal number. ok is false for empty or
// unparseable text. Hex, octal and binary literals and digit separators
// are rejected even though strconv would take them.
func (n Numeric) Float() (float64, bool) {
	s := strings.TrimSpace(string(n))
	if s == "" || !decimalText(s) {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func decimalText(s string) bool {
	if strings.ContainsRune(s, '_') {
		return false
	}
	s = strings.TrimLeft(s, "+-")
	if len(s) > 1 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X', 'o', 'O', 'b', 'B':
			return false
		}
	}
	return true
}

// NumericFromFloat formats v with full precision.
func NumericFromFloat(v float64) Numeric {
	return Numeric(strconv.FormatFloat(v, 'g', -1, 64))
}

// Flag is a boolean as delivered upstream: true/false, "true"/"false",
// 1/0 or null. Anything else decodes as false.
type Flag bool

// UnmarshalJSON never fails; unrecognized values are false.
func (f *Flag) UnmarshalJSON(data []byte) error {
	var n Numeric
	_ = n.UnmarshalJSON(data)
	v, err := strconv.ParseBool(strings.TrimSpace(string(n)))
	*f = Flag(err == nil && v)
	return nil
}

// RawCandle is an OHLC bar as received from the price API.
// Nothing about it is trusted until it passes sanitization. Timestamp is
// ISO 8601 text or a Unix epoch number.
type RawCandle struct {
	Timestamp Numeric `json:"timestamp"`
	Open      Numeric `json:"openUSD"`
	High      Numeric `json:"highUSD"`
	Low       Numeric `json:"lowUSD"`
	Close     Numeric `json:"closeUSD"`
	IsFinal   Flag    `json:"isFinal"`
}

// Candle is a validated OHLC bar. All prices are finite and > 0.
type Candle struct {
	Time  time.Time `json:"time"`
	Open  float64   `json:"open"`
	High  float64   `json:"high"`
	Low   float64   `json:"low"`
	Close float64   `json:"close"`
}

// TimestampMs returns the candle time as Unix milliseconds.
func (c Candle) TimestampMs() int64 {
	return c.Time.UnixMilli()
}

// Interval is a candle width accepted by the price API.
type Interval string

const (
	Interval1M Interval = "INTERVAL_1M"
	Interval5M Interval = "INTERVAL_5M"
	Interval1H Interval = "INTERVAL_1H"
	Interval4H Interval = "INTERVAL_4H"
	Interval6H Interval = "INTERVAL_6H"
	Interval1D Interval = "INTERVAL_1D"
	Interval3D Interval = "INTERVAL_3D"
	Interval1W Interval = "INTERVAL_1W"
)

var intervalDurations = map[Interval]time.Duration{
	Interval1M: time.Minute,
	Interval5M: 5 * time.Minute,
	Interval1H: time.Hour,
	Interval4H: 4 * time.Hour,
	Interval6H: 6 * time.Hour,
	Interval1D: 24 * time.Hour,
	Interval3D: 72 * time.Hour,
	Interval1W: 7 * 24 * time.Hour,
}

// Intervals lists supported intervals from finest to coarsest.
func Intervals() []Interval {
	return []Interval{Interval1M, Interval5M, Interval1H, Interval4H, Interval6H, Interval1D, Interval3D, Interval1W}
}

// ParseInterval accepts "INTERVAL_1H" or the short form "1H".
func ParseInterval(s string) (Interval, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if !strings.HasPrefix(s, "INTERVAL_") {
		s = "INTERVAL_" + s
	}
	iv := Interval(s)
	_, ok := intervalDurations[iv]
	return iv, ok
}

// Duration returns the bar width, or 0 for unknown intervals.
func (i Interval) Duration() time.Duration {
	return intervalDurations[i]
}

// Short returns the label without the INTERVAL_ prefix.
func (i Interval) Short() string {
	return strings.TrimPrefix(string(i), "INTERVAL_")
}

// ChainSolana is the only chain the price API is queried for.
const ChainSolana = "SOLANA"
