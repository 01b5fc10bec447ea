package domain

import (
	"strings"
	"time"
)

// Timeframe selects which stats block and trigger window a signal view uses.
type Timeframe string

const (
	TimeframeOneDay  Timeframe = "ONE_DAY"
	TimeframeOneWeek Timeframe = "ONE_WEEK"
)

// ParseTimeframe accepts ONE_DAY/ONE_WEEK and the 1D/1W labels.
// Anything else falls back to ONE_DAY.
func ParseTimeframe(s string) Timeframe {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ONE_WEEK", "1W", "7D":
		return TimeframeOneWeek
	}
	return TimeframeOneDay
}

// Label returns the short display label.
func (t Timeframe) Label() string {
	if t == TimeframeOneWeek {
		return "1W"
	}
	return "1D"
}

// Signal is a published trading signal and its trigger history.
type Signal struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Direction   Direction     `json:"direction"`
	Token       SignalToken   `json:"token"`
	LastTrigger *Trigger      `json:"lastTrigger,omitempty"`
	Stats       []SignalStats `json:"stats"`
}

// Symbol falls back to the first word of the signal name.
func (s Signal) Symbol() string {
	if s.Token.Symbol != "" {
		return s.Token.Symbol
	}
	if fields := strings.Fields(s.Name); len(fields) > 0 {
		return fields[0]
	}
	return ""
}

// StatsFor returns the stats block for tf, else the first block.
func (s Signal) StatsFor(tf Timeframe) (SignalStats, bool) {
	for _, st := range s.Stats {
		if st.Timeframe == tf {
			return st, true
		}
	}
	if len(s.Stats) > 0 {
		return s.Stats[0], true
	}
	return SignalStats{}, false
}

// SignalToken is the token a signal trades.
type SignalToken struct {
	Address  string  `json:"address"`
	Symbol   string  `json:"symbol"`
	Name     string  `json:"name"`
	Icon     string  `json:"icon,omitempty"`
	PriceUSD Numeric `json:"priceUsd"`
}

// Trigger is one firing of a signal.
type Trigger struct {
	ID          string  `json:"id"`
	TriggeredAt string  `json:"triggeredAt"`
	Price       Numeric `json:"price"`
	ROIPrice    Numeric `json:"roiPrice,omitempty"`
	ROIBPS      float64 `json:"roiBPS"`
}

// Time parses TriggeredAt.
func (t Trigger) Time() (time.Time, bool) {
	if t.TriggeredAt == "" {
		return time.Time{}, false
	}
	ts, err := time.Parse(time.RFC3339Nano, t.TriggeredAt)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

// SignalStats are the per-timeframe performance figures of a signal.
type SignalStats struct {
	Timeframe             Timeframe `json:"timeframe"`
	PastROIBPS            float64   `json:"pastROIBPS"`
	WinRateBPS            float64   `json:"winRateBPS"`
	RR                    Numeric   `json:"rr"`
	Frequency             float64   `json:"frequency"`
	LastCompletedTriggers []Trigger `json:"lastCompletedTriggers"`
}
