package domain

import "time"

// Strategy is a user-defined comparison entry: one token, one interval,
// one direction over a fixed window. Its anchor is the first candle's open.
type Strategy struct {
	ID        string    `json:"id"`
	Mint      string    `json:"mint"`
	Symbol    string    `json:"symbol"`
	Interval  Interval  `json:"interval"`
	Direction Direction `json:"direction"`
	From      time.Time `json:"from"`
	To        time.Time `json:"to"`

	// Filled when the strategy is added.
	CandleCount int       `json:"candle_count"`
	Profit      float64   `json:"profit"` // percent, last close vs first open
	CreatedAt   time.Time `json:"created_at"`
}

// Label is a short human-readable name used in charts and tables.
func (s Strategy) Label() string {
	name := s.Symbol
	if name == "" {
		name = shortMint(s.Mint)
	}
	return name + " " + s.Interval.Short() + " " + string(s.Direction)
}

func shortMint(mint string) string {
	if len(mint) <= 8 {
		return mint
	}
	return mint[:4] + ".." + mint[len(mint)-4:]
}
