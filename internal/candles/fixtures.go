package candles

import (
	"context"
	"hash/fnv"
	"math"
	"math/rand"

	"solana-signal-lab/internal/domain"
)

// Fixtures generates a deterministic random walk per (mint, interval).
// The same query always yields the same candles, so offline runs are
// reproducible.
type Fixtures struct {
	// StartPrice is the open of the first candle. Defaults to 1.
	StartPrice float64
	// Volatility is the per-bar standard deviation of log returns.
	// Defaults to 0.02.
	Volatility float64
}

var _ Source = Fixtures{}

// Fetch returns one candle per interval step in [From, To].
func (f Fixtures) Fetch(_ context.Context, q Query) ([]domain.Candle, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	price := f.StartPrice
	if price <= 0 {
		price = 1
	}
	vol := f.Volatility
	if vol <= 0 {
		vol = 0.02
	}

	step := q.Interval.Duration()
	first := q.From.Truncate(step)
	if first.Before(q.From) {
		first = first.Add(step)
	}

	h := fnv.New64a()
	h.Write([]byte(q.Mint))
	h.Write([]byte(q.Interval))
	h.Write([]byte(first.UTC().Format("20060102150405")))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))

	out := []domain.Candle{}
	for t := first; !t.After(q.To); t = t.Add(step) {
		open := price
		last := open * math.Exp(rng.NormFloat64()*vol)
		high := math.Max(open, last) * (1 + rng.Float64()*vol/2)
		low := math.Min(open, last) * (1 - rng.Float64()*vol/2)
		out = append(out, domain.Candle{
			Time:  t.UTC(),
			Open:  open,
			High:  high,
			Low:   low,
			Close: last,
		})
		price = last
	}
	return out, nil
}
