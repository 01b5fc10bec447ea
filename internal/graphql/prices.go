package graphql

import (
	"context"
	"fmt"

	"solana-signal-lab/internal/candles"
	"solana-signal-lab/internal/domain"
	"solana-signal-lab/internal/normalization"
	"solana-signal-lab/internal/observability"
)

const priceHistoryQuery = `query TokenPriceData($input: PriceHistoryCandlesInput!) {
  performance {
    priceHistoryCandles(input: $input) {
      tokenPriceData {
        timestamp
        closeUSD
        openUSD
        highUSD
        lowUSD
        isFinal
      }
    }
  }
}`

// isoMillis matches the API's ISO 8601 format with millisecond precision.
const isoMillis = "2006-01-02T15:04:05.000Z"

// PriceHistoryInput is the priceHistoryCandles input object.
type PriceHistoryInput struct {
	Mint     string          `json:"mint"`
	Chain    string          `json:"chain"`
	Interval domain.Interval `json:"interval"`
	From     string          `json:"from"`
	To       string          `json:"to"`
}

// NewPriceHistoryInput builds the input for a candle query on Solana.
func NewPriceHistoryInput(q candles.Query) PriceHistoryInput {
	return PriceHistoryInput{
		Mint:     q.Mint,
		Chain:    domain.ChainSolana,
		Interval: q.Interval,
		From:     q.From.UTC().Format(isoMillis),
		To:       q.To.UTC().Format(isoMillis),
	}
}

type priceHistoryData struct {
	Performance *struct {
		PriceHistoryCandles *struct {
			TokenPriceData []domain.RawCandle `json:"tokenPriceData"`
		} `json:"priceHistoryCandles"`
	} `json:"performance"`
}

// FetchPriceCandles returns the raw candles for input, unvalidated.
// A missing candle list is an empty result, not an error.
func (c *Client) FetchPriceCandles(ctx context.Context, input PriceHistoryInput) ([]domain.RawCandle, error) {
	var data priceHistoryData
	vars := map[string]interface{}{"input": input}
	if err := c.do(ctx, "price_history", priceHistoryQuery, vars, &data); err != nil {
		return nil, fmt.Errorf("fetch price candles: %w", err)
	}
	if data.Performance == nil || data.Performance.PriceHistoryCandles == nil {
		return []domain.RawCandle{}, nil
	}
	raw := data.Performance.PriceHistoryCandles.TokenPriceData
	if raw == nil {
		raw = []domain.RawCandle{}
	}
	return raw, nil
}

var _ candles.Source = (*Client)(nil)

// Fetch implements candles.Source: fetch, then sanitize.
func (c *Client) Fetch(ctx context.Context, q candles.Query) ([]domain.Candle, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	raw, err := c.FetchPriceCandles(ctx, NewPriceHistoryInput(q))
	if err != nil {
		return nil, err
	}
	clean := normalization.Sanitize(raw)
	observability.RecordCandles(len(raw), len(clean))
	return clean, nil
}
