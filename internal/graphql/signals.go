package graphql

import (
	"context"
	"fmt"

	"solana-signal-lab/internal/domain"
	"solana-signal-lab/internal/signals"
)

const triggerFields = `triggeredAt
      id
      price
      roiPrice
      roiBPS`

const signalFields = `id
    name
    description
    direction
    token {
      icon
      logoURI
      name
      symbol
      address
      priceUsd
    }
    lastTrigger {
      ` + triggerFields + `
    }
    stats {
      pastROIBPS
      rr
      timeframe
      winRateBPS
      frequency
      lastCompletedTriggers {
        ` + triggerFields + `
      }
    }`

const signalsQuery = `query Signals {
  signals {
    signals {
      signals {
        ` + signalFields + `
      }
    }
  }
}`

const signalQuery = `query Signal($id: ID!) {
  signals {
    signal(id: $id) {
      ` + signalFields + `
    }
  }
}`

type wireToken struct {
	Icon     string         `json:"icon"`
	LogoURI  string         `json:"logoURI"`
	Name     string         `json:"name"`
	Symbol   string         `json:"symbol"`
	Address  string         `json:"address"`
	PriceUSD domain.Numeric `json:"priceUsd"`
}

type wireTrigger struct {
	TriggeredAt string         `json:"triggeredAt"`
	ID          string         `json:"id"`
	Price       domain.Numeric `json:"price"`
	ROIPrice    domain.Numeric `json:"roiPrice"`
	ROIBPS      domain.Numeric `json:"roiBPS"`
}

type wireStats struct {
	PastROIBPS            domain.Numeric `json:"pastROIBPS"`
	RR                    domain.Numeric `json:"rr"`
	Timeframe             string         `json:"timeframe"`
	WinRateBPS            domain.Numeric `json:"winRateBPS"`
	Frequency             domain.Numeric `json:"frequency"`
	LastCompletedTriggers []wireTrigger  `json:"lastCompletedTriggers"`
}

type wireSignal struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Direction   string       `json:"direction"`
	Token       *wireToken   `json:"token"`
	LastTrigger *wireTrigger `json:"lastTrigger"`
	Stats       []wireStats  `json:"stats"`
}

type signalsData struct {
	Signals *struct {
		Signals *struct {
			Signals []wireSignal `json:"signals"`
		} `json:"signals"`
	} `json:"signals"`
}

type signalData struct {
	Signals *struct {
		Signal *wireSignal `json:"signal"`
	} `json:"signals"`
}

// FetchSignals returns the signal catalog.
func (c *Client) FetchSignals(ctx context.Context) ([]domain.Signal, error) {
	var data signalsData
	if err := c.do(ctx, "signals", signalsQuery, nil, &data); err != nil {
		return nil, fmt.Errorf("fetch signals: %w", err)
	}
	out := []domain.Signal{}
	if data.Signals == nil || data.Signals.Signals == nil {
		return out, nil
	}
	for _, ws := range data.Signals.Signals.Signals {
		out = append(out, ws.toDomain())
	}
	return out, nil
}

// FetchSignal returns one signal. Returns ErrNotFound if it does not exist.
func (c *Client) FetchSignal(ctx context.Context, id string) (*domain.Signal, error) {
	var data signalData
	vars := map[string]interface{}{"id": id}
	if err := c.do(ctx, "signal", signalQuery, vars, &data); err != nil {
		return nil, fmt.Errorf("fetch signal %s: %w", id, err)
	}
	if data.Signals == nil || data.Signals.Signal == nil {
		return nil, fmt.Errorf("fetch signal %s: %w", id, ErrNotFound)
	}
	s := data.Signals.Signal.toDomain()
	return &s, nil
}

// List implements signals.Catalog.
func (c *Client) List(ctx context.Context) ([]domain.Signal, error) {
	return c.FetchSignals(ctx)
}

// Get implements signals.Catalog.
func (c *Client) Get(ctx context.Context, id string) (*domain.Signal, error) {
	return c.FetchSignal(ctx, id)
}

var _ signals.Catalog = (*Client)(nil)

func (w wireSignal) toDomain() domain.Signal {
	s := domain.Signal{
		ID:          w.ID,
		Name:        w.Name,
		Description: w.Description,
		Direction:   domain.Direction(w.Direction),
		Stats:       make([]domain.SignalStats, 0, len(w.Stats)),
	}
	if d, err := domain.ParseDirection(w.Direction); err == nil {
		s.Direction = d
	}
	if w.Token != nil {
		icon := w.Token.Icon
		if icon == "" {
			icon = w.Token.LogoURI
		}
		s.Token = domain.SignalToken{
			Address:  w.Token.Address,
			Symbol:   w.Token.Symbol,
			Name:     w.Token.Name,
			Icon:     icon,
			PriceUSD: w.Token.PriceUSD,
		}
	}
	if w.LastTrigger != nil {
		t := w.LastTrigger.toDomain()
		s.LastTrigger = &t
	}
	for _, st := range w.Stats {
		stats := domain.SignalStats{
			Timeframe:             domain.Timeframe(st.Timeframe),
			PastROIBPS:            floatOr(st.PastROIBPS),
			WinRateBPS:            floatOr(st.WinRateBPS),
			RR:                    st.RR,
			Frequency:             floatOr(st.Frequency),
			LastCompletedTriggers: make([]domain.Trigger, 0, len(st.LastCompletedTriggers)),
		}
		for _, tr := range st.LastCompletedTriggers {
			stats.LastCompletedTriggers = append(stats.LastCompletedTriggers, tr.toDomain())
		}
		s.Stats = append(s.Stats, stats)
	}
	return s
}

func (w wireTrigger) toDomain() domain.Trigger {
	return domain.Trigger{
		ID:          w.ID,
		TriggeredAt: w.TriggeredAt,
		Price:       w.Price,
		ROIPrice:    w.ROIPrice,
		ROIBPS:      floatOr(w.ROIBPS),
	}
}

func floatOr(n domain.Numeric) float64 {
	v, _ := n.Float()
	return v
}
