package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solana-signal-lab/internal/candles"
	"solana-signal-lab/internal/domain"
	"solana-signal-lab/internal/graphql"
	"solana-signal-lab/internal/signals"
	"solana-signal-lab/internal/storage/memory"
	"solana-signal-lab/internal/strategies"
)

var now = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

type catalog struct {
	signals []domain.Signal
}

func (c *catalog) List(ctx context.Context) ([]domain.Signal, error) {
	return c.signals, nil
}

func (c *catalog) Get(ctx context.Context, id string) (*domain.Signal, error) {
	for i := range c.signals {
		if c.signals[i].ID == id {
			return &c.signals[i], nil
		}
	}
	return nil, fmt.Errorf("fetch signal %s: %w", id, graphql.ErrNotFound)
}

func testSignal() domain.Signal {
	last := domain.Trigger{ID: "t2", TriggeredAt: now.Add(-3 * time.Hour).Format(time.RFC3339), Price: "1.25"}
	return domain.Signal{
		ID:          "sig-1",
		Name:        "WIF reversal",
		Direction:   domain.DirectionLong,
		Token:       domain.SignalToken{Address: "EKpQGSJtjMFqKZ9KQanSqYXRcF8fBopzLHYxdM65zcjm", Symbol: "WIF", PriceUSD: "1.5"},
		LastTrigger: &last,
		Stats: []domain.SignalStats{{
			Timeframe:  domain.TimeframeOneDay,
			PastROIBPS: 300,
			WinRateBPS: 5000,
			LastCompletedTriggers: []domain.Trigger{
				{ID: "t1", TriggeredAt: now.Add(-72 * time.Hour).Format(time.RFC3339), Price: "1.0", ROIBPS: 300},
			},
		}},
	}
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	src := candles.Fixtures{StartPrice: 1}
	clock := func() time.Time { return now }

	srv := NewServer(Options{
		Strategies: strategies.NewService(strategies.Options{
			Source: src,
			Store:  memory.NewStrategyStore(),
			Now:    clock,
		}),
		Signals: signals.NewService(signals.Options{
			Catalog: &catalog{signals: []domain.Signal{testSignal()}},
			Source:  src,
			Now:     clock,
		}),
	})
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url string, body interface{}) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(b))
	require.NoError(t, err)
	return resp
}

func doDelete(t *testing.T, url string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodDelete, url, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestTokens_Search(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/tokens?q=bonk")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var toks []domain.Token
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&toks))
	require.NotEmpty(t, toks)
	assert.Equal(t, "BONK", toks[0].Symbol)
}

func TestTokenMetadata_Disabled(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/tokens/EKpQGSJtjMFqKZ9KQanSqYXRcF8fBopzLHYxdM65zcjm/metadata")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestStrategies_Lifecycle(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/strategies", map[string]string{
		"token": "WIF", "interval": "1H", "direction": "LONG", "preset": "1D",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var st domain.Strategy
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&st))
	assert.Equal(t, "WIF", st.Symbol)
	assert.Equal(t, domain.Interval1H, st.Interval)
	assert.Positive(t, st.CandleCount)

	resp2 := postJSON(t, ts.URL+"/api/strategies", map[string]string{
		"token": "BONK", "interval": "1H", "direction": "SHORT", "preset": "7D",
	})
	resp2.Body.Close()
	require.Equal(t, http.StatusCreated, resp2.StatusCode)

	cmp, err := http.Get(ts.URL + "/api/strategies/comparison")
	require.NoError(t, err)
	defer cmp.Body.Close()
	require.Equal(t, http.StatusOK, cmp.StatusCode)

	var body struct {
		Bundle struct {
			Curves  []domain.Curve `json:"curves"`
			Average *domain.Curve  `json:"average"`
			Empty   bool           `json:"empty"`
		} `json:"bundle"`
		Labels map[string]string `json:"labels"`
	}
	require.NoError(t, json.NewDecoder(cmp.Body).Decode(&body))
	assert.Len(t, body.Bundle.Curves, 2)
	assert.NotNil(t, body.Bundle.Average)
	assert.False(t, body.Bundle.Empty)
	assert.Equal(t, "WIF 1H LONG", body.Labels[st.ID])

	del := doDelete(t, ts.URL+"/api/strategies/"+st.ID)
	del.Body.Close()
	assert.Equal(t, http.StatusNoContent, del.StatusCode)

	again := doDelete(t, ts.URL+"/api/strategies/"+st.ID)
	defer again.Body.Close()
	assert.Equal(t, http.StatusNotFound, again.StatusCode)

	var errBody errorResponse
	require.NoError(t, json.NewDecoder(again.Body).Decode(&errBody))
	assert.NotEmpty(t, errBody.Error)

	cleared := doDelete(t, ts.URL+"/api/strategies")
	cleared.Body.Close()
	assert.Equal(t, http.StatusNoContent, cleared.StatusCode)
}

func TestStrategies_InvalidRequest(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/strategies", map[string]string{
		"token": "not-a-token", "interval": "1H", "direction": "LONG",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	bad, err := http.Post(ts.URL+"/api/strategies", "application/json", strings.NewReader("{"))
	require.NoError(t, err)
	defer bad.Body.Close()
	assert.Equal(t, http.StatusBadRequest, bad.StatusCode)
}

func TestStrategies_EmptyComparisonFormats(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/strategies/comparison?format=csv")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	b, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "curve_id,role,index,value\n", string(b))

	md, err := http.Get(ts.URL + "/api/strategies/comparison?format=markdown")
	require.NoError(t, err)
	defer md.Body.Close()
	b, _ = io.ReadAll(md.Body)
	assert.Contains(t, string(b), "No data available")

	unknown, err := http.Get(ts.URL + "/api/strategies/comparison?format=xml")
	require.NoError(t, err)
	defer unknown.Body.Close()
	assert.Equal(t, http.StatusBadRequest, unknown.StatusCode)
}

func TestSignals_ListAndDetail(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/signals?direction=LONG")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var rows []signals.Summary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "$1.25", rows[0].TriggerText)
	assert.InDelta(t, 20.0, rows[0].SinceSignal, 1e-9)
	assert.Equal(t, "3 hours ago", rows[0].TimeAgo)

	detail, err := http.Get(ts.URL + "/api/signals/sig-1?timeframe=1D")
	require.NoError(t, err)
	defer detail.Body.Close()
	require.Equal(t, http.StatusOK, detail.StatusCode)

	var d struct {
		Header   signals.Header       `json:"header"`
		Triggers []signals.TriggerRow `json:"triggers"`
		Bundle   struct {
			Curves []domain.Curve `json:"curves"`
		} `json:"bundle"`
	}
	require.NoError(t, json.NewDecoder(detail.Body).Decode(&d))
	assert.Equal(t, "1D", d.Header.TimeframeLabel)
	require.Len(t, d.Triggers, 1)
	assert.Len(t, d.Bundle.Curves, 2)

	chart, err := http.Get(ts.URL + "/api/signals/sig-1/chart")
	require.NoError(t, err)
	defer chart.Body.Close()
	assert.Equal(t, http.StatusOK, chart.StatusCode)
	assert.Contains(t, chart.Header.Get("Content-Type"), "text/html")
}

func TestSignals_NotFound(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/signals/missing")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusBadGateway, statusFor(fmt.Errorf("fetch: %w", graphql.ErrNetwork)))
	assert.Equal(t, http.StatusBadGateway, statusFor(&graphql.APIError{Messages: []string{"boom"}}))
	assert.Equal(t, http.StatusUnprocessableEntity, statusFor(strategies.ErrNoData))
	assert.Equal(t, http.StatusInternalServerError, statusFor(fmt.Errorf("other")))
}
