package observability

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNewMetrics_IsolatedRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := newMetrics(promauto.With(reg), "test")

	m.BundlesBuilt.WithLabelValues("strategies").Inc()
	m.BundlesBuilt.WithLabelValues("strategies").Inc()

	if got := testutil.ToFloat64(m.BundlesBuilt.WithLabelValues("strategies")); got != 2 {
		t.Errorf("expected 2 bundles, got %v", got)
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	found := false
	for _, f := range families {
		if f.GetName() == "test_comparison_bundles_built_total" {
			found = true
		}
	}
	if !found {
		t.Error("expected namespaced metric to be registered")
	}
}

func TestRecordBundle(t *testing.T) {
	before := testutil.ToFloat64(DefaultMetrics.SeriesOmitted.WithLabelValues("unit", "not_computable"))

	RecordBundle("unit", 3, 2)
	RecordBundle("unit", 1, 0)

	if got := testutil.ToFloat64(DefaultMetrics.BundlesBuilt.WithLabelValues("unit")); got < 2 {
		t.Errorf("expected at least 2 bundles, got %v", got)
	}
	after := testutil.ToFloat64(DefaultMetrics.SeriesOmitted.WithLabelValues("unit", "not_computable"))
	if after-before != 2 {
		t.Errorf("expected 2 omitted series recorded, got %v", after-before)
	}
}

func TestRecordCandles(t *testing.T) {
	fetched := testutil.ToFloat64(DefaultMetrics.CandlesFetched)
	dropped := testutil.ToFloat64(DefaultMetrics.CandlesDropped)

	RecordCandles(10, 7)

	if got := testutil.ToFloat64(DefaultMetrics.CandlesFetched) - fetched; got != 10 {
		t.Errorf("expected 10 fetched, got %v", got)
	}
	if got := testutil.ToFloat64(DefaultMetrics.CandlesDropped) - dropped; got != 3 {
		t.Errorf("expected 3 dropped, got %v", got)
	}
}

func TestRecordDBQuery_CountsErrors(t *testing.T) {
	errs := DefaultMetrics.DBQueryErrors.WithLabelValues("unit", "op")
	before := testutil.ToFloat64(errs)

	RecordDBQuery("unit", "op", 0.01, nil)
	RecordDBQuery("unit", "op", 0.01, errors.New("boom"))

	if got := testutil.ToFloat64(errs) - before; got != 1 {
		t.Errorf("expected 1 error, got %v", got)
	}
}

func TestRecordCacheLookup(t *testing.T) {
	hits := testutil.ToFloat64(DefaultMetrics.CacheHits.WithLabelValues("unit"))
	misses := testutil.ToFloat64(DefaultMetrics.CacheMisses.WithLabelValues("unit"))

	RecordCacheLookup("unit", true)
	RecordCacheLookup("unit", false)
	RecordCacheLookup("unit", false)

	if got := testutil.ToFloat64(DefaultMetrics.CacheHits.WithLabelValues("unit")) - hits; got != 1 {
		t.Errorf("expected 1 hit, got %v", got)
	}
	if got := testutil.ToFloat64(DefaultMetrics.CacheMisses.WithLabelValues("unit")) - misses; got != 2 {
		t.Errorf("expected 2 misses, got %v", got)
	}
}
