package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestHTTPMetricsExportsCountersAndHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	m.IncInFlight()
	m.Observe("GET", "/api/v1/catalogues", "200", 120*time.Millisecond)
	m.DecInFlight()

	if got := testutil.ToFloat64(m.requests.WithLabelValues("GET", "/api/v1/catalogues", "200")); got != 1 {
		t.Fatalf("expected requests=1, got %f", got)
	}
	if got := testutil.ToFloat64(m.inflight); got != 0 {
		t.Fatalf("expected inflight back to 0, got %f", got)
	}

	count := testutil.CollectAndCount(m.duration)
	if count != 1 {
		t.Fatalf("expected 1 histogram series, got %d", count)
	}
}

func TestHTTPMetricsNilRegistererIsNoop(t *testing.T) {
	m := NewHTTPMetrics(nil)
	m.IncInFlight()
	m.Observe("", "", "", time.Second)
	m.DecInFlight()
}
