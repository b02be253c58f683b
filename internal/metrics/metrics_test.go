package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func counterValue(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
	metrics:
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if labels[lp.GetName()] != lp.GetValue() {
					continue metrics
				}
			}
			return m.GetCounter().GetValue()
		}
	}
	return 0
}

func TestCollector_ObserveRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.ObserveRequest("GET", "/users/:id", 200, 10*time.Millisecond)
	c.ObserveRequest("GET", "/users/:id", 200, 20*time.Millisecond)
	c.ObserveRequest("GET", "/users/:id", 404, time.Millisecond)
	c.RecordRateLimited()

	labels := map[string]string{"method": "GET", "route": "/users/:id", "status": "200"}
	if got := counterValue(t, reg, "vetscheduler_http_requests_total", labels); got != 2 {
		t.Fatalf("expected 2 requests with 200, got %v", got)
	}
	if got := counterValue(t, reg, "vetscheduler_rate_limited_total", nil); got != 1 {
		t.Fatalf("expected 1 rate limited, got %v", got)
	}
}

func TestHandler_ExposesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.ObserveRequest("POST", "/pets", 201, time.Millisecond)

	srv := httptest.NewServer(Handler(reg))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("GET metrics: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), `vetscheduler_http_requests_total{method="POST",route="/pets",status="201"} 1`) {
		t.Fatalf("metric not exposed:\n%s", body)
	}
}
