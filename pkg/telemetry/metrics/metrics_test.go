package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"octavia-hq/vela/pkg/config"
)

func newTestCollector(t *testing.T, enabled bool) *Collector {
	t.Helper()
	cfg := config.Default().Telemetry.Metrics
	cfg.Enabled = enabled
	return NewCollector(&cfg, prometheus.NewRegistry())
}

func scrape(t *testing.T, c *Collector) string {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("scrape status = %d", rec.Code)
	}
	return rec.Body.String()
}

func TestCollector_RecordsAllFamilies(t *testing.T) {
	c := newTestCollector(t, true)

	c.RecordCompile("tier1", "permutation", "ok", 50*time.Microsecond)
	c.RecordCompile("tier3", "algebraic", "error", 80*time.Microsecond)
	c.RecordCacheHit()
	c.RecordCacheMiss()
	c.RecordCacheEviction("capacity")
	c.UpdateCacheSize(7)
	c.RecordInvoke("permutation", "class", 2*time.Microsecond)
	c.RecordInvoke("algebraic", "not_rank_one", 9*time.Microsecond)

	body := scrape(t, c)
	for _, want := range []string{
		`octavia_vela_compile_total{backend="permutation",status="ok",tier="tier1"} 1`,
		`octavia_vela_compile_total{backend="algebraic",status="error",tier="tier3"} 1`,
		`octavia_vela_cache_hits_total 1`,
		`octavia_vela_cache_misses_total 1`,
		`octavia_vela_cache_evictions_total{reason="capacity"} 1`,
		`octavia_vela_cache_entries 7`,
		`octavia_vela_invoke_total{backend="permutation",outcome="class"} 1`,
		`octavia_vela_invoke_total{backend="algebraic",outcome="not_rank_one"} 1`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("scrape output is missing %q", want)
		}
	}
}

func TestCollector_DisabledRecordsNothing(t *testing.T) {
	c := newTestCollector(t, false)

	c.RecordCompile("tier1", "permutation", "ok", time.Microsecond)
	c.RecordCacheHit()
	c.RecordInvoke("permutation", "class", time.Microsecond)

	body := scrape(t, c)
	for _, family := range []string{
		"octavia_vela_compile_total{",
		"octavia_vela_cache_hits_total 1",
		"octavia_vela_invoke_total{",
	} {
		if strings.Contains(body, family) {
			t.Errorf("disabled collector recorded %q", family)
		}
	}
}

func TestCollector_DoesNotMutateConfig(t *testing.T) {
	cfg := config.MetricsConfig{Enabled: true}
	c := NewCollector(&cfg, prometheus.NewRegistry())

	if cfg.Namespace != "" || cfg.Subsystem != "" {
		t.Errorf("NewCollector wrote defaults back into the config: %+v", cfg)
	}
	c.RecordCacheHit()
	if !strings.Contains(scrape(t, c), "octavia_vela_cache_hits_total 1") {
		t.Error("empty namespace did not resolve to the default metric name")
	}
}

func TestCollector_NilRegistryGetsPrivateOne(t *testing.T) {
	cfg := config.Default().Telemetry.Metrics
	cfg.Enabled = true
	c := NewCollector(&cfg, nil)

	if c.Registry() == nil {
		t.Fatal("collector has no registry")
	}
	c.RecordCacheHit()
	if !strings.Contains(scrape(t, c), "octavia_vela_cache_hits_total 1") {
		t.Error("private registry did not record the hit")
	}
}
