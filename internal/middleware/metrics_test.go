package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"go.uber.org/zap"

	"ciao-api/internal/metrics"
)

func setupMetricsRouter(t *testing.T) (*gin.Engine, *prometheus.Registry) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	registry := prometheus.NewRegistry()
	m := metrics.NewWithRegistry(registry, zap.NewNop())

	router := gin.New()
	router.Use(Metrics(m))
	return router, registry
}

func findFamily(t *testing.T, registry *prometheus.Registry, name string) *dto.MetricFamily {
	t.Helper()
	families, err := registry.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}

func countSamples(t *testing.T, registry *prometheus.Registry, name string) int {
	t.Helper()
	mf := findFamily(t, registry, name)
	if mf == nil {
		return 0
	}
	if mf.GetType() != dto.MetricType_COUNTER {
		t.Fatalf("metric %s is %v, want a counter", name, mf.GetType())
	}
	total := 0
	for _, metric := range mf.GetMetric() {
		total += int(metric.GetCounter().GetValue())
	}
	return total
}

func TestMetricsMiddleware_CountsRequests(t *testing.T) {
	router, registry := setupMetricsRouter(t)

	router.GET("/boards", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/boards", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("request %d returned %d, want 200", i, w.Code)
		}
	}

	if got := countSamples(t, registry, "ciao_http_requests_total"); got != 3 {
		t.Errorf("ciao_http_requests_total = %d, want 3", got)
	}
}

func TestMetricsMiddleware_SkipsProbeEndpoints(t *testing.T) {
	router, registry := setupMetricsRouter(t)

	for _, path := range []string{"/metrics", "/health", "/ready"} {
		router.GET(path, func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
	}

	for _, path := range []string{"/metrics", "/health", "/ready"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
	}

	if got := countSamples(t, registry, "ciao_http_requests_total"); got != 0 {
		t.Errorf("probe endpoints were counted, ciao_http_requests_total = %d, want 0", got)
	}
}

func TestMetricsMiddleware_RecordsErrorStatuses(t *testing.T) {
	router, registry := setupMetricsRouter(t)

	router.GET("/boom", func(c *gin.Context) {
		c.Status(http.StatusInternalServerError)
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("request returned %d, want 500", w.Code)
	}
	if got := countSamples(t, registry, "ciao_http_requests_total"); got != 1 {
		t.Errorf("ciao_http_requests_total = %d, want 1", got)
	}
}
