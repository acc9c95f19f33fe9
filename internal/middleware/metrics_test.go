package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/quick"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"legal-board-api/internal/metrics"
)

func newTestMetrics() *metrics.Metrics {
	return metrics.NewWithRegistry(prometheus.NewRegistry(), zap.NewNop())
}

func setupTestRouter(m *metrics.Metrics) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Metrics(m))
	return router
}

// For any status code, each request increments the counter of its route pattern and status class
func TestProperty_HTTPRequestMetricsIncrement(t *testing.T) {
	property := func(statusCode uint16) bool {
		if statusCode < 200 || statusCode >= 600 {
			return true
		}

		m := newTestMetrics()
		router := setupTestRouter(m)
		router.GET("/api/tableros/terminos/:id", func(c *gin.Context) {
			c.Status(int(statusCode))
		})

		for i := 0; i < 2; i++ {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/tableros/terminos/abc", nil))
			if w.Code != int(statusCode) {
				return false
			}
		}

		class := map[int]string{2: "2xx", 3: "3xx", 4: "4xx", 5: "5xx"}[int(statusCode)/100]
		got := testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/tableros/terminos/:id", class))
		return got == 2
	}

	if err := quick.Check(property, &quick.Config{MaxCount: 100}); err != nil {
		t.Errorf("Property test failed: %v", err)
	}
}

func TestMetricsMiddleware_ExcludedEndpoints(t *testing.T) {
	m := newTestMetrics()
	router := setupTestRouter(m)
	for _, path := range []string{"/metrics", "/health", "/api/tableros/health"} {
		router.GET(path, func(c *gin.Context) { c.Status(http.StatusOK) })
	}

	for _, path := range []string{"/metrics", "/health", "/api/tableros/health"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}

	assert.Zero(t, testutil.CollectAndCount(m.HTTPRequestsTotal))
}

func TestMetricsMiddleware_UnmatchedRoute(t *testing.T) {
	m := newTestMetrics()
	router := setupTestRouter(m)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/tableros/nada", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "unmatched", "4xx")))
}
