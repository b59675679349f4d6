package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ArowuTest/alc-results-api/internal/apierror"
	"github.com/ArowuTest/alc-results-api/internal/metrics"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(m *metrics.Metrics) *gin.Engine {
	r := gin.New()
	r.Use(RequestIDMiddleware(), LoggerMiddleware(zap.NewNop()), RecoveryMiddleware(zap.NewNop()), CORSMiddleware("*"))
	if m != nil {
		r.Use(MetricsMiddleware(m))
	}
	r.Use(ErrorResponder())
	r.NoRoute(InvalidEndpoint)

	r.GET("/ok", func(c *gin.Context) { c.JSON(http.StatusOK, []string{"a"}) })
	r.GET("/plain", func(c *gin.Context) { _ = c.Error(errors.New("Invalid game!")) })
	r.GET("/status", func(c *gin.Context) { _ = c.Error(apierror.WithStatus(http.StatusNotFound, "gone")) })
	r.GET("/panic", func(c *gin.Context) { panic("boom") })
	return r
}

func serve(r http.Handler, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestErrorResponder(t *testing.T) {
	r := newEngine(nil)

	rec := serve(r, http.MethodGet, "/plain", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid game!", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")

	rec = serve(r, http.MethodGet, "/status", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "gone", rec.Body.String())

	rec = serve(r, http.MethodGet, "/ok", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `["a"]`, rec.Body.String())
}

func TestInvalidEndpoint(t *testing.T) {
	rec := serve(newEngine(nil), http.MethodGet, "/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Invalid endpoint!", rec.Body.String())
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSMiddleware(t *testing.T) {
	r := newEngine(nil)
	for _, path := range []string{"/ok", "/plain", "/nope"} {
		rec := serve(r, http.MethodGet, path, nil)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"), path)
	}

	// Preflights are not answered separately; an OPTIONS request falls through to routing.
	rec := serve(r, http.MethodOptions, "/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Invalid endpoint!", rec.Body.String())
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestIDMiddleware(t *testing.T) {
	r := newEngine(nil)

	rec := serve(r, http.MethodGet, "/ok", map[string]string{RequestIDHeader: "abc-123"})
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))

	rec = serve(r, http.MethodGet, "/ok", nil)
	assert.Len(t, rec.Header().Get(RequestIDHeader), 36)
}

func TestRecoveryMiddleware(t *testing.T) {
	rec := serve(newEngine(nil), http.MethodGet, "/panic", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestMetricsMiddleware(t *testing.T) {
	m := metrics.New()
	r := newEngine(m)

	serve(r, http.MethodGet, "/ok", nil)
	serve(r, http.MethodGet, "/nope", nil)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("/ok", "GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("unmatched", "GET", "404")))
}
