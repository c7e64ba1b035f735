package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/amu0701/aman-khelkud-backend-main/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestRequestID_Generated(t *testing.T) {
	r := ginext.New("test")
	r.Use(RequestID())

	var seen string
	r.GET("/ping", func(c *ginext.Context) {
		seen = c.GetString(requestIDKey)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, w.Header().Get(RequestIDHeader))
}

func TestRequestID_Propagated(t *testing.T) {
	r := ginext.New("test")
	r.Use(RequestID())
	r.GET("/ping", func(c *ginext.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestRecovery_ReturnsInternalError(t *testing.T) {
	log := newTestLogger(t)
	r := ginext.New("test")
	r.Use(RequestID(), RequestLogger(log), Recovery(log))
	r.GET("/panic", func(c *ginext.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}

func TestRequestLogger_PassesThrough(t *testing.T) {
	r := ginext.New("test")
	r.Use(RequestLogger(newTestLogger(t)))
	r.GET("/teapot", func(c *ginext.Context) { c.Status(http.StatusTeapot) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/teapot", nil))

	assert.Equal(t, http.StatusTeapot, w.Code)
}

func TestCORS_AllowAll(t *testing.T) {
	r := ginext.New("test")
	r.Use(CORS([]string{"*"}))
	r.GET("/sport", func(c *ginext.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/sport", nil)
	req.Header.Set("Origin", "http://example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_Preflight(t *testing.T) {
	r := ginext.New("test")
	r.Use(CORS(nil))
	r.POST("/booking", func(c *ginext.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/booking", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_RestrictedOrigins(t *testing.T) {
	r := ginext.New("test")
	r.Use(CORS([]string{"https://app.example.com"}))
	r.GET("/sport", func(c *ginext.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/sport", nil)
	req.Header.Set("Origin", "https://app.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/sport", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestMetrics_RecordsRouteTemplate(t *testing.T) {
	r := ginext.New("test")
	r.Use(Metrics())
	r.GET("/community", func(c *ginext.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/community", nil))
	require.Equal(t, http.StatusOK, w.Code)

	mw := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(mw, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Contains(t, mw.Body.String(), `path="/community"`)
}

func scrapeMetrics(t *testing.T) string {
	t.Helper()
	w := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	return w.Body.String()
}

func TestMetrics_PanicCountedAndInflightReleased(t *testing.T) {
	log := newTestLogger(t)

	tests := []struct {
		name  string
		path  string
		chain []ginext.HandlerFunc
	}{
		{
			name:  "outside recovery",
			path:  "/panic-outer",
			chain: []ginext.HandlerFunc{RequestID(), RequestLogger(log), Metrics(), Recovery(log), CORS(nil)},
		},
		{
			name:  "inside recovery",
			path:  "/panic-inner",
			chain: []ginext.HandlerFunc{RequestID(), Recovery(log), Metrics()},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ginext.New("test")
			r.Use(tt.chain...)
			r.GET(tt.path, func(c *ginext.Context) { panic("boom") })

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
			require.Equal(t, http.StatusInternalServerError, w.Code)

			body := scrapeMetrics(t)
			assert.Contains(t, body, "khelkud_http_inflight_requests 0")
			assert.Contains(t, body,
				`khelkud_http_requests_total{method="GET",path="`+tt.path+`",status="500"} 1`)
		})
	}
}
