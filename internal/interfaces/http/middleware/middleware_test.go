package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/byestunting/byestunting/internal/infrastructure/monitoring/logging"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	var seen string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))
}

func TestRequestID_PreservesClientValue(t *testing.T) {
	handler := RequestID(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "client-supplied")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "client-supplied", rec.Header().Get(RequestIDHeader))
}

func TestGetRequestID_EmptyWithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, GetRequestID(req.Context()))
}

func TestCORS_Preflight(t *testing.T) {
	handler := CORS(DefaultCORSConfig())(okHandler())

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/predictions", nil)
	req.Header.Set("Origin", "https://byestunting.id")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://byestunting.id", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
	assert.Equal(t, "300", rec.Header().Get("Access-Control-Max-Age"))
}

func TestCORS_DisallowedOriginGetsNoHeaders(t *testing.T) {
	cfg := DefaultCORSConfig()
	cfg.AllowedOrigins = []string{"https://byestunting.id"}
	handler := CORS(cfg)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_SameOriginPassesThrough(t *testing.T) {
	handler := CORS(DefaultCORSConfig())(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimiter_AllowsBurstThenRejects(t *testing.T) {
	limiter := NewRateLimiter(3)
	defer limiter.Stop()

	current := time.Now()
	limiter.now = func() time.Time { return current }

	for i := 0; i < 3; i++ {
		ok, _ := limiter.Allow("10.0.0.1")
		require.True(t, ok, "request %d within burst", i)
	}
	ok, remaining := limiter.Allow("10.0.0.1")
	assert.False(t, ok)
	assert.Zero(t, remaining)
}

func TestRateLimiter_RefillsOverTime(t *testing.T) {
	limiter := NewRateLimiter(60)
	defer limiter.Stop()

	current := time.Now()
	limiter.now = func() time.Time { return current }

	for i := 0; i < 60; i++ {
		ok, _ := limiter.Allow("10.0.0.2")
		require.True(t, ok)
	}
	ok, _ := limiter.Allow("10.0.0.2")
	require.False(t, ok)

	// 60/min refills one token per second.
	current = current.Add(2 * time.Second)
	ok, _ = limiter.Allow("10.0.0.2")
	assert.True(t, ok)
}

func TestRateLimiter_KeysAreIndependent(t *testing.T) {
	limiter := NewRateLimiter(1)
	defer limiter.Stop()

	current := time.Now()
	limiter.now = func() time.Time { return current }

	ok, _ := limiter.Allow("10.0.0.3")
	require.True(t, ok)
	ok, _ = limiter.Allow("10.0.0.3")
	require.False(t, ok)

	ok, _ = limiter.Allow("10.0.0.4")
	assert.True(t, ok)
}

func TestRateLimit_RejectsWith429(t *testing.T) {
	limiter := NewRateLimiter(1)
	defer limiter.Stop()

	current := time.Now()
	limiter.now = func() time.Time { return current }

	handler := RateLimit(limiter)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "203.0.113.7:51234"

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "terlalu banyak permintaan")
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
}

func TestRequestLogging_LevelsByStatus(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := logging.NewLoggerFromCore(core)

	status := http.StatusOK
	handler := RequestLogging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}))

	cases := []struct {
		status int
		level  zapcore.Level
	}{
		{http.StatusOK, zapcore.InfoLevel},
		{http.StatusBadRequest, zapcore.WarnLevel},
		{http.StatusInternalServerError, zapcore.ErrorLevel},
	}
	for _, tc := range cases {
		status = tc.status
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/articles", nil))

		entries := logs.TakeAll()
		require.Len(t, entries, 1)
		assert.Equal(t, tc.level, entries[0].Level)

		fields := entries[0].ContextMap()
		assert.Equal(t, int64(tc.status), fields["status"])
		assert.Equal(t, "/api/v1/articles", fields["path"])
	}
}

func TestRequestLogging_SkipsProbePaths(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := logging.NewLoggerFromCore(core)

	handler := RequestLogging(logger)(okHandler())
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Zero(t, logs.Len())
}
