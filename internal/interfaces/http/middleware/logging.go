package middleware

import (
	"net/http"
	"time"

	"github.com/byestunting/byestunting/internal/infrastructure/monitoring/logging"
)

// statusRecorder captures the status code and bytes written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status      int
	bytes       int64
	wroteHeader bool
}

func (w *statusRecorder) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusRecorder) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += int64(n)
	return n, err
}

// skipLogPaths are high-frequency probe paths that would drown the log.
var skipLogPaths = map[string]bool{
	"/healthz": true,
	"/readyz":  true,
	"/metrics": true,
}

// RequestLogging logs one line per request. Server errors log at error
// level, client errors at warn, the rest at info.
func RequestLogging(logger logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if skipLogPaths[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			fields := []logging.Field{
				logging.String("method", r.Method),
				logging.String("path", r.URL.Path),
				logging.Int("status", rec.status),
				logging.Duration("duration", time.Since(start)),
				logging.Int64("bytes", rec.bytes),
				logging.String("request_id", GetRequestID(r.Context())),
				logging.String("remote_addr", r.RemoteAddr),
			}

			switch {
			case rec.status >= 500:
				logger.Error("request failed", fields...)
			case rec.status >= 400:
				logger.Warn("request rejected", fields...)
			default:
				logger.Info("request served", fields...)
			}
		})
	}
}
