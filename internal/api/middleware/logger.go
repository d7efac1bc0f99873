package middleware

import (
	"net/http"
	"time"

	"github.com/blaisecz/zenith/internal/logger"
)

// Logger writes one line per request with status and latency. Server errors
// are logged at warn, everything else at debug.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sw := &statusWriter{ResponseWriter: w, statusCode: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(sw, r)

		keyvals := []interface{}{
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.statusCode,
			"duration", time.Since(start).Round(time.Microsecond),
		}
		if sw.statusCode >= http.StatusInternalServerError {
			logger.Warn("request", keyvals...)
			return
		}
		logger.Debug("request", keyvals...)
	})
}

type statusWriter struct {
	http.ResponseWriter
	statusCode int
}

func (sw *statusWriter) WriteHeader(code int) {
	sw.statusCode = code
	sw.ResponseWriter.WriteHeader(code)
}
