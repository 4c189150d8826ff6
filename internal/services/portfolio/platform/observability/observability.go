// Package observability records per-request logs and metrics.
package observability

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/louisbranch/portfolio/internal/platform/metrics"
	"github.com/louisbranch/portfolio/internal/services/portfolio/platform/httpx"
	"go.uber.org/zap"
)

var knownRoutes = map[string]struct{}{
	"/":             {},
	"/projects":     {},
	"/certificates": {},
	"/about":        {},
	"/resume":       {},
	"/contact":      {},
	"/static":       {},
	"/up":           {},
	"/metrics":      {},
}

// RequestLogger logs one structured line per request and, when m is set,
// counts requests and latency by route.
func RequestLogger(logger *zap.Logger, m *metrics.Metrics) httpx.Middleware {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w}
			next.ServeHTTP(rec, r)
			status := rec.statusCode()
			latency := time.Since(start)

			logger.Info("http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", status),
				zap.Int("bytes", rec.bytes),
				zap.Duration("latency", latency),
				zap.String("request_id", httpx.RequestIDFrom(r)),
			)
			if m != nil {
				route := Route(r.URL.Path)
				m.HTTPRequests.WithLabelValues(route, strconv.Itoa(status/100)+"xx").Inc()
				m.HTTPDuration.WithLabelValues(route).Observe(latency.Seconds())
			}
		})
	}
}

// Route collapses a request path to a bounded metrics label.
func Route(path string) string {
	if path == "" || path == "/" {
		return "/"
	}
	first := "/" + strings.SplitN(strings.TrimPrefix(path, "/"), "/", 2)[0]
	if _, ok := knownRoutes[first]; ok {
		return first
	}
	return "other"
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(status int) {
	if r.status == 0 {
		r.status = status
	}
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(p []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(p)
	r.bytes += n
	return n, err
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

func (r *statusRecorder) statusCode() int {
	if r.status == 0 {
		return http.StatusOK
	}
	return r.status
}
