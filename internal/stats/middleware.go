package stats

import (
	"net/http"
	"path"
	"strings"
	"time"
)

// statusRecorder wraps http.ResponseWriter to capture the final HTTP status
// code written by the downstream handler.
type statusRecorder struct {
	http.ResponseWriter

	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

// RouteKey collapses a request path into its route group so metric and
// aggregate cardinality stays bounded: "/api/products/123" becomes
// "/api/products" while paths outside /api are only cleaned.
func RouteKey(p string) string {
	p = path.Clean("/" + p)

	segs := strings.SplitN(strings.TrimPrefix(p, "/"), "/", 3)
	if len(segs) >= 2 && segs[0] == "api" {
		return "/api/" + segs[1]
	}

	return p
}

// Middleware observes every request passing through it. It is mounted inside
// the API chain, so only /api traffic is recorded.
func (c *Collector) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		c.Observe(r.Context(), RouteKey(r.URL.Path), r.Method, rec.status, time.Since(start))
	})
}
