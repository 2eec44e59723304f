// Package metrics holds conventions shared by every instrumented component:
// histogram buckets and attribute keys, so dashboards see one naming scheme.
package metrics

import "strconv"

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// Attribute keys used on request metrics.
const (
	// KeyRoute labels metrics with the normalized route group.
	KeyRoute = "route"
	// KeyMethod labels metrics with the HTTP method.
	KeyMethod = "method"
	// KeyStatusClass labels metrics with the response status class ("2xx").
	KeyStatusClass = "status_class"
)

// StatusClass collapses an HTTP status code into its class label. Codes
// outside 100-599 are reported verbatim so bad writes remain visible.
func StatusClass(code int) string {
	if code >= 100 && code < 600 {
		return strconv.Itoa(code/100) + "xx"
	}

	return strconv.Itoa(code)
}
