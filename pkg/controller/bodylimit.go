package controller

import "net/http"

// WithBodyLimit returns a middleware enforcing maxBytes as the request body
// ceiling. Declared Content-Length above the ceiling is rejected up front via
// reject; bodies without a declared length are capped with http.MaxBytesReader
// so downstream reads fail at the limit. A nil reject writes a minimal JSON
// 413 body.
func WithBodyLimit(next http.Handler, maxBytes int64, reject func(w http.ResponseWriter, r *http.Request)) http.Handler {
	if reject == nil {
		reject = func(w http.ResponseWriter, _ *http.Request) {
			writeJSONMessage(w, http.StatusRequestEntityTooLarge, false, "request entity too large")
		}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength > maxBytes {
			reject(w, r)

			return
		}

		if r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
		}

		next.ServeHTTP(w, r)
	})
}
