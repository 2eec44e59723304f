package controller

import (
	"net/http"

	"github.com/klauspost/compress/gzhttp"
)

// WithCompression returns a middleware that gzip-compresses responses for
// clients sending Accept-Encoding: gzip. Small responses pass through
// uncompressed.
func WithCompression(next http.Handler) http.Handler {
	return gzhttp.GzipHandler(next)
}
