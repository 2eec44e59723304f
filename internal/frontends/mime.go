package frontends

import (
	"mime"
	"path/filepath"
	"strings"
)

// mimeOverrides pins the content types browsers are strict about. Platform
// MIME databases are unreliable for ES module files, and a wrong type there
// breaks script loading entirely.
var mimeOverrides = map[string]string{
	".js":   "application/javascript",
	".mjs":  "application/javascript",
	".css":  "text/css",
	".html": "text/html",
	".svg":  "image/svg+xml",
	".json": "application/json",
}

// contentTypeFor resolves the response content type for a file name: the
// override table first, then the platform lookup, then a binary default.
func contentTypeFor(name string) string {
	ext := strings.ToLower(filepath.Ext(name))

	if ct, ok := mimeOverrides[ext]; ok {
		return ct
	}
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct
	}

	return "application/octet-stream"
}
