package api

import (
	"net/http"
	"sort"
	"strings"

	"github.com/go-faster/jx"
)

// Module mounts one route group under the API scope.
type Module struct {
	// Prefix is the path prefix the module owns, e.g. "/api/stats". Matching
	// is segment-aware: "/api/stats" owns itself and "/api/stats/x" but not
	// "/api/statsx". A prefix of "/api" catches everything in the scope, so
	// handlers without a dedicated prefix can observe the full path.
	Prefix string
	// Handler receives matching requests with the path untouched.
	Handler http.Handler
	// Protected requires a verified bearer token. Protected modules are left
	// out entirely when no JWT public key is configured.
	Protected bool
}

// Table routes API requests across mounted modules, longest prefix first.
// Paths no module owns get the JSON not-found body, never the frontends.
type Table struct {
	modules []Module
}

// NewTable builds a dispatch table from modules. Registration order does not
// matter between distinct lengths: a more specific prefix always wins.
func NewTable(modules ...Module) *Table {
	t := &Table{modules: append([]Module(nil), modules...)}

	sort.SliceStable(t.modules, func(i, j int) bool {
		return len(t.modules[i].Prefix) > len(t.modules[j].Prefix)
	})

	return t
}

// ServeHTTP dispatches to the first module owning the request path.
func (t *Table) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	for _, m := range t.modules {
		if ownsPath(m.Prefix, r.URL.Path) {
			m.Handler.ServeHTTP(w, r)

			return
		}
	}

	WriteNotFound(w)
}

// ownsPath reports whether p falls under prefix on a segment boundary.
func ownsPath(prefix, p string) bool {
	return p == prefix || strings.HasPrefix(p, prefix+"/")
}

// WriteNotFound writes the JSON body unmatched API paths receive.
func WriteNotFound(w http.ResponseWriter) {
	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.Field("error", func(e *jx.Encoder) { e.Str("API endpoint not found") })
	})

	writeJSON(w, http.StatusNotFound, e.Bytes())
}
