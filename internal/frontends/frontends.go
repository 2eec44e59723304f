// Package frontends serves the pre-built SPA bundles of the site: the
// user-facing app at the root and the admin app under its own URL prefix.
// Matched files are served with corrected content types, unmatched paths fall
// back to the owning app's index.html so client-side routing can take over.
package frontends

import (
	"context"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/AryanKharia/hybridreality-Vercel/pkg/logger"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// errEscapesRoot is returned when a resolved file path would leave the
// configured bundle directory.
var errEscapesRoot = errors.New("path escapes root directory")

// Options holds the locations of the two frontend builds and the URL prefix
// the admin app is mounted under. Directories may be missing on disk; the
// dispatcher still starts and answers 404 for the affected app.
type Options struct {
	// UserDir is the directory holding the user-facing build, served at "/".
	UserDir string
	// AdminDir is the directory holding the admin build, served at AdminPrefix.
	AdminDir string
	// AdminPrefix is the URL prefix of the admin app, e.g. "/admin".
	AdminPrefix string
}

// handlerFunc answers one dispatched request. rel is the path remainder after
// the matched table prefix, still slash-separated and un-cleaned.
type handlerFunc func(w http.ResponseWriter, r *http.Request, rel string)

// route is one entry of the dispatch table: a URL prefix and the handler
// answering paths under it.
type route struct {
	prefix  string
	handler handlerFunc
}

// Dispatcher resolves non-API request paths against the frontend builds. It
// holds an ordered dispatch table evaluated longest-prefix-first, so asset
// routes win over app routes and the admin prefix wins over the root app.
type Dispatcher struct {
	routes []route
}

// New builds a Dispatcher for the given bundle layout. It warns, without
// failing, when a configured directory or its index.html is missing on disk.
func New(ctx context.Context, opts Options) *Dispatcher {
	adminPrefix := normalizePrefix(opts.AdminPrefix)

	checkBundle(ctx, "user", opts.UserDir)
	checkBundle(ctx, "admin", opts.AdminDir)

	d := &Dispatcher{
		routes: []route{
			{prefix: "/api", handler: apiNotFound},
			{prefix: adminPrefix + "/assets", handler: serveAssets(filepath.Join(opts.AdminDir, "assets"))},
			{prefix: "/assets", handler: serveAssets(filepath.Join(opts.UserDir, "assets"))},
			{prefix: adminPrefix, handler: serveApp(opts.AdminDir)},
			{prefix: "/", handler: serveApp(opts.UserDir)},
		},
	}

	sort.SliceStable(d.routes, func(i, j int) bool {
		return len(d.routes[i].prefix) > len(d.routes[j].prefix)
	})

	return d
}

// ServeHTTP dispatches the request to the first (longest) matching table
// entry, passing down the path remainder after the matched prefix.
func (d *Dispatcher) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	for _, rt := range d.routes {
		if rel, ok := matchPrefix(rt.prefix, r.URL.Path); ok {
			rt.handler(w, r, rel)

			return
		}
	}

	http.NotFound(w, r)
}

// matchPrefix reports whether p falls under prefix and returns the remainder.
// "/admin" matches "/admin" and "/admin/x" but not "/administrator".
func matchPrefix(prefix, p string) (string, bool) {
	if prefix == "/" {
		return p, true
	}
	if p == prefix {
		return "", true
	}
	if strings.HasPrefix(p, prefix+"/") {
		return strings.TrimPrefix(p, prefix), true
	}

	return "", false
}

// serveApp returns the handler for one app's page routes: resolved files are
// served directly, extension-less paths prefer a nested index.html, and
// anything unresolved falls back to the app root index.html.
func serveApp(root string) handlerFunc {
	return func(w http.ResponseWriter, r *http.Request, rel string) {
		name, err := resolve(root, rel)
		if err != nil {
			plainNotFound(w)

			return
		}

		// Directory-style paths prefer their own index.html when present.
		if rel == "" || strings.HasSuffix(rel, "/") || path.Ext(rel) == "" {
			if serveExisting(w, r, filepath.Join(name, "index.html")) {
				return
			}
		}

		if serveExisting(w, r, name) {
			return
		}

		// SPA fallback: the app root index.html, so the client router can
		// resolve the path.
		if serveExisting(w, r, filepath.Join(root, "index.html")) {
			return
		}

		plainNotFound(w)
	}
}

// serveAssets returns the handler for one app's asset routes. Assets resolve
// strictly: a missing file is a 404, never an SPA fallback.
func serveAssets(root string) handlerFunc {
	return func(w http.ResponseWriter, r *http.Request, rel string) {
		name, err := resolve(root, rel)
		if err != nil || !serveExisting(w, r, name) {
			plainNotFound(w)
		}
	}
}

// resolve joins rel onto root, cleaning it to a rooted path first, and
// verifies the result cannot escape root.
func resolve(root, rel string) (string, error) {
	name := filepath.Join(root, filepath.FromSlash(path.Clean("/"+rel)))

	base := filepath.Clean(root)
	if name != base && !strings.HasPrefix(name, base+string(filepath.Separator)) {
		return "", errors.Wrap(errEscapesRoot, rel)
	}

	return name, nil
}

// serveExisting serves name when it is a readable regular file and reports
// whether it did. The content type comes from the extension table, never from
// sniffing, so module scripts load correctly in all browsers.
func serveExisting(w http.ResponseWriter, r *http.Request, name string) bool {
	f, err := os.Open(name)
	if err != nil {
		return false
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		return false
	}

	w.Header().Set("Content-Type", contentTypeFor(name))
	http.ServeContent(w, r, info.Name(), info.ModTime(), f)

	return true
}

// apiNotFound answers API paths that reached the dispatcher. They never fall
// through to static serving.
func apiNotFound(w http.ResponseWriter, _ *http.Request, _ string) {
	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.Field("error", func(e *jx.Encoder) {
			e.Str("API endpoint not found")
		})
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write(e.Bytes())
}

func plainNotFound(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write([]byte("Not found"))
}

// normalizePrefix forces a leading slash and strips a trailing one, so
// "/admin/" and "admin" both mount at "/admin".
func normalizePrefix(prefix string) string {
	if !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}

	return strings.TrimSuffix(prefix, "/")
}

// checkBundle warns when a configured build is unusable. The server still
// starts; the affected app answers 404 until the build is deployed.
func checkBundle(ctx context.Context, app, dir string) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		logger.Warn(ctx, "frontend build directory missing",
			zap.String("app", app),
			zap.String("dir", dir))

		return
	}

	if _, err := os.Stat(filepath.Join(dir, "index.html")); err != nil {
		logger.Warn(ctx, "frontend build has no index.html",
			zap.String("app", app),
			zap.String("dir", dir))
	}
}
