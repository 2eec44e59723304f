// Package api assembles the HTTP server: the frontend bundles outside the
// API scope, the middleware pipeline and route module table inside it, and
// the ops surfaces on the root mux.
package api

import (
	"context"
	"crypto/rsa"
	"embed"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	"go.uber.org/zap"

	"github.com/AryanKharia/hybridreality-Vercel/internal/api/handler/statshandler"
	"github.com/AryanKharia/hybridreality-Vercel/internal/config"
	"github.com/AryanKharia/hybridreality-Vercel/internal/frontends"
	"github.com/AryanKharia/hybridreality-Vercel/internal/stats"
	"github.com/AryanKharia/hybridreality-Vercel/pkg/controller"
	"github.com/AryanKharia/hybridreality-Vercel/pkg/logger"
	"github.com/AryanKharia/hybridreality-Vercel/pkg/serrors"
	"github.com/AryanKharia/hybridreality-Vercel/pkg/storage"
)

//go:embed specs
var specsFS embed.FS

// Options represents the configuration options of the HTTP server.
type Options struct {
	// Addr is the TCP listen address.
	Addr string
	// Development exposes panic stacks in error envelopes.
	Development bool

	// ReadTimeout is the maximum duration for reading the entire request.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out response writes.
	WriteTimeout time.Duration
	// IdleTimeout is the keep-alive idle ceiling.
	IdleTimeout time.Duration
	// MaxHeaderBytes caps request header size.
	MaxHeaderBytes int

	// MetricsPath is where the Prometheus exposition endpoint is mounted.
	MetricsPath string

	// AllowedOrigins is the CORS allow-list. Entries that do not parse as
	// absolute URLs are dropped with a warning.
	AllowedOrigins []string

	// RateLimitWindow is the fixed window of the limiter guarding the API scope.
	RateLimitWindow time.Duration
	// RateLimitMax is the per-client request budget within one window.
	RateLimitMax int

	// BodyMaxBytes caps request body size.
	BodyMaxBytes int64

	// JWTPublicKey is the PEM encoded RSA key verifying bearer tokens.
	// Protected modules are not mounted when empty.
	JWTPublicKey string

	// Frontends locates the SPA bundles served outside the API scope.
	Frontends frontends.Options
}

// NewOptions derives server options from the application configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Addr:              cfg.Addr(),
		Development:       cfg.Environment != logger.ProductionEnvironment,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		AllowedOrigins:    cfg.CORS.AllowedOrigins,
		RateLimitWindow:   cfg.RateLimit.Window,
		RateLimitMax:      cfg.RateLimit.Max,
		BodyMaxBytes:      cfg.Body.MaxBytes,
		JWTPublicKey:      cfg.JWT.PublicKey,
		Frontends: frontends.Options{
			UserDir:     cfg.Frontends.UserDir,
			AdminDir:    cfg.Frontends.AdminDir,
			AdminPrefix: cfg.Frontends.AdminPrefix,
		},
	}
}

// Deps holds the server's collaborators.
type Deps struct {
	// Storage reads persisted endpoint stats and queues jobs.
	Storage storage.AllStorage
	// Collector aggregates per-endpoint request statistics in memory.
	Collector *stats.Collector
	// Modules are route groups mounted under the API scope on top of the
	// built-in status, stats, docs and specs modules.
	Modules []Module
}

// NewServer builds the HTTP server. The API scope gets the full middleware
// pipeline; everything else is served by the frontend dispatcher behind the
// global middlewares only.
func NewServer(ctx context.Context, deps Deps, options Options) (*http.Server, error) {
	rsp := responder{development: options.Development}

	statsHandler := statshandler.New(deps.Storage)
	statsMux := http.NewServeMux()
	statsMux.Handle("GET /api/stats", rsp.Handler(statsHandler.List))
	statsMux.Handle("POST /api/stats/flush", rsp.Handler(statsHandler.TriggerFlush))

	modules := []Module{
		{Prefix: "/api/status", Handler: http.HandlerFunc(statusHandler)},
		{Prefix: "/api/stats", Handler: statsMux, Protected: true},
		{Prefix: "/api/specs", Handler: http.StripPrefix("/api", http.FileServer(http.FS(specsFS)))},
		{Prefix: "/api/docs", Handler: v5emb.New("Hybrid Realty API", "/api/specs/v1.yaml", "/api/docs/")},
	}
	modules = append(modules, deps.Modules...)

	modules, err := guardProtected(ctx, modules, options.JWTPublicKey)
	if err != nil {
		return nil, err
	}

	corsOptions := controller.CORSOptions{
		AllowedOrigins: normalizeOrigins(ctx, options.AllowedOrigins),
	}

	var apiHandler http.Handler = rsp.withRecovery(NewTable(modules...))
	apiHandler = controller.WithCORS(apiHandler, corsOptions)
	apiHandler = deps.Collector.Middleware(apiHandler)
	apiHandler = controller.WithBodyLimit(apiHandler, options.BodyMaxBytes, rsp.rejectTooLarge)
	apiHandler = controller.WithCompression(apiHandler)
	apiHandler = controller.WithSecureHeaders(apiHandler)
	apiHandler = controller.WithRateLimit(apiHandler, controller.RateLimitOptions{
		Window: options.RateLimitWindow,
		Limit:  options.RateLimitMax,
	})

	public := controller.WithCORS(frontends.New(ctx, options.Frontends), corsOptions)
	public = controller.WithBodyLimit(public, options.BodyMaxBytes, nil)
	public = controller.WithCompression(public)

	mux := http.NewServeMux()
	mux.Handle(options.MetricsPath, promhttp.Handler())
	mux.Handle("/debug/pprof/", http.StripPrefix("/debug/pprof", controller.PprofMux()))
	mux.Handle("/api", apiHandler)
	mux.Handle("/api/", apiHandler)
	mux.Handle("/", public)

	return &http.Server{
		Addr:              options.Addr,
		Handler:           controller.WithLogger(mux),
		ReadTimeout:       options.ReadTimeout,
		ReadHeaderTimeout: options.ReadHeaderTimeout,
		WriteTimeout:      options.WriteTimeout,
		IdleTimeout:       options.IdleTimeout,
		MaxHeaderBytes:    options.MaxHeaderBytes,
	}, nil
}

// rejectTooLarge answers requests whose declared body size exceeds the cap.
func (rsp responder) rejectTooLarge(w http.ResponseWriter, r *http.Request) {
	rsp.writeError(r.Context(), w, serrors.With(serrors.ErrPayloadTooLarge, "request entity too large"), nil)
}

// guardProtected wraps protected modules with bearer token verification.
// Without a configured public key they are left out with a warning instead
// of being mounted open.
func guardProtected(ctx context.Context, modules []Module, publicKeyPEM string) ([]Module, error) {
	var publicKey *rsa.PublicKey

	if publicKeyPEM != "" {
		var err error

		publicKey, err = jwt.ParseRSAPublicKeyFromPEM([]byte(publicKeyPEM))
		if err != nil {
			return nil, errors.Wrap(err, "could not parse JWT public key")
		}
	}

	out := make([]Module, 0, len(modules))

	for _, m := range modules {
		if m.Protected {
			if publicKey == nil {
				logger.Warn(ctx, "no JWT public key configured, protected module not mounted",
					zap.String("prefix", m.Prefix))

				continue
			}

			m.Handler = WithBearerAuth(m.Handler, publicKey)
		}

		out = append(out, m)
	}

	return out, nil
}

// normalizeOrigins returns the entries of origins that parse as absolute
// URLs. Malformed entries are logged and dropped.
func normalizeOrigins(ctx context.Context, origins []string) []string {
	out := make([]string, 0, len(origins))

	for _, origin := range origins {
		trimmed := strings.TrimSpace(origin)

		u, err := url.Parse(trimmed)
		if err != nil || u.Scheme == "" || u.Host == "" {
			logger.Warn(ctx, "ignoring malformed CORS origin", zap.String("origin", origin))

			continue
		}

		out = append(out, trimmed)
	}

	return out
}
