// Package controller contains HTTP middlewares and helper handlers used by the server.
//
// Provided middlewares:
//   - WithLogger: Attaches a request-scoped logger and request ID to the context and logs access info.
//   - WithCORS: Applies the origin allow-list CORS policy and handles OPTIONS preflight.
//   - WithRateLimit: Enforces a fixed-window per-client request budget with standard RateLimit headers.
//   - WithBodyLimit: Rejects or caps request bodies above the configured ceiling.
//   - WithSecureHeaders: Sets browser security headers on responses.
//   - WithCompression: Negotiates gzip response compression.
//
// Provided helpers:
//   - GetClientIP: Derives the originating client IP from proxy headers.
//   - PprofMux: Returns a ServeMux exposing net/http/pprof handlers.
package controller
