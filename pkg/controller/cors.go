package controller

import (
	"net/http"

	"github.com/rs/cors"
)

// CORSOptions configures the cross-origin policy applied by WithCORS.
type CORSOptions struct {
	// AllowedOrigins is the exact-match origin allow-list. Origins not on the
	// list receive no CORS headers and browsers block the response.
	AllowedOrigins []string
}

// WithCORS returns a middleware enforcing the origin allow-list with
// credentials support. Preflight OPTIONS requests are answered with
// 204 No Content and never reach the next handler.
func WithCORS(next http.Handler, opts CORSOptions) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
			http.MethodHead,
		},
		AllowedHeaders:       []string{"Content-Type", "Authorization", "X-Requested-With"},
		AllowCredentials:     true,
		OptionsSuccessStatus: http.StatusNoContent,
	})

	return c.Handler(next)
}
