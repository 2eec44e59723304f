package controller

import (
	"net/http"

	"github.com/unrolled/secure"
)

// WithSecureHeaders returns a middleware setting browser security headers on
// every response: frame options, nosniff, referrer policy and HSTS (the
// latter only on TLS requests).
func WithSecureHeaders(next http.Handler) http.Handler {
	sec := secure.New(secure.Options{
		CustomFrameOptionsValue: "SAMEORIGIN",
		ContentTypeNosniff:      true,
		ReferrerPolicy:          "no-referrer",
		STSSeconds:              15552000,
		STSIncludeSubdomains:    true,
	})

	return sec.Handler(next)
}
