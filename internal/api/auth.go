package api

import (
	"context"
	"crypto/rsa"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/AryanKharia/hybridreality-Vercel/pkg/serrors"
)

// CtxKey is the context key type of this package.
type CtxKey string

// SubjectKey is the context key under which the verified token subject is stored.
const SubjectKey CtxKey = "Subject"

// Subject returns the bearer token subject stored in ctx by WithBearerAuth, or "".
func Subject(ctx context.Context) string {
	sub, _ := ctx.Value(SubjectKey).(string)

	return sub
}

// WithBearerAuth returns a middleware verifying the Authorization bearer
// token against publicKey and storing its subject in the request context.
// Requests without a valid RS256 token get a 401 envelope.
func WithBearerAuth(next http.Handler, publicKey *rsa.PublicKey) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !found || raw == "" {
			Error(r.Context(), w, serrors.With(serrors.ErrUnauthorized, "missing bearer token"))

			return
		}

		claims := &jwt.RegisteredClaims{}

		_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
			return publicKey, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}))
		if err != nil {
			Error(r.Context(), w, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid bearer token"))

			return
		}

		ctx := context.WithValue(r.Context(), SubjectKey, claims.Subject)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
