package api

import (
	"context"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-faster/jx"
	"go.uber.org/zap"

	"github.com/AryanKharia/hybridreality-Vercel/pkg/logger"
	"github.com/AryanKharia/hybridreality-Vercel/pkg/serrors"
)

// envelopeTimeLayout is ISO-8601 with millisecond precision. Error envelopes
// and the status endpoint both use it.
const envelopeTimeLayout = "2006-01-02T15:04:05.000Z07:00"

// responder writes the uniform error envelope every failing API request ends
// up with, no matter which module it hit.
type responder struct {
	// development adds the captured panic stack to envelopes.
	development bool
}

// HandlerFunc is an http handler that reports failures instead of writing
// them. A returned error becomes an error envelope with the status derived
// from its semantic kind.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Handler adapts fn into an http.Handler that funnels returned errors
// through the envelope writer.
func (rsp responder) Handler(fn HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			rsp.writeError(r.Context(), w, err, nil)
		}
	})
}

// Error writes the error envelope for err. Handlers locked into the stock
// http.Handler signature call it directly.
func Error(ctx context.Context, w http.ResponseWriter, err error) {
	responder{}.writeError(ctx, w, err, nil)
}

// writeError writes the envelope for err. Server-side failures are logged
// with the stack when one was captured; the stack reaches the client only in
// development.
func (rsp responder) writeError(ctx context.Context, w http.ResponseWriter, err error, stack []byte) {
	status := serrors.HTTPStatus(err)

	if status >= http.StatusInternalServerError {
		fields := []zap.Field{zap.Error(err)}
		if len(stack) > 0 {
			fields = append(fields, zap.ByteString("stack", stack))
		}

		logger.Error(ctx, "API request failed", fields...)
	}

	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.Field("success", func(e *jx.Encoder) { e.Bool(false) })
		e.Field("message", func(e *jx.Encoder) { e.Str(err.Error()) })
		e.Field("statusCode", func(e *jx.Encoder) { e.Int(status) })
		e.Field("timestamp", func(e *jx.Encoder) { e.Str(time.Now().UTC().Format(envelopeTimeLayout)) })
		if rsp.development && len(stack) > 0 {
			e.Field("stack", func(e *jx.Encoder) { e.Str(string(stack)) })
		}
	})

	writeJSON(w, status, e.Bytes())
}

// withRecovery converts panics escaping next into 500 envelopes instead of
// killing the connection.
func (rsp responder) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			err, ok := rec.(error)
			if !ok {
				err = fmt.Errorf("%v", rec)
			}

			rsp.writeError(r.Context(), w, serrors.Wrap(serrors.ErrInternal, err, "unexpected server error"), debug.Stack())
		}()

		next.ServeHTTP(w, r)
	})
}

// writeJSON writes body with the given status and a JSON content type.
func writeJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
