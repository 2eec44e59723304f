package api

import (
	"net/http"
	"time"

	"github.com/go-faster/jx"
)

// statusHandler answers the health probe with the server's current time.
func statusHandler(w http.ResponseWriter, _ *http.Request) {
	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.Field("status", func(e *jx.Encoder) { e.Str("OK") })
		e.Field("time", func(e *jx.Encoder) { e.Str(time.Now().UTC().Format(envelopeTimeLayout)) })
	})

	writeJSON(w, http.StatusOK, e.Bytes())
}
