package controller

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-faster/jx"
)

// DefaultRateLimitMessage is sent to clients that exhausted their window budget.
const DefaultRateLimitMessage = "Too many requests, please try again later."

// RateLimitOptions configures WithRateLimit.
type RateLimitOptions struct {
	// Window is the fixed window length.
	Window time.Duration
	// Limit is the number of requests allowed per client identity per window.
	// A non-positive limit disables the middleware.
	Limit int
	// Message overrides DefaultRateLimitMessage in the 429 body.
	Message string
	// Identify derives the client identity; defaults to GetClientIP.
	Identify func(*http.Request) string
}

type clientWindow struct {
	count int
	start time.Time
}

type rateLimiter struct {
	next http.Handler
	opts RateLimitOptions

	mu        sync.Mutex
	windows   map[string]*clientWindow
	lastSweep time.Time

	now func() time.Time
}

// WithRateLimit returns a middleware enforcing a fixed-window request budget
// per client identity. Standard RateLimit-Limit, RateLimit-Remaining and
// RateLimit-Reset headers are set on every response; exhausted clients receive
// 429 with a JSON body and are not forwarded to next.
func WithRateLimit(next http.Handler, opts RateLimitOptions) http.Handler {
	if opts.Limit <= 0 {
		return next
	}
	if opts.Identify == nil {
		opts.Identify = GetClientIP
	}
	if opts.Message == "" {
		opts.Message = DefaultRateLimitMessage
	}

	return &rateLimiter{
		next:    next,
		opts:    opts,
		windows: make(map[string]*clientWindow),
		now:     time.Now,
	}
}

func (rl *rateLimiter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	remaining, reset, ok := rl.take(rl.opts.Identify(r))

	headers := w.Header()
	headers.Set("RateLimit-Limit", strconv.Itoa(rl.opts.Limit))
	headers.Set("RateLimit-Remaining", strconv.Itoa(remaining))
	headers.Set("RateLimit-Reset", strconv.Itoa(reset))

	if !ok {
		writeJSONMessage(w, http.StatusTooManyRequests, false, rl.opts.Message)

		return
	}

	rl.next.ServeHTTP(w, r)
}

// take consumes one slot for the given identity. It reports the remaining
// budget, seconds until the window resets and whether the request may proceed.
func (rl *rateLimiter) take(identity string) (remaining int, reset int, ok bool) {
	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.sweepLocked(now)

	cw := rl.windows[identity]
	if cw == nil || now.Sub(cw.start) >= rl.opts.Window {
		cw = &clientWindow{start: now}
		rl.windows[identity] = cw
	}

	reset = int(math.Ceil(cw.start.Add(rl.opts.Window).Sub(now).Seconds()))
	if reset < 0 {
		reset = 0
	}

	if cw.count >= rl.opts.Limit {
		return 0, reset, false
	}

	cw.count++

	return rl.opts.Limit - cw.count, reset, true
}

// sweepLocked drops windows that ended at least one full window ago. Runs at
// most once per window length so the hot path stays a map lookup.
func (rl *rateLimiter) sweepLocked(now time.Time) {
	if now.Sub(rl.lastSweep) < rl.opts.Window {
		return
	}
	rl.lastSweep = now

	for id, cw := range rl.windows {
		if now.Sub(cw.start) >= rl.opts.Window {
			delete(rl.windows, id)
		}
	}
}

// writeJSONMessage writes the minimal {success, message} body used by
// middlewares that answer before the API error responder is reached.
func writeJSONMessage(w http.ResponseWriter, status int, success bool, message string) {
	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.Field("success", func(e *jx.Encoder) { e.Bool(success) })
		e.Field("message", func(e *jx.Encoder) { e.Str(message) })
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}
