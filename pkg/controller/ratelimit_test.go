package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/AryanKharia/hybridreality-Vercel/pkg/controller"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func limitedRequest(t *testing.T, h http.Handler, ip string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	req.Header.Set("X-Forwarded-For", ip)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec.Result()
}

func TestWithRateLimit_BudgetAndHeaders(t *testing.T) {
	h := controller.WithRateLimit(okHandler(), controller.RateLimitOptions{
		Window: time.Second,
		Limit:  3,
	})

	wantRemaining := []string{"2", "1", "0"}
	for i, want := range wantRemaining {
		res := limitedRequest(t, h, "1.2.3.4")
		require.Equal(t, http.StatusOK, res.StatusCode, "request %d should pass", i+1)
		require.Equal(t, "3", res.Header.Get("RateLimit-Limit"))
		require.Equal(t, want, res.Header.Get("RateLimit-Remaining"))
		require.NotEmpty(t, res.Header.Get("RateLimit-Reset"))
	}

	res := limitedRequest(t, h, "1.2.3.4")
	require.Equal(t, http.StatusTooManyRequests, res.StatusCode)
	require.Equal(t, "0", res.Header.Get("RateLimit-Remaining"))
	require.Equal(t, "application/json", res.Header.Get("Content-Type"))

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	require.False(t, body.Success)
	require.Equal(t, "Too many requests, please try again later.", body.Message)
}

func TestWithRateLimit_WindowResets(t *testing.T) {
	h := controller.WithRateLimit(okHandler(), controller.RateLimitOptions{
		Window: 150 * time.Millisecond,
		Limit:  1,
	})

	require.Equal(t, http.StatusOK, limitedRequest(t, h, "1.2.3.4").StatusCode)
	require.Equal(t, http.StatusTooManyRequests, limitedRequest(t, h, "1.2.3.4").StatusCode)

	time.Sleep(200 * time.Millisecond)

	require.Equal(t, http.StatusOK, limitedRequest(t, h, "1.2.3.4").StatusCode,
		"budget should replenish after the window elapses")
}

func TestWithRateLimit_ClientsHaveIndependentBudgets(t *testing.T) {
	h := controller.WithRateLimit(okHandler(), controller.RateLimitOptions{
		Window: time.Second,
		Limit:  1,
	})

	require.Equal(t, http.StatusOK, limitedRequest(t, h, "1.2.3.4").StatusCode)
	require.Equal(t, http.StatusTooManyRequests, limitedRequest(t, h, "1.2.3.4").StatusCode)
	require.Equal(t, http.StatusOK, limitedRequest(t, h, "5.6.7.8").StatusCode,
		"a different client identity must keep its own budget")
}

func TestWithRateLimit_CustomIdentity(t *testing.T) {
	h := controller.WithRateLimit(okHandler(), controller.RateLimitOptions{
		Window:   time.Second,
		Limit:    1,
		Identify: func(r *http.Request) string { return r.Header.Get("X-Api-Key") },
	})

	req := func(key string) int {
		r := httptest.NewRequest(http.MethodGet, "/api/status", nil)
		r.Header.Set("X-Api-Key", key)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, r)

		return rec.Result().StatusCode
	}

	require.Equal(t, http.StatusOK, req("a"))
	require.Equal(t, http.StatusTooManyRequests, req("a"))
	require.Equal(t, http.StatusOK, req("b"))
}

func TestWithRateLimit_DisabledWithoutLimit(t *testing.T) {
	h := controller.WithRateLimit(okHandler(), controller.RateLimitOptions{Window: time.Second})

	for range 10 {
		res := limitedRequest(t, h, "1.2.3.4")
		require.Equal(t, http.StatusOK, res.StatusCode)
		require.Empty(t, res.Header.Get("RateLimit-Limit"))
	}
}
