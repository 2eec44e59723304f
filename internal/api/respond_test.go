package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/AryanKharia/hybridreality-Vercel/pkg/serrors"
)

type envelope struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
	Timestamp  string `json:"timestamp"`
	Stack      string `json:"stack"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	_, err := time.Parse(envelopeTimeLayout, env.Timestamp)
	require.NoError(t, err)

	return env
}

func TestHandler_ErrorBecomesEnvelope(t *testing.T) {
	rsp := responder{}

	h := rsp.Handler(func(http.ResponseWriter, *http.Request) error {
		return serrors.With(serrors.ErrNotFound, "no such property")
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products/7", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)

	env := decodeEnvelope(t, rec)
	require.False(t, env.Success)
	require.Equal(t, "no such property", env.Message)
	require.Equal(t, http.StatusNotFound, env.StatusCode)
	require.Empty(t, env.Stack)
}

func TestHandler_NilErrorLeavesResponseAlone(t *testing.T) {
	rsp := responder{}

	h := rsp.Handler(func(w http.ResponseWriter, _ *http.Request) error {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("created"))

		return nil
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/forms", nil))

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "created", rec.Body.String())
}

func TestError_UnknownErrorMapsTo500(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(t.Context(), rec, serrors.With(serrors.ErrInternal, "boom"))

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	env := decodeEnvelope(t, rec)
	require.Equal(t, "boom", env.Message)
	require.Equal(t, http.StatusInternalServerError, env.StatusCode)
}

func TestWithRecovery_PanicBecomesEnvelope(t *testing.T) {
	rsp := responder{development: true}

	h := rsp.withRecovery(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("unreachable row")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	env := decodeEnvelope(t, rec)
	require.False(t, env.Success)
	require.Equal(t, "unexpected server error: unreachable row", env.Message)
	require.Contains(t, env.Stack, "goroutine")
}

func TestWithRecovery_StackHiddenInProduction(t *testing.T) {
	rsp := responder{development: false}

	h := rsp.withRecovery(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("unreachable row")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Empty(t, decodeEnvelope(t, rec).Stack)
}

func TestStatusHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	statusHandler(rec, httptest.NewRequest(http.MethodGet, "/api/status", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body struct {
		Status string `json:"status"`
		Time   string `json:"time"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "OK", body.Status)

	reported, err := time.Parse(envelopeTimeLayout, body.Time)
	require.NoError(t, err)
	require.WithinDuration(t, time.Now(), reported, time.Minute)
}
