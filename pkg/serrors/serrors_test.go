package serrors_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/AryanKharia/hybridreality-Vercel/pkg/serrors"
	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestDefaultKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrNotFound,
		serrors.ErrUnauthorized,
		serrors.ErrForbidden,
		serrors.ErrBadRequest,
		serrors.ErrConflict,
		serrors.ErrPayloadTooLarge,
		serrors.ErrRateLimited,
		serrors.ErrInternal,
		serrors.ErrTimeout,
		serrors.ErrUnavailable,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("db down")

	e1 := serrors.With(serrors.ErrNotFound, "listing %d not found", 42)
	require.Equal(t, "listing 42 not found", e1.Error(), "With() Error() mismatch")

	e2 := serrors.Wrap(serrors.ErrNotFound, base, "getting listing")
	require.Equal(t, "getting listing: db down", e2.Error(), "Wrap() Error() mismatch")

	e3 := serrors.KindOnly(serrors.ErrNotFound)
	require.Equal(t, "NOT_FOUND", e3.Error(), "KindOnly Error() mismatch")
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "reading")

	require.ErrorIs(t, e, serrors.ErrNotFound)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrUnauthorized, "errors.Is should not match a different kind")
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "reading")

	var k serrors.Kind
	require.ErrorAs(t, e, &k, "errors.As should extract Kind")
	require.Equal(t, serrors.ErrNotFound, k)

	var ce *customError
	require.ErrorAs(t, e, &ce, "errors.As should extract wrapped error type")
	require.Equal(t, base, ce, "extracted cause pointer mismatch")
}

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		kind serrors.Kind
		want int
	}{
		{serrors.ErrNotFound, http.StatusNotFound},
		{serrors.ErrUnauthorized, http.StatusUnauthorized},
		{serrors.ErrForbidden, http.StatusForbidden},
		{serrors.ErrBadRequest, http.StatusBadRequest},
		{serrors.ErrConflict, http.StatusConflict},
		{serrors.ErrPayloadTooLarge, http.StatusRequestEntityTooLarge},
		{serrors.ErrRateLimited, http.StatusTooManyRequests},
		{serrors.ErrTimeout, http.StatusGatewayTimeout},
		{serrors.ErrUnavailable, http.StatusServiceUnavailable},
		{serrors.ErrInternal, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, serrors.HTTPStatus(serrors.KindOnly(tc.kind)), "status for %v", tc.kind)
	}

	require.Equal(t, http.StatusInternalServerError, serrors.HTTPStatus(errors.New("plain")),
		"plain errors should map to 500")
	require.Equal(t, http.StatusNotFound,
		serrors.HTTPStatus(serrors.Wrap(serrors.ErrNotFound, errors.New("cause"), "wrapped")),
		"wrapped kind should be found through the chain")
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrUnauthorized, base, "no token")
	require.Equal(t, serrors.ErrUnauthorized, e.Kind())
	require.Equal(t, "no token", e.Message())
	require.Equal(t, base, e.Cause())
}
