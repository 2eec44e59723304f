package metrics_test

import (
	"testing"

	"github.com/AryanKharia/hybridreality-Vercel/pkg/metrics"
	"github.com/stretchr/testify/require"
)

func TestStatusClass(t *testing.T) {
	cases := map[int]string{
		200: "2xx",
		204: "2xx",
		301: "3xx",
		404: "4xx",
		429: "4xx",
		500: "5xx",
		599: "5xx",
		100: "1xx",
		0:   "0",
		777: "777",
	}
	for code, want := range cases {
		require.Equal(t, want, metrics.StatusClass(code), "code %d", code)
	}
}

func TestDefaultBucketsAscending(t *testing.T) {
	for i := 1; i < len(metrics.DefaultBuckets); i++ {
		require.Greater(t, metrics.DefaultBuckets[i], metrics.DefaultBuckets[i-1])
	}
}
