package statshandler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/AryanKharia/hybridreality-Vercel/internal/worker"
	"github.com/AryanKharia/hybridreality-Vercel/pkg/domain"
	"github.com/AryanKharia/hybridreality-Vercel/pkg/logger"
	"github.com/AryanKharia/hybridreality-Vercel/pkg/serrors"
	mockstorage "github.com/AryanKharia/hybridreality-Vercel/pkg/storage/mock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)

	os.Exit(m.Run())
}

func TestHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lastSeen := time.Date(2025, 6, 1, 12, 30, 45, 500*int(time.Millisecond), time.UTC)

	strg := mockstorage.NewMockAllStorage(ctrl)
	strg.EXPECT().EndpointStats(gomock.Any()).Return([]domain.EndpointStat{
		{
			Route:         "/api/products",
			Method:        http.MethodGet,
			Hits:          4,
			Errors:        1,
			TotalDuration: 100 * time.Millisecond,
			LastSeen:      lastSeen,
		},
		{Route: "/api/forms", Method: http.MethodPost, Hits: 1},
	}, nil)

	rec := httptest.NewRecorder()
	err := New(strg).List(rec, httptest.NewRequest(http.MethodGet, "/api/stats", nil))
	require.NoError(t, err)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body struct {
		Success bool `json:"success"`
		Count   int  `json:"count"`
		Stats   []struct {
			Route         string  `json:"route"`
			Method        string  `json:"method"`
			Hits          int64   `json:"hits"`
			Errors        int64   `json:"errors"`
			AvgDurationMs float64 `json:"avgDurationMs"`
			LastSeen      string  `json:"lastSeen"`
		} `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	require.True(t, body.Success)
	require.Equal(t, 2, body.Count)
	require.Len(t, body.Stats, 2)

	require.Equal(t, "/api/products", body.Stats[0].Route)
	require.EqualValues(t, 4, body.Stats[0].Hits)
	require.EqualValues(t, 1, body.Stats[0].Errors)
	require.InDelta(t, 25.0, body.Stats[0].AvgDurationMs, 0.001)
	require.Equal(t, "2025-06-01T12:30:45.500Z", body.Stats[0].LastSeen)

	require.Equal(t, "/api/forms", body.Stats[1].Route)
	require.Zero(t, body.Stats[1].AvgDurationMs)
}

func TestHandler_List_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	strg := mockstorage.NewMockAllStorage(ctrl)
	strg.EXPECT().EndpointStats(gomock.Any()).Return(nil, errors.New("connection refused"))

	rec := httptest.NewRecorder()
	err := New(strg).List(rec, httptest.NewRequest(http.MethodGet, "/api/stats", nil))

	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrInternal)
	require.Equal(t, http.StatusInternalServerError, serrors.HTTPStatus(err))
}

func TestHandler_TriggerFlush(t *testing.T) {
	tests := []struct {
		name   string
		queued bool
	}{
		{name: "queued", queued: true},
		{name: "already pending", queued: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			strg := mockstorage.NewMockAllStorage(ctrl)
			strg.EXPECT().
				AddJob(gomock.Any(), worker.StatsFlushArgs{}, nil).
				Return(test.queued, nil)

			rec := httptest.NewRecorder()
			err := New(strg).TriggerFlush(rec, httptest.NewRequest(http.MethodPost, "/api/stats/flush", nil))
			require.NoError(t, err)

			require.Equal(t, http.StatusAccepted, rec.Code)

			var body struct {
				Success bool `json:"success"`
				Queued  bool `json:"queued"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.True(t, body.Success)
			require.Equal(t, test.queued, body.Queued)
		})
	}
}

func TestHandler_TriggerFlush_QueueError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	strg := mockstorage.NewMockAllStorage(ctrl)
	strg.EXPECT().
		AddJob(gomock.Any(), worker.StatsFlushArgs{}, nil).
		Return(false, errors.New("queue unavailable"))

	rec := httptest.NewRecorder()
	err := New(strg).TriggerFlush(rec, httptest.NewRequest(http.MethodPost, "/api/stats/flush", nil))

	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrInternal)
}
