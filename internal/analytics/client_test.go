package analytics

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shenikar/police_smart_analytics/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient поднимает тестовый бэкенд и клиент к нему
func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	logger := logrus.New()
	logger.SetOutput(io.Discard) // Отключаем вывод логов в тестах

	return NewClient(srv.URL+"/", 2*time.Second, logger), srv
}

func TestGetSummary_Success(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/analytics/summary", r.URL.Path)
		assert.Empty(t, r.URL.RawQuery)
		assert.NotEmpty(t, r.Header.Get(RequestIDHeader))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"total": 10, "open": 4, "avg_response_minutes": 9.5, "by_type": {"theft": 6, "fraud": 4}, "by_severity": {"high": 2}}`)
	})

	summary, err := client.GetSummary(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 10, summary.TotalCount())
	require.NotNil(t, summary.Open)
	assert.Equal(t, 4, *summary.Open)
	require.NotNil(t, summary.AvgResponseMinutes)
	assert.Equal(t, 9.5, *summary.AvgResponseMinutes)
	assert.Equal(t, []string{"theft", "fraud"}, summary.TypeOrder)
}

func TestGetSummary_RequestIDFromContext(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "cycle-42", r.Header.Get(RequestIDHeader))
		_, _ = io.WriteString(w, `{"total": 0, "open": 0}`)
	})

	_, err := client.GetSummary(WithRequestID(context.Background(), "cycle-42"))

	require.NoError(t, err)
}

func TestGetSummary_NegativeTotalRejected(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"total": -1, "open": 0}`)
	})

	summary, err := client.GetSummary(context.Background())

	require.Error(t, err)
	assert.Nil(t, summary)
	assert.ErrorIs(t, err, ErrDecode)
}

func TestGetSummary_NegativeTypeCountRejected(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"total": 1, "open": 0, "by_type": {"theft": -3}}`)
	})

	_, err := client.GetSummary(context.Background())

	assert.ErrorIs(t, err, ErrDecode)
}

func TestGetSummary_MalformedBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `<html>gateway error</html>`)
	})

	_, err := client.GetSummary(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecode)
}

func TestGetSummary_NullBodyRejected(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, " null\n")
	})

	summary, err := client.GetSummary(context.Background())

	require.Error(t, err)
	assert.Nil(t, summary)
	assert.ErrorIs(t, err, ErrDecode)
}

func TestGetSummary_MissingCountsAccepted(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"total": null, "by_type": {"theft": 2}}`)
	})

	summary, err := client.GetSummary(context.Background())

	require.NoError(t, err)
	assert.Nil(t, summary.Total)
	assert.Nil(t, summary.Open)
	assert.Equal(t, []string{"theft"}, summary.TypeOrder)
}

func TestGetSummary_StatusError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "database unavailable", http.StatusServiceUnavailable)
	})

	_, err := client.GetSummary(context.Background())

	require.Error(t, err)
	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusServiceUnavailable, se.StatusCode)
	assert.Equal(t, "database unavailable", se.Body)
	assert.True(t, IsStatus(err, http.StatusServiceUnavailable))
	assert.False(t, IsStatus(err, http.StatusNotFound))
}

func TestGetSummary_TransportError(t *testing.T) {
	client, srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	srv.Close()

	_, err := client.GetSummary(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
}

func TestListIncidents_SendsOnlyNonEmptyFacets(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/incidents", r.URL.Path)
		assert.Equal(t, "type=theft&status=resolved", r.URL.RawQuery)
		_, _ = io.WriteString(w, `{"items": [{"id": 1, "incident_id": "INC-1", "type": "theft", "severity": "low", "status": "resolved"}]}`)
	})

	items, err := client.ListIncidents(context.Background(), models.FilterState{Type: "theft", Status: "resolved"})

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, models.IncidentKey("1"), items[0].ID)
	assert.Equal(t, models.StatusResolved, items[0].Status)
}

func TestListIncidents_EscapesValues(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "North & South", r.URL.Query().Get("precinct"))
		_, _ = io.WriteString(w, `{"items": []}`)
	})

	_, err := client.ListIncidents(context.Background(), models.FilterState{Precinct: "North & South"})

	require.NoError(t, err)
}

func TestListIncidents_MissingItems(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{}`)
	})

	items, err := client.ListIncidents(context.Background(), models.FilterState{})

	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestListIncidents_NullBodyRejected(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `null`)
	})

	items, err := client.ListIncidents(context.Background(), models.FilterState{})

	require.Error(t, err)
	assert.Nil(t, items)
	assert.ErrorIs(t, err, ErrDecode)
}

func TestListIncidents_ItemWithoutID(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"items": [{"incident_id": "INC-9"}]}`)
	})

	_, err := client.ListIncidents(context.Background(), models.FilterState{})

	assert.ErrorIs(t, err, ErrDecode)
}

func TestSeed_PostsCountAndIgnoresBody(t *testing.T) {
	var called atomic.Bool
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called.Store(true)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/incidents/seed", r.URL.Path)
		assert.Equal(t, "80", r.URL.Query().Get("n"))
		_, _ = io.WriteString(w, `not json at all`)
	})

	err := client.Seed(context.Background(), 80)

	require.NoError(t, err)
	assert.True(t, called.Load())
}

func TestSeed_StatusError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusMethodNotAllowed)
	})

	err := client.Seed(context.Background(), 5)

	assert.True(t, IsStatus(err, http.StatusMethodNotAllowed))
}

func TestStatusError_Message(t *testing.T) {
	err := &StatusError{Method: "GET", Path: "/incidents", StatusCode: 502}

	assert.Equal(t, "analytics: GET /incidents returned status 502", err.Error())
}
