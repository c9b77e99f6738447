package metrics_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aussiebroadwan/gymtrack/internal/gym/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestNilMetricsIsNoop(t *testing.T) {
	var m *metrics.Metrics
	m.AuthEvent("login", "ok")
	m.EmailSent("verify", nil)

	h := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusTeapot, rec.Code)
}

func TestCounters(t *testing.T) {
	m := metrics.New()
	m.EmailSent("verify", nil)
	m.EmailSent("verify", errors.New("smtp down"))
	m.EmailSent("reset", errors.New("smtp down"))
	m.AuthEvent("login", "ok")

	count, err := testutil.GatherAndCount(m.Registry, "gymtrack_mail_messages_total")
	require.NoError(t, err)
	require.Equal(t, 3, count)

	count, err = testutil.GatherAndCount(m.Registry, "gymtrack_auth_events_total")
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestMiddlewareUsesRoutePattern(t *testing.T) {
	m := metrics.New()
	mux := http.NewServeMux()
	mux.Handle("GET /workouts/{id}", m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})))

	for _, id := range []string{"a", "b"} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/workouts/"+id, nil))
		require.Equal(t, http.StatusNoContent, rec.Code)
	}

	count, err := testutil.GatherAndCount(m.Registry, "gymtrack_http_requests_total")
	require.NoError(t, err)
	require.Equal(t, 1, count, "both requests share one route label")
}
