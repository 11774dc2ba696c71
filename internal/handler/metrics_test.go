package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pokecatch/pokecatch/internal/metrics"
)

func TestMetricsHandler(t *testing.T) {
	rec := metrics.NewInMemory()
	rec.IncUserRegistered()
	rec.IncLogin(metrics.OutcomeSuccess)
	rec.IncLogin(metrics.OutcomeFailure)
	rec.IncLogin(metrics.OutcomeFailure)
	rec.IncPokemonReleased(false)
	rec.ObserveUpstreamDuration(1500 * time.Millisecond)

	w := httptest.NewRecorder()
	NewMetricsHandler(rec).Metrics(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")

	body := w.Body.String()
	assert.Contains(t, body, "pokecatch_users_registered_total 1\n")
	assert.Contains(t, body, `pokecatch_logins_total{outcome="success"} 1`)
	assert.Contains(t, body, `pokecatch_logins_total{outcome="failure"} 2`)
	assert.Contains(t, body, `pokecatch_pokemon_released_total{deleted="false"} 1`)
	assert.Contains(t, body, "pokecatch_upstream_duration_seconds_sum 1.500000")
}

func TestMetricsHandler_NoSnapshotter(t *testing.T) {
	w := httptest.NewRecorder()
	NewMetricsHandler(nil).Metrics(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
