package handler

import (
	"fmt"
	"net/http"

	"github.com/pokecatch/pokecatch/internal/metrics"
)

// MetricsHandler exposes in-memory metrics.
type MetricsHandler struct {
	snapshotter metrics.Snapshotter
}

// NewMetricsHandler creates a new MetricsHandler.
func NewMetricsHandler(snapshotter metrics.Snapshotter) *MetricsHandler {
	return &MetricsHandler{snapshotter: snapshotter}
}

// Metrics returns metrics in Prometheus exposition format.
func (h *MetricsHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	if h.snapshotter == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	snap := h.snapshotter.Snapshot()

	w.Header().Set("Content-Type", "text/plain; version=0.0.4")

	writeMetric(w, "pokecatch_users_registered_total %d\n", snap.UsersRegistered)
	writeMetric(w, "pokecatch_logins_total{outcome=\"success\"} %d\n", snap.LoginsSucceeded)
	writeMetric(w, "pokecatch_logins_total{outcome=\"failure\"} %d\n", snap.LoginsFailed)

	writeMetric(w, "pokecatch_pokemon_captured_total %d\n", snap.PokemonCaptured)
	writeMetric(w, "pokecatch_pokemon_released_total{deleted=\"true\"} %d\n", snap.PokemonReleased)
	writeMetric(w, "pokecatch_pokemon_released_total{deleted=\"false\"} %d\n", snap.ReleasesNoop)

	writeMetric(w, "pokecatch_lookups_total{outcome=\"success\"} %d\n", snap.LookupsSucceeded)
	writeMetric(w, "pokecatch_lookups_total{outcome=\"failure\"} %d\n", snap.LookupsFailed)
	writeMetric(w, "pokecatch_lookup_cache_hits_total %d\n", snap.LookupCacheHits)
	writeMetric(w, "pokecatch_lookup_cache_misses_total %d\n", snap.LookupCacheMisses)
	writeMetric(w, "pokecatch_upstream_duration_seconds_count %d\n", snap.UpstreamDurationCount)
	writeMetric(w, "pokecatch_upstream_duration_seconds_sum %.6f\n", float64(snap.UpstreamDurationTotalNs)/1e9)
}

func writeMetric(w http.ResponseWriter, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
