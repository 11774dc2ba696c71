// Package metrics provides lightweight hooks for instrumentation.
package metrics

import "time"

// Outcome labels shared by the identity and lookup counters.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// Identity metrics
	IncUserRegistered()
	IncLogin(outcome string) // outcome: "success" or "failure"

	// Collection metrics
	IncPokemonCaptured()
	IncPokemonReleased(deleted bool)

	// Upstream lookup metrics
	IncLookup(outcome string) // outcome: "success" or "failure"
	IncLookupCacheHit()
	IncLookupCacheMiss()
	ObserveUpstreamDuration(duration time.Duration)
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}
