package metrics

import (
	"sync/atomic"
	"time"
)

// Snapshot captures current in-memory counters.
type Snapshot struct {
	UsersRegistered         uint64
	LoginsSucceeded         uint64
	LoginsFailed            uint64
	PokemonCaptured         uint64
	PokemonReleased         uint64
	ReleasesNoop            uint64
	LookupsSucceeded        uint64
	LookupsFailed           uint64
	LookupCacheHits         uint64
	LookupCacheMisses       uint64
	UpstreamDurationCount   uint64
	UpstreamDurationTotalNs int64
}

// InMemoryRecorder stores metrics in memory. It backs the /metrics endpoint.
type InMemoryRecorder struct {
	usersRegistered         atomic.Uint64
	loginsSucceeded         atomic.Uint64
	loginsFailed            atomic.Uint64
	pokemonCaptured         atomic.Uint64
	pokemonReleased         atomic.Uint64
	releasesNoop            atomic.Uint64
	lookupsSucceeded        atomic.Uint64
	lookupsFailed           atomic.Uint64
	lookupCacheHits         atomic.Uint64
	lookupCacheMisses       atomic.Uint64
	upstreamDurationCount   atomic.Uint64
	upstreamDurationTotalNs atomic.Int64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		UsersRegistered:         m.usersRegistered.Load(),
		LoginsSucceeded:         m.loginsSucceeded.Load(),
		LoginsFailed:            m.loginsFailed.Load(),
		PokemonCaptured:         m.pokemonCaptured.Load(),
		PokemonReleased:         m.pokemonReleased.Load(),
		ReleasesNoop:            m.releasesNoop.Load(),
		LookupsSucceeded:        m.lookupsSucceeded.Load(),
		LookupsFailed:           m.lookupsFailed.Load(),
		LookupCacheHits:         m.lookupCacheHits.Load(),
		LookupCacheMisses:       m.lookupCacheMisses.Load(),
		UpstreamDurationCount:   m.upstreamDurationCount.Load(),
		UpstreamDurationTotalNs: m.upstreamDurationTotalNs.Load(),
	}
}

// IncUserRegistered increments the registration counter.
func (m *InMemoryRecorder) IncUserRegistered() {
	m.usersRegistered.Add(1)
}

// IncLogin increments the login counter for outcome.
func (m *InMemoryRecorder) IncLogin(outcome string) {
	if outcome == OutcomeSuccess {
		m.loginsSucceeded.Add(1)
		return
	}
	m.loginsFailed.Add(1)
}

// IncPokemonCaptured increments the capture counter.
func (m *InMemoryRecorder) IncPokemonCaptured() {
	m.pokemonCaptured.Add(1)
}

// IncPokemonReleased counts releases; deleted is false for scoped no-ops.
func (m *InMemoryRecorder) IncPokemonReleased(deleted bool) {
	if deleted {
		m.pokemonReleased.Add(1)
		return
	}
	m.releasesNoop.Add(1)
}

// IncLookup increments the lookup counter for outcome.
func (m *InMemoryRecorder) IncLookup(outcome string) {
	if outcome == OutcomeSuccess {
		m.lookupsSucceeded.Add(1)
		return
	}
	m.lookupsFailed.Add(1)
}

// IncLookupCacheHit increments the lookup cache hit counter.
func (m *InMemoryRecorder) IncLookupCacheHit() {
	m.lookupCacheHits.Add(1)
}

// IncLookupCacheMiss increments the lookup cache miss counter.
func (m *InMemoryRecorder) IncLookupCacheMiss() {
	m.lookupCacheMisses.Add(1)
}

// ObserveUpstreamDuration records the duration of an upstream request.
func (m *InMemoryRecorder) ObserveUpstreamDuration(duration time.Duration) {
	m.upstreamDurationCount.Add(1)
	m.upstreamDurationTotalNs.Add(duration.Nanoseconds())
}
