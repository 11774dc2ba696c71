package metrics

import "time"

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

func (n *NoopRecorder) IncUserRegistered()                             {}
func (n *NoopRecorder) IncLogin(outcome string)                        {}
func (n *NoopRecorder) IncPokemonCaptured()                            {}
func (n *NoopRecorder) IncPokemonReleased(deleted bool)                {}
func (n *NoopRecorder) IncLookup(outcome string)                       {}
func (n *NoopRecorder) IncLookupCacheHit()                             {}
func (n *NoopRecorder) IncLookupCacheMiss()                            {}
func (n *NoopRecorder) ObserveUpstreamDuration(duration time.Duration) {}
