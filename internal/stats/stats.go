// Package stats accumulates Jibri failure counters and computes
// point-in-time session statistics from the conference registry.
package stats

import (
	"context"
	"log"
	"sync"
	"sync/atomic"

	"github.com/mowtheair/jicofo/internal/conference"
	"github.com/mowtheair/jicofo/internal/jibri"
)

// Aggregator counts failed session starts and, on demand, combines
// those totals with live active/pending counts from the registry.
//
// Failure events arrive on a single delivery path, but snapshots and
// accessors may be called concurrently with an in-flight increment,
// so the counters are atomics rather than plain ints.
type Aggregator struct {
	totalSipCallFailures       atomic.Int64
	totalRecordingFailures     atomic.Int64
	totalLiveStreamingFailures atomic.Int64

	mu       sync.RWMutex
	registry conference.Registry
}

func New() *Aggregator {
	return &Aggregator{}
}

// SetRegistry attaches the conference registry used for live counts.
// Until a registry is attached, snapshots carry only the cumulative
// failure totals.
func (a *Aggregator) SetRegistry(r conference.Registry) {
	a.mu.Lock()
	a.registry = r
	a.mu.Unlock()
}

// Run consumes failure events until ctx is cancelled or the channel
// closes. The caller runs it in a goroutine.
func (a *Aggregator) Run(ctx context.Context, events <-chan jibri.FailureEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			a.HandleFailure(ev)
		}
	}
}

// HandleFailure records one failed session start. Malformed events
// (no kind) and unrecognized kinds are logged and dropped without
// touching any counter.
func (a *Aggregator) HandleFailure(ev jibri.FailureEvent) {
	if ev.Kind == nil {
		log.Printf("stats: failure event carries no session type, dropping")
		return
	}

	switch *ev.Kind {
	case jibri.SipCall:
		a.totalSipCallFailures.Add(1)
	case jibri.Recording:
		a.totalRecordingFailures.Add(1)
	case jibri.LiveStreaming:
		a.totalLiveStreamingFailures.Add(1)
	default:
		log.Printf("stats: unhandled jibri session type %d, dropping", *ev.Kind)
	}
}

// TotalSipCallFailures returns how many SIP calls have failed to start.
func (a *Aggregator) TotalSipCallFailures() int64 {
	return a.totalSipCallFailures.Load()
}

// TotalRecordingFailures returns how many recordings have failed to start.
func (a *Aggregator) TotalRecordingFailures() int64 {
	return a.totalRecordingFailures.Load()
}

// TotalLiveStreamingFailures returns how many live streams have failed
// to start.
func (a *Aggregator) TotalLiveStreamingFailures() int64 {
	return a.totalLiveStreamingFailures.Load()
}

// countSessions counts sessions of the given type that pass the
// selector's test.
func countSessions(sessions []jibri.Session, t jibri.Type, selector func(jibri.Session) bool) int {
	count := 0
	for _, s := range sessions {
		if s.Type() == t && selector(s) {
			count++
		}
	}
	return count
}

func countActive(sessions []jibri.Session, t jibri.Type) int {
	return countSessions(sessions, t, jibri.Session.IsActive)
}

func countPending(sessions []jibri.Session, t jibri.Type) int {
	return countSessions(sessions, t, jibri.Session.IsPending)
}

// LiveCounts computes the active/pending tallies across all included
// conferences in one linear pass. It returns nil when no registry is
// attached; the snapshot then omits the live section entirely.
func (a *Aggregator) LiveCounts() *LiveCounts {
	a.mu.RLock()
	reg := a.registry
	a.mu.RUnlock()

	if reg == nil {
		return nil
	}

	live := &LiveCounts{}
	for _, conf := range reg.Conferences() {
		if !conf.IncludeInStatistics() {
			continue
		}
		sessions := conf.Sessions()

		live.SipCallActive += countActive(sessions, jibri.SipCall)
		live.RecordingActive += countActive(sessions, jibri.Recording)
		live.LiveStreamingActive += countActive(sessions, jibri.LiveStreaming)

		live.SipCallPending += countPending(sessions, jibri.SipCall)
		live.RecordingPending += countPending(sessions, jibri.Recording)
		live.LiveStreamingPending += countPending(sessions, jibri.LiveStreaming)
	}
	return live
}

// Snapshot merges the cumulative failure totals with freshly computed
// live counts. The totals are always present; the live section is
// present only when a registry is attached.
func (a *Aggregator) Snapshot() Snapshot {
	return Snapshot{
		TotalSipCallFailures:       a.TotalSipCallFailures(),
		TotalRecordingFailures:     a.TotalRecordingFailures(),
		TotalLiveStreamingFailures: a.TotalLiveStreamingFailures(),
		Live:                       a.LiveCounts(),
	}
}
