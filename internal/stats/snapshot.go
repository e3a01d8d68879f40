package stats

import (
	"encoding/json"
)

// LiveCounts holds the per-type active and pending session tallies
// summed across all conferences included in statistics.
type LiveCounts struct {
	SipCallActive       int
	RecordingActive     int
	LiveStreamingActive int

	SipCallPending       int
	RecordingPending     int
	LiveStreamingPending int
}

// Snapshot is one point-in-time statistics result. It is immutable
// once built and carries no identity beyond its values.
//
// The JSON field names are a stable contract for external consumers.
type Snapshot struct {
	TotalSipCallFailures       int64
	TotalRecordingFailures     int64
	TotalLiveStreamingFailures int64

	// Live is nil when the registry was unreachable; the live keys
	// are then absent from the serialized form rather than zeroed.
	Live *LiveCounts
}

// MarshalJSON flattens the snapshot into a single object so consumers
// see one key space regardless of whether the live section is present.
func (s Snapshot) MarshalJSON() ([]byte, error) {
	m := map[string]int64{
		"total_sip_call_failures":       s.TotalSipCallFailures,
		"total_recording_failures":      s.TotalRecordingFailures,
		"total_live_streaming_failures": s.TotalLiveStreamingFailures,
	}
	if s.Live != nil {
		m["sip_call_active"] = int64(s.Live.SipCallActive)
		m["recording_active"] = int64(s.Live.RecordingActive)
		m["live_streaming_active"] = int64(s.Live.LiveStreamingActive)
		m["sip_call_pending"] = int64(s.Live.SipCallPending)
		m["recording_pending"] = int64(s.Live.RecordingPending)
		m["live_streaming_pending"] = int64(s.Live.LiveStreamingPending)
	}
	return json.Marshal(m)
}
