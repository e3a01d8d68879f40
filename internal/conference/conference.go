package conference

import (
	"github.com/mowtheair/jicofo/internal/jibri"
)

// Conference is the read-only view of one conference known to the
// conference system.
type Conference interface {
	// IncludeInStatistics reports whether this conference should be
	// counted in aggregate statistics. Health-check and test
	// conferences are typically excluded.
	IncludeInStatistics() bool
	Sessions() []jibri.Session
}

// Registry enumerates the conferences currently known to the process.
// The stats service treats the registry as a possibly-absent
// collaborator: live counts are simply skipped when none is attached.
type Registry interface {
	Conferences() []Conference
}

// SessionState is a concrete Jibri session record as tracked by the
// in-memory registry. It satisfies jibri.Session.
type SessionState struct {
	Kind  jibri.Type  `json:"kind"`
	Phase jibri.Phase `json:"phase"`
}

func (s SessionState) Type() jibri.Type { return s.Kind }

func (s SessionState) IsActive() bool { return s.Phase == jibri.PhaseActive }

// IsPending reports whether the session is still starting up. A
// retrying session counts as pending: Jibri is expected to come back.
func (s SessionState) IsPending() bool {
	return s.Phase == jibri.PhasePending || s.Phase == jibri.PhaseRetrying
}

// State is one conference record held by the Store.
type State struct {
	ID             string         `json:"id"`
	IncludeInStats bool           `json:"includeInStats"`
	JibriSessions  []SessionState `json:"jibriSessions,omitempty"`
}

func (c *State) IncludeInStatistics() bool { return c.IncludeInStats }

func (c *State) Sessions() []jibri.Session {
	sessions := make([]jibri.Session, len(c.JibriSessions))
	for i, s := range c.JibriSessions {
		sessions[i] = s
	}
	return sessions
}

// Clone returns a deep copy of the State, duplicating the session
// slice so the copy can be mutated independently of the original.
func (c *State) Clone() *State {
	cp := *c
	if len(c.JibriSessions) > 0 {
		cp.JibriSessions = make([]SessionState, len(c.JibriSessions))
		copy(cp.JibriSessions, c.JibriSessions)
	}
	return &cp
}
