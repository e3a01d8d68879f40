// Package mock feeds the registry and event bus with scripted
// conference activity, for demoing dashboards without a real
// conference system.
package mock

import (
	"context"
	"time"

	"github.com/mowtheair/jicofo/internal/conference"
	"github.com/mowtheair/jicofo/internal/events"
	"github.com/mowtheair/jicofo/internal/jibri"
)

type mockSession struct {
	kind jibri.Type
	// phases is advanced one step per tick; the final phase repeats.
	phases []jibri.Phase
}

func (m mockSession) phaseAt(tick int) jibri.Phase {
	if tick >= len(m.phases) {
		return m.phases[len(m.phases)-1]
	}
	return m.phases[tick]
}

type mockConference struct {
	id       string
	include  bool
	sessions []mockSession
}

type Generator struct {
	store       *conference.Store
	bus         *events.Bus
	tick        int
	conferences []mockConference
}

func NewGenerator(store *conference.Store, bus *events.Bus) *Generator {
	return &Generator{
		store: store,
		bus:   bus,
		conferences: []mockConference{
			{
				id:      "all-hands",
				include: true,
				sessions: []mockSession{
					{kind: jibri.Recording, phases: []jibri.Phase{
						jibri.PhasePending, jibri.PhaseActive, jibri.PhaseActive,
						jibri.PhaseActive, jibri.PhaseStopping, jibri.PhaseOff,
					}},
					{kind: jibri.LiveStreaming, phases: []jibri.Phase{
						jibri.PhasePending, jibri.PhasePending, jibri.PhaseActive,
					}},
				},
			},
			{
				id:      "sales-call",
				include: true,
				sessions: []mockSession{
					{kind: jibri.SipCall, phases: []jibri.Phase{
						jibri.PhasePending, jibri.PhaseRetrying, jibri.PhaseFailed,
					}},
					{kind: jibri.SipCall, phases: []jibri.Phase{
						jibri.PhasePending, jibri.PhaseActive,
					}},
				},
			},
			{
				// Monitoring probe room, never counted.
				id:      "health-check",
				include: false,
				sessions: []mockSession{
					{kind: jibri.Recording, phases: []jibri.Phase{jibri.PhaseActive}},
				},
			},
		},
	}
}

// Start runs the generator until ctx is cancelled, advancing the
// scripted conferences once per second.
func (g *Generator) Start(ctx context.Context) {
	g.advance()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			g.advance()
		}
	}
}

// advance moves every scripted session one tick forward, writes the
// resulting conference states into the registry, and publishes a
// failure event for each session that just entered the failed phase.
func (g *Generator) advance() {
	for _, mc := range g.conferences {
		state := &conference.State{
			ID:             mc.id,
			IncludeInStats: mc.include,
		}
		for _, ms := range mc.sessions {
			phase := ms.phaseAt(g.tick)
			state.JibriSessions = append(state.JibriSessions, conference.SessionState{
				Kind:  ms.kind,
				Phase: phase,
			})
			if phase == jibri.PhaseFailed && (g.tick == 0 || ms.phaseAt(g.tick-1) != jibri.PhaseFailed) {
				g.bus.Publish(jibri.FailedToStart(ms.kind))
			}
		}
		g.store.Update(state)
	}
	g.tick++
}
