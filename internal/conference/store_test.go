package conference

import (
	"testing"

	"github.com/mowtheair/jicofo/internal/jibri"
)

func TestNewStore(t *testing.T) {
	s := NewStore()
	if s == nil {
		t.Fatal("NewStore() returned nil")
	}
	if got := s.Count(); got != 0 {
		t.Errorf("new store has %d conferences, want 0", got)
	}
	if got := len(s.Conferences()); got != 0 {
		t.Errorf("new store Conferences() returned %d entries, want 0", got)
	}
}

func TestGetMissing(t *testing.T) {
	s := NewStore()
	st, ok := s.Get("nonexistent")
	if ok {
		t.Error("Get for missing key returned ok=true")
	}
	if st != nil {
		t.Error("Get for missing key returned non-nil state")
	}
}

func TestUpdateAndGet(t *testing.T) {
	s := NewStore()
	s.Update(&State{
		ID:             "room-a",
		IncludeInStats: true,
		JibriSessions: []SessionState{
			{Kind: jibri.Recording, Phase: jibri.PhaseActive},
		},
	})

	st, ok := s.Get("room-a")
	if !ok {
		t.Fatal("Get returned ok=false after Update")
	}
	if st.ID != "room-a" || !st.IncludeInStats {
		t.Errorf("Get returned unexpected state: %+v", st)
	}
	if len(st.JibriSessions) != 1 || st.JibriSessions[0].Kind != jibri.Recording {
		t.Errorf("Get returned unexpected sessions: %+v", st.JibriSessions)
	}
}

func TestGetReturnsCopy(t *testing.T) {
	s := NewStore()
	s.Update(&State{
		ID:            "room-a",
		JibriSessions: []SessionState{{Kind: jibri.Recording, Phase: jibri.PhasePending}},
	})

	got, _ := s.Get("room-a")
	got.JibriSessions[0].Phase = jibri.PhaseFailed

	got2, _ := s.Get("room-a")
	if got2.JibriSessions[0].Phase != jibri.PhasePending {
		t.Error("Get did not return a copy; mutation leaked into store")
	}
}

func TestUpdateStoresCopy(t *testing.T) {
	s := NewStore()
	state := &State{
		ID:            "room-a",
		JibriSessions: []SessionState{{Kind: jibri.SipCall, Phase: jibri.PhaseActive}},
	}
	s.Update(state)

	state.JibriSessions[0].Phase = jibri.PhaseOff

	got, _ := s.Get("room-a")
	if got.JibriSessions[0].Phase != jibri.PhaseActive {
		t.Error("Update did not copy input; external mutation leaked into store")
	}
}

func TestRemove(t *testing.T) {
	s := NewStore()
	s.Update(&State{ID: "room-a"})
	s.Update(&State{ID: "room-b"})

	s.Remove("room-a")

	if _, ok := s.Get("room-a"); ok {
		t.Error("Get returned removed conference")
	}
	if got := s.Count(); got != 1 {
		t.Errorf("Count() = %d after remove, want 1", got)
	}
}

func TestConferencesOrdering(t *testing.T) {
	s := NewStore()
	s.Update(&State{ID: "zeta"})
	s.Update(&State{ID: "alpha"})
	s.Update(&State{ID: "mid"})

	all := s.GetAll()
	want := []string{"alpha", "mid", "zeta"}
	if len(all) != len(want) {
		t.Fatalf("GetAll() returned %d conferences, want %d", len(all), len(want))
	}
	for i, id := range want {
		if all[i].ID != id {
			t.Errorf("GetAll()[%d].ID = %q, want %q", i, all[i].ID, id)
		}
	}
}

func TestSessionStatePredicates(t *testing.T) {
	tests := []struct {
		name        string
		phase       jibri.Phase
		wantActive  bool
		wantPending bool
	}{
		{"pending", jibri.PhasePending, false, true},
		{"retrying", jibri.PhaseRetrying, false, true},
		{"active", jibri.PhaseActive, true, false},
		{"stopping", jibri.PhaseStopping, false, false},
		{"failed", jibri.PhaseFailed, false, false},
		{"off", jibri.PhaseOff, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := SessionState{Kind: jibri.Recording, Phase: tt.phase}
			if got := s.IsActive(); got != tt.wantActive {
				t.Errorf("IsActive() = %v, want %v", got, tt.wantActive)
			}
			if got := s.IsPending(); got != tt.wantPending {
				t.Errorf("IsPending() = %v, want %v", got, tt.wantPending)
			}
		})
	}
}
