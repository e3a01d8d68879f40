package jibri

import (
	"encoding/json"
	"testing"
)

func TestTypeString(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{SipCall, "sip_call"},
		{Recording, "recording"},
		{LiveStreaming, "live_streaming"},
		{Type(99), "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.typ.String(); got != tt.want {
				t.Errorf("Type(%d).String() = %q, want %q", tt.typ, got, tt.want)
			}
		})
	}
}

func TestTypeValid(t *testing.T) {
	for _, typ := range []Type{SipCall, Recording, LiveStreaming} {
		if !typ.Valid() {
			t.Errorf("Type %v reported invalid", typ)
		}
	}
	if Type(99).Valid() {
		t.Error("Type(99) reported valid")
	}
	if Type(-1).Valid() {
		t.Error("Type(-1) reported valid")
	}
}

func TestTypeJSONRoundTrip(t *testing.T) {
	for _, typ := range []Type{SipCall, Recording, LiveStreaming} {
		data, err := json.Marshal(typ)
		if err != nil {
			t.Fatalf("Marshal(%v) error: %v", typ, err)
		}
		var got Type
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("Unmarshal(%s) error: %v", data, err)
		}
		if got != typ {
			t.Errorf("round trip of %v produced %v", typ, got)
		}
	}
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase Phase
		want  string
	}{
		{PhasePending, "pending"},
		{PhaseRetrying, "retrying"},
		{PhaseActive, "active"},
		{PhaseStopping, "stopping"},
		{PhaseFailed, "failed"},
		{PhaseOff, "off"},
		{Phase(42), "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.phase.String(); got != tt.want {
				t.Errorf("Phase(%d).String() = %q, want %q", tt.phase, got, tt.want)
			}
		})
	}
}

func TestFailedToStart(t *testing.T) {
	ev := FailedToStart(Recording)
	if ev.Kind == nil {
		t.Fatal("FailedToStart returned event with nil Kind")
	}
	if *ev.Kind != Recording {
		t.Errorf("event kind = %v, want Recording", *ev.Kind)
	}
}
