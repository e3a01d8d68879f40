package jibri

import (
	"encoding/json"
)

// Type identifies the kind of work a Jibri session performs.
type Type int

const (
	SipCall Type = iota
	Recording
	LiveStreaming
)

var typeNames = map[Type]string{
	SipCall:       "sip_call",
	Recording:     "recording",
	LiveStreaming: "live_streaming",
}

var typeFromName = map[string]Type{
	"sip_call":       SipCall,
	"recording":      Recording,
	"live_streaming": LiveStreaming,
}

func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return "unknown"
}

// Valid reports whether t is one of the three recognized session types.
func (t Type) Valid() bool {
	_, ok := typeNames[t]
	return ok
}

func (t Type) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *Type) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if v, ok := typeFromName[s]; ok {
		*t = v
	}
	return nil
}

// Phase is the lifecycle phase of a Jibri session as reported by the
// lifecycle system. The stats service only ever reads it.
type Phase int

const (
	PhasePending Phase = iota
	PhaseRetrying
	PhaseActive
	PhaseStopping
	PhaseFailed
	PhaseOff
)

var phaseNames = map[Phase]string{
	PhasePending:  "pending",
	PhaseRetrying: "retrying",
	PhaseActive:   "active",
	PhaseStopping: "stopping",
	PhaseFailed:   "failed",
	PhaseOff:      "off",
}

var phaseFromName = map[string]Phase{
	"pending":  PhasePending,
	"retrying": PhaseRetrying,
	"active":   PhaseActive,
	"stopping": PhaseStopping,
	"failed":   PhaseFailed,
	"off":      PhaseOff,
}

func (p Phase) String() string {
	if s, ok := phaseNames[p]; ok {
		return s
	}
	return "unknown"
}

func (p Phase) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *Phase) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if v, ok := phaseFromName[s]; ok {
		*p = v
	}
	return nil
}
