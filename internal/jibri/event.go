package jibri

// FailureEvent is published once each time a session fails to start.
// Kind is nil when the publisher supplied no session type; subscribers
// treat such events as malformed and drop them.
type FailureEvent struct {
	Kind *Type
}

// FailedToStart builds a well-formed failure event for the given type.
func FailedToStart(t Type) FailureEvent {
	return FailureEvent{Kind: &t}
}
