package jibri

// Session is the read-only view of one Jibri session exposed by the
// conference system. The lifecycle machinery owns and mutates the
// underlying session; consumers only inspect its type and phase.
type Session interface {
	Type() Type
	IsActive() bool
	IsPending() bool
}
