package validators

// GateState is the display state of a form.
type GateState int

const (
	// Pristine: no submit attempt yet, errors are computed but hidden.
	Pristine GateState = iota
	// SubmittedInvalid: the last check after a submit attempt failed.
	SubmittedInvalid
	// SubmittedValid: the last check after a submit attempt passed.
	SubmittedValid
)

func (s GateState) String() string {
	switch s {
	case Pristine:
		return "pristine"
	case SubmittedInvalid:
		return "submitted-invalid"
	case SubmittedValid:
		return "submitted-valid"
	default:
		return "unknown"
	}
}

// Gate implements submit-gated validation: errors stay hidden until the
// first submit attempt, after which every change re-validates immediately.
type Gate[T any] struct {
	check     func(T) FieldErrors
	submitted bool
	shown     FieldErrors
}

// NewGate returns a pristine gate using check as the rule set.
func NewGate[T any](check func(T) FieldErrors) *Gate[T] {
	return &Gate[T]{check: check, shown: FieldErrors{}}
}

// Change is called after every edit. Before the first submit attempt it
// shows nothing; afterwards it re-runs the rules and shows the result.
func (g *Gate[T]) Change(values T) FieldErrors {
	if g.submitted {
		g.shown = g.check(values)
	}
	return g.Errors()
}

// Submit records a submit attempt, shows the current errors and reports
// whether the values may be sent.
func (g *Gate[T]) Submit(values T) (FieldErrors, bool) {
	g.submitted = true
	g.shown = g.check(values)
	return g.Errors(), g.shown.Valid()
}

// Errors returns a copy of the visible errors.
func (g *Gate[T]) Errors() FieldErrors {
	return g.shown.Clone()
}

// Submitted reports whether a submit attempt happened.
func (g *Gate[T]) Submitted() bool {
	return g.submitted
}

// State returns the current display state.
func (g *Gate[T]) State() GateState {
	switch {
	case !g.submitted:
		return Pristine
	case g.shown.Valid():
		return SubmittedValid
	default:
		return SubmittedInvalid
	}
}
