package intent

// CircuitState reports whether the generative stage may be called. Once the
// breaker opens it stays open for the life of the process; invalid
// credentials do not heal themselves and every further call would burn the
// request timeout for nothing.
type CircuitState struct {
	active bool
	reason string
}

// CircuitActive is the closed-breaker state: calls flow.
func CircuitActive() CircuitState {
	return CircuitState{active: true}
}

// CircuitDisabled is the open-breaker state with the cause recorded.
func CircuitDisabled(reason string) CircuitState {
	return CircuitState{reason: reason}
}

// Active reports whether calls may proceed.
func (s CircuitState) Active() bool { return s.active }

// Reason returns why the breaker opened; empty while active.
func (s CircuitState) Reason() string { return s.reason }
