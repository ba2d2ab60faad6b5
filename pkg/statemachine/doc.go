// Package statemachine implements a small, concurrency-safe finite state
// machine.
//
// States and events are anything with a Name. Each state has at most one
// transition per event.
//
//	const (
//	    Idle       = statemachine.StringState("idle")
//	    Submitting = statemachine.StringState("submitting")
//	    Submit     = statemachine.StringEvent("submit")
//	    Resolve    = statemachine.StringEvent("resolve")
//	)
//
//	sm := statemachine.MustNew(Idle,
//	    statemachine.WithTransition(Idle, Submitting, Submit),
//	    statemachine.WithTransition(Submitting, Idle, Resolve),
//	)
//
//	if err := sm.Fire(ctx, Submit, nil); statemachine.IsNoTransitionAvailableError(err) {
//	    // already submitting
//	}
//
// Firing an event that has no transition from the current state returns
// ErrNoTransitionAvailable.
package statemachine
