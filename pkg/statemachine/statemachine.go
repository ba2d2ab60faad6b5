package statemachine

import "context"

// State is anything with a stable name.
type State interface {
	Name() string
}

// Event is anything with a stable name.
type Event interface {
	Name() string
}

type Transition struct {
	From  State
	To    State
	Event Event
}

// StateMachine is a finite state machine safe for concurrent use.
type StateMachine interface {
	Current() State
	AddTransition(from, to State, event Event) error
	Fire(ctx context.Context, event Event, data any) error
	CanFire(ctx context.Context, event Event, data any) bool
	Reset() error
}

type StringState string

func (s StringState) Name() string { return string(s) }

type StringEvent string

func (e StringEvent) Name() string { return string(e) }
