package statemachine

import (
	"context"
	"sync"
)

// SimpleStateMachine provides a thread-safe in-memory state machine implementation.
// Transitions are indexed as [fromState][event].
type SimpleStateMachine struct {
	initialState State
	currentState State
	transitions  map[string]map[string]Transition
	mu           sync.RWMutex
}

func newSimpleStateMachine(initialState State) *SimpleStateMachine {
	return &SimpleStateMachine{
		initialState: initialState,
		currentState: initialState,
		transitions:  make(map[string]map[string]Transition),
	}
}

func (sm *SimpleStateMachine) Current() State {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.currentState
}

// AddTransition registers from --event--> to. A second transition for the
// same state and event is rejected with ErrDuplicateTransition.
func (sm *SimpleStateMachine) AddTransition(from, to State, event Event) error {
	if from == nil || to == nil || event == nil {
		return ErrInvalidTransition
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	byEvent, ok := sm.transitions[from.Name()]
	if !ok {
		byEvent = make(map[string]Transition)
		sm.transitions[from.Name()] = byEvent
	}
	if _, exists := byEvent[event.Name()]; exists {
		return ErrDuplicateTransition
	}

	byEvent[event.Name()] = Transition{From: from, To: to, Event: event}
	return nil
}

// Fire moves the machine along the transition registered for event from the
// current state.
func (sm *SimpleStateMachine) Fire(_ context.Context, event Event, _ any) error {
	if event == nil {
		return ErrInvalidEvent
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	t, err := sm.match(event)
	if err != nil {
		return err
	}
	sm.currentState = t.To
	return nil
}

func (sm *SimpleStateMachine) CanFire(_ context.Context, event Event, _ any) bool {
	if event == nil {
		return false
	}

	sm.mu.RLock()
	defer sm.mu.RUnlock()

	_, err := sm.match(event)
	return err == nil
}

func (sm *SimpleStateMachine) Reset() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.currentState = sm.initialState
	return nil
}

// match must be called with the lock held.
func (sm *SimpleStateMachine) match(event Event) (Transition, error) {
	stateName, eventName := sm.currentState.Name(), event.Name()

	t, ok := sm.transitions[stateName][eventName]
	if !ok {
		return Transition{}, NewErrNoTransitionAvailable(stateName, eventName)
	}
	return t, nil
}
