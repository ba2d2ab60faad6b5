package booking

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrymomot/bookingform/pkg/statemachine"
)

var (
	eventSubmit  = statemachine.StringEvent("submit")
	eventResolve = statemachine.StringEvent("resolve")
)

// Form is one visitor's booking form: its values, its validation messages
// and its submission status. A Form is safe for concurrent use.
type Form struct {
	mu         sync.Mutex
	values     FormState
	errors     ErrorState
	status     statemachine.StateMachine
	dispatcher Dispatcher
	clock      Clock
}

// Option configures a Form.
type Option func(*Form)

// WithClock sets the clock used to derive today's date.
func WithClock(c Clock) Option {
	return func(f *Form) { f.clock = c }
}

// NewForm returns an idle form with every field empty.
func NewForm(d Dispatcher, opts ...Option) *Form {
	f := &Form{
		values:     NewFormState(),
		dispatcher: d,
		clock:      SystemClock(nil),
		status: statemachine.MustNew(StatusIdle,
			statemachine.WithTransition(StatusIdle, StatusSubmitting, eventSubmit),
			statemachine.WithTransition(StatusSubmitting, StatusIdle, eventResolve),
		),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Change stores value for field and revalidates that field alone.
// It returns the field's new message, empty when the value is acceptable.
// Other fields' messages are left as they are.
func (f *Form) Change(field Field, value string) (string, error) {
	if !field.Valid() {
		return "", ErrUnknownField
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.values.Set(field, value)
	msg := liveMessage(field, value, f.clock.Today())
	f.errors.set(field, msg)
	return msg, nil
}

// Submit validates the whole form and, when it is valid, dispatches the
// current values exactly once.
//
// The validation result replaces every field message. On OutcomeRejected the
// returned error wraps ErrValidationFailed and the validator.ValidationErrors.
// On OutcomeSent the form is cleared. On OutcomeFailed the values and
// messages are kept and the error wraps ErrDispatchFailed. A dispatcher panic
// counts as a failure. A Submit made while another one is dispatching returns
// ErrSubmissionInProgress and changes nothing.
//
// The dispatch ignores ctx cancellation: once started it runs until the
// dispatcher returns.
func (f *Form) Submit(ctx context.Context) (Outcome, error) {
	return f.SubmitValues(ctx, nil)
}

// SubmitValues stores values and submits them as one step. When another
// submission is dispatching, values are discarded along with the submit.
func (f *Form) SubmitValues(ctx context.Context, values map[Field]string) (Outcome, error) {
	for field := range values {
		if !field.Valid() {
			return OutcomeRejected, ErrUnknownField
		}
	}

	f.mu.Lock()
	if !f.status.CanFire(ctx, eventSubmit, nil) {
		f.mu.Unlock()
		return OutcomeRejected, ErrSubmissionInProgress
	}

	for field, value := range values {
		f.values.Set(field, value)
	}

	state, verrs := validateSubmit(f.values, f.clock.Today())
	f.errors = state
	if verrs != nil {
		f.mu.Unlock()
		return OutcomeRejected, fmt.Errorf("%w: %w", ErrValidationFailed, verrs)
	}

	if err := f.status.Fire(ctx, eventSubmit, nil); err != nil {
		f.mu.Unlock()
		return OutcomeRejected, errors.Join(ErrSubmissionInProgress, err)
	}
	payload := f.values.Payload()
	f.mu.Unlock()

	dispatchErr := f.dispatch(context.WithoutCancel(ctx), payload)

	f.mu.Lock()
	defer f.mu.Unlock()

	if dispatchErr == nil {
		f.values = NewFormState()
		f.errors = ErrorState{}
	}
	// resolve is always defined from Submitting
	_ = f.status.Fire(context.WithoutCancel(ctx), eventResolve, nil)

	if dispatchErr != nil {
		return OutcomeFailed, errors.Join(ErrDispatchFailed, dispatchErr)
	}
	return OutcomeSent, nil
}

func (f *Form) dispatch(ctx context.Context, payload map[string]string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("dispatcher panicked: %v", r)
		}
	}()
	return f.dispatcher.Dispatch(ctx, payload)
}

// Status returns the current submission status.
func (f *Form) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status.Current().(Status)
}

// Today returns the date travel dates are checked against.
func (f *Form) Today() string { return f.clock.Today() }

// Snapshot returns a copy of the form for rendering.
func (f *Form) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return Snapshot{
		Values: f.values.Clone(),
		Errors: f.errors.Clone(),
		Status: f.status.Current().(Status),
		Today:  f.clock.Today(),
	}
}
