package booking

import "maps"

// FormState holds the value of every field. Missing entries read as empty.
type FormState struct {
	values map[Field]string
}

// NewFormState returns a state with every field empty.
func NewFormState() FormState {
	s := FormState{values: make(map[Field]string, len(fieldOrder))}
	for _, f := range fieldOrder {
		s.values[f] = ""
	}
	return s
}

func (s FormState) Get(f Field) string { return s.values[f] }

func (s *FormState) Set(f Field, value string) {
	if s.values == nil {
		*s = NewFormState()
	}
	s.values[f] = value
}

// IsEmpty reports whether every field is empty.
func (s FormState) IsEmpty() bool {
	for _, v := range s.values {
		if v != "" {
			return false
		}
	}
	return true
}

// Payload returns every field keyed by its name, empty fields included.
func (s FormState) Payload() map[string]string {
	out := make(map[string]string, len(fieldOrder))
	for _, f := range fieldOrder {
		out[string(f)] = s.values[f]
	}
	return out
}

func (s FormState) Clone() FormState {
	if s.values == nil {
		return NewFormState()
	}
	return FormState{values: maps.Clone(s.values)}
}

// ErrorState maps a field to its current validation message.
// A field without an entry is valid.
type ErrorState struct {
	messages map[Field]string
}

func (e ErrorState) Get(f Field) string { return e.messages[f] }

func (e ErrorState) Has(f Field) bool {
	_, ok := e.messages[f]
	return ok
}

func (e ErrorState) Len() int { return len(e.messages) }

// Fields returns the invalid fields in display order.
func (e ErrorState) Fields() []Field {
	var out []Field
	for _, f := range fieldOrder {
		if e.Has(f) {
			out = append(out, f)
		}
	}
	return out
}

func (e ErrorState) Clone() ErrorState {
	return ErrorState{messages: maps.Clone(e.messages)}
}

// set stores message for f, or clears the entry when message is empty.
func (e *ErrorState) set(f Field, message string) {
	if message == "" {
		delete(e.messages, f)
		return
	}
	if e.messages == nil {
		e.messages = make(map[Field]string)
	}
	e.messages[f] = message
}

// Status is the submission status of a form.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusSubmitting Status = "submitting"
)

// Name implements statemachine.State.
func (s Status) Name() string { return string(s) }

// Outcome is the result of a submit attempt.
type Outcome int

const (
	// OutcomeRejected means validation failed and nothing was dispatched.
	OutcomeRejected Outcome = iota
	OutcomeSent
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSent:
		return "sent"
	case OutcomeFailed:
		return "failed"
	default:
		return "rejected"
	}
}

// User-facing notifications for the two dispatch outcomes.
const (
	SuccessMessage = "Form successfully sent!"
	FailureMessage = "Failed to send form."
)

// Snapshot is a point-in-time copy of a form used for rendering.
type Snapshot struct {
	Values FormState
	Errors ErrorState
	Status Status
	Today  string
}

// Submitting reports whether a dispatch is in flight.
func (s Snapshot) Submitting() bool { return s.Status == StatusSubmitting }
