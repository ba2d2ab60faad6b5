package booking

import "errors"

var (
	ErrUnknownField         = errors.New("booking.unknown_field")
	ErrValidationFailed     = errors.New("booking.validation_failed")
	ErrDispatchFailed       = errors.New("booking.dispatch_failed")
	ErrSubmissionInProgress = errors.New("booking.submission_in_progress")
	ErrInvalidConfig        = errors.New("booking.invalid_config")
)
