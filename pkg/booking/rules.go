package booking

import (
	"regexp"

	"github.com/dmitrymomot/bookingform/pkg/validator"
)

// whitespace matches what browsers treat as \s: RE2's ASCII \s plus \v,
// the Unicode space separators, line/paragraph separators and BOM.
const whitespace = `\s\v\p{Zs}\x{2028}\x{2029}\x{feff}`

var (
	emailPattern  = regexp.MustCompile(`^[^` + whitespace + `@]+@[^` + whitespace + `@]+\.[^` + whitespace + `@]+$`)
	mobilePattern = regexp.MustCompile(`^[6-9]\d{9}$`)
)

const (
	msgLiveEmail = "Enter a valid email address"
	msgLivePhone = "Enter a valid 10-digit Indian phone number"
	msgLiveDate  = "Travel date cannot be in the past"

	msgFullName      = "Please enter your full name"
	msgEmail         = "Please enter a valid email address"
	msgPhone         = "Please enter a valid 10-digit phone number"
	msgSource        = "Please enter a starting point"
	msgDestination   = "Please enter a destination"
	msgTravelDate    = "Travel date must be today or in the future"
	msgDrivingOption = "Please select a driving option"
)

// liveRule returns the edit-time rule for f, or false if f has none.
// Empty values are never checked live; presence is a submit-time concern.
func liveRule(f Field, value, today string) (validator.Rule, bool) {
	var rule validator.Rule
	switch f {
	case FieldEmail:
		rule = validator.MatchesPattern(string(f), value, emailPattern, "email").WithMessage(msgLiveEmail)
	case FieldPhone, FieldAlternativePhone:
		rule = validator.MatchesPattern(string(f), value, mobilePattern, "mobile number").WithMessage(msgLivePhone)
	case FieldTravelDate:
		rule = validator.DateNotBefore(string(f), value, today).WithMessage(msgLiveDate)
	default:
		return validator.Rule{}, false
	}
	return rule.When(value != ""), true
}

// liveMessage validates a single field value as it is being edited.
func liveMessage(f Field, value, today string) string {
	rule, ok := liveRule(f, value, today)
	if !ok {
		return ""
	}
	return validator.ExtractValidationErrors(validator.Apply(rule)).First(string(f))
}

// submitRules are the full-form rules. Each field has exactly one rule so a
// field reports at most one message.
func submitRules(s FormState, today string) []validator.Rule {
	return []validator.Rule{
		validator.RequiredString(string(FieldFullName), s.Get(FieldFullName)).
			WithMessage(msgFullName),
		validator.MatchesPattern(string(FieldEmail), s.Get(FieldEmail), emailPattern, "email").
			WithMessage(msgEmail),
		validator.MatchesPattern(string(FieldPhone), s.Get(FieldPhone), mobilePattern, "mobile number").
			WithMessage(msgPhone),
		validator.OptionalPattern(string(FieldAlternativePhone), s.Get(FieldAlternativePhone), mobilePattern, "mobile number").
			WithMessage(msgPhone),
		validator.RequiredString(string(FieldSource), s.Get(FieldSource)).
			WithMessage(msgSource),
		validator.RequiredString(string(FieldDestination), s.Get(FieldDestination)).
			WithMessage(msgDestination),
		validator.DateNotBefore(string(FieldTravelDate), s.Get(FieldTravelDate), today).
			WithMessage(msgTravelDate),
		validator.InListString(string(FieldDrivingOption), s.Get(FieldDrivingOption), []string{DrivingSelf, DrivingDriver}).
			WithMessage(msgDrivingOption),
	}
}

// validateSubmit returns the ErrorState for a submit attempt and the
// underlying validation errors, nil when the form is valid.
func validateSubmit(s FormState, today string) (ErrorState, validator.ValidationErrors) {
	errs := validator.ExtractValidationErrors(validator.Apply(submitRules(s, today)...))

	var state ErrorState
	for _, f := range fieldOrder {
		state.set(f, errs.First(string(f)))
	}
	return state, errs
}
