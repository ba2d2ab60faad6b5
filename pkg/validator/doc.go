// Package validator provides small, composable validation rules.
//
// A Rule couples a boolean Check with translation-friendly error metadata.
// Rules are evaluated with Apply, which aggregates every failure into a
// ValidationErrors slice that satisfies the error interface:
//
//	err := validator.Apply(
//	    validator.RequiredString("fullName", name),
//	    validator.MatchesPattern("phone", phone, mobileRe, "mobile number").
//	        WithMessage("Enter a valid 10-digit phone number"),
//	    validator.OptionalPattern("alternativePhone", alt, mobileRe, "mobile number"),
//	    validator.DateNotBefore("travelDate", date, today),
//	)
//	if errs := validator.ExtractValidationErrors(err); errs != nil {
//	    msg := errs.First("phone")
//	}
//
// Rules hold no global state; every helper only builds a Rule value, so the
// package is goroutine-safe. Patterns used on hot paths should be compiled
// once and passed to MatchesPattern.
package validator
