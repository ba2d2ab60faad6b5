package validator

import (
	"fmt"
	"regexp"
	"strings"
)

// MatchesPattern validates value against a precompiled pattern.
// Blank values never match.
func MatchesPattern(field, value string, re *regexp.Regexp, description string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}
			return re.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must match %s pattern", description),
		},
	}
}

// OptionalPattern is MatchesPattern for optional fields: an empty value passes.
func OptionalPattern(field, value string, re *regexp.Regexp, description string) Rule {
	return MatchesPattern(field, value, re, description).When(value != "")
}
