package validator

import (
	"fmt"
	"time"
)

// DateLayout is the ISO 8601 calendar date layout used by HTML date inputs.
const DateLayout = "2006-01-02"

// DateNotBefore validates that value, an ISO 8601 date (YYYY-MM-DD), is on or
// after min. Both are compared as strings: for this layout lexical order is
// chronological order. Values that do not parse as dates fail.
func DateNotBefore(field, value, min string) Rule {
	return Rule{
		Check: func() bool {
			if _, err := time.Parse(DateLayout, value); err != nil {
				return false
			}
			return value >= min
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("date must not be before %s", min),
		},
	}
}
