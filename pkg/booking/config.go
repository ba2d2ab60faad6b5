package booking

import (
	"fmt"
	"time"
)

// Config holds the booking form settings read from the environment.
type Config struct {
	// Timezone decides which calendar day counts as "today" for the travel date.
	Timezone string `env:"BOOKING_TIMEZONE" envDefault:"UTC"`
	MaxForms int    `env:"BOOKING_MAX_FORMS" envDefault:"10000"`
}

// Location resolves Timezone.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: timezone %q: %v", ErrInvalidConfig, c.Timezone, err)
	}
	return loc, nil
}

// Clock supplies the current time and the zone used to derive today's date.
type Clock struct {
	Now      func() time.Time
	Location *time.Location
}

// SystemClock reads time.Now in loc, UTC if loc is nil.
func SystemClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.UTC
	}
	return Clock{Now: time.Now, Location: loc}
}

// Today returns the current calendar date as YYYY-MM-DD.
func (c Clock) Today() string {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	loc := c.Location
	if loc == nil {
		loc = time.UTC
	}
	return now().In(loc).Format("2006-01-02")
}
