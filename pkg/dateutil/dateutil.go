package dateutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the calendar date format accepted for birth dates
const DateLayout = "2006-01-02"

// Age calculates the age at a given date
func Age(birthDate, atDate time.Time) int {
	age := atDate.Year() - birthDate.Year()
	if atDate.Month() < birthDate.Month() ||
		(atDate.Month() == birthDate.Month() && atDate.Day() < birthDate.Day()) {
		age--
	}
	return age
}

// ParseAge reads either a whole-number age or a YYYY-MM-DD birth date and returns the age at now
func ParseAge(s string, now time.Time) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("age is required")
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 {
			return 0, fmt.Errorf("age cannot be negative")
		}
		return n, nil
	}

	birth, err := time.Parse(DateLayout, s)
	if err != nil {
		return 0, fmt.Errorf("expected an age or a %s birth date: %q", DateLayout, s)
	}
	if birth.After(now) {
		return 0, fmt.Errorf("birth date %s is in the future", s)
	}
	return Age(birth, now), nil
}
