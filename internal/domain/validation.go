package domain

import (
	"strings"
	"time"
)

// Field validation helpers shared by every aggregate. Each check is pure and
// reports the offending field label together with the violated constraint.

// NotBlank rejects empty strings and strings that trim to nothing.
func NotBlank(value, label string) error {
	if strings.TrimSpace(value) == "" {
		return invalidf("%s must not be blank", label)
	}
	return nil
}

// Length rejects values whose trimmed length falls outside [min, max].
func Length(value, label string, min, max int) error {
	if err := NotBlank(value, label); err != nil {
		return err
	}
	trimmed := strings.TrimSpace(value)
	if len(trimmed) < min {
		return invalidf("%s must be at least %d characters", label, min)
	}
	if len(trimmed) > max {
		return invalidf("%s must be at most %d characters", label, max)
	}
	return nil
}

// Numeric rejects values that are not exactly length ASCII digits.
func Numeric(value, label string, length int) error {
	if err := NotBlank(value, label); err != nil {
		return err
	}
	if len(value) != length {
		return invalidf("%s must be exactly %d digits", label, length)
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return invalidf("%s must contain only digits", label)
		}
	}
	return nil
}

// DateNotPast rejects the zero time and any instant before now.
func DateNotPast(t time.Time, label string) error {
	if t.IsZero() {
		return invalidf("%s must not be zero", label)
	}
	if t.Before(time.Now()) {
		return invalidf("%s must not be in the past", label)
	}
	return nil
}
