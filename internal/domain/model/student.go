// Package model contains domain models passed between layers.
package model

import (
	"fmt"
	"math"
	"strings"
)

// Subject identifies one of the fixed school subjects.
type Subject string

// The fixed subject set, in natural order.
const (
	Math      Subject = "math"
	Science   Subject = "science"
	English   Subject = "english"
	History   Subject = "history"
	Geography Subject = "geography"
	Computer  Subject = "computer"
)

// Score bounds and the mark assumed for an absent subject.
const (
	MinMark     = 0.0
	MaxMark     = 100.0
	DefaultMark = 0.0
)

// Subjects returns the fixed subject set in natural order.
func Subjects() []Subject {
	return []Subject{Math, Science, English, History, Geography, Computer}
}

// Display returns the title-cased name used in reports, e.g. "Math".
func (s Subject) Display() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

// Valid reports whether s belongs to the fixed subject set.
func (s Subject) Valid() bool {
	for _, known := range Subjects() {
		if s == known {
			return true
		}
	}
	return false
}

// MarksRecord maps each subject to a score in [MinMark, MaxMark].
type MarksRecord map[Subject]float64

// Mark returns the score for s, or DefaultMark when absent.
func (m MarksRecord) Mark(s Subject) float64 {
	if v, ok := m[s]; ok {
		return v
	}
	return DefaultMark
}

// Validate checks every present mark is within range. With strict set, a
// subject missing from the record is also rejected.
func (m MarksRecord) Validate(strict bool) error {
	for _, s := range Subjects() {
		v, ok := m[s]
		if !ok {
			if strict {
				return fmt.Errorf("%w: missing marks for %s", ErrInvalidInput, s)
			}
			continue
		}
		if math.IsNaN(v) || v < MinMark || v > MaxMark {
			return fmt.Errorf("%w: invalid marks for %s. Must be between 0-100", ErrInvalidInput, s)
		}
	}
	for s := range m {
		if !s.Valid() {
			return fmt.Errorf("%w: unknown subject %q", ErrInvalidInput, s)
		}
	}
	return nil
}

// Round rounds x to the given number of decimal places, halves away from zero.
func Round(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(x*p) / p
}
