// Package valueobject defines immutable domain value types.
package valueobject

import "time"

// PeriodInterval is a half-open calendar interval [Start, End) covering a
// single month. It is derived per request and never persisted.
type PeriodInterval struct {
	Start time.Time // first day of the month, inclusive
	End   time.Time // first day of the following month, exclusive
}

// Contains reports whether the given date falls inside the interval.
func (p PeriodInterval) Contains(date time.Time) bool {
	return !date.Before(p.Start) && date.Before(p.End)
}

// Days returns the number of calendar days the interval spans.
func (p PeriodInterval) Days() int {
	return int(p.End.Sub(p.Start).Hours() / 24)
}
