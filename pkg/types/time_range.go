package types

import "fmt"

// TimeRange is a half-open interval [Start, End) within one day
type TimeRange struct {
	Start TimeString
	End   TimeString
}

// NewTimeRange creates a range; validity is checked separately with IsValid
func NewTimeRange(start, end TimeString) TimeRange {
	return TimeRange{Start: start, End: end}
}

// IsValid reports whether both bounds are well-formed and End is strictly after Start
func (r TimeRange) IsValid() bool {
	start, end := r.Start.Minutes(), r.End.Minutes()
	return start >= 0 && end >= 0 && start < end
}

// Overlaps is the only interval intersection test in the codebase:
// [a1,a2) and [b1,b2) overlap iff a1 < b2 && a2 > b1.
// Ranges that merely touch (a2 == b1) do not overlap.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.Start.Minutes() < other.End.Minutes() && r.End.Minutes() > other.Start.Minutes()
}

// Contains reports whether other lies fully inside r
func (r TimeRange) Contains(other TimeRange) bool {
	return r.Start.Minutes() <= other.Start.Minutes() && other.End.Minutes() <= r.End.Minutes()
}

// DurationMinutes returns End - Start in minutes
func (r TimeRange) DurationMinutes() int {
	return r.End.Minutes() - r.Start.Minutes()
}

func (r TimeRange) String() string {
	return fmt.Sprintf("%s-%s", r.Start, r.End)
}
