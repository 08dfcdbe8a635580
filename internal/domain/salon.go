package domain

import (
	"time"

	"github.com/m04kA/SMC-SalonBookingService/pkg/types"
)

// DayOfWeek is a weekday number as stored in the database: 0 = Monday ... 6 = Sunday
type DayOfWeek int

const (
	Monday DayOfWeek = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var dayNames = [...]string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// DayOfWeekOf converts the weekday of date into the Monday-based numbering
func DayOfWeekOf(date time.Time) DayOfWeek {
	return DayOfWeek((int(date.Weekday()) + 6) % 7)
}

// IsValid reports whether d is within 0..6
func (d DayOfWeek) IsValid() bool {
	return d >= Monday && d <= Sunday
}

func (d DayOfWeek) String() string {
	if !d.IsValid() {
		return "unknown"
	}
	return dayNames[d]
}

// AllDays lists the week from Monday to Sunday
func AllDays() []DayOfWeek {
	return []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

// Salon is a tenant together with its booking configuration.
// ClosedDays and CustomHours are decoded once by the calendar repository.
type Salon struct {
	ID              int64
	Slug            string
	Name            string
	Location        *time.Location
	ClosedDays      []DayOfWeek
	DefaultHours    types.TimeRange
	CustomHours     map[DayOfWeek]types.TimeRange // per-weekday overrides of DefaultHours
	SlotStepMinutes int
}

// IsClosedOn returns true if the salon does not work on the given weekday
func (s *Salon) IsClosedOn(day DayOfWeek) bool {
	for _, closed := range s.ClosedDays {
		if closed == day {
			return true
		}
	}
	return false
}

// HoursFor returns the effective opening hours for the weekday
func (s *Salon) HoursFor(day DayOfWeek) types.TimeRange {
	if hours, ok := s.CustomHours[day]; ok {
		return hours
	}
	return s.DefaultHours
}

// Loc returns the salon timezone, UTC when unknown
func (s *Salon) Loc() *time.Location {
	if s.Location == nil {
		return time.UTC
	}
	return s.Location
}
