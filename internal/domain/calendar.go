package domain

import (
	"time"

	"github.com/m04kA/SMC-SalonBookingService/pkg/types"
)

// Recurring weekly rules

// WorkingHour is the professional's availability window on a weekday
type WorkingHour struct {
	ProfessionalID int64
	Day            DayOfWeek
	Hours          types.TimeRange
}

// Break is a recurring weekly pause, e.g. lunch
type Break struct {
	ProfessionalID int64
	Day            DayOfWeek
	Hours          types.TimeRange
}

// Date-specific exceptions

// Holiday closes the whole salon on a date. Hours == nil means the whole day.
type Holiday struct {
	ID          int64
	SalonID     int64
	Date        time.Time
	Description string
	Hours       *types.TimeRange
}

// IsWholeDay returns true if the holiday has no time window
func (h *Holiday) IsWholeDay() bool {
	return h.Hours == nil
}

// SpecialSchedule is a professional's time-off on a date. Hours == nil means the whole day.
type SpecialSchedule struct {
	ID             int64
	SalonID        int64
	ProfessionalID int64
	Date           time.Time
	Hours          *types.TimeRange
}

// IsWholeDay returns true if the time-off has no time window
func (s *SpecialSchedule) IsWholeDay() bool {
	return s.Hours == nil
}
