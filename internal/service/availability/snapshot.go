package availability

import (
	"time"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
)

// DaySnapshot is a point-in-time view of every constraint that affects one
// professional on one date. It is never mutated after loading, so any number of
// goroutines may evaluate slots against it.
type DaySnapshot struct {
	Salon        *domain.Salon
	Professional *domain.Professional
	Date         time.Time

	// Recurring weekly rules of the professional (any weekday)
	WorkingHours []domain.WorkingHour
	Breaks       []domain.Break

	// Date exceptions and bookings; entries for other dates are ignored
	Holidays     []domain.Holiday
	TimeOff      []domain.SpecialSchedule
	Appointments []*domain.Appointment
}

// Day returns the weekday of the snapshot date
func (s *DaySnapshot) Day() domain.DayOfWeek {
	return domain.DayOfWeekOf(s.Date)
}

// workingHourFor returns the first working-hour row for the weekday
func (s *DaySnapshot) workingHourFor(day domain.DayOfWeek) (domain.WorkingHour, bool) {
	for _, wh := range s.WorkingHours {
		if wh.ProfessionalID == s.Professional.ID && wh.Day == day {
			return wh, true
		}
	}
	return domain.WorkingHour{}, false
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата раньше дня now (сравниваются только даты)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return dateOnly.Before(nowOnly)
}
