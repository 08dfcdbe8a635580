package domain

import (
	"time"

	"github.com/m04kA/SMC-SalonBookingService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment is a committed booking
type Appointment struct {
	ID               int64
	SalonID          int64
	ProfessionalID   int64
	ServiceID        *int64 // NULL when the service was removed after booking
	ClientName       string
	ClientContact    string
	ConfirmationCode string
	Date             time.Time
	StartTime        types.TimeString
	Status           AppointmentStatus

	// ServiceDurationMinutes is joined from services; nil when the service is gone
	ServiceDurationMinutes *int

	CreatedAt time.Time
}

// IsActive returns true if the appointment still occupies its slot
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// DurationMinutes returns the appointment length, falling back to the salon slot step
func (a *Appointment) DurationMinutes(fallback int) int {
	if a.ServiceDurationMinutes == nil || *a.ServiceDurationMinutes <= 0 {
		return fallback
	}
	return *a.ServiceDurationMinutes
}

// Interval returns the occupied [start, end) range. ok is false when the end
// would fall after midnight, in which case the appointment runs to the end of the day.
func (a *Appointment) Interval(fallbackDuration int) (types.TimeRange, bool) {
	end, err := a.StartTime.AddMinutes(a.DurationMinutes(fallbackDuration))
	if err != nil {
		return types.NewTimeRange(a.StartTime, EndOfDay), false
	}
	return types.NewTimeRange(a.StartTime, end), true
}
