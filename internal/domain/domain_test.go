package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SalonBookingService/pkg/ptr"
	"github.com/m04kA/SMC-SalonBookingService/pkg/types"
)

func TestDayOfWeekOf(t *testing.T) {
	// 2025-03-10 is a Monday
	monday := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, Monday, DayOfWeekOf(monday))
	assert.Equal(t, Saturday, DayOfWeekOf(monday.AddDate(0, 0, 5)))
	assert.Equal(t, Sunday, DayOfWeekOf(monday.AddDate(0, 0, 6)))
	assert.Equal(t, "sunday", Sunday.String())
	assert.False(t, DayOfWeek(7).IsValid())
}

func TestSalon_HoursFor(t *testing.T) {
	salon := &Salon{
		DefaultHours: types.NewTimeRange("09:00", "18:00"),
		CustomHours: map[DayOfWeek]types.TimeRange{
			Saturday: types.NewTimeRange("10:00", "14:00"),
		},
		ClosedDays: []DayOfWeek{Sunday},
	}

	assert.Equal(t, types.NewTimeRange("09:00", "18:00"), salon.HoursFor(Monday))
	assert.Equal(t, types.NewTimeRange("10:00", "14:00"), salon.HoursFor(Saturday))
	assert.True(t, salon.IsClosedOn(Sunday))
	assert.False(t, salon.IsClosedOn(Saturday))
	assert.Equal(t, time.UTC, salon.Loc())
}

func TestProfessional_OffersService(t *testing.T) {
	p := &Professional{SalonID: 1, ServiceIDs: []int64{3, 5}}

	assert.True(t, p.OffersService(5))
	assert.False(t, p.OffersService(4))
	assert.True(t, p.BelongsTo(1))
	assert.False(t, p.BelongsTo(2))
}

func TestAppointment_Interval(t *testing.T) {
	appt := &Appointment{StartTime: "14:00", ServiceDurationMinutes: ptr.Ptr(45)}
	interval, ok := appt.Interval(30)
	assert.True(t, ok)
	assert.Equal(t, types.NewTimeRange("14:00", "14:45"), interval)

	removedService := &Appointment{StartTime: "14:00"}
	interval, _ = removedService.Interval(30)
	assert.Equal(t, types.NewTimeRange("14:00", "14:30"), interval, "falls back to the salon step")

	late := &Appointment{StartTime: "23:45", ServiceDurationMinutes: ptr.Ptr(60)}
	interval, ok = late.Interval(30)
	assert.False(t, ok)
	assert.Equal(t, EndOfDay, interval.End)
}

func TestAppointment_IsActive(t *testing.T) {
	assert.True(t, (&Appointment{Status: StatusConfirmed}).IsActive())
	assert.False(t, (&Appointment{Status: StatusCancelled}).IsActive())
}

func TestService_DurationOr(t *testing.T) {
	var missing *Service
	assert.Equal(t, 30, missing.DurationOr(30))
	assert.Equal(t, 30, (&Service{DurationMinutes: 0}).DurationOr(30))
	assert.Equal(t, 60, (&Service{DurationMinutes: 60}).DurationOr(30))
}
