package snapshot

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
)

// CalendarRepository источник правил расписания
type CalendarRepository interface {
	GetWorkingHours(ctx context.Context, professionalID int64, day domain.DayOfWeek) ([]domain.WorkingHour, error)
	GetBreaks(ctx context.Context, professionalID int64, day domain.DayOfWeek) ([]domain.Break, error)
	GetHolidays(ctx context.Context, salonID int64, date time.Time) ([]domain.Holiday, error)
	GetSpecialSchedules(ctx context.Context, professionalID int64, date time.Time) ([]domain.SpecialSchedule, error)
}

// AppointmentRepository источник существующих записей
type AppointmentRepository interface {
	ListActiveByProfessionalAndDate(ctx context.Context, professionalID int64, date time.Time) ([]*domain.Appointment, error)
}
