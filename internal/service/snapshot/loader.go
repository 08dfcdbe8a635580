package snapshot

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	"github.com/m04kA/SMC-SalonBookingService/internal/service/availability"
)

// Loader собирает DaySnapshot мастера из хранилища.
// Внутри транзакции читает из неё (репозитории берут executor из контекста).
type Loader struct {
	calendarRepo    CalendarRepository
	appointmentRepo AppointmentRepository
}

// NewLoader создает загрузчик снимков дня
func NewLoader(calendarRepo CalendarRepository, appointmentRepo AppointmentRepository) *Loader {
	return &Loader{
		calendarRepo:    calendarRepo,
		appointmentRepo: appointmentRepo,
	}
}

// LoadDay читает все ограничения мастера на дату
func (l *Loader) LoadDay(ctx context.Context, salon *domain.Salon, professional *domain.Professional, date time.Time) (*availability.DaySnapshot, error) {
	day := domain.DayOfWeekOf(date)

	workingHours, err := l.calendarRepo.GetWorkingHours(ctx, professional.ID, day)
	if err != nil {
		return nil, fmt.Errorf("%w: working hours: %v", ErrLoad, err)
	}

	breaks, err := l.calendarRepo.GetBreaks(ctx, professional.ID, day)
	if err != nil {
		return nil, fmt.Errorf("%w: breaks: %v", ErrLoad, err)
	}

	holidays, err := l.calendarRepo.GetHolidays(ctx, salon.ID, date)
	if err != nil {
		return nil, fmt.Errorf("%w: holidays: %v", ErrLoad, err)
	}

	timeOff, err := l.calendarRepo.GetSpecialSchedules(ctx, professional.ID, date)
	if err != nil {
		return nil, fmt.Errorf("%w: special schedules: %v", ErrLoad, err)
	}

	appointments, err := l.appointmentRepo.ListActiveByProfessionalAndDate(ctx, professional.ID, date)
	if err != nil {
		return nil, fmt.Errorf("%w: appointments: %v", ErrLoad, err)
	}

	return &availability.DaySnapshot{
		Salon:        salon,
		Professional: professional,
		Date:         date,
		WorkingHours: workingHours,
		Breaks:       breaks,
		Holidays:     holidays,
		TimeOff:      timeOff,
		Appointments: appointments,
	}, nil
}
