package availability

import (
	"fmt"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	"github.com/m04kA/SMC-SalonBookingService/pkg/types"
)

// IsSlotFree reports whether a slot starting at start can be booked for service
func IsSlotFree(snap *DaySnapshot, service *domain.Service, start types.TimeString) bool {
	return CheckSlot(snap, service, start) == nil
}

// CheckSlot evaluates one candidate slot against the snapshot and returns nil when
// it is bookable, or the first failed constraint. Checks run from the cheapest and
// most decisive to the most specific:
//
//  1. slot end stays within the day
//  2. professional offers the service
//  3. salon closed weekday
//  4. salon opening hours (per-weekday override or default)
//  5. salon holidays
//  6. professional working hours
//  7. professional breaks
//  8. professional time-off
//  9. existing appointments
//
// A nil service means "default duration, no service check".
func CheckSlot(snap *DaySnapshot, service *domain.Service, start types.TimeString) error {
	salon := snap.Salon
	prof := snap.Professional

	if err := start.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidStartTime, err)
	}

	// Шаг салона задает и длительность записей без услуги
	if salon.SlotStepMinutes <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSlotStep, salon.SlotStepMinutes)
	}

	// 1. Длительность услуги, по умолчанию - шаг слотов салона
	duration := service.DurationOr(salon.SlotStepMinutes)
	if duration <= 0 {
		return fmt.Errorf("%w: service duration %d", ErrInvalidSlotStep, duration)
	}
	end, err := start.AddMinutes(duration)
	if err != nil {
		return fmt.Errorf("%w: %s + %d min", ErrCrossesMidnight, start, duration)
	}
	slot := types.NewTimeRange(start, end)

	// 2. Мастер должен оказывать услугу
	if service != nil && !prof.OffersService(service.ID) {
		return ErrServiceNotOffered
	}

	// 3. Выходной день салона
	day := snap.Day()
	if salon.IsClosedOn(day) {
		return fmt.Errorf("%w: %s", ErrSalonClosed, day)
	}

	// 4. Часы работы салона
	if hours := salon.HoursFor(day); !hours.Contains(slot) {
		return fmt.Errorf("%w: %s not within %s", ErrOutsideSalonHours, slot, hours)
	}

	// 5. Праздники: без времени - закрыт весь день
	for i := range snap.Holidays {
		holiday := &snap.Holidays[i]
		if !isSameDay(holiday.Date, snap.Date) {
			continue
		}
		if holiday.IsWholeDay() || holiday.Hours.Overlaps(slot) {
			return fmt.Errorf("%w: %s", ErrHoliday, holiday.Description)
		}
	}

	// 6. Рабочие часы мастера
	workingHour, ok := snap.workingHourFor(day)
	if !ok {
		return ErrNoWorkingHours
	}
	if !workingHour.Hours.IsValid() {
		return fmt.Errorf("%w: %s", ErrInvalidWorkingHours, workingHour.Hours)
	}
	if !workingHour.Hours.Contains(slot) {
		return fmt.Errorf("%w: %s not within %s", ErrOutsideWorkingHours, slot, workingHour.Hours)
	}

	// 7. Перерывы мастера
	for _, br := range snap.Breaks {
		if br.ProfessionalID == prof.ID && br.Day == day && br.Hours.Overlaps(slot) {
			return fmt.Errorf("%w: %s", ErrBreak, br.Hours)
		}
	}

	// 8. Отгулы мастера: без времени - весь день
	for i := range snap.TimeOff {
		off := &snap.TimeOff[i]
		if off.ProfessionalID != prof.ID || !isSameDay(off.Date, snap.Date) {
			continue
		}
		if off.IsWholeDay() || off.Hours.Overlaps(slot) {
			return ErrTimeOff
		}
	}

	// 9. Существующие записи мастера (отменённые слот не занимают)
	for _, appt := range snap.Appointments {
		if !appt.IsActive() || appt.ProfessionalID != prof.ID || !isSameDay(appt.Date, snap.Date) {
			continue
		}
		occupied, _ := appt.Interval(salon.SlotStepMinutes)
		if occupied.Overlaps(slot) {
			return fmt.Errorf("%w: %s", ErrAppointmentOverlap, occupied)
		}
	}

	return nil
}
