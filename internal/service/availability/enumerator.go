package availability

import (
	"time"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	"github.com/m04kA/SMC-SalonBookingService/pkg/types"
)

// ListAvailableSlots walks the professional's working window of the snapshot date
// with the salon slot step and returns every start time accepted by CheckSlot, in
// chronological order.
//
// now is the evaluation instant. It is converted to the salon timezone: past dates
// give no slots, and on the current date slots that already started are dropped.
//
// The only errors are configuration errors (ErrInvalidSlotStep, ErrInvalidWorkingHours).
// A professional without working hours on that weekday simply has no slots.
func ListAvailableSlots(snap *DaySnapshot, service *domain.Service, now time.Time) ([]types.TimeString, error) {
	slots := make([]types.TimeString, 0)

	step := snap.Salon.SlotStepMinutes
	if step <= 0 {
		return slots, ErrInvalidSlotStep
	}

	workingHour, ok := snap.workingHourFor(snap.Day())
	if !ok {
		return slots, nil
	}
	if !workingHour.Hours.IsValid() {
		return slots, ErrInvalidWorkingHours
	}

	localNow := now.In(snap.Salon.Loc())
	if isDateInPast(snap.Date, localNow) {
		return slots, nil
	}
	today := isSameDay(snap.Date, localNow)

	duration := service.DurationOr(step)
	windowEnd := workingHour.Hours.End.Minutes()

	// Шаг > 0 и windowEnd < 24*60, поэтому цикл конечен
	for minute := workingHour.Hours.Start.Minutes(); minute+duration <= windowEnd; minute += step {
		candidate, err := types.NewTimeStringFromMinutes(minute)
		if err != nil {
			break
		}

		if today && SlotStarted(snap.Salon, snap.Date, candidate, now) {
			continue
		}

		if IsSlotFree(snap, service, candidate) {
			slots = append(slots, candidate)
		}
	}

	return slots, nil
}

// SlotStarted reports whether a slot on date at start is already in the past
// relative to now, in the salon timezone
func SlotStarted(salon *domain.Salon, date time.Time, start types.TimeString, now time.Time) bool {
	loc := salon.Loc()
	localNow := now.In(loc)
	localDate := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	return start.OnDate(localDate).Before(localNow)
}
