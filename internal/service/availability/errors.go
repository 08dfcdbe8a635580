package availability

import "errors"

// Причины отказа проверки слота. Порядок соответствует порядку проверок в CheckSlot.
var (
	// ErrInvalidStartTime возвращается при некорректном времени начала слота
	ErrInvalidStartTime = errors.New("availability: invalid slot start time")

	// ErrCrossesMidnight возвращается, когда слот заканчивается на следующие сутки
	ErrCrossesMidnight = errors.New("availability: slot crosses midnight")

	// ErrServiceNotOffered возвращается, когда мастер не оказывает услугу
	ErrServiceNotOffered = errors.New("availability: professional does not offer the service")

	// ErrSalonClosed возвращается, когда салон не работает в этот день недели
	ErrSalonClosed = errors.New("availability: salon is closed on this weekday")

	// ErrOutsideSalonHours возвращается, когда слот выходит за часы работы салона
	ErrOutsideSalonHours = errors.New("availability: slot is outside salon hours")

	// ErrHoliday возвращается, когда слот попадает на праздник салона
	ErrHoliday = errors.New("availability: slot falls on a holiday")

	// ErrNoWorkingHours возвращается, когда у мастера нет рабочих часов в этот день
	ErrNoWorkingHours = errors.New("availability: professional does not work on this weekday")

	// ErrOutsideWorkingHours возвращается, когда слот выходит за рабочие часы мастера
	ErrOutsideWorkingHours = errors.New("availability: slot is outside working hours")

	// ErrBreak возвращается, когда слот пересекается с перерывом мастера
	ErrBreak = errors.New("availability: slot overlaps a break")

	// ErrTimeOff возвращается, когда слот попадает на отгул мастера
	ErrTimeOff = errors.New("availability: slot overlaps professional time-off")

	// ErrAppointmentOverlap возвращается, когда слот пересекается с существующей записью
	ErrAppointmentOverlap = errors.New("availability: slot overlaps an existing appointment")
)

// Ошибки конфигурации: данные должны отсекаться при вводе, но движок их перепроверяет
var (
	// ErrInvalidSlotStep возвращается при неположительном шаге слотов салона
	ErrInvalidSlotStep = errors.New("availability: slot step must be positive")

	// ErrInvalidWorkingHours возвращается, когда конец рабочего окна не позже начала
	ErrInvalidWorkingHours = errors.New("availability: working hours end must be after start")
)

// ReasonOf возвращает короткую метку причины отказа (для логов и метрик)
func ReasonOf(err error) string {
	switch {
	case err == nil:
		return "free"
	case errors.Is(err, ErrInvalidStartTime):
		return "invalid_start"
	case errors.Is(err, ErrCrossesMidnight):
		return "crosses_midnight"
	case errors.Is(err, ErrServiceNotOffered):
		return "service_not_offered"
	case errors.Is(err, ErrSalonClosed):
		return "salon_closed"
	case errors.Is(err, ErrOutsideSalonHours):
		return "outside_salon_hours"
	case errors.Is(err, ErrHoliday):
		return "holiday"
	case errors.Is(err, ErrNoWorkingHours):
		return "no_working_hours"
	case errors.Is(err, ErrOutsideWorkingHours):
		return "outside_working_hours"
	case errors.Is(err, ErrBreak):
		return "break"
	case errors.Is(err, ErrTimeOff):
		return "time_off"
	case errors.Is(err, ErrAppointmentOverlap):
		return "appointment"
	case errors.Is(err, ErrInvalidSlotStep), errors.Is(err, ErrInvalidWorkingHours):
		return "configuration"
	default:
		return "unknown"
	}
}
