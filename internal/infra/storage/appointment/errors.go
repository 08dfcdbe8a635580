package appointment

import (
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrSlotTaken возвращается, когда слот мастера уже занят активной записью
	// или транзакция не прошла сериализацию
	ErrSlotTaken = errors.New("appointment.repository: slot already taken")

	// ErrDuplicateCode возвращается, когда код подтверждения уже использован в салоне
	ErrDuplicateCode = errors.New("appointment.repository: duplicate confirmation code")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("appointment.repository: failed to scan row")
)

// Имена ограничений из migrations/001_init.sql
const (
	ActiveSlotConstraint = "appointments_active_slot_key"
	CodeConstraint       = "appointments_salon_code_key"
)

const (
	uniqueViolation      = pq.ErrorCode("23505")
	serializationFailure = pq.ErrorCode("40001")
)

// TranslateError сопоставляет ошибку драйвера с ошибкой репозитория.
// Возвращает ErrSlotTaken или ErrDuplicateCode, иначе nil.
func TranslateError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return nil
	}

	switch {
	case pqErr.Code == serializationFailure:
		return ErrSlotTaken
	case pqErr.Code == uniqueViolation && pqErr.Constraint == ActiveSlotConstraint:
		return ErrSlotTaken
	case pqErr.Code == uniqueViolation && pqErr.Constraint == CodeConstraint:
		return ErrDuplicateCode
	default:
		return nil
	}
}
