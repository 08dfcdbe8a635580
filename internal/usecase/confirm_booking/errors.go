package confirm_booking

import "errors"

var (
	// ErrSalonNotFound возвращается, когда салон не найден
	ErrSalonNotFound = errors.New("confirm_booking: salon not found")

	// ErrProfessionalNotFound возвращается, когда мастер не найден в салоне
	ErrProfessionalNotFound = errors.New("confirm_booking: professional not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена в салоне
	ErrServiceNotFound = errors.New("confirm_booking: service not found")

	// ErrServiceNotOffered возвращается, когда мастер не оказывает услугу
	ErrServiceNotOffered = errors.New("confirm_booking: professional does not offer this service")

	// ErrSlotInPast возвращается, когда время слота уже прошло
	ErrSlotInPast = errors.New("confirm_booking: slot start has already passed")

	// ErrSlotNotAvailable возвращается, когда слот занят или недоступен в момент записи
	ErrSlotNotAvailable = errors.New("confirm_booking: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("confirm_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_booking: internal error")
)
