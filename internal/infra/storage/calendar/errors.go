package calendar

import "errors"

var (
	// ErrSalonNotFound возвращается, когда салон с таким slug не найден
	ErrSalonNotFound = errors.New("calendar.repository: salon not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена в салоне
	ErrServiceNotFound = errors.New("calendar.repository: service not found")

	// ErrProfessionalNotFound возвращается, когда мастер не найден в салоне
	ErrProfessionalNotFound = errors.New("calendar.repository: professional not found")

	// ErrInvalidSalonConfig возвращается, когда настройки салона не удаётся разобрать
	ErrInvalidSalonConfig = errors.New("calendar.repository: invalid salon configuration")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("calendar.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("calendar.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("calendar.repository: failed to scan row")
)
