package confirm_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	"github.com/m04kA/SMC-SalonBookingService/internal/service/availability"
)

// CalendarRepository интерфейс репозитория настроек салона и каталога
type CalendarRepository interface {
	GetSalonBySlug(ctx context.Context, slug string) (*domain.Salon, error)
	GetService(ctx context.Context, salonID, serviceID int64) (*domain.Service, error)
	GetProfessional(ctx context.Context, salonID, professionalID int64) (*domain.Professional, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
}

// SnapshotLoader загружает ограничения мастера на дату
type SnapshotLoader interface {
	LoadDay(ctx context.Context, salon *domain.Salon, professional *domain.Professional, date time.Time) (*availability.DaySnapshot, error)
}

// CodeGenerator генератор кодов подтверждения
type CodeGenerator interface {
	Generate() (string, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics счётчики исходов бронирования
type Metrics interface {
	ObserveBooking(outcome string)
	ObserveSlotRejection(reason string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
