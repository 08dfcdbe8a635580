package get_available_slots

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
	ListProfessionalsByService(ctx context.Context, salonID, serviceID int64) ([]*domain.Professional, error)
}

// SnapshotLoader загружает ограничения мастера на дату
type SnapshotLoader interface {
	LoadDay(ctx context.Context, salon *domain.Salon, professional *domain.Professional, date time.Time) (*availability.DaySnapshot, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics гистограмма размера выдачи
type Metrics interface {
	ObserveAvailableSlots(count int)
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
