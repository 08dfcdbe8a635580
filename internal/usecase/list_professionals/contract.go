package list_professionals

import (
	"context"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
)

// CalendarRepository интерфейс репозитория настроек салона и каталога
type CalendarRepository interface {
	GetSalonBySlug(ctx context.Context, slug string) (*domain.Salon, error)
	GetService(ctx context.Context, salonID, serviceID int64) (*domain.Service, error)
	ListProfessionalsByService(ctx context.Context, salonID, serviceID int64) ([]*domain.Professional, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
