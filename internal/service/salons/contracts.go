package salons

import (
	"context"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
)

// CalendarRepository интерфейс репозитория салонов
type CalendarRepository interface {
	GetSalonBySlug(ctx context.Context, slug string) (*domain.Salon, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
