package appointments

import (
	"context"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByCode(ctx context.Context, salonID int64, code string) (*domain.Appointment, error)
}

// CalendarRepository интерфейс репозитория салонов и каталога
type CalendarRepository interface {
	GetSalonBySlug(ctx context.Context, slug string) (*domain.Salon, error)
	GetProfessional(ctx context.Context, salonID, professionalID int64) (*domain.Professional, error)
	GetService(ctx context.Context, salonID, serviceID int64) (*domain.Service, error)
}

// CodeValidator проверяет формат кода подтверждения
type CodeValidator interface {
	IsValid(code string) bool
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
