package get_salon_schedule

import (
	"context"

	"github.com/m04kA/SMC-SalonBookingService/internal/service/salons/models"
)

type SalonService interface {
	GetSchedule(ctx context.Context, slug string) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
