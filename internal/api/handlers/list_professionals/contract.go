package list_professionals

import (
	"context"

	listProfessionals "github.com/m04kA/SMC-SalonBookingService/internal/usecase/list_professionals"
)

type ListProfessionalsUseCase interface {
	Execute(ctx context.Context, req *listProfessionals.Request) (*listProfessionals.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
