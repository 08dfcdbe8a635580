package list_professionals

import (
	"context"
	"errors"
	"fmt"
	"strings"

	calendarRepo "github.com/m04kA/SMC-SalonBookingService/internal/infra/storage/calendar"
)

// UseCase use case для получения мастеров, оказывающих услугу
type UseCase struct {
	calendarRepo CalendarRepository
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(calendarRepo CalendarRepository, logger Logger) *UseCase {
	return &UseCase{
		calendarRepo: calendarRepo,
		logger:       logger,
	}
}

// Execute возвращает мастеров салона с услугой, по имени
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if strings.TrimSpace(req.SalonSlug) == "" || req.ServiceID <= 0 {
		uc.logger.Warn("ListProfessionals: invalid request salon=%q service=%d", req.SalonSlug, req.ServiceID)
		return nil, fmt.Errorf("%w: salon slug and positive serviceId are required", ErrInvalidInput)
	}

	salon, err := uc.calendarRepo.GetSalonBySlug(ctx, req.SalonSlug)
	if err != nil {
		if errors.Is(err, calendarRepo.ErrSalonNotFound) {
			uc.logger.Warn("ListProfessionals: salon %s not found", req.SalonSlug)
			return nil, ErrSalonNotFound
		}
		uc.logger.Error("ListProfessionals: failed to get salon %s: %v", req.SalonSlug, err)
		return nil, fmt.Errorf("%w: failed to get salon: %v", ErrInternal, err)
	}

	if _, err := uc.calendarRepo.GetService(ctx, salon.ID, req.ServiceID); err != nil {
		if errors.Is(err, calendarRepo.ErrServiceNotFound) {
			uc.logger.Warn("ListProfessionals: service id=%d not found in salon %s", req.ServiceID, salon.Slug)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("ListProfessionals: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	professionals, err := uc.calendarRepo.ListProfessionalsByService(ctx, salon.ID, req.ServiceID)
	if err != nil {
		uc.logger.Error("ListProfessionals: failed to list professionals: %v", err)
		return nil, fmt.Errorf("%w: failed to list professionals: %v", ErrInternal, err)
	}

	result := make([]Professional, 0, len(professionals))
	for _, p := range professionals {
		result = append(result, Professional{
			ID:        p.ID,
			Name:      p.Name,
			Specialty: p.Specialty,
		})
	}

	return &Response{Professionals: result}, nil
}
