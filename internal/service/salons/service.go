package salons

import (
	"context"
	"errors"
	"fmt"

	calendarRepo "github.com/m04kA/SMC-SalonBookingService/internal/infra/storage/calendar"
	"github.com/m04kA/SMC-SalonBookingService/internal/service/salons/models"
)

// Service сервис для чтения настроек салона
type Service struct {
	calendarRepo CalendarRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса салонов
func NewService(calendarRepo CalendarRepository, logger Logger) *Service {
	return &Service{
		calendarRepo: calendarRepo,
		logger:       logger,
	}
}

// GetSchedule возвращает выходные, часы работы по дням недели и шаг слотов салона
func (s *Service) GetSchedule(ctx context.Context, slug string) (*models.ScheduleResponse, error) {
	salon, err := s.calendarRepo.GetSalonBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, calendarRepo.ErrSalonNotFound) {
			s.logger.Warn("GetSchedule: salon %s not found", slug)
			return nil, ErrSalonNotFound
		}
		s.logger.Error("GetSchedule: failed to get salon %s: %v", slug, err)
		return nil, fmt.Errorf("%w: GetSchedule - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSalon(salon), nil
}
