package appointments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonBookingService/internal/infra/storage/appointment"
	calendarRepo "github.com/m04kA/SMC-SalonBookingService/internal/infra/storage/calendar"
	"github.com/m04kA/SMC-SalonBookingService/internal/service/appointments/models"
)

// Service сервис для чтения записей клиентов
type Service struct {
	appointmentRepo AppointmentRepository
	calendarRepo    CalendarRepository
	codes           CodeValidator
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	calendarRepo CalendarRepository,
	codes CodeValidator,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		calendarRepo:    calendarRepo,
		codes:           codes,
		logger:          logger,
	}
}

// GetByCode получает квитанцию записи по коду подтверждения.
// Код ищется только в пределах салона, регистр не важен.
func (s *Service) GetByCode(ctx context.Context, salonSlug, code string) (*models.AppointmentResponse, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if !s.codes.IsValid(code) {
		s.logger.Warn("GetByCode: invalid code format %q", code)
		return nil, ErrInvalidCode
	}

	salon, err := s.calendarRepo.GetSalonBySlug(ctx, salonSlug)
	if err != nil {
		if errors.Is(err, calendarRepo.ErrSalonNotFound) {
			s.logger.Warn("GetByCode: salon %s not found", salonSlug)
			return nil, ErrSalonNotFound
		}
		s.logger.Error("GetByCode: failed to get salon %s: %v", salonSlug, err)
		return nil, fmt.Errorf("%w: GetByCode - salon: %v", ErrInternal, err)
	}

	appt, err := s.appointmentRepo.GetByCode(ctx, salon.ID, code)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByCode: appointment %s not found in salon %s", code, salon.Slug)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByCode: repository error for code %s: %v", code, err)
		return nil, fmt.Errorf("%w: GetByCode - repository error: %v", ErrInternal, err)
	}

	// Имена мастера и услуги необязательны для квитанции
	professional := s.lookupProfessional(ctx, salon, appt.ProfessionalID)
	var service *domain.Service
	if appt.ServiceID != nil {
		service = s.lookupService(ctx, salon, *appt.ServiceID)
	}

	s.logger.Info("GetByCode: found appointment id=%d", appt.ID)
	return models.FromDomainAppointment(salon, appt, professional, service), nil
}

func (s *Service) lookupProfessional(ctx context.Context, salon *domain.Salon, id int64) *domain.Professional {
	professional, err := s.calendarRepo.GetProfessional(ctx, salon.ID, id)
	if err != nil {
		s.logger.Warn("GetByCode: professional id=%d unavailable: %v", id, err)
		return nil
	}
	return professional
}

func (s *Service) lookupService(ctx context.Context, salon *domain.Salon, id int64) *domain.Service {
	service, err := s.calendarRepo.GetService(ctx, salon.ID, id)
	if err != nil {
		s.logger.Warn("GetByCode: service id=%d unavailable: %v", id, err)
		return nil
	}
	return service
}
