package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	calendarRepo "github.com/m04kA/SMC-SalonBookingService/internal/infra/storage/calendar"
	"github.com/m04kA/SMC-SalonBookingService/internal/service/availability"
	"github.com/m04kA/SMC-SalonBookingService/pkg/types"
)

// UseCase use case для получения доступных слотов
type UseCase struct {
	calendarRepo   CalendarRepository
	snapshotLoader SnapshotLoader
	txManager      TransactionManager
	metrics        Metrics
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	calendarRepo CalendarRepository,
	snapshotLoader SnapshotLoader,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		calendarRepo:   calendarRepo,
		snapshotLoader: snapshotLoader,
		txManager:      txManager,
		metrics:        metrics,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case получения доступных слотов.
// Без professionalId перебираются все мастера салона с этой услугой,
// в ответ попадают только те, у кого есть хотя бы один слот.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("GetAvailableSlots: salon=%s, service=%d, date=%s, professional=%s",
		req.SalonSlug, req.ServiceID, req.Date.Format(domain.DateFormat), formatOptionalID(req.ProfessionalID))

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем салон
	salon, err := uc.calendarRepo.GetSalonBySlug(ctx, req.SalonSlug)
	if err != nil {
		if errors.Is(err, calendarRepo.ErrSalonNotFound) {
			uc.logger.Warn("GetAvailableSlots: salon %s not found", req.SalonSlug)
			return nil, ErrSalonNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get salon %s: %v", req.SalonSlug, err)
		return nil, fmt.Errorf("%w: failed to get salon: %v", ErrInternal, err)
	}

	// 4. Получаем услугу
	service, err := uc.calendarRepo.GetService(ctx, salon.ID, req.ServiceID)
	if err != nil {
		if errors.Is(err, calendarRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found in salon %s", req.ServiceID, salon.Slug)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 5. Определяем мастеров
	professionals, err := uc.professionals(ctx, req, salon, service)
	if err != nil {
		return nil, err
	}

	// 6. Слоты по каждому мастеру в одном снимке (REPEATABLE READ)
	result := make([]ProfessionalSlots, 0, len(professionals))
	total := 0

	err = uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		for _, professional := range professionals {
			snap, err := uc.snapshotLoader.LoadDay(txCtx, salon, professional, req.Date)
			if err != nil {
				uc.logger.Error("GetAvailableSlots: failed to load day for professional id=%d: %v", professional.ID, err)
				return fmt.Errorf("%w: failed to load day snapshot: %v", ErrInternal, err)
			}

			slots, err := availability.ListAvailableSlots(snap, service, now)
			if err != nil {
				if errors.Is(err, availability.ErrInvalidWorkingHours) {
					uc.logger.Warn("GetAvailableSlots: professional id=%d skipped: %v", professional.ID, err)
					slots = nil
				} else {
					uc.logger.Error("GetAvailableSlots: salon %s configuration error: %v", salon.Slug, err)
					return fmt.Errorf("%w: %v", ErrInternal, err)
				}
			}

			if req.ProfessionalID == nil && len(slots) == 0 {
				continue
			}
			if slots == nil {
				slots = make([]types.TimeString, 0)
			}

			result = append(result, ProfessionalSlots{
				ProfessionalID:      professional.ID,
				Name:                professional.Name,
				AvailableStartTimes: slots,
			})
			total += len(slots)
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.logger.Error("GetAvailableSlots: read transaction failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.metrics.ObserveAvailableSlots(total)
	uc.logger.Info("GetAvailableSlots: %d slots for %d professionals", total, len(result))

	return &Response{
		Date:          req.Date,
		SalonSlug:     salon.Slug,
		ServiceID:     service.ID,
		Professionals: result,
	}, nil
}

// professionals возвращает одного указанного мастера или всех мастеров услуги
func (uc *UseCase) professionals(ctx context.Context, req *Request, salon *domain.Salon, service *domain.Service) ([]*domain.Professional, error) {
	if req.ProfessionalID == nil {
		professionals, err := uc.calendarRepo.ListProfessionalsByService(ctx, salon.ID, service.ID)
		if err != nil {
			uc.logger.Error("GetAvailableSlots: failed to list professionals: %v", err)
			return nil, fmt.Errorf("%w: failed to list professionals: %v", ErrInternal, err)
		}
		return professionals, nil
	}

	professional, err := uc.calendarRepo.GetProfessional(ctx, salon.ID, *req.ProfessionalID)
	if err != nil {
		if errors.Is(err, calendarRepo.ErrProfessionalNotFound) {
			uc.logger.Warn("GetAvailableSlots: professional id=%d not found in salon %s", *req.ProfessionalID, salon.Slug)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get professional id=%d: %v", *req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}

	if !professional.OffersService(service.ID) {
		uc.logger.Warn("GetAvailableSlots: professional id=%d does not offer service id=%d", professional.ID, service.ID)
		return nil, ErrServiceNotOffered
	}

	return []*domain.Professional{professional}, nil
}

func formatOptionalID(id *int64) string {
	if id == nil {
		return "any"
	}
	return fmt.Sprintf("%d", *id)
}
