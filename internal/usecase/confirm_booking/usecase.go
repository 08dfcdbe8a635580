package confirm_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonBookingService/internal/infra/storage/appointment"
	calendarRepo "github.com/m04kA/SMC-SalonBookingService/internal/infra/storage/calendar"
	"github.com/m04kA/SMC-SalonBookingService/internal/service/availability"
	"github.com/m04kA/SMC-SalonBookingService/pkg/metrics"
	"github.com/m04kA/SMC-SalonBookingService/pkg/ptr"
)

// maxCodeAttempts число попыток записи при совпадении кода подтверждения
const maxCodeAttempts = 3

// UseCase use case для подтверждения записи на слот
type UseCase struct {
	calendarRepo    CalendarRepository
	appointmentRepo AppointmentRepository
	snapshotLoader  SnapshotLoader
	codeGenerator   CodeGenerator
	txManager       TransactionManager
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	calendarRepo CalendarRepository,
	appointmentRepo AppointmentRepository,
	snapshotLoader SnapshotLoader,
	codeGenerator CodeGenerator,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		calendarRepo:    calendarRepo,
		appointmentRepo: appointmentRepo,
		snapshotLoader:  snapshotLoader,
		codeGenerator:   codeGenerator,
		txManager:       txManager,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case подтверждения записи.
// Доступность слота перепроверяется в сериализуемой транзакции непосредственно перед вставкой;
// гонку двух одновременных записей закрывает уникальный индекс активного слота.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ConfirmBooking: validation failed: %v", err)
		uc.metrics.ObserveBooking(metrics.OutcomeRejected)
		return nil, err
	}

	uc.logger.Info("ConfirmBooking: salon=%s, professional=%d, service=%d, date=%s, time=%s",
		req.SalonSlug, req.ProfessionalID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 2. Салон, мастер и услуга в рамках салона (предварительная проверка до транзакции)
	salon, professional, service, err := uc.resolve(ctx, req)
	if err != nil {
		uc.metrics.ObserveBooking(metrics.OutcomeRejected)
		return nil, err
	}

	if !professional.OffersService(service.ID) {
		uc.logger.Warn("ConfirmBooking: professional id=%d does not offer service id=%d", professional.ID, service.ID)
		uc.metrics.ObserveBooking(metrics.OutcomeRejected)
		return nil, ErrServiceNotOffered
	}

	// 3. Нельзя записаться на уже начавшийся слот (время салона)
	if availability.SlotStarted(salon, req.Date, req.StartTime, uc.timeProvider.Now()) {
		uc.logger.Warn("ConfirmBooking: slot %s %s has already started", req.Date.Format(domain.DateFormat), req.StartTime)
		uc.metrics.ObserveBooking(metrics.OutcomeRejected)
		return nil, ErrSlotInPast
	}

	// 4. Перепроверка и вставка, с повтором при совпадении кода
	var result *commitResult
	for attempt := 1; attempt <= maxCodeAttempts; attempt++ {
		result, err = uc.commit(ctx, req)
		if err == nil {
			break
		}

		if errors.Is(err, appointmentRepo.ErrDuplicateCode) {
			uc.logger.Warn("ConfirmBooking: confirmation code collision, attempt %d/%d", attempt, maxCodeAttempts)
			continue
		}

		return nil, uc.classifyCommitError(err)
	}

	if err != nil {
		uc.logger.Error("ConfirmBooking: could not generate a unique confirmation code: %v", err)
		uc.metrics.ObserveBooking(metrics.OutcomeError)
		return nil, fmt.Errorf("%w: confirmation code attempts exhausted: %v", ErrInternal, err)
	}

	uc.logger.Info("ConfirmBooking: created appointment id=%d code=%s", result.appointment.ID, result.appointment.ConfirmationCode)
	uc.metrics.ObserveBooking(metrics.OutcomeConfirmed)

	return toResponse(result.salon, result.professional, result.service, result.appointment), nil
}

// resolve получает салон, мастера и услугу; чужие для салона id считаются не найденными
func (uc *UseCase) resolve(ctx context.Context, req *Request) (*domain.Salon, *domain.Professional, *domain.Service, error) {
	salon, err := uc.calendarRepo.GetSalonBySlug(ctx, req.SalonSlug)
	if err != nil {
		if errors.Is(err, calendarRepo.ErrSalonNotFound) {
			uc.logger.Warn("ConfirmBooking: salon %s not found", req.SalonSlug)
			return nil, nil, nil, ErrSalonNotFound
		}
		uc.logger.Error("ConfirmBooking: failed to get salon %s: %v", req.SalonSlug, err)
		return nil, nil, nil, fmt.Errorf("%w: failed to get salon: %v", ErrInternal, err)
	}

	professional, err := uc.calendarRepo.GetProfessional(ctx, salon.ID, req.ProfessionalID)
	if err != nil {
		if errors.Is(err, calendarRepo.ErrProfessionalNotFound) {
			uc.logger.Warn("ConfirmBooking: professional id=%d not found in salon %s", req.ProfessionalID, salon.Slug)
			return nil, nil, nil, ErrProfessionalNotFound
		}
		uc.logger.Error("ConfirmBooking: failed to get professional id=%d: %v", req.ProfessionalID, err)
		return nil, nil, nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}

	service, err := uc.calendarRepo.GetService(ctx, salon.ID, req.ServiceID)
	if err != nil {
		if errors.Is(err, calendarRepo.ErrServiceNotFound) {
			uc.logger.Warn("ConfirmBooking: service id=%d not found in salon %s", req.ServiceID, salon.Slug)
			return nil, nil, nil, ErrServiceNotFound
		}
		uc.logger.Error("ConfirmBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, nil, nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	return salon, professional, service, nil
}

// commitResult запись и сущности, прочитанные внутри транзакции
type commitResult struct {
	salon        *domain.Salon
	professional *domain.Professional
	service      *domain.Service
	appointment  *domain.Appointment
}

// commit одна попытка в одной сериализуемой транзакции: салон, мастер, услуга и снимок дня
// перечитываются, слот проверяется заново, затем вставляется запись
func (uc *UseCase) commit(ctx context.Context, req *Request) (*commitResult, error) {
	var result *commitResult

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		salon, professional, service, err := uc.resolve(txCtx, req)
		if err != nil {
			return err
		}

		snap, err := uc.snapshotLoader.LoadDay(txCtx, salon, professional, req.Date)
		if err != nil {
			return fmt.Errorf("%w: failed to load day snapshot: %v", ErrInternal, err)
		}

		// Проверка включает и то, что мастер все еще оказывает услугу
		if err := availability.CheckSlot(snap, service, req.StartTime); err != nil {
			return err
		}

		code, err := uc.codeGenerator.Generate()
		if err != nil {
			return fmt.Errorf("%w: failed to generate confirmation code: %v", ErrInternal, err)
		}

		created, err := uc.appointmentRepo.Create(txCtx, &domain.Appointment{
			SalonID:                salon.ID,
			ProfessionalID:         professional.ID,
			ServiceID:              ptr.Ptr(service.ID),
			ClientName:             req.ClientName,
			ClientContact:          req.ClientContact,
			ConfirmationCode:       code,
			Date:                   req.Date,
			StartTime:              req.StartTime,
			Status:                 domain.StatusConfirmed,
			ServiceDurationMinutes: ptr.Ptr(service.DurationOr(salon.SlotStepMinutes)),
		})
		if err != nil {
			return err
		}

		result = &commitResult{
			salon:        salon,
			professional: professional,
			service:      service,
			appointment:  created,
		}
		return nil
	})

	return result, err
}

// classifyCommitError сводит ошибку попытки к ошибке use case и пишет метрики
func (uc *UseCase) classifyCommitError(err error) error {
	// Сущность исчезла между предварительной проверкой и транзакцией
	if errors.Is(err, ErrSalonNotFound) || errors.Is(err, ErrProfessionalNotFound) || errors.Is(err, ErrServiceNotFound) {
		uc.metrics.ObserveBooking(metrics.OutcomeRejected)
		return err
	}

	// Ошибка конфигурации салона - не вина клиента
	if errors.Is(err, availability.ErrInvalidSlotStep) {
		uc.logger.Error("ConfirmBooking: salon configuration error: %v", err)
		uc.metrics.ObserveBooking(metrics.OutcomeError)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if reason := availability.ReasonOf(err); reason != "unknown" {
		if errors.Is(err, availability.ErrInvalidWorkingHours) {
			uc.logger.Warn("ConfirmBooking: broken working hours row: %v", err)
		} else {
			uc.logger.Warn("ConfirmBooking: slot rejected (%s): %v", reason, err)
		}
		uc.metrics.ObserveSlotRejection(reason)
		uc.metrics.ObserveBooking(metrics.OutcomeConflict)
		return fmt.Errorf("%w: %v", ErrSlotNotAvailable, err)
	}

	// Уникальный индекс или сериализация (в т.ч. при COMMIT)
	if errors.Is(err, appointmentRepo.ErrSlotTaken) || errors.Is(appointmentRepo.TranslateError(err), appointmentRepo.ErrSlotTaken) {
		uc.logger.Warn("ConfirmBooking: concurrent booking won the slot: %v", err)
		uc.metrics.ObserveSlotRejection("concurrent")
		uc.metrics.ObserveBooking(metrics.OutcomeConflict)
		return fmt.Errorf("%w: %v", ErrSlotNotAvailable, err)
	}

	uc.logger.Error("ConfirmBooking: failed to create appointment: %v", err)
	uc.metrics.ObserveBooking(metrics.OutcomeError)
	if errors.Is(err, ErrInternal) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrInternal, err)
}

func toResponse(salon *domain.Salon, professional *domain.Professional, service *domain.Service, appt *domain.Appointment) *Response {
	interval, _ := appt.Interval(salon.SlotStepMinutes)

	return &Response{
		ID:               appt.ID,
		ConfirmationCode: appt.ConfirmationCode,
		SalonSlug:        salon.Slug,
		ProfessionalID:   professional.ID,
		ProfessionalName: professional.Name,
		ServiceID:        service.ID,
		ServiceName:      service.Name,
		Date:             appt.Date,
		StartTime:        appt.StartTime,
		EndTime:          interval.End,
		ClientName:       appt.ClientName,
		Status:           string(appt.Status),
		CreatedAt:        appt.CreatedAt,
	}
}
