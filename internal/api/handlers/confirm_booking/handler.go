package confirm_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonBookingService/internal/api/handlers"
	confirmBooking "github.com/m04kA/SMC-SalonBookingService/internal/usecase/confirm_booking"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDate          = "некорректный формат даты записи, ожидается YYYY-MM-DD"
	msgInvalidTime          = "некорректный формат времени начала, ожидается HH:MM"
	msgInvalidInput         = "некорректные данные записи"
	msgSlotNotAvailable     = "выбранный временной слот недоступен"
	msgSlotInPast           = "выбранное время уже прошло"
	msgServiceNotOffered    = "мастер не оказывает эту услугу"
	msgSalonNotFound        = "салон не найден"
	msgProfessionalNotFound = "мастер не найден"
	msgServiceNotFound      = "услуга не найдена"
)

type Handler struct {
	useCase ConfirmBookingUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/salons/{slug}/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	var req ConfirmBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /salons/{slug}/appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(slug)
	if err != nil {
		h.logger.Warn("POST /salons/{slug}/appointments - Failed to parse request: %v", err)
		if errors.Is(err, errInvalidTime) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, confirmBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /salons/{slug}/appointments - Slot not available: salon=%s, professional_id=%d, date=%s, time=%s",
				slug, req.ProfessionalID, req.Date, req.StartTime)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, confirmBooking.ErrSalonNotFound):
			h.logger.Warn("POST /salons/{slug}/appointments - Salon not found: salon=%s", slug)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, confirmBooking.ErrProfessionalNotFound):
			h.logger.Warn("POST /salons/{slug}/appointments - Professional not found: salon=%s, professional_id=%d", slug, req.ProfessionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, confirmBooking.ErrServiceNotFound):
			h.logger.Warn("POST /salons/{slug}/appointments - Service not found: salon=%s, service_id=%d", slug, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, confirmBooking.ErrServiceNotOffered):
			h.logger.Warn("POST /salons/{slug}/appointments - Service not offered: professional_id=%d, service_id=%d",
				req.ProfessionalID, req.ServiceID)
			handlers.RespondBadRequest(w, msgServiceNotOffered)

		case errors.Is(err, confirmBooking.ErrSlotInPast):
			h.logger.Warn("POST /salons/{slug}/appointments - Slot in past: salon=%s, date=%s, time=%s", slug, req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgSlotInPast)

		case errors.Is(err, confirmBooking.ErrInvalidInput):
			h.logger.Warn("POST /salons/{slug}/appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /salons/{slug}/appointments - Failed to confirm booking: salon=%s, professional_id=%d, error=%v",
				slug, req.ProfessionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /salons/{slug}/appointments - Appointment confirmed: id=%d, salon=%s, professional_id=%d",
		result.ID, slug, result.ProfessionalID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
