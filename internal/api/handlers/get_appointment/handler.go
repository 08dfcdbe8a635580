package get_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBookingService/internal/service/appointments"
)

const (
	msgInvalidCode   = "некорректный код подтверждения"
	msgNotFound      = "запись не найдена"
	msgSalonNotFound = "салон не найден"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/salons/{slug}/appointments/{code}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slug := vars["slug"]
	code := vars["code"]

	appointment, err := h.service.GetByCode(r.Context(), slug, code)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidCode):
			h.logger.Warn("GET /salons/{slug}/appointments/{code} - Invalid code: salon=%s", slug)
			handlers.RespondBadRequest(w, msgInvalidCode)

		case errors.Is(err, appointments.ErrSalonNotFound):
			h.logger.Warn("GET /salons/{slug}/appointments/{code} - Salon not found: salon=%s", slug)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("GET /salons/{slug}/appointments/{code} - Appointment not found: salon=%s", slug)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /salons/{slug}/appointments/{code} - Failed to get appointment: salon=%s, error=%v", slug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /salons/{slug}/appointments/{code} - Appointment retrieved: salon=%s, status=%s",
		slug, appointment.Status)
	handlers.RespondJSON(w, http.StatusOK, appointment)
}
