package list_professionals

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonBookingService/internal/api/handlers"
	listProfessionals "github.com/m04kA/SMC-SalonBookingService/internal/usecase/list_professionals"
)

const (
	msgInvalidServiceID = "некорректный ID услуги"
	msgSalonNotFound    = "салон не найден"
	msgServiceNotFound  = "услуга не найдена"
)

type Handler struct {
	useCase ListProfessionalsUseCase
	logger  Logger
}

func NewHandler(useCase ListProfessionalsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/salons/{slug}/services/{serviceId}/professionals
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slug := vars["slug"]

	serviceID, err := strconv.ParseInt(vars["serviceId"], 10, 64)
	if err != nil || serviceID <= 0 {
		h.logger.Warn("GET /salons/{slug}/services/{id}/professionals - Invalid service ID: %q", vars["serviceId"])
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &listProfessionals.Request{
		SalonSlug: slug,
		ServiceID: serviceID,
	})
	if err != nil {
		switch {
		case errors.Is(err, listProfessionals.ErrInvalidInput):
			h.logger.Warn("GET /salons/{slug}/services/{id}/professionals - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidServiceID)

		case errors.Is(err, listProfessionals.ErrSalonNotFound):
			h.logger.Warn("GET /salons/{slug}/services/{id}/professionals - Salon not found: salon=%s", slug)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, listProfessionals.ErrServiceNotFound):
			h.logger.Warn("GET /salons/{slug}/services/{id}/professionals - Service not found: salon=%s, service_id=%d", slug, serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		default:
			h.logger.Error("GET /salons/{slug}/services/{id}/professionals - Failed to list professionals: salon=%s, service_id=%d, error=%v",
				slug, serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /salons/{slug}/services/{id}/professionals - Professionals retrieved: salon=%s, service_id=%d, count=%d",
		slug, serviceID, len(result.Professionals))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
