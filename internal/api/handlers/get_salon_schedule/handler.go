package get_salon_schedule

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBookingService/internal/service/salons"
)

const msgSalonNotFound = "салон не найден"

type Handler struct {
	service SalonService
	logger  Logger
}

func NewHandler(service SalonService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/salons/{slug}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	schedule, err := h.service.GetSchedule(r.Context(), slug)
	if err != nil {
		if errors.Is(err, salons.ErrSalonNotFound) {
			h.logger.Warn("GET /salons/{slug}/schedule - Salon not found: salon=%s", slug)
			handlers.RespondNotFound(w, msgSalonNotFound)
			return
		}
		h.logger.Error("GET /salons/{slug}/schedule - Failed to get schedule: salon=%s, error=%v", slug, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /salons/{slug}/schedule - Schedule retrieved: salon=%s", slug)
	handlers.RespondJSON(w, http.StatusOK, schedule)
}
