package get_appointment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBookingService/internal/service/appointments"
	"github.com/m04kA/SMC-SalonBookingService/internal/service/appointments/models"
	"github.com/m04kA/SMC-SalonBookingService/pkg/logger"
)

type stubService struct {
	slug, code string
	resp       *models.AppointmentResponse
	err        error
}

func (s *stubService) GetByCode(_ context.Context, salonSlug, code string) (*models.AppointmentResponse, error) {
	s.slug, s.code = salonSlug, code
	return s.resp, s.err
}

func serve(h *Handler, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/salons/{slug}/appointments/{code}", h.Handle).Methods(http.MethodGet)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestHandle(t *testing.T) {
	svc := &stubService{resp: &models.AppointmentResponse{
		ConfirmationCode: "AB12CD",
		Salon:            "studio",
		Date:             "2025-03-10",
		StartTime:        "10:00",
		EndTime:          "10:30",
		Status:           "confirmed",
	}}

	w := serve(NewHandler(svc, logger.Nop()), "/api/v1/salons/studio/appointments/ab12cd")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "studio", svc.slug)
	assert.Equal(t, "ab12cd", svc.code)

	var body models.AppointmentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "AB12CD", body.ConfirmationCode)
	assert.Equal(t, "10:30", body.EndTime)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: appointments.ErrInvalidCode, want: http.StatusBadRequest},
		{err: appointments.ErrSalonNotFound, want: http.StatusNotFound},
		{err: appointments.ErrAppointmentNotFound, want: http.StatusNotFound},
		{err: appointments.ErrInternal, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			w := serve(NewHandler(&stubService{err: tt.err}, logger.Nop()), "/api/v1/salons/studio/appointments/AB12CD")
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
