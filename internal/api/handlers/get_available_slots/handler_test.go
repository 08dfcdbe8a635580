package get_available_slots

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailableSlots "github.com/m04kA/SMC-SalonBookingService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-SalonBookingService/pkg/logger"
	"github.com/m04kA/SMC-SalonBookingService/pkg/types"
)

type stubUseCase struct {
	got  *getAvailableSlots.Request
	resp *getAvailableSlots.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	s.got = req
	return s.resp, s.err
}

func serve(h *Handler, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/salons/{slug}/availability", h.Handle).Methods(http.MethodGet)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestHandle_Success(t *testing.T) {
	uc := &stubUseCase{resp: &getAvailableSlots.Response{
		Date:      time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		SalonSlug: "studio",
		ServiceID: 100,
		Professionals: []getAvailableSlots.ProfessionalSlots{
			{ProfessionalID: 10, Name: "Ana", AvailableStartTimes: []types.TimeString{"09:00", "09:30"}},
		},
	}}
	h := NewHandler(uc, logger.Nop())

	w := serve(h, "/api/v1/salons/studio/availability?serviceId=100&date=2025-03-10&professionalId=10")
	require.Equal(t, http.StatusOK, w.Code)

	require.NotNil(t, uc.got)
	assert.Equal(t, "studio", uc.got.SalonSlug)
	assert.Equal(t, int64(100), uc.got.ServiceID)
	require.NotNil(t, uc.got.ProfessionalID)
	assert.Equal(t, int64(10), *uc.got.ProfessionalID)

	var body AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "2025-03-10", body.Date)
	assert.Equal(t, "studio", body.Salon)
	require.Len(t, body.Professionals, 1)
	assert.Equal(t, []string{"09:00", "09:30"}, body.Professionals[0].AvailableStartTimes)
}

func TestHandle_WithoutProfessional(t *testing.T) {
	uc := &stubUseCase{resp: &getAvailableSlots.Response{Professionals: []getAvailableSlots.ProfessionalSlots{}}}
	h := NewHandler(uc, logger.Nop())

	w := serve(h, "/api/v1/salons/studio/availability?serviceId=100&date=2025-03-10")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, uc.got.ProfessionalID)
	assert.JSONEq(t, `[]`, string(mustField(t, w.Body.Bytes(), "professionals")))
}

func TestHandle_BadQuery(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{name: "missing service", target: "/api/v1/salons/studio/availability?date=2025-03-10"},
		{name: "bad service", target: "/api/v1/salons/studio/availability?serviceId=x&date=2025-03-10"},
		{name: "missing date", target: "/api/v1/salons/studio/availability?serviceId=100"},
		{name: "bad date", target: "/api/v1/salons/studio/availability?serviceId=100&date=10.03.2025"},
		{name: "bad professional", target: "/api/v1/salons/studio/availability?serviceId=100&date=2025-03-10&professionalId=ana"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &stubUseCase{}
			w := serve(NewHandler(uc, logger.Nop()), tt.target)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Nil(t, uc.got)
		})
	}
}

func TestHandle_UseCaseErrors(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: getAvailableSlots.ErrInvalidInput, want: http.StatusBadRequest},
		{err: getAvailableSlots.ErrSalonNotFound, want: http.StatusNotFound},
		{err: getAvailableSlots.ErrServiceNotFound, want: http.StatusNotFound},
		{err: getAvailableSlots.ErrProfessionalNotFound, want: http.StatusNotFound},
		{err: getAvailableSlots.ErrServiceNotOffered, want: http.StatusBadRequest},
		{err: getAvailableSlots.ErrInternal, want: http.StatusInternalServerError},
		{err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			w := serve(NewHandler(&stubUseCase{err: tt.err}, logger.Nop()),
				"/api/v1/salons/studio/availability?serviceId=100&date=2025-03-10")
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func mustField(t *testing.T, body []byte, field string) json.RawMessage {
	t.Helper()
	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body, &m))
	return m[field]
}
