package confirm_booking

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	confirmBooking "github.com/m04kA/SMC-SalonBookingService/internal/usecase/confirm_booking"
	"github.com/m04kA/SMC-SalonBookingService/pkg/types"
)

var (
	errInvalidDate = errors.New("invalid date")
	errInvalidTime = errors.New("invalid start time")
)

// ConfirmBookingRequest HTTP request model
type ConfirmBookingRequest struct {
	ProfessionalID int64  `json:"professionalId"`
	ServiceID      int64  `json:"serviceId"`
	Date           string `json:"date"`      // "2025-10-15"
	StartTime      string `json:"startTime"` // "10:00"
	ClientName     string `json:"clientName"`
	ClientContact  string `json:"clientContact"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID               int64  `json:"id"`
	ConfirmationCode string `json:"confirmationCode"`
	Salon            string `json:"salon"`
	ProfessionalID   int64  `json:"professionalId"`
	ProfessionalName string `json:"professionalName"`
	ServiceID        int64  `json:"serviceId"`
	ServiceName      string `json:"serviceName"`
	Date             string `json:"date"`
	StartTime        string `json:"startTime"`
	EndTime          string `json:"endTime"`
	ClientName       string `json:"clientName"`
	Status           string `json:"status"`
	CreatedAt        string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ConfirmBookingRequest) ToUseCaseRequest(slug string) (*confirmBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, errInvalidDate
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, errInvalidTime
	}

	return &confirmBooking.Request{
		SalonSlug:      slug,
		ProfessionalID: r.ProfessionalID,
		ServiceID:      r.ServiceID,
		Date:           date,
		StartTime:      startTime,
		ClientName:     r.ClientName,
		ClientContact:  r.ClientContact,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *confirmBooking.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:               resp.ID,
		ConfirmationCode: resp.ConfirmationCode,
		Salon:            resp.SalonSlug,
		ProfessionalID:   resp.ProfessionalID,
		ProfessionalName: resp.ProfessionalName,
		ServiceID:        resp.ServiceID,
		ServiceName:      resp.ServiceName,
		Date:             resp.Date.Format(domain.DateFormat),
		StartTime:        resp.StartTime.String(),
		EndTime:          resp.EndTime.String(),
		ClientName:       resp.ClientName,
		Status:           resp.Status,
		CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
	}
}
