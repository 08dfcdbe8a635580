package models

import (
	"time"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
)

// AppointmentResponse квитанция записи по коду подтверждения
type AppointmentResponse struct {
	ConfirmationCode string    `json:"confirmationCode"`
	Salon            string    `json:"salon"`
	ProfessionalID   int64     `json:"professionalId"`
	ProfessionalName string    `json:"professionalName,omitempty"`
	ServiceID        *int64    `json:"serviceId,omitempty"`
	ServiceName      string    `json:"serviceName,omitempty"`
	Date             string    `json:"date"`      // "2025-10-15"
	StartTime        string    `json:"startTime"` // "10:00"
	EndTime          string    `json:"endTime"`   // "10:30"
	ClientName       string    `json:"clientName"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
}

// FromDomainAppointment конвертирует domain модель в DTO.
// professional и service могут быть nil (например, услуга удалена).
func FromDomainAppointment(
	salon *domain.Salon,
	appt *domain.Appointment,
	professional *domain.Professional,
	service *domain.Service,
) *AppointmentResponse {
	if appt == nil {
		return nil
	}

	interval, _ := appt.Interval(salon.SlotStepMinutes)

	resp := &AppointmentResponse{
		ConfirmationCode: appt.ConfirmationCode,
		Salon:            salon.Slug,
		ProfessionalID:   appt.ProfessionalID,
		ServiceID:        appt.ServiceID,
		Date:             appt.Date.Format(domain.DateFormat),
		StartTime:        appt.StartTime.String(),
		EndTime:          interval.End.String(),
		ClientName:       appt.ClientName,
		Status:           string(appt.Status),
		CreatedAt:        appt.CreatedAt,
	}

	if professional != nil {
		resp.ProfessionalName = professional.Name
	}
	if service != nil {
		resp.ServiceName = service.Name
	}

	return resp
}
