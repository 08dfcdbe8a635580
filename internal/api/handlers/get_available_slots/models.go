package get_available_slots

import (
	"strconv"
	"time"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-SalonBookingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date          string              `json:"date"`
	Salon         string              `json:"salon"`
	ServiceID     int64               `json:"serviceId"`
	Professionals []ProfessionalSlots `json:"professionals"`
}

// ProfessionalSlots свободные времена начала одного мастера
type ProfessionalSlots struct {
	ProfessionalID      int64    `json:"professionalId"`
	Name                string   `json:"name"`
	AvailableStartTimes []string `json:"availableStartTimes"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	professionals := make([]ProfessionalSlots, len(resp.Professionals))
	for i, p := range resp.Professionals {
		times := make([]string, len(p.AvailableStartTimes))
		for j, start := range p.AvailableStartTimes {
			times[j] = start.String()
		}
		professionals[i] = ProfessionalSlots{
			ProfessionalID:      p.ProfessionalID,
			Name:                p.Name,
			AvailableStartTimes: times,
		}
	}

	return &AvailableSlotsResponse{
		Date:          resp.Date.Format(domain.DateFormat),
		Salon:         resp.SalonSlug,
		ServiceID:     resp.ServiceID,
		Professionals: professionals,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров.
// professionalIDStr может быть пустым.
func ToUseCaseRequest(slug string, serviceID int64, dateStr, professionalIDStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	req := &getAvailableSlots.Request{
		SalonSlug: slug,
		ServiceID: serviceID,
		Date:      date,
	}

	if professionalIDStr != "" {
		professionalID, err := strconv.ParseInt(professionalIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.ProfessionalID = &professionalID
	}

	return req, nil
}
