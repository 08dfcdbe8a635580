package list_professionals

import (
	listProfessionals "github.com/m04kA/SMC-SalonBookingService/internal/usecase/list_professionals"
)

// ProfessionalResponse HTTP response model
type ProfessionalResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Specialty *string `json:"specialty,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *listProfessionals.Response) []ProfessionalResponse {
	result := make([]ProfessionalResponse, len(resp.Professionals))
	for i, p := range resp.Professionals {
		result[i] = ProfessionalResponse{
			ID:        p.ID,
			Name:      p.Name,
			Specialty: p.Specialty,
		}
	}
	return result
}
