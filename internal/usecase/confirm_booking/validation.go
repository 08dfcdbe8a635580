package confirm_booking

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса и нормализует строки клиента
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.SalonSlug) == "" {
		return fmt.Errorf("%w: salon slug is required", ErrInvalidInput)
	}

	if req.ProfessionalID <= 0 {
		return fmt.Errorf("%w: professionalId must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceId must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	req.ClientName = strings.TrimSpace(req.ClientName)
	if req.ClientName == "" {
		return fmt.Errorf("%w: clientName is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(req.ClientName) > domain.MaxClientNameLength {
		return fmt.Errorf("%w: clientName is longer than %d characters", ErrInvalidInput, domain.MaxClientNameLength)
	}

	req.ClientContact = strings.TrimSpace(req.ClientContact)
	if req.ClientContact == "" {
		return fmt.Errorf("%w: clientContact is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(req.ClientContact) > domain.MaxClientContactLength {
		return fmt.Errorf("%w: clientContact is longer than %d characters", ErrInvalidInput, domain.MaxClientContactLength)
	}

	return nil
}
