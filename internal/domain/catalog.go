package domain

// Service is something a salon sells, e.g. a haircut
type Service struct {
	ID              int64
	SalonID         int64
	Name            string
	Price           float64
	DurationMinutes int
}

// DurationOr returns the service duration, or fallback when it is not positive
func (s *Service) DurationOr(fallback int) int {
	if s == nil || s.DurationMinutes <= 0 {
		return fallback
	}
	return s.DurationMinutes
}

// Professional works in one salon and offers a subset of its services
type Professional struct {
	ID         int64
	SalonID    int64
	Name       string
	Specialty  *string
	ServiceIDs []int64
}

// OffersService returns true if the professional performs the service
func (p *Professional) OffersService(serviceID int64) bool {
	for _, id := range p.ServiceIDs {
		if id == serviceID {
			return true
		}
	}
	return false
}

// BelongsTo returns true if the professional is employed by the salon
func (p *Professional) BelongsTo(salonID int64) bool {
	return p.SalonID == salonID
}
