package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SalonBookingService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	SalonSlug      string    // slug салона из URL
	ServiceID      int64     // ID услуги
	Date           time.Time // Дата (без времени)
	ProfessionalID *int64    // Конкретный мастер (опционально)
}

// Response модель ответа со слотами по мастерам
type Response struct {
	Date          time.Time
	SalonSlug     string
	ServiceID     int64
	Professionals []ProfessionalSlots
}

// ProfessionalSlots свободные времена начала одного мастера
type ProfessionalSlots struct {
	ProfessionalID      int64
	Name                string
	AvailableStartTimes []types.TimeString
}
