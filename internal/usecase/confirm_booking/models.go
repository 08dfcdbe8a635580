package confirm_booking

import (
	"time"

	"github.com/m04kA/SMC-SalonBookingService/pkg/types"
)

// Request модель запроса на подтверждение записи
type Request struct {
	SalonSlug      string           // slug салона из URL
	ProfessionalID int64            // ID мастера
	ServiceID      int64            // ID услуги
	Date           time.Time        // Дата записи (без времени)
	StartTime      types.TimeString // Время начала слота (например, "10:00")
	ClientName     string           // Имя клиента
	ClientContact  string           // Телефон или другой контакт клиента
}

// Response модель ответа с созданной записью
type Response struct {
	ID               int64
	ConfirmationCode string
	SalonSlug        string
	ProfessionalID   int64
	ProfessionalName string
	ServiceID        int64
	ServiceName      string
	Date             time.Time
	StartTime        types.TimeString
	EndTime          types.TimeString
	ClientName       string
	Status           string
	CreatedAt        time.Time
}
