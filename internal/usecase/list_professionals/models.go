package list_professionals

// Request модель запроса списка мастеров услуги
type Request struct {
	SalonSlug string
	ServiceID int64
}

// Response модель ответа
type Response struct {
	Professionals []Professional
}

// Professional мастер, оказывающий услугу
type Professional struct {
	ID        int64
	Name      string
	Specialty *string
}
