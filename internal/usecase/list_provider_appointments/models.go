package list_provider_appointments

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Request модель запроса списка записей провайдера за день
type Request struct {
	ProviderID uuid.UUID // ID провайдера
	Day        time.Time // Календарный день
}

// Appointment элемент списка записей
// JSON-теги задают формат закешированного значения
type Appointment struct {
	ID         uuid.UUID `json:"id"`
	ProviderID uuid.UUID `json:"providerId"`
	UserID     uuid.UUID `json:"userId"`
	Date       time.Time `json:"date"`
}

// Response модель ответа со списком записей
type Response struct {
	Appointments []Appointment
}

// fromDomainList конвертирует доменные записи в элементы ответа
func fromDomainList(appointments []*domain.Appointment) []Appointment {
	items := make([]Appointment, 0, len(appointments))
	for _, appt := range appointments {
		items = append(items, Appointment{
			ID:         appt.ID,
			ProviderID: appt.ProviderID,
			UserID:     appt.UserID,
			Date:       appt.Date,
		})
	}
	return items
}
