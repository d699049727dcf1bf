package create_appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Request модель запроса на создание записи
type Request struct {
	ProviderID uuid.UUID // ID провайдера услуги
	UserID     uuid.UUID // ID пользователя (из контекста аутентификации)
	Date       time.Time // Желаемое время записи (нормализуется к началу часа)
}

// Response модель ответа с созданной записью
type Response struct {
	ID         uuid.UUID // ID созданной записи
	ProviderID uuid.UUID // ID провайдера
	UserID     uuid.UUID // ID пользователя
	Date       time.Time // Нормализованное время записи

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}

// fromDomain конвертирует доменную запись в response
func fromDomain(appt *domain.Appointment) *Response {
	return &Response{
		ID:         appt.ID,
		ProviderID: appt.ProviderID,
		UserID:     appt.UserID,
		Date:       appt.Date,
		CreatedAt:  appt.CreatedAt,
		UpdatedAt:  appt.UpdatedAt,
	}
}
