package create_appointment

import (
	"time"

	"github.com/google/uuid"

	createAppointment "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ProviderID string `json:"providerId"`
	Date       string `json:"date"` // RFC3339, например "2025-10-15T13:00:00Z"
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID         string `json:"id"`
	ProviderID string `json:"providerId"`
	UserID     string `json:"userId"`
	Date       string `json:"date"`
	CreatedAt  string `json:"createdAt"`
	UpdatedAt  string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case (с парсингом даты)
// ID пользователя приходит из контекста аутентификации, а не из тела запроса
func ToUseCaseRequest(providerID, userID uuid.UUID, dateStr string) (*createAppointment.Request, error) {
	date, err := time.Parse(time.RFC3339, dateStr)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		ProviderID: providerID,
		UserID:     userID,
		Date:       date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:         resp.ID.String(),
		ProviderID: resp.ProviderID.String(),
		UserID:     resp.UserID.String(),
		Date:       resp.Date.Format(time.RFC3339),
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  resp.UpdatedAt.Format(time.RFC3339),
	}
}
