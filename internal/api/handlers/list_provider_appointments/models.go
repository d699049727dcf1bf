package list_provider_appointments

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	listProviderAppointments "github.com/m04kA/SMC-AppointmentService/internal/usecase/list_provider_appointments"
)

// ProviderAppointmentsResponse HTTP response model
type ProviderAppointmentsResponse struct {
	ProviderID   string            `json:"providerId"`
	Date         string            `json:"date"`
	Appointments []AppointmentItem `json:"appointments"`
}

// AppointmentItem элемент списка записей
type AppointmentItem struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
	Date   string `json:"date"`
}

// ToUseCaseRequest создает запрос use case из параметров URL (с парсингом даты)
func ToUseCaseRequest(providerID uuid.UUID, dateStr string) (*listProviderAppointments.Request, error) {
	day, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &listProviderAppointments.Request{
		ProviderID: providerID,
		Day:        day,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(providerID uuid.UUID, day time.Time, resp *listProviderAppointments.Response) *ProviderAppointmentsResponse {
	items := make([]AppointmentItem, 0, len(resp.Appointments))
	for _, appt := range resp.Appointments {
		items = append(items, AppointmentItem{
			ID:     appt.ID.String(),
			UserID: appt.UserID.String(),
			Date:   appt.Date.Format(time.RFC3339),
		})
	}

	return &ProviderAppointmentsResponse{
		ProviderID:   providerID.String(),
		Date:         day.Format(domain.DateFormat),
		Appointments: items,
	}
}
