package list_day_availability

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	listDayAvailability "github.com/m04kA/SMC-AppointmentService/internal/usecase/list_day_availability"
)

// DayAvailabilityResponse HTTP response model
type DayAvailabilityResponse struct {
	ProviderID string     `json:"providerId"`
	Date       string     `json:"date"`
	Slots      []SlotItem `json:"slots"`
}

// SlotItem доступность одного часового слота
type SlotItem struct {
	Hour      int  `json:"hour"`
	Available bool `json:"available"`
}

// ToUseCaseRequest создает запрос use case из параметров URL (с парсингом даты)
func ToUseCaseRequest(providerID uuid.UUID, dateStr string) (*listDayAvailability.Request, error) {
	day, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &listDayAvailability.Request{
		ProviderID: providerID,
		Day:        day,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(providerID uuid.UUID, day time.Time, resp *listDayAvailability.Response) *DayAvailabilityResponse {
	slots := make([]SlotItem, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, SlotItem{
			Hour:      slot.Hour,
			Available: slot.Available,
		})
	}

	return &DayAvailabilityResponse{
		ProviderID: providerID.String(),
		Date:       day.Format(domain.DateFormat),
		Slots:      slots,
	}
}
