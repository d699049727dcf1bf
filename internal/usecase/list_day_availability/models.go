package list_day_availability

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Request модель запроса доступности слотов провайдера на день
type Request struct {
	ProviderID uuid.UUID // ID провайдера
	Day        time.Time // Календарный день
}

// Slot доступность одного часового слота
type Slot struct {
	Hour      int  // Час начала слота (0-23)
	Available bool // Свободен ли слот для записи
}

// Response модель ответа с доступностью слотов за день
type Response struct {
	Slots []Slot
}

// fromDomainSlots конвертирует доменные слоты в элементы ответа
func fromDomainSlots(slots []domain.HourSlot) []Slot {
	items := make([]Slot, 0, len(slots))
	for _, s := range slots {
		items = append(items, Slot{Hour: s.Hour, Available: s.Available})
	}
	return items
}
