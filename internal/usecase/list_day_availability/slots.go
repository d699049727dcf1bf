package list_day_availability

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// buildDaySlots строит доступность часовых слотов рабочего окна на день
// Слот доступен, если он строго в будущем и не занят записью
func buildDaySlots(day time.Time, now time.Time, appointments []*domain.Appointment) []domain.HourSlot {
	occupied := make(map[int]bool, len(appointments))
	for _, appt := range appointments {
		occupied[appt.Date.Hour()] = true
	}

	slots := make([]domain.HourSlot, 0, domain.SlotsPerDay)
	for hour := domain.BusinessDayStartHour; hour <= domain.BusinessDayEndHour; hour++ {
		slotTime := time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, day.Location())
		slots = append(slots, domain.HourSlot{
			Hour:      hour,
			Available: slotTime.After(now) && !occupied[hour],
		})
	}
	return slots
}
