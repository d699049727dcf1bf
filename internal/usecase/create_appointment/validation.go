package create_appointment

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ProviderID == uuid.Nil {
		return fmt.Errorf("%w: providerID is required", ErrInvalidInput)
	}

	if req.UserID == uuid.Nil {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// validateNotPast проверяет, что нормализованная дата записи не в прошлом
func validateNotPast(appointmentDate, now time.Time) error {
	if appointmentDate.Before(now) {
		return ErrPastDate
	}
	return nil
}

// validateNotSelf проверяет, что пользователь не записывается к самому себе
func validateNotSelf(req *Request) error {
	if req.UserID == req.ProviderID {
		return ErrSelfBooking
	}
	return nil
}

// validateBusinessHours проверяет, что час начала слота попадает в рабочее окно
func validateBusinessHours(appointmentDate time.Time) error {
	if !domain.InBusinessHours(appointmentDate) {
		return ErrOutsideBusinessHours
	}
	return nil
}
