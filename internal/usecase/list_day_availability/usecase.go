package list_day_availability

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// UseCase use case расчёта доступности слотов провайдера на день
type UseCase struct {
	appointmentRepo AppointmentRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(appointmentRepo AppointmentRepository, logger Logger) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute возвращает все часовые слоты рабочего окна на день
// с признаком доступности каждого
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ListDayAvailability: validation failed: %v", err)
		return nil, err
	}

	appointments, err := uc.appointmentRepo.ListByProviderAndDay(ctx, req.ProviderID, req.Day)
	if err != nil {
		uc.logger.Error("ListDayAvailability: failed to list appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to list appointments: %v", ErrStorage, err)
	}

	slots := buildDaySlots(req.Day, uc.timeProvider.Now(), appointments)

	uc.logger.Info("ListDayAvailability: provider=%s day=%s, %d slots",
		req.ProviderID, req.Day.Format(domain.DateFormat), len(slots))
	return &Response{Slots: fromDomainSlots(slots)}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ProviderID == uuid.Nil {
		return fmt.Errorf("%w: providerID is required", ErrInvalidInput)
	}
	if req.Day.IsZero() {
		return fmt.Errorf("%w: day is required", ErrInvalidInput)
	}
	return nil
}
