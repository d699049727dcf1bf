package list_day_availability

import (
	"context"

	listDayAvailability "github.com/m04kA/SMC-AppointmentService/internal/usecase/list_day_availability"
)

type ListDayAvailabilityUseCase interface {
	Execute(ctx context.Context, req *listDayAvailability.Request) (*listDayAvailability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
