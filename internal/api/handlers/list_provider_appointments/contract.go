package list_provider_appointments

import (
	"context"

	listProviderAppointments "github.com/m04kA/SMC-AppointmentService/internal/usecase/list_provider_appointments"
)

type ListProviderAppointmentsUseCase interface {
	Execute(ctx context.Context, req *listProviderAppointments.Request) (*listProviderAppointments.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
