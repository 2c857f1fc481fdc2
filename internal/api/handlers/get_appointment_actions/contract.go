package get_appointment_actions

import (
	"context"

	getAppointmentActions "github.com/m04kA/SPA-AdminService/internal/usecase/get_appointment_actions"
)

type GetAppointmentActionsUseCase interface {
	Execute(ctx context.Context, req *getAppointmentActions.Request) (*getAppointmentActions.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
