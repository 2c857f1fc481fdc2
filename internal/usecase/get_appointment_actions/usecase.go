package get_appointment_actions

import (
	"context"
	"errors"
	"fmt"

	apptRepo "github.com/m04kA/SPA-AdminService/internal/infra/storage/appointment"
)

// UseCase use case для получения снимка доступных действий по записи
type UseCase struct {
	appointmentRepo      AppointmentRepository
	allowScheduledCancel bool
	timeProvider         TimeProvider
	logger               Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(appointmentRepo AppointmentRepository, allowScheduledCancel bool, logger Logger) *UseCase {
	return &UseCase{
		appointmentRepo:      appointmentRepo,
		allowScheduledCancel: allowScheduledCancel,
		timeProvider:         &RealTimeProvider{},
		logger:               logger,
	}
}

// Execute выполняет use case получения доступных действий
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.ID <= 0 {
		uc.logger.Warn("GetAppointmentActions: id must be positive, got %d", req.ID)
		return nil, fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	// 2. Получаем запись
	appt, err := uc.appointmentRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			uc.logger.Warn("GetAppointmentActions: appointment id=%d not found", req.ID)
			return nil, ErrAppointmentNotFound
		}
		uc.logger.Error("GetAppointmentActions: failed to get appointment id=%d: %v", req.ID, err)
		return nil, fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
	}

	// 3. Считаем снимок действий на текущий момент
	now := uc.timeProvider.Now()

	return &Response{
		ID:              appt.ID,
		Status:          string(appt.Status),
		CanConfirm:      appt.CanConfirm(),
		CanComplete:     appt.CanComplete(),
		CanCancel:       appt.CanCancel(now, uc.allowScheduledCancel),
		CanPay:          appt.CanPay(),
		TimeLeftDisplay: appt.TimeLeftDisplay(now),
	}, nil
}
