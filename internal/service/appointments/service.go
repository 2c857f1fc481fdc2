package appointments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SPA-AdminService/internal/domain"
	apptRepo "github.com/m04kA/SPA-AdminService/internal/infra/storage/appointment"
	"github.com/m04kA/SPA-AdminService/internal/service/appointments/models"
)

// Service сервис для работы с записями на услуги
// Переходы статусов проходят только через гейты текущего статуса:
// недоступный переход возвращает ошибку, а не молча применяется
type Service struct {
	appointmentRepo      AppointmentRepository
	allowScheduledCancel bool
	timeProvider         TimeProvider
	logger               Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	allowScheduledCancel bool,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo:      appointmentRepo,
		allowScheduledCancel: allowScheduledCancel,
		timeProvider:         &RealTimeProvider{},
		logger:               logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d", id)

	appt, err := s.getAppointment(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	return models.FromDomainAppointment(appt, s.timeProvider.Now(), s.allowScheduledCancel), nil
}

// List получает записи с гибкой фильтрацией
// Поддерживает фильтрацию по мастеру, периоду, статусу и включению отменённых записей
//
// Примеры использования:
// - Все активные записи: List(ctx, &ListAppointmentsRequest{})
// - Записи мастера: указать StaffID
// - Записи на дату: StartDate и EndDate указывают на одну дату
// - Только ожидающие подтверждения: указать Status = "pending"
// - Включая отменённые: IncludeInactive = true
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("List: fetching appointments, staff=%v, status=%v, includeInactive=%v",
		req.StaffID, req.Status, req.IncludeInactive)

	// Конвертируем request в domain фильтр
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	appointments, err := s.appointmentRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d appointments", len(appointments))
	return models.FromDomainAppointmentList(appointments, s.timeProvider.Now(), s.allowScheduledCancel), nil
}

// Confirm подтверждает запись (pending -> scheduled)
func (s *Service) Confirm(ctx context.Context, id int64) error {
	s.logger.Info("Confirm: confirming appointment id=%d", id)

	appt, err := s.getAppointment(ctx, "Confirm", id)
	if err != nil {
		return err
	}

	if !appt.CanConfirm() {
		s.logger.Warn("Confirm: appointment id=%d cannot be confirmed, status=%s", id, appt.Status)
		return ErrCannotConfirm
	}

	if err := s.updateStatus(ctx, "Confirm", id, domain.StatusScheduled); err != nil {
		return err
	}

	s.logger.Info("Confirm: successfully confirmed appointment id=%d", id)
	return nil
}

// Complete завершает запись (scheduled -> completed)
func (s *Service) Complete(ctx context.Context, id int64) error {
	s.logger.Info("Complete: completing appointment id=%d", id)

	appt, err := s.getAppointment(ctx, "Complete", id)
	if err != nil {
		return err
	}

	if !appt.CanComplete() {
		s.logger.Warn("Complete: appointment id=%d cannot be completed, status=%s", id, appt.Status)
		return ErrCannotComplete
	}

	if err := s.updateStatus(ctx, "Complete", id, domain.StatusCompleted); err != nil {
		return err
	}

	s.logger.Info("Complete: successfully completed appointment id=%d", id)
	return nil
}

// Cancel отменяет запись
// Отмена доступна только при достаточном запасе времени до начала
func (s *Service) Cancel(ctx context.Context, id int64, req *models.CancelAppointmentRequest) error {
	s.logger.Info("Cancel: cancelling appointment id=%d", id)

	reason := strings.TrimSpace(req.CancellationReason)
	if reason == "" {
		s.logger.Warn("Cancel: cancellation reason is required for appointment id=%d", id)
		return fmt.Errorf("%w: cancellation reason is required", ErrInvalidInput)
	}
	if len(reason) > domain.MaxCancellationReasonLength {
		s.logger.Warn("Cancel: cancellation reason is too long for appointment id=%d", id)
		return fmt.Errorf("%w: cancellation reason is too long (max %d)", ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	appt, err := s.getAppointment(ctx, "Cancel", id)
	if err != nil {
		return err
	}

	if !appt.CanCancel(s.timeProvider.Now(), s.allowScheduledCancel) {
		s.logger.Warn("Cancel: appointment id=%d cannot be cancelled, status=%s", id, appt.Status)
		return ErrCannotCancel
	}

	if err := s.appointmentRepo.Cancel(ctx, id, reason); err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found during cancellation", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%d", id)
	return nil
}

// Pay проводит оплату записи
// Оплата доступна из любого статуса, кроме paid, cancelled и pending
func (s *Service) Pay(ctx context.Context, id int64) error {
	s.logger.Info("Pay: paying appointment id=%d", id)

	appt, err := s.getAppointment(ctx, "Pay", id)
	if err != nil {
		return err
	}

	if !appt.CanPay() {
		s.logger.Warn("Pay: appointment id=%d cannot be paid, status=%s", id, appt.Status)
		return ErrCannotPay
	}

	if err := s.updateStatus(ctx, "Pay", id, domain.StatusPaid); err != nil {
		return err
	}

	s.logger.Info("Pay: successfully paid appointment id=%d", id)
	return nil
}

// Вспомогательные методы

// getAppointment получает запись с маппингом ошибок репозитория
func (s *Service) getAppointment(ctx context.Context, op string, id int64) (*domain.Appointment, error) {
	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("%s: appointment id=%d not found", op, id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("%s: repository error for appointment id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return appt, nil
}

// updateStatus обновляет статус записи с маппингом ошибок репозитория
func (s *Service) updateStatus(ctx context.Context, op string, id int64, status domain.AppointmentStatus) error {
	if err := s.appointmentRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("%s: appointment id=%d not found during update", op, id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("%s: repository error for appointment id=%d: %v", op, id, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return nil
}
