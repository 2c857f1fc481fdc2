package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SPA-AdminService/internal/domain"
	apptRepo "github.com/m04kA/SPA-AdminService/internal/infra/storage/appointment"
	"github.com/m04kA/SPA-AdminService/internal/service/appointments/models"
	"github.com/m04kA/SPA-AdminService/pkg/ptr"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type fakeAppointmentRepo struct {
	appointments map[int64]*domain.Appointment

	updatedStatus   *domain.AppointmentStatus
	cancelledReason *string
}

func newFakeRepo(appointments ...*domain.Appointment) *fakeAppointmentRepo {
	m := make(map[int64]*domain.Appointment, len(appointments))
	for _, a := range appointments {
		m[a.ID] = a
	}
	return &fakeAppointmentRepo{appointments: m}
}

func (r *fakeAppointmentRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	a, ok := r.appointments[id]
	if !ok {
		return nil, apptRepo.ErrAppointmentNotFound
	}
	return a, nil
}

func (r *fakeAppointmentRepo) GetWithFilter(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	var result []*domain.Appointment
	for _, a := range r.appointments {
		if !filter.IncludeInactive && !a.IsActive() {
			continue
		}
		if filter.Status != nil && a.Status != *filter.Status {
			continue
		}
		result = append(result, a)
	}
	return result, nil
}

func (r *fakeAppointmentRepo) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus) error {
	a, ok := r.appointments[id]
	if !ok {
		return apptRepo.ErrAppointmentNotFound
	}
	a.Status = status
	r.updatedStatus = &status
	return nil
}

func (r *fakeAppointmentRepo) Cancel(_ context.Context, id int64, reason string) error {
	a, ok := r.appointments[id]
	if !ok {
		return apptRepo.ErrAppointmentNotFound
	}
	a.Status = domain.StatusCancelled
	a.CancellationReason = &reason
	r.cancelledReason = &reason
	return nil
}

func newTestService(repo *fakeAppointmentRepo, now time.Time, allowScheduledCancel bool) *Service {
	svc := NewService(repo, allowScheduledCancel, noopLogger{})
	svc.timeProvider = &fixedTimeProvider{now: now}
	return svc
}

func futureAppointment(id int64, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:              id,
		CustomerName:    "Иван Петров",
		AppointmentDate: time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC),
		StartTime:       "14:00",
		DurationMinutes: 60,
		Status:          status,
	}
}

var testNow = time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)

func TestConfirm(t *testing.T) {
	repo := newFakeRepo(futureAppointment(1, domain.StatusPending))
	svc := newTestService(repo, testNow, false)

	err := svc.Confirm(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusScheduled, repo.appointments[1].Status)
}

func TestConfirm_WrongStatus(t *testing.T) {
	for _, status := range []domain.AppointmentStatus{
		domain.StatusScheduled, domain.StatusCompleted, domain.StatusCancelled, domain.StatusPaid,
	} {
		repo := newFakeRepo(futureAppointment(1, status))
		svc := newTestService(repo, testNow, false)

		err := svc.Confirm(context.Background(), 1)
		assert.ErrorIs(t, err, ErrCannotConfirm, "status=%s", status)
	}
}

func TestComplete(t *testing.T) {
	repo := newFakeRepo(futureAppointment(1, domain.StatusScheduled))
	svc := newTestService(repo, testNow, false)

	err := svc.Complete(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, repo.appointments[1].Status)
}

func TestComplete_PendingRejected(t *testing.T) {
	repo := newFakeRepo(futureAppointment(1, domain.StatusPending))
	svc := newTestService(repo, testNow, false)

	err := svc.Complete(context.Background(), 1)
	assert.ErrorIs(t, err, ErrCannotComplete)
}

func TestCancel(t *testing.T) {
	repo := newFakeRepo(futureAppointment(1, domain.StatusPending))
	svc := newTestService(repo, testNow, false)

	err := svc.Cancel(context.Background(), 1, &models.CancelAppointmentRequest{
		CancellationReason: "клиент попросил перенести",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, repo.appointments[1].Status)
	require.NotNil(t, repo.cancelledReason)
	assert.Equal(t, "клиент попросил перенести", *repo.cancelledReason)
}

func TestCancel_EmptyReason(t *testing.T) {
	repo := newFakeRepo(futureAppointment(1, domain.StatusPending))
	svc := newTestService(repo, testNow, false)

	err := svc.Cancel(context.Background(), 1, &models.CancelAppointmentRequest{CancellationReason: "  "})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancel_ScheduledBlockedWithoutFlag(t *testing.T) {
	repo := newFakeRepo(futureAppointment(1, domain.StatusScheduled))
	svc := newTestService(repo, testNow, false)

	err := svc.Cancel(context.Background(), 1, &models.CancelAppointmentRequest{CancellationReason: "перенос"})
	assert.ErrorIs(t, err, ErrCannotCancel)

	// С флагом отмена подтверждённой записи разрешена
	svc = newTestService(repo, testNow, true)
	err = svc.Cancel(context.Background(), 1, &models.CancelAppointmentRequest{CancellationReason: "перенос"})
	assert.NoError(t, err)
}

func TestCancel_TooLate(t *testing.T) {
	appt := futureAppointment(1, domain.StatusPending)
	appt.AppointmentDate = time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	appt.StartTime = "10:30" // до начала 30 минут, запас меньше часа
	repo := newFakeRepo(appt)
	svc := newTestService(repo, testNow, false)

	err := svc.Cancel(context.Background(), 1, &models.CancelAppointmentRequest{CancellationReason: "перенос"})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestPay(t *testing.T) {
	repo := newFakeRepo(futureAppointment(1, domain.StatusCompleted))
	svc := newTestService(repo, testNow, false)

	err := svc.Pay(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPaid, repo.appointments[1].Status)
}

func TestPay_Rejected(t *testing.T) {
	for _, status := range []domain.AppointmentStatus{
		domain.StatusPending, domain.StatusCancelled, domain.StatusPaid,
	} {
		repo := newFakeRepo(futureAppointment(1, status))
		svc := newTestService(repo, testNow, false)

		err := svc.Pay(context.Background(), 1)
		assert.ErrorIs(t, err, ErrCannotPay, "status=%s", status)
	}
}

func TestPay_ScheduledAllowed(t *testing.T) {
	// Оплата до завершения услуги допустима
	repo := newFakeRepo(futureAppointment(1, domain.StatusScheduled))
	svc := newTestService(repo, testNow, false)

	err := svc.Pay(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPaid, repo.appointments[1].Status)
}

func TestGetByID_Snapshot(t *testing.T) {
	repo := newFakeRepo(futureAppointment(1, domain.StatusPending))
	svc := newTestService(repo, testNow, false)

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "pending", resp.Status)
	assert.True(t, resp.Actions.CanConfirm)
	assert.True(t, resp.Actions.CanCancel)
	assert.False(t, resp.Actions.CanPay)
	assert.Equal(t, "52:00:00", resp.TimeLeftDisplay)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := newTestService(newFakeRepo(), testNow, false)

	_, err := svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestList_FilterByStatus(t *testing.T) {
	repo := newFakeRepo(
		futureAppointment(1, domain.StatusPending),
		futureAppointment(2, domain.StatusScheduled),
		futureAppointment(3, domain.StatusCancelled),
	)
	svc := newTestService(repo, testNow, false)

	resp, err := svc.List(context.Background(), &models.ListAppointmentsRequest{
		Status: ptr.Ptr("pending"),
	})
	require.NoError(t, err)
	require.Len(t, resp.Appointments, 1)
	assert.Equal(t, int64(1), resp.Appointments[0].ID)
}

func TestList_InvalidStatus(t *testing.T) {
	svc := newTestService(newFakeRepo(), testNow, false)

	_, err := svc.List(context.Background(), &models.ListAppointmentsRequest{
		Status: ptr.Ptr("unknown"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestList_ExcludesCancelledByDefault(t *testing.T) {
	repo := newFakeRepo(
		futureAppointment(1, domain.StatusPending),
		futureAppointment(2, domain.StatusCancelled),
	)
	svc := newTestService(repo, testNow, false)

	resp, err := svc.List(context.Background(), &models.ListAppointmentsRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.Appointments, 1)

	resp, err = svc.List(context.Background(), &models.ListAppointmentsRequest{IncludeInactive: true})
	require.NoError(t, err)
	assert.Len(t, resp.Appointments, 2)
}
