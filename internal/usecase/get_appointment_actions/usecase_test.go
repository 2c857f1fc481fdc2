package get_appointment_actions

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SPA-AdminService/internal/domain"
	apptRepo "github.com/m04kA/SPA-AdminService/internal/infra/storage/appointment"
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
	appt *domain.Appointment
}

func (r *fakeAppointmentRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	if r.appt == nil || r.appt.ID != id {
		return nil, apptRepo.ErrAppointmentNotFound
	}
	return r.appt, nil
}

func newTestUseCase(appt *domain.Appointment, now time.Time, allowScheduledCancel bool) *UseCase {
	uc := NewUseCase(&fakeAppointmentRepo{appt: appt}, allowScheduledCancel, noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func TestExecute_PendingFarAway(t *testing.T) {
	now := time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)
	appt := &domain.Appointment{
		ID:              1,
		AppointmentDate: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		StartTime:       "14:00",
		Status:          domain.StatusPending,
	}

	resp, err := newTestUseCase(appt, now, false).Execute(context.Background(), &Request{ID: 1})
	require.NoError(t, err)

	assert.True(t, resp.CanConfirm)
	assert.False(t, resp.CanComplete)
	assert.True(t, resp.CanCancel)
	assert.False(t, resp.CanPay)
	assert.Equal(t, "04:00:00", resp.TimeLeftDisplay)
}

func TestExecute_ScheduledCancelBlocked(t *testing.T) {
	now := time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)
	appt := &domain.Appointment{
		ID:              1,
		AppointmentDate: time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC),
		StartTime:       "14:00",
		Status:          domain.StatusScheduled,
	}

	// Без флага подтверждённая запись не отменяется даже за двое суток
	resp, err := newTestUseCase(appt, now, false).Execute(context.Background(), &Request{ID: 1})
	require.NoError(t, err)
	assert.False(t, resp.CanCancel)
	assert.True(t, resp.CanComplete)
	assert.True(t, resp.CanPay)

	// С флагом отмена открывается
	resp, err = newTestUseCase(appt, now, true).Execute(context.Background(), &Request{ID: 1})
	require.NoError(t, err)
	assert.True(t, resp.CanCancel)
}

func TestExecute_ArrivedMessage(t *testing.T) {
	now := time.Date(2025, 6, 10, 14, 0, 1, 0, time.UTC)
	appt := &domain.Appointment{
		ID:              1,
		AppointmentDate: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		StartTime:       "14:00",
		Status:          domain.StatusScheduled,
	}

	resp, err := newTestUseCase(appt, now, false).Execute(context.Background(), &Request{ID: 1})
	require.NoError(t, err)

	assert.Equal(t, domain.TimeArrivedMessage, resp.TimeLeftDisplay)
	assert.False(t, resp.CanCancel)
}

func TestExecute_TerminalStatus(t *testing.T) {
	now := time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)
	appt := &domain.Appointment{
		ID:              1,
		AppointmentDate: time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC),
		StartTime:       "14:00",
		Status:          domain.StatusPaid,
	}

	resp, err := newTestUseCase(appt, now, false).Execute(context.Background(), &Request{ID: 1})
	require.NoError(t, err)

	assert.False(t, resp.CanConfirm)
	assert.False(t, resp.CanComplete)
	assert.False(t, resp.CanCancel)
	assert.False(t, resp.CanPay)
	assert.Empty(t, resp.TimeLeftDisplay)
}

func TestExecute_NotFound(t *testing.T) {
	now := time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)

	_, err := newTestUseCase(nil, now, false).Execute(context.Background(), &Request{ID: 42})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestExecute_InvalidID(t *testing.T) {
	now := time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)

	_, err := newTestUseCase(nil, now, false).Execute(context.Background(), &Request{ID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
