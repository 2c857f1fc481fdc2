package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SPA-AdminService/internal/domain"
	serviceRepo "github.com/m04kA/SPA-AdminService/internal/infra/storage/service"
	userRepo "github.com/m04kA/SPA-AdminService/internal/infra/storage/user"
	"github.com/m04kA/SPA-AdminService/pkg/ptr"
	"github.com/m04kA/SPA-AdminService/pkg/types"
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
	existing []*domain.Appointment
	created  *domain.Appointment
	nextID   int64
}

func (r *fakeAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	stored := *appt
	r.nextID++
	stored.ID = r.nextID
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	r.created = &stored
	return &stored, nil
}

func (r *fakeAppointmentRepo) GetWithFilter(_ context.Context, _ domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	return r.existing, nil
}

type fakeServiceRepo struct {
	services map[int64]*domain.Service
}

func (r *fakeServiceRepo) GetByIDs(_ context.Context, ids []int64) ([]*domain.Service, error) {
	result := make([]*domain.Service, 0, len(ids))
	for _, id := range ids {
		svc, ok := r.services[id]
		if !ok {
			return nil, serviceRepo.ErrServiceNotFound
		}
		result = append(result, svc)
	}
	return result, nil
}

type fakeUserRepo struct {
	users map[int64]*domain.User
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return u, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newEnv(now time.Time) (*UseCase, *fakeAppointmentRepo) {
	apptRepo := &fakeAppointmentRepo{}
	svcRepo := &fakeServiceRepo{services: map[int64]*domain.Service{
		1: {ID: 1, Name: "Классический массаж", Price: 3500, DurationMinutes: 60, IsActive: true},
		2: {ID: 2, Name: "Ароматерапия", Price: 1500, DurationMinutes: 30, IsActive: true},
	}}
	usrRepo := &fakeUserRepo{users: map[int64]*domain.User{
		10: {ID: 10, Name: "Мария", Role: domain.RoleTherapist, IsActive: true},
		11: {ID: 11, Name: "Админ", Role: domain.RoleAdmin, IsActive: true},
	}}

	uc := NewUseCase(apptRepo, svcRepo, usrRepo, fakeTxManager{}, domain.DefaultSlotCatalogue(), 3, noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc, apptRepo
}

func validRequest() *Request {
	return &Request{
		CustomerName: "Иван Петров",
		Date:         time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC),
		StartTime:    "10:00",
		ServiceIDs:   []int64{1, 2},
	}
}

func TestExecute_Success(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	uc, apptRepo := newEnv(now)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, 90, resp.DurationMinutes)
	assert.Equal(t, 5000.0, resp.TotalPrice)
	assert.Equal(t, []string{"Классический массаж", "Ароматерапия"}, resp.ServiceNames)
	require.NotNil(t, apptRepo.created)
	assert.Equal(t, domain.StatusPending, apptRepo.created.Status)
}

func TestExecute_StaffAssigned(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	uc, _ := newEnv(now)

	req := validRequest()
	req.StaffID = ptr.Ptr(int64(10))

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.NotNil(t, resp.StaffName)
	assert.Equal(t, "Мария", *resp.StaffName)
}

func TestExecute_StaffNotAssignable(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	uc, _ := newEnv(now)

	// Администратор не принимает записи
	req := validRequest()
	req.StaffID = ptr.Ptr(int64(11))

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrStaffNotAssignable)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	uc, _ := newEnv(now)

	req := validRequest()
	req.ServiceIDs = []int64{1, 999}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_PastDate(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	uc, _ := newEnv(now)

	req := validRequest()
	req.Date = time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_SlotNotInCatalogue(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	uc, _ := newEnv(now)

	// 12:00 - обеденный перерыв, слота нет в каталоге
	req := validRequest()
	req.StartTime = "12:00"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_TooLateForToday(t *testing.T) {
	now := time.Date(2025, 6, 10, 14, 30, 0, 0, time.UTC)
	uc, _ := newEnv(now)

	// 15:00 на сегодня уже закрыт часовым запасом
	req := validRequest()
	req.Date = time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	req.StartTime = "15:00"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrTooLateToBook)
}

func TestExecute_SlotFull(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	uc, apptRepo := newEnv(now)

	// Все три кабинета заняты на 10:00
	for i := 0; i < 3; i++ {
		apptRepo.existing = append(apptRepo.existing, &domain.Appointment{
			ID:              int64(i + 1),
			StartTime:       "10:00",
			DurationMinutes: 60,
			Status:          domain.StatusScheduled,
		})
	}

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_CancelledDoesNotOccupySlot(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	uc, apptRepo := newEnv(now)

	apptRepo.existing = []*domain.Appointment{
		{ID: 1, StartTime: "10:00", DurationMinutes: 60, Status: domain.StatusScheduled},
		{ID: 2, StartTime: "10:00", DurationMinutes: 60, Status: domain.StatusScheduled},
		{ID: 3, StartTime: "10:00", DurationMinutes: 60, Status: domain.StatusCancelled},
	}

	_, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_StaffBusy(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	uc, apptRepo := newEnv(now)

	apptRepo.existing = []*domain.Appointment{
		{ID: 1, StaffID: ptr.Ptr(int64(10)), StartTime: "10:00", DurationMinutes: 60, Status: domain.StatusScheduled},
	}

	req := validRequest()
	req.StaffID = ptr.Ptr(int64(10))

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrStaffBusy)
}

func TestExecute_InvalidInput(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	uc, _ := newEnv(now)

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"empty customer name", func(r *Request) { r.CustomerName = "  " }},
		{"no services", func(r *Request) { r.ServiceIDs = nil }},
		{"zero date", func(r *Request) { r.Date = time.Time{} }},
		{"empty start time", func(r *Request) { r.StartTime = "" }},
		{"malformed start time", func(r *Request) { r.StartTime = "25:99" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCountOverlappingAppointments_BoundariesDoNotCount(t *testing.T) {
	appointments := []*domain.Appointment{
		// Заканчивается ровно в начале слота
		{ID: 1, StartTime: "09:00", DurationMinutes: 60, Status: domain.StatusScheduled},
		// Начинается ровно в конце слота
		{ID: 2, StartTime: "11:00", DurationMinutes: 60, Status: domain.StatusScheduled},
		// Реальное пересечение
		{ID: 3, StartTime: "10:30", DurationMinutes: 60, Status: domain.StatusScheduled},
	}

	count, err := countOverlappingAppointments(types.TimeString("10:00"), 60, appointments)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
