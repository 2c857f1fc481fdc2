package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SPA-AdminService/internal/domain"
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

func newTestUseCase(now time.Time) *UseCase {
	uc := NewUseCase(domain.DefaultSlotCatalogue(), noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func mustTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}

func TestExecute_FutureDate_FullCatalogue(t *testing.T) {
	now := time.Date(2025, 6, 10, 14, 30, 0, 0, time.UTC)
	uc := newTestUseCase(now)

	resp, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Len(t, resp.Slots, 9)
	assert.Equal(t, domain.DefaultSlotCatalogue().Times(), resp.Slots)
	assert.False(t, resp.SelectionCleared)
}

func TestExecute_PastDate_Empty(t *testing.T) {
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	uc := newTestUseCase(now)

	resp, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Empty(t, resp.Slots)
}

func TestExecute_Today_LeadTimeApplied(t *testing.T) {
	now := time.Date(2025, 6, 10, 14, 30, 0, 0, time.UTC)
	uc := newTestUseCase(now)

	resp, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	want := []types.TimeString{
		mustTime(t, "16:00"),
		mustTime(t, "17:00"),
	}
	assert.Equal(t, want, resp.Slots)
}

func TestExecute_SelectionKept(t *testing.T) {
	now := time.Date(2025, 6, 10, 14, 30, 0, 0, time.UTC)
	uc := newTestUseCase(now)

	selected := mustTime(t, "17:00")
	resp, err := uc.Execute(context.Background(), &Request{
		Date:         time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		SelectedTime: &selected,
	})
	require.NoError(t, err)

	require.NotNil(t, resp.SelectedTime)
	assert.Equal(t, selected, *resp.SelectedTime)
	assert.False(t, resp.SelectionCleared)
}

func TestExecute_SelectionCleared(t *testing.T) {
	now := time.Date(2025, 6, 10, 14, 30, 0, 0, time.UTC)
	uc := newTestUseCase(now)

	// 13:00 выпадает из доступных после 14:30
	selected := mustTime(t, "13:00")
	resp, err := uc.Execute(context.Background(), &Request{
		Date:         time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		SelectedTime: &selected,
	})
	require.NoError(t, err)

	assert.Nil(t, resp.SelectedTime)
	assert.True(t, resp.SelectionCleared)
}

func TestExecute_ZeroDate_Error(t *testing.T) {
	uc := newTestUseCase(time.Date(2025, 6, 10, 14, 30, 0, 0, time.UTC))

	_, err := uc.Execute(context.Background(), &Request{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
