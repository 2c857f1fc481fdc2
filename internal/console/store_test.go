package console

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListStore_Refresh(t *testing.T) {
	ctx := context.Background()

	items := []Appointment{
		{ID: 1, CustomerName: "Иван Петров", Status: "pending"},
		{ID: 2, CustomerName: "Анна Сидорова", Status: "scheduled"},
	}

	store := NewListStore(func(ctx context.Context) ([]Appointment, error) {
		return items, nil
	})

	require.NoError(t, store.Refresh(ctx))

	got := store.Items()
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, uint64(1), store.Generation())

	// Повторное обновление с тем же ответом сервера даёт тот же список
	require.NoError(t, store.Refresh(ctx))
	assert.Equal(t, got, store.Items())
	assert.Equal(t, uint64(2), store.Generation())
}

func TestListStore_Refresh_Error(t *testing.T) {
	ctx := context.Background()

	fetchErr := errors.New("connection refused")
	store := NewListStore(func(ctx context.Context) ([]Appointment, error) {
		return nil, fetchErr
	})

	err := store.Refresh(ctx)

	assert.ErrorIs(t, err, fetchErr)
	assert.Empty(t, store.Items())
	assert.Equal(t, uint64(0), store.Generation())
}

func TestListStore_Refresh_InFlightGuard(t *testing.T) {
	ctx := context.Background()

	started := make(chan struct{})
	release := make(chan struct{})

	store := NewListStore(func(ctx context.Context) ([]Appointment, error) {
		close(started)
		<-release
		return []Appointment{{ID: 1}}, nil
	})

	done := make(chan error, 1)
	go func() {
		done <- store.Refresh(ctx)
	}()

	<-started

	// Повторный вызов во время запроса ничего не делает
	require.NoError(t, store.Refresh(ctx))
	assert.Empty(t, store.Items())

	close(release)
	require.NoError(t, <-done)
	assert.Len(t, store.Items(), 1)
}

func TestListStore_SetFetch_DropsStaleResponse(t *testing.T) {
	ctx := context.Background()

	started := make(chan struct{})
	release := make(chan struct{})

	store := NewListStore(func(ctx context.Context) ([]Appointment, error) {
		close(started)
		<-release
		return []Appointment{{ID: 1, AppointmentDate: "2025-06-10"}}, nil
	})

	done := make(chan error, 1)
	go func() {
		done <- store.Refresh(ctx)
	}()

	<-started

	// Пользователь сменил дату, пока шёл запрос по старой
	store.SetFetch(func(ctx context.Context) ([]Appointment, error) {
		return []Appointment{{ID: 2, AppointmentDate: "2025-06-11"}}, nil
	})

	close(release)
	require.NoError(t, <-done)

	// Ответ по старому фильтру отброшен
	assert.Empty(t, store.Items())

	require.NoError(t, store.Refresh(ctx))

	got := store.Items()
	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].ID)
}

func TestListStore_Items_ReturnsCopy(t *testing.T) {
	ctx := context.Background()

	store := NewListStore(func(ctx context.Context) ([]Appointment, error) {
		return []Appointment{{ID: 1, Status: "pending"}}, nil
	})

	require.NoError(t, store.Refresh(ctx))

	got := store.Items()
	got[0].Status = "cancelled"

	assert.Equal(t, "pending", store.Items()[0].Status)
}
