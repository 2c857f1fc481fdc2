package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailableSlots "github.com/m04kA/SPA-AdminService/internal/usecase/get_available_slots"
	"github.com/m04kA/SPA-AdminService/pkg/types"
)

type fakeUseCase struct {
	response *getAvailableSlots.Response
	err      error

	calls []*getAvailableSlots.Request
}

func (f *fakeUseCase) Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	f.calls = append(f.calls, req)
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func mustTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}

func TestHandler_Handle_ReturnsSlots(t *testing.T) {
	date := time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)
	useCase := &fakeUseCase{response: &getAvailableSlots.Response{
		Date:  date,
		Slots: []types.TimeString{mustTime(t, "08:00"), mustTime(t, "09:00")},
	}}
	h := NewHandler(useCase, noopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/slots/available?date=2025-06-12", nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2025-06-12", resp.Date)
	assert.Equal(t, []string{"08:00", "09:00"}, resp.Slots)
	require.Len(t, useCase.calls, 1)
}

func TestHandler_Handle_InvalidDate_DegradesToEmptySlots(t *testing.T) {
	useCase := &fakeUseCase{}
	h := NewHandler(useCase, noopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/slots/available?date=12.06.2025", nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	// Нечитаемая дата - не ошибка, а пустой список слотов
	require.Equal(t, http.StatusOK, rec.Code)

	var resp AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Slots)
	assert.False(t, resp.SelectionCleared)
	assert.Empty(t, useCase.calls)
}

func TestHandler_Handle_InvalidDate_ClearsSelection(t *testing.T) {
	useCase := &fakeUseCase{}
	h := NewHandler(useCase, noopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/slots/available?date=garbage&selected=13:00", nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Slots)
	assert.Nil(t, resp.SelectedTime)
	assert.True(t, resp.SelectionCleared)
	assert.Empty(t, useCase.calls)
}

func TestHandler_Handle_MissingDate(t *testing.T) {
	useCase := &fakeUseCase{}
	h := NewHandler(useCase, noopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/slots/available", nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, useCase.calls)
}
