package stats

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fakeRevenueSource struct {
	totals map[string]float64
}

func (s *fakeRevenueSource) PaidTotalsByDay(_ context.Context, _, _ time.Time) (map[string]float64, error) {
	return s.totals, nil
}

func newTestService(appt, orders map[string]float64) *Service {
	return NewService(
		&fakeRevenueSource{totals: appt},
		&fakeRevenueSource{totals: orders},
		noopLogger{},
	)
}

func TestRevenueRange(t *testing.T) {
	svc := newTestService(
		map[string]float64{"2025-06-10": 3500, "2025-06-12": 7000},
		map[string]float64{"2025-06-10": 1500},
	)

	from := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)

	resp, err := svc.RevenueRange(context.Background(), from, to)
	require.NoError(t, err)

	require.Len(t, resp.Days, 3)

	assert.Equal(t, "2025-06-10", resp.Days[0].Date)
	assert.Equal(t, 3500.0, resp.Days[0].Appointments)
	assert.Equal(t, 1500.0, resp.Days[0].Orders)
	assert.Equal(t, 5000.0, resp.Days[0].Total)

	// День без оплат включается с нулями
	assert.Equal(t, "2025-06-11", resp.Days[1].Date)
	assert.Equal(t, 0.0, resp.Days[1].Total)

	assert.Equal(t, 10500.0, resp.TotalAppointments)
	assert.Equal(t, 1500.0, resp.TotalOrders)
	assert.Equal(t, 12000.0, resp.Total)
}

func TestRevenueRange_SingleDay(t *testing.T) {
	svc := newTestService(map[string]float64{"2025-06-10": 100}, nil)

	day := time.Date(2025, 6, 10, 15, 30, 0, 0, time.UTC) // время обнуляется

	resp, err := svc.RevenueRange(context.Background(), day, day)
	require.NoError(t, err)
	require.Len(t, resp.Days, 1)
	assert.Equal(t, 100.0, resp.Total)
}

func TestRevenueRange_InvalidPeriod(t *testing.T) {
	svc := newTestService(nil, nil)

	from := time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	_, err := svc.RevenueRange(context.Background(), from, to)
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	_, err = svc.RevenueRange(context.Background(), time.Time{}, to)
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestExportXLSX(t *testing.T) {
	svc := newTestService(
		map[string]float64{"2025-06-10": 3500},
		map[string]float64{"2025-06-10": 1500},
	)

	from := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	resp, err := svc.ExportXLSX(context.Background(), from, from)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(resp.FileName, "revenue_2025-06-10_2025-06-10_"))
	assert.True(t, strings.HasSuffix(resp.FileName, ".xlsx"))
	assert.NotEmpty(t, resp.Content)
}
