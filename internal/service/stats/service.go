package stats

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SPA-AdminService/internal/domain"
	"github.com/m04kA/SPA-AdminService/internal/service/stats/models"
)

// MaxReportDays максимальная длина периода отчёта
const MaxReportDays = 366

// Service сервис статистики выручки
// Выручка считается по оплаченным записям и заказам, сгруппированным по дням
type Service struct {
	appointmentSource AppointmentRevenueSource
	orderSource       OrderRevenueSource
	logger            Logger
}

// NewService создает новый экземпляр сервиса статистики
func NewService(
	appointmentSource AppointmentRevenueSource,
	orderSource OrderRevenueSource,
	logger Logger,
) *Service {
	return &Service{
		appointmentSource: appointmentSource,
		orderSource:       orderSource,
		logger:            logger,
	}
}

// RevenueRange строит отчёт о выручке за период [from, to] включительно
func (s *Service) RevenueRange(ctx context.Context, from, to time.Time) (*models.RevenueResponse, error) {
	s.logger.Info("RevenueRange: building report from=%s to=%s",
		from.Format(domain.DateFormat), to.Format(domain.DateFormat))

	from = truncateToDay(from)
	to = truncateToDay(to)

	if err := validatePeriod(from, to); err != nil {
		s.logger.Warn("RevenueRange: %v", err)
		return nil, err
	}

	apptTotals, err := s.appointmentSource.PaidTotalsByDay(ctx, from, to)
	if err != nil {
		s.logger.Error("RevenueRange: failed to get appointment totals: %v", err)
		return nil, fmt.Errorf("%w: RevenueRange - appointment totals: %v", ErrInternal, err)
	}

	orderTotals, err := s.orderSource.PaidTotalsByDay(ctx, from, to)
	if err != nil {
		s.logger.Error("RevenueRange: failed to get order totals: %v", err)
		return nil, fmt.Errorf("%w: RevenueRange - order totals: %v", ErrInternal, err)
	}

	resp := &models.RevenueResponse{
		From: from.Format(domain.DateFormat),
		To:   to.Format(domain.DateFormat),
	}

	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		key := day.Format(domain.DateFormat)
		dayRevenue := models.DayRevenue{
			Date:         key,
			Appointments: apptTotals[key],
			Orders:       orderTotals[key],
		}
		dayRevenue.Total = dayRevenue.Appointments + dayRevenue.Orders

		resp.Days = append(resp.Days, dayRevenue)
		resp.TotalAppointments += dayRevenue.Appointments
		resp.TotalOrders += dayRevenue.Orders
	}
	resp.Total = resp.TotalAppointments + resp.TotalOrders

	s.logger.Info("RevenueRange: report ready, %d days, total=%.2f", len(resp.Days), resp.Total)
	return resp, nil
}

// ExportXLSX строит отчёт о выручке и выгружает его в xlsx
// Имя файла содержит период и уникальный суффикс
func (s *Service) ExportXLSX(ctx context.Context, from, to time.Time) (*models.ExportResponse, error) {
	report, err := s.RevenueRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Выручка"
	f.SetSheetName(f.GetSheetName(0), sheet)

	headers := []string{"Дата", "Записи", "Заказы", "Итого"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("%w: ExportXLSX - header cell: %v", ErrInternal, err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("%w: ExportXLSX - header cell: %v", ErrInternal, err)
		}
	}

	for i, day := range report.Days {
		row := i + 2
		values := []interface{}{day.Date, day.Appointments, day.Orders, day.Total}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, fmt.Errorf("%w: ExportXLSX - data cell: %v", ErrInternal, err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("%w: ExportXLSX - data cell: %v", ErrInternal, err)
			}
		}
	}

	// Итоговая строка под таблицей
	totalRow := len(report.Days) + 2
	totals := []interface{}{"Итого", report.TotalAppointments, report.TotalOrders, report.Total}
	for col, v := range totals {
		cell, err := excelize.CoordinatesToCellName(col+1, totalRow)
		if err != nil {
			return nil, fmt.Errorf("%w: ExportXLSX - totals cell: %v", ErrInternal, err)
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return nil, fmt.Errorf("%w: ExportXLSX - totals cell: %v", ErrInternal, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		s.logger.Error("ExportXLSX: failed to write workbook: %v", err)
		return nil, fmt.Errorf("%w: ExportXLSX - write workbook: %v", ErrInternal, err)
	}

	fileName := fmt.Sprintf("revenue_%s_%s_%s.xlsx", report.From, report.To, uuid.NewString())
	s.logger.Info("ExportXLSX: exported %s (%d bytes)", fileName, buf.Len())

	return &models.ExportResponse{
		FileName: fileName,
		Content:  buf.Bytes(),
	}, nil
}

// validatePeriod проверяет корректность периода отчёта
func validatePeriod(from, to time.Time) error {
	if from.IsZero() || to.IsZero() {
		return fmt.Errorf("%w: from and to are required", ErrInvalidPeriod)
	}
	if to.Before(from) {
		return fmt.Errorf("%w: to is before from", ErrInvalidPeriod)
	}
	if to.Sub(from) > MaxReportDays*24*time.Hour {
		return fmt.Errorf("%w: period is longer than %d days", ErrInvalidPeriod, MaxReportDays)
	}
	return nil
}

// truncateToDay обнуляет время, оставляя только дату
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
