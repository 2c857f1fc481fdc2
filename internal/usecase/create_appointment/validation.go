package create_appointment

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SPA-AdminService/internal/domain"
	"github.com/m04kA/SPA-AdminService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}

	if len(req.CustomerName) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customerName is too long (max %d)", ErrInvalidInput, domain.MaxCustomerNameLength)
	}

	if len(req.ServiceIDs) == 0 {
		return fmt.Errorf("%w: at least one service is required", ErrInvalidInput)
	}

	for _, id := range req.ServiceIDs {
		if id <= 0 {
			return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
		}
	}

	if req.StaffID != nil && *req.StaffID <= 0 {
		return fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are too long (max %d)", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateSlot проверяет, что слот входит в каталог и ещё доступен для записи.
// Правила доступности те же, что и при выдаче слотов формы: прошедшая дата
// запрещена целиком, на сегодня действует часовой запас
func validateSlot(catalogue domain.SlotCatalogue, date time.Time, startTime types.TimeString, now time.Time) error {
	if !catalogue.Contains(startTime) {
		return fmt.Errorf("%w: %s is not in the slot catalogue", ErrInvalidTimeSlot, startTime)
	}

	if domain.IsDateInPast(date, now) {
		return ErrInvalidDate
	}

	for _, slot := range catalogue.Bookable(date, now) {
		if slot == startTime {
			return nil
		}
	}

	return fmt.Errorf("%w: slot %s has already closed for today", ErrTooLateToBook, startTime)
}

// countOverlappingAppointments подсчитывает количество активных записей,
// пересекающихся с указанным слотом
func countOverlappingAppointments(
	startTime types.TimeString,
	durationMinutes int,
	appointments []*domain.Appointment,
) (int, error) {
	slotEnd, err := startTime.AddMinutes(durationMinutes)
	if err != nil {
		return 0, err
	}

	count := 0

	for _, appt := range appointments {
		// Пропускаем отменённые записи
		if !appt.IsActive() {
			continue
		}

		apptStart := appt.StartTime
		apptEnd, err := appt.StartTime.AddMinutes(appt.DurationMinutes)
		if err != nil {
			// Если не можем вычислить конец записи, пропускаем
			continue
		}

		// Проверяем пересечение (строгие неравенства, граничные случаи не считаются)
		if apptStart.IsBefore(slotEnd) && apptEnd.IsAfter(startTime) {
			count++
		}
	}

	return count, nil
}

// staffHasConflict проверяет, есть ли у мастера активная запись,
// пересекающаяся с указанным слотом
func staffHasConflict(
	staffID int64,
	startTime types.TimeString,
	durationMinutes int,
	appointments []*domain.Appointment,
) (bool, error) {
	slotEnd, err := startTime.AddMinutes(durationMinutes)
	if err != nil {
		return false, err
	}

	for _, appt := range appointments {
		if !appt.IsActive() {
			continue
		}

		if appt.StaffID == nil || *appt.StaffID != staffID {
			continue
		}

		apptEnd, err := appt.StartTime.AddMinutes(appt.DurationMinutes)
		if err != nil {
			continue
		}

		if appt.StartTime.IsBefore(slotEnd) && apptEnd.IsAfter(startTime) {
			return true, nil
		}
	}

	return false, nil
}
