package domain

import (
	"time"

	"github.com/m04kA/SPA-AdminService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusPaid      AppointmentStatus = "paid"
)

// Appointment represents a spa service appointment
type Appointment struct {
	ID              int64
	CustomerName    string
	CustomerPhone   *string
	StaffID         *int64 // назначенный мастер (может быть не назначен при создании)
	AppointmentDate time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          AppointmentStatus
	TotalPrice      float64

	// Denormalized data for history
	ServiceIDs   []int64
	ServiceNames []string
	StaffName    *string
	Notes        *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DateTime returns the absolute timestamp of the scheduled service
func (a *Appointment) DateTime() (time.Time, error) {
	return a.StartTime.At(a.AppointmentDate)
}

// IsTerminal returns true if no further client-initiated transition is offered
func (a *Appointment) IsTerminal() bool {
	return a.Status == StatusCompleted ||
		a.Status == StatusCancelled ||
		a.Status == StatusPaid
}

// IsActive returns true if the appointment still occupies its slot
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// CanConfirm returns true if the appointment can be confirmed
func (a *Appointment) CanConfirm() bool {
	return a.Status == StatusPending
}

// CanComplete returns true if the appointment can be marked as completed
func (a *Appointment) CanComplete() bool {
	return a.Status == StatusScheduled
}

// CanCancel returns true if the appointment can be cancelled at the given moment.
//
// Воспроизводит наблюдаемое условие исходной консоли: подтверждённая (scheduled)
// запись через этот путь НЕ отменяется, даже при большом запасе времени.
// Похоже на дефект, но поведение сохранено намеренно; allowScheduledCancel -
// именованный флаг с "вероятно задуманным" вариантом, ждёт решения продукта.
func (a *Appointment) CanCancel(now time.Time, allowScheduledCancel bool) bool {
	if a.IsTerminal() {
		return false
	}
	if a.Status == StatusScheduled && !allowScheduledCancel {
		return false
	}
	return a.TimeLeft(now) > time.Duration(DefaultLeadTimeHours)*time.Hour
}

// CanPay returns true if the appointment can be paid
func (a *Appointment) CanPay() bool {
	return a.Status != StatusPaid &&
		a.Status != StatusCancelled &&
		a.Status != StatusPending
}

// TimeLeft returns the remaining time until the appointment, zero if it has arrived
// or the stored start time is malformed
func (a *Appointment) TimeLeft(now time.Time) time.Duration {
	at, err := a.DateTime()
	if err != nil {
		return 0
	}
	left := at.Sub(now)
	if left < 0 {
		return 0
	}
	return left
}

// TimeLeftDisplay returns the HH:MM:SS countdown string while the appointment is
// non-terminal and in the future; once the countdown reaches zero it becomes the
// fixed arrived-message. Terminal appointments have no countdown (empty string).
func (a *Appointment) TimeLeftDisplay(now time.Time) string {
	if a.IsTerminal() {
		return ""
	}

	left := a.TimeLeft(now)
	if left <= 0 {
		return TimeArrivedMessage
	}

	return FormatCountdown(left)
}

// AppointmentsFilter фильтр для получения записей
type AppointmentsFilter struct {
	StaffID         *int64             // Фильтр по мастеру (опционально)
	StartDate       *time.Time         // Начало периода (опционально)
	EndDate         *time.Time         // Конец периода (опционально)
	Status          *AppointmentStatus // Фильтр по статусу (опционально)
	IncludeInactive bool               // Включать ли отменённые записи
}
