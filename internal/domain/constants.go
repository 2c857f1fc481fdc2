package domain

import "github.com/m04kA/SPA-AdminService/pkg/types"

// Default configuration values
const (
	DefaultMaxConcurrentPerSlot = 3 // массажных кабинетов по умолчанию
	DefaultLeadTimeHours        = 1 // минимальный запас до записи в тот же день
)

// Business validation constants
const (
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxCustomerNameLength       = 200
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// TimeArrivedMessage фиксированное сообщение, которое заменяет обратный отсчёт,
// когда время записи наступило
const TimeArrivedMessage = "время записи уже наступило"

// DefaultSlotTimes дневной каталог слотов: две смены с обеденным перерывом
// Каталог фиксированный, слоты пересчитываются от него на каждую дату
var DefaultSlotTimes = []types.TimeString{
	"08:00", "09:00", "10:00", "11:00",
	"13:00", "14:00", "15:00", "16:00", "17:00",
}

// InactiveStatuses список статусов, не занимающих слот
// Используется при подсчёте занятости слотов
var InactiveStatuses = []AppointmentStatus{
	StatusCancelled,
}

// TerminalStatuses статусы, из которых клиентские переходы не предлагаются
var TerminalStatuses = []AppointmentStatus{
	StatusCompleted,
	StatusCancelled,
	StatusPaid,
}
