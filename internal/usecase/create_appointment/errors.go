package create_appointment

import "errors"

var (
	// ErrServiceNotFound возвращается, когда хотя бы одна из услуг не найдена
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrStaffNotFound возвращается, когда указанный мастер не найден
	ErrStaffNotFound = errors.New("create_appointment: staff member not found")

	// ErrStaffNotAssignable возвращается, когда на сотрудника нельзя назначать записи
	ErrStaffNotAssignable = errors.New("create_appointment: staff member cannot take appointments")

	// ErrInvalidDate возвращается при дате записи в прошлом
	ErrInvalidDate = errors.New("create_appointment: invalid appointment date")

	// ErrInvalidTimeSlot возвращается, когда время не входит в дневной каталог слотов
	ErrInvalidTimeSlot = errors.New("create_appointment: invalid time slot")

	// ErrTooLateToBook возвращается, когда слот на сегодня уже недоступен по запасу времени
	ErrTooLateToBook = errors.New("create_appointment: too late to book this slot")

	// ErrSlotNotAvailable возвращается, когда все места на слот заняты
	ErrSlotNotAvailable = errors.New("create_appointment: slot is not available")

	// ErrStaffBusy возвращается, когда у мастера уже есть пересекающаяся запись
	ErrStaffBusy = errors.New("create_appointment: staff member is busy at this time")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
