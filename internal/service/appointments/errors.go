package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrCannotConfirm возвращается, когда запись нельзя подтвердить из текущего статуса
	ErrCannotConfirm = errors.New("appointment cannot be confirmed")

	// ErrCannotComplete возвращается, когда запись нельзя завершить из текущего статуса
	ErrCannotComplete = errors.New("appointment cannot be completed")

	// ErrCannotCancel возвращается, когда запись нельзя отменить (статус или запас времени)
	ErrCannotCancel = errors.New("appointment cannot be cancelled")

	// ErrCannotPay возвращается, когда оплату нельзя провести из текущего статуса
	ErrCannotPay = errors.New("appointment cannot be paid")

	// ErrInvalidStatus возвращается при некорректном статусе в фильтре
	ErrInvalidStatus = errors.New("invalid appointment status")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
