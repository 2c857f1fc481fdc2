package orders

import "errors"

var (
	// ErrOrderNotFound возвращается, когда заказ не найден
	ErrOrderNotFound = errors.New("order not found")

	// ErrCannotDeliver возвращается, когда заказ нельзя отметить доставленным
	ErrCannotDeliver = errors.New("order cannot be delivered")

	// ErrCannotCancel возвращается, когда заказ нельзя отменить
	ErrCannotCancel = errors.New("order cannot be cancelled")

	// ErrCannotPay возвращается, когда оплату заказа нельзя провести
	ErrCannotPay = errors.New("order cannot be paid")

	// ErrInvalidStatus возвращается при некорректном статусе в фильтре
	ErrInvalidStatus = errors.New("invalid order status")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
