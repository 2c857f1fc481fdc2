package stats

import (
	"context"
	"time"
)

// AppointmentRevenueSource источник выручки по оплаченным записям
type AppointmentRevenueSource interface {
	PaidTotalsByDay(ctx context.Context, from, to time.Time) (map[string]float64, error)
}

// OrderRevenueSource источник выручки по оплаченным заказам
type OrderRevenueSource interface {
	PaidTotalsByDay(ctx context.Context, from, to time.Time) (map[string]float64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
