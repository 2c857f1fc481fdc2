package domain

import "time"

// OrderStatus represents the status of a product order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusPaid      OrderStatus = "paid"
)

// Order represents a product order placed through the console
type Order struct {
	ID           int64
	Number       string // человекочитаемый номер заказа (uuid)
	CustomerName string
	TotalPrice   float64
	ItemsCount   int
	Status       OrderStatus
	Notes        *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsTerminal returns true if no further transition is offered for the order
func (o *Order) IsTerminal() bool {
	return o.Status == OrderStatusCancelled || o.Status == OrderStatusPaid
}

// CanDeliver returns true if the order can be marked as delivered
func (o *Order) CanDeliver() bool {
	return o.Status == OrderStatusPending
}

// CanCancel returns true if the order can be cancelled
func (o *Order) CanCancel() bool {
	return o.Status == OrderStatusPending
}

// CanPay returns true if the order can be paid
func (o *Order) CanPay() bool {
	return o.Status == OrderStatusDelivered
}

// OrdersFilter фильтр для получения заказов
type OrdersFilter struct {
	StartDate *time.Time   // Начало периода (опционально)
	EndDate   *time.Time   // Конец периода (опционально)
	Status    *OrderStatus // Фильтр по статусу (опционально)
}
