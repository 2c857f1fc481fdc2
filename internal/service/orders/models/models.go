package models

import (
	"errors"
	"time"

	"github.com/m04kA/SPA-AdminService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid order status")
)

// Request модели

// CreateOrderRequest запрос на создание заказа
type CreateOrderRequest struct {
	CustomerName string  `json:"customerName"`
	TotalPrice   float64 `json:"totalPrice"`
	ItemsCount   int     `json:"itemsCount"`
	Notes        *string `json:"notes,omitempty"`
}

// CancelOrderRequest запрос на отмену заказа
type CancelOrderRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

// ListOrdersRequest запрос на получение заказов с фильтрацией
type ListOrdersRequest struct {
	StartDate *time.Time `json:"startDate,omitempty"` // Начало периода (опционально)
	EndDate   *time.Time `json:"endDate,omitempty"`   // Конец периода (опционально)
	Status    *string    `json:"status,omitempty"`    // Фильтр по статусу (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListOrdersRequest) ToDomainFilter() (domain.OrdersFilter, error) {
	filter := domain.OrdersFilter{
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
	}

	if r.Status != nil {
		status, err := ToDomainOrderStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// OrderActions снимок доступных действий по заказу
type OrderActions struct {
	CanDeliver bool `json:"canDeliver"`
	CanCancel  bool `json:"canCancel"`
	CanPay     bool `json:"canPay"`
}

// OrderResponse ответ с данными заказа
type OrderResponse struct {
	ID           int64   `json:"id"`
	Number       string  `json:"number"`
	CustomerName string  `json:"customerName"`
	TotalPrice   float64 `json:"totalPrice"`
	ItemsCount   int     `json:"itemsCount"`
	Status       string  `json:"status"`
	Notes        *string `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	Actions OrderActions `json:"actions"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OrderListResponse ответ со списком заказов
type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
}

// Методы конвертации

// FromDomainOrder конвертирует domain модель в DTO
func FromDomainOrder(o *domain.Order) *OrderResponse {
	if o == nil {
		return nil
	}

	resp := &OrderResponse{
		ID:                 o.ID,
		Number:             o.Number,
		CustomerName:       o.CustomerName,
		TotalPrice:         o.TotalPrice,
		ItemsCount:         o.ItemsCount,
		Status:             string(o.Status),
		Notes:              o.Notes,
		CancellationReason: o.CancellationReason,
		Actions: OrderActions{
			CanDeliver: o.CanDeliver(),
			CanCancel:  o.CanCancel(),
			CanPay:     o.CanPay(),
		},
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}

	if o.CancelledAt != nil {
		cancelledAt := o.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}

	return resp
}

// FromDomainOrderList конвертирует список domain моделей в DTO
func FromDomainOrderList(orders []*domain.Order) *OrderListResponse {
	result := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		result = append(result, *FromDomainOrder(o))
	}
	return &OrderListResponse{Orders: result}
}

// ToDomainOrderStatus конвертирует строку в domain статус
func ToDomainOrderStatus(s string) (domain.OrderStatus, error) {
	switch domain.OrderStatus(s) {
	case domain.OrderStatusPending, domain.OrderStatusDelivered,
		domain.OrderStatusCancelled, domain.OrderStatusPaid:
		return domain.OrderStatus(s), nil
	default:
		return "", ErrInvalidStatus
	}
}
